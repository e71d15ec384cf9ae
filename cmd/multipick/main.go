package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"multipick/internal/config"
	"multipick/internal/discovery"
	"multipick/internal/eventbus"
	"multipick/internal/logging"
	"multipick/internal/ui"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "multipick: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	dir         string
	configPath  string
	showHidden  bool
	watch       bool
	details     bool
	focus       string
	color       string
	writeConfig bool
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	var opts options
	flagSet := pflag.NewFlagSet("multipick", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.dir, "dir", "d", "", "directory to list (default: config source.dir)")
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "config file (default: "+config.DefaultPath()+")")
	flagSet.BoolVar(&opts.showHidden, "show-hidden", false, "list dotfiles")
	flagSet.BoolVar(&opts.watch, "watch", true, "rescan when the directory changes")
	flagSet.BoolVar(&opts.details, "details", false, "show the full path under every entry")
	flagSet.StringVar(&opts.focus, "focus", "", `highlight focus mode: "window" or "panel"`)
	flagSet.StringVar(&opts.color, "color", "", "selection highlight color (hex)")
	flagSet.BoolVar(&opts.writeConfig, "write-config", false, "save the effective config and exit")
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: multipick [flags] [dir]\n\nPick entries of a directory with the mouse. Accepted paths are printed one per line.\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}
	switch rest := flagSet.Args(); {
	case len(rest) > 1:
		return nil, nil, fmt.Errorf("unexpected argument: %s", rest[1])
	case len(rest) == 1 && opts.dir == "":
		opts.dir = rest[0]
	}
	return &opts, flagSet, nil
}

// applyFlags overrides cfg with the flags given on the command line
func applyFlags(cfg *config.Config, opts *options, flagSet *pflag.FlagSet) error {
	if opts.dir != "" {
		cfg.Source.Dir = opts.dir
	}
	if flagSet.Changed("show-hidden") {
		cfg.Source.ShowHidden = opts.showHidden
	}
	if flagSet.Changed("watch") {
		cfg.Source.Watch = opts.watch
	}
	if flagSet.Changed("details") {
		cfg.UI.ShowDetails = opts.details
	}
	if opts.focus != "" {
		cfg.Selection.Focus = opts.focus
	}
	if opts.color != "" {
		cfg.Selection.Color = opts.color
	}
	return cfg.Validate()
}

func run(args []string) error {
	opts, flagSet, err := parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("load config %s: %w", configSvc.Path(), err)
	}
	if err := applyFlags(cfg, opts, flagSet); err != nil {
		return err
	}

	if opts.writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", configSvc.Path())
		return nil
	}

	dir, err := filepath.Abs(cfg.Source.Dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", cfg.Source.Dir, err)
	}
	if info, err := os.Stat(dir); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	cfg.Source.Dir = dir

	closeLog, err := logging.Init(cfg.Log, version)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.Info("starting", "dir", dir, "config", configSvc.Path())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	discoverySvc := discovery.NewDiscoveryService(bus, discovery.Options{
		ShowHidden: cfg.Source.ShowHidden,
		MaxDepth:   cfg.Source.MaxDepth,
	})
	defer discoverySvc.StopScan()

	if cfg.Source.Watch {
		if err := discovery.Watch(ctx, bus, dir, discovery.DefaultDebounce); err != nil {
			// Still usable without live updates
			slog.Warn("watch disabled", "err", err)
		}
	}

	model := ui.NewModel(bus, cfg)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)

	// Forward the events the UI renders
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventScanStarted,
		eventbus.EventItemsLoaded,
		eventbus.EventScanCompleted,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SelectionChangedEvent)
		slog.Debug("selection changed", "count", len(ev.Indexes))
	})

	if err := discoverySvc.StartScan(ctx, dir); err != nil {
		slog.Warn("initial scan", "err", err)
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}

	for _, path := range model.Result() {
		fmt.Println(path)
	}
	return nil
}
