package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"multipick/internal/eventbus"
	"multipick/internal/selection"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Focus modes for the list panel
const (
	FocusWindow = "window"
	FocusPanel  = "panel"
)

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	Selection SelectionConfig `toml:"selection"`
	UI        UISettings      `toml:"ui"`
	Source    SourceConfig    `toml:"source"`
	Log       LogConfig       `toml:"log"`
}

// SelectionConfig controls highlight color and focus behaviour
type SelectionConfig struct {
	Color string `toml:"color"` // hex, alpha is always overridden
	Focus string `toml:"focus"` // "window" or "panel"
}

// UISettings represents UI-related configuration
type UISettings struct {
	Background  string  `toml:"background"`
	ShowDetails bool    `toml:"show_details"`
	ListRatio   float64 `toml:"list_ratio"` // share of the width taken by the list pane
}

// SourceConfig describes which directory is listed
type SourceConfig struct {
	Dir        string `toml:"dir"`
	ShowHidden bool   `toml:"show_hidden"`
	Watch      bool   `toml:"watch"`
	MaxDepth   int    `toml:"max_depth"`
}

// LogConfig configures the log file
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// SelectionColor returns the configured highlight color
func (c *Config) SelectionColor() selection.Color {
	col, err := colorful.Hex(c.Selection.Color)
	if err != nil {
		return selection.DefaultColor
	}
	return selection.Color{R: col.R, G: col.G, B: col.B, A: selection.FocusedAlpha}
}

// Validate checks the values that can't be fixed up silently
func (c *Config) Validate() error {
	if _, err := colorful.Hex(c.Selection.Color); err != nil {
		return fmt.Errorf("%w: selection.color %q: %v", ErrInvalidConfig, c.Selection.Color, err)
	}
	if _, err := colorful.Hex(c.UI.Background); err != nil {
		return fmt.Errorf("%w: ui.background %q: %v", ErrInvalidConfig, c.UI.Background, err)
	}
	switch c.Selection.Focus {
	case FocusWindow, FocusPanel:
	default:
		return fmt.Errorf("%w: selection.focus must be %q or %q, got %q", ErrInvalidConfig, FocusWindow, FocusPanel, c.Selection.Focus)
	}
	if c.UI.ListRatio <= 0 || c.UI.ListRatio >= 1 {
		return fmt.Errorf("%w: ui.list_ratio must be between 0 and 1, got %v", ErrInvalidConfig, c.UI.ListRatio)
	}
	if c.Source.MaxDepth < 0 {
		return fmt.Errorf("%w: source.max_depth must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "multipick", "config.toml")
}

// NewConfigService creates a config service reading path, or DefaultPath when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it doesn't exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Dir: cfg.Source.Dir})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Selection: SelectionConfig{
			Color: colorful.Color{
				R: selection.DefaultColor.R,
				G: selection.DefaultColor.G,
				B: selection.DefaultColor.B,
			}.Hex(),
			Focus: FocusWindow,
		},
		UI: UISettings{
			Background: "#1c1c1c",
			ListRatio:  0.6,
		},
		Source: SourceConfig{
			Dir:   ".",
			Watch: true,
		},
		Log: LogConfig{
			Level:      "info",
			File:       filepath.Join(os.TempDir(), "multipick.log"),
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}
