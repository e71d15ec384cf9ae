package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"multipick/internal/domain"
	"multipick/internal/eventbus"
)

// ErrScanInProgress is returned by StartScan while another scan is running
var ErrScanInProgress = errors.New("scan already in progress")

// Options controls which entries a scan lists
type Options struct {
	ShowHidden bool
	MaxDepth   int // 0 lists only the directory's own entries
}

// DiscoveryService lists directories and publishes the results on the bus
type DiscoveryService interface {
	StartScan(ctx context.Context, dir string) error
	StopScan()
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	opts       Options
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus, opts Options) DiscoveryService {
	ds := &discoveryService{
		bus:  bus,
		opts: opts,
	}

	// Subscribe to scan requests
	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			if err := ds.StartScan(context.Background(), event.Dir); err != nil {
				slog.Debug("discovery: scan request ignored", "dir", event.Dir, "err", err)
			}
		}
	})

	return ds
}

// StartScan lists dir in the background
func (ds *discoveryService) StartScan(ctx context.Context, dir string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return ErrScanInProgress
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Dir: dir})

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()
		found := 0
		defer func() {
			cancel()
			ds.mu.Lock()
			ds.isScanning = false
			ds.cancelFunc = nil
			ds.mu.Unlock()

			ds.bus.Publish(eventbus.ScanCompletedEvent{Dir: dir, ItemsFound: found})
		}()

		items, err := List(scanCtx, dir, ds.opts)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Error("discovery: scan failed", "dir", dir, "err", err)
				ds.bus.Publish(eventbus.ErrorEvent{
					Message: fmt.Sprintf("Failed to list %s", dir),
					Err:     err,
				})
			}
			return
		}
		found = len(items)
		slog.Info("discovery: scan finished", "dir", dir, "items", found)
		ds.bus.Publish(eventbus.ItemsLoadedEvent{Dir: dir, Items: items})
	}()

	return nil
}

// StopScan stops any ongoing scan
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}

// List returns the entries of dir, directories first, then by name
func List(ctx context.Context, dir string, opts Options) (domain.ItemList, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	items := domain.ItemList{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			// The root itself must be readable
			if path == root {
				return err
			}
			slog.Warn("discovery: skipping unreadable path", "path", path, "err", err)
			return nil
		}
		if path == root {
			return nil
		}

		if !opts.ShowHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, _ := filepath.Rel(root, path)
		item := domain.Item{
			Path:  path,
			Name:  rel,
			IsDir: d.IsDir(),
		}
		if info, err := d.Info(); err == nil {
			item.Size = info.Size()
			item.Mode = info.Mode()
			item.ModTime = info.ModTime()
		}
		items = append(items, item)

		depth := strings.Count(rel, string(filepath.Separator))
		if d.IsDir() && depth >= opts.MaxDepth {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsDir != items[j].IsDir {
			return items[i].IsDir
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}
