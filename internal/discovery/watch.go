package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"multipick/internal/eventbus"
)

// DefaultDebounce is how long the watcher waits for a burst of changes to settle
const DefaultDebounce = 250 * time.Millisecond

// Watch publishes a ScanRequestedEvent for dir whenever entries are created,
// removed or renamed in it. It returns once the watcher is installed and keeps
// running until ctx is done.
func Watch(ctx context.Context, bus eventbus.EventBus, dir string, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer w.Close()

		timer := time.NewTimer(debounce)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				// Writes don't change which entries exist
				if !ev.Has(fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
					continue
				}
				slog.Debug("discovery: change detected", "path", ev.Name, "op", ev.Op.String())
				timer.Reset(debounce)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("discovery: watcher error", "dir", dir, "err", err)
			case <-timer.C:
				bus.Publish(eventbus.ScanRequestedEvent{Dir: dir})
			}
		}
	}()

	return nil
}
