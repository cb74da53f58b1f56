package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/Iron-Ham/hrkit/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// WatchFunc receives the re-read file, or the error that reading it produced.
type WatchFunc func(Result, error)

// Watcher re-reads a single name file whenever it changes on disk.
// Bursts of events (editors often write, truncate and rename) are coalesced
// into one reload once the file has been quiet for the debounce interval.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	opts     Options
	debounce time.Duration
	onChange WatchFunc
	logger   *logging.Logger

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher creates a Watcher for path. onChange is called from the
// watcher's goroutine.
func NewWatcher(path string, opts Options, debounce time.Duration, onChange WatchFunc, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		opts:     opts,
		debounce: debounce,
		onChange: onChange,
		logger:   logger.WithComponent("ingest.watch"),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It watches the parent directory so that the file
// being replaced by rename is still seen. Start is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}
	w.running = true

	go w.run(ctx)
	w.logger.Info("watching name file", "path", w.path)
	return nil
}

// Stop ends watching and waits for the event loop to exit. Safe to call
// more than once, and before Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("closing file watcher", "error", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// fire is nil while no reload is pending.
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file event", "op", event.Op.String())
			fire = time.After(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)

		case <-fire:
			fire = nil
			res, err := ReadFile(ctx, w.path, w.opts)
			if err != nil {
				w.logger.Warn("reload failed", "error", err)
			} else {
				w.logger.Info("reloaded name file", "count", len(res.Names))
			}
			w.onChange(res, err)
		}
	}
}

// relevant keeps create and write events on the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}
