package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wexinc/extcat/internal/logging"
)

// Watcher reloads a catalog file when it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload func(*Catalog)
	onError  func(error)
	logger   *logging.Logger
	started  atomic.Bool
	done     chan struct{}
}

// ErrWatcherStarted is returned by Start on a watcher that is already running.
var ErrWatcherStarted = errors.New("catalog watcher already started")

// NewWatcher creates a watcher for path. onReload receives every catalog
// that loads successfully after a change. Events closer together than
// debounce are coalesced into one reload.
func NewWatcher(path string, debounce time.Duration, onReload func(*Catalog)) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onReload: onReload,
		logger:   logging.Global(),
		done:     make(chan struct{}),
	}
}

// WithLogger sets the logger used for reload reports.
func (w *Watcher) WithLogger(l *logging.Logger) *Watcher {
	if l != nil {
		w.logger = l
	}
	return w
}

// OnError sets a callback for reloads that fail. The previous catalog
// stays in use until the file loads again.
func (w *Watcher) OnError(fn func(error)) *Watcher {
	w.onError = fn
	return w
}

// Start begins watching and returns once the watch is registered.
// The watch stops when ctx is cancelled. A watcher runs at most once;
// later calls return ErrWatcherStarted.
func (w *Watcher) Start(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrWatcherStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.started.Store(false)
		return fmt.Errorf("create watcher: %w", err)
	}

	// Editors often replace the file instead of writing it, so watch the directory.
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		w.started.Store(false)
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Debug("watching catalog", "path", w.path, "debounce", w.debounce)

	go w.loop(ctx, fsw)
	return nil
}

// Done is closed once the watch loop has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer close(w.done)
	defer fsw.Close()

	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			fire = time.After(w.debounce)

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watch error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		// Keep showing the previous catalog until the file is fixed.
		w.logger.Warn("catalog reload failed", "path", w.path, "error", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	w.logger.Info("catalog reloaded", "path", w.path, "extensions", c.Len(), "malformed", c.Malformed())
	if w.onReload != nil {
		w.onReload(c)
	}
}
