package content

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mosaicui/mosaic/internal/platform"
)

// Debounce window for bursts of write events from editors that save in
// several steps
const watchDebounce = 100 * time.Millisecond

// Watcher reloads a content file when it changes on disk. The parent
// directory is watched rather than the file itself so that editors replacing
// the file via rename keep triggering events.
type Watcher struct {
	path     string
	onChange func()

	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
}

// NewWatcher creates a watcher for the file at path. onChange runs after
// every (debounced) modification.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch path is empty")
	}
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback is nil")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	return &Watcher{path: abs, onChange: onChange}, nil
}

// Start begins watching until ctx is cancelled or Close is called
func (w *Watcher) Start(ctx context.Context) error {
	if w.watcher != nil {
		return fmt.Errorf("watcher already started")
	}

	// The content file may not exist yet; watching its directory picks up
	// the eventual create event, so make sure the directory is there.
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to prepare watch directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.watcher = watcher
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	go w.run(runCtx)
	log.Printf("watching %s for changes", w.path)
	return nil
}

// Close stops the watcher. Safe to call before Start and more than once.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	if w.watcher != nil {
		err := w.watcher.Close()
		w.watcher = nil
		return err
	}
	return nil
}

// run is the watch loop, debouncing events for the watched file
func (w *Watcher) run(ctx context.Context) {
	var pending *time.Timer
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.matches(event) {
				continue
			}

			// Debounce: restart the timer on every matching event
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(watchDebounce, w.onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error for %s: %v", w.path, err)
		}
	}
}

// matches reports whether the event concerns the watched file with an
// operation that changes its content
func (w *Watcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
