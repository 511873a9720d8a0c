package store

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watcherDebounce = 50 * time.Millisecond

// Watcher reports writes to a store file made by any process. Atomic
// writes replace the file, so the parent directory is watched instead of
// the file itself.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string

	onChanged func()
	debounce  time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once
}

// NewWatcher watches path and calls onChanged, debounced, after it changes.
func NewWatcher(path string, onChanged func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	clean := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(clean)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return &Watcher{
		watcher:   fw,
		path:      clean,
		onChanged: onChanged,
		debounce:  watcherDebounce,
	}, nil
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.isStoreEvent(event) {
				w.scheduleNotify()
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}

// Close stops the watcher and any pending notification.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) isStoreEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

func (w *Watcher) scheduleNotify() {
	if w.onChanged == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.fire)
	} else {
		w.timer.Reset(w.debounce)
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.mu.Unlock()

	w.onChanged()
}
