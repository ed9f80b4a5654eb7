// Package watcher monitors file-backed buffers for external modification and
// publishes change notifications, debounced, through a pubsub broker.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"gmacs/internal/pubsub"
)

// Event identifies the watched file that changed on disk.
type Event struct {
	Path string
}

// Watcher monitors a set of files and reports writes to them.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration
	broker    *pubsub.Broker[Event]
	done      chan struct{}

	mu    sync.Mutex
	paths map[string]struct{} // absolute paths being watched
}

// Config holds watcher configuration options.
type Config struct {
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig() Config {
	return Config{DebounceDur: 500 * time.Millisecond}
}

// New creates a file watcher.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		debounce:  cfg.DebounceDur,
		broker:    pubsub.NewBroker[Event](),
		done:      make(chan struct{}),
		paths:     make(map[string]struct{}),
	}, nil
}

// Broker returns the broker change events are published on.
func (w *Watcher) Broker() *pubsub.Broker[Event] { return w.broker }

// Start begins processing file system events.
func (w *Watcher) Start() {
	go w.loop()
}

// Watch adds a file to the watch set. The containing directory is watched so
// editors that replace files by rename are still observed.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	w.mu.Lock()
	w.paths[abs] = struct{}{}
	w.mu.Unlock()

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	w.broker.Close()
	return w.fsWatcher.Close()
}

// loop processes file system events, debouncing per path.
func (w *Watcher) loop() {
	timers := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			path, relevant := w.relevantPath(event)
			if !relevant {
				continue
			}

			if t, ok := timers[path]; ok {
				t.Reset(w.debounce)
				continue
			}
			timers[path] = time.AfterFunc(w.debounce, func() {
				w.broker.Publish(pubsub.FileChangedEvent, Event{Path: path})
			})

		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Keep watching; callers see changes or nothing.

		case <-w.done:
			for _, t := range timers {
				t.Stop()
			}
			return
		}
	}
}

// relevantPath reports whether the event concerns a watched file.
func (w *Watcher) relevantPath(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return "", false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.paths[abs]
	return abs, ok
}
