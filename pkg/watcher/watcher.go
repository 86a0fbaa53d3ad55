// Package watcher reloads offset table files when they change on
// disk, so an edit in an external editor shows up in the viewer
// without a restart.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// TableWatcher watches offset table files and invokes a callback when
// one of them changes. Rapid successive writes are debounced so a save
// that touches the file several times triggers a single reload.
type TableWatcher struct {
	watcher   *fsnotify.Watcher
	log       *zap.Logger
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// NewTableWatcher creates a watcher with the given debounce window.
// A nil logger disables logging.
func NewTableWatcher(debounce time.Duration, log *zap.Logger) (*TableWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &TableWatcher{
		watcher:   fsw,
		log:       log,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers offset table files. The callback receives the
// absolute path of the file that changed.
func (tw *TableWatcher) Watch(files []string, callback func(string)) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := tw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		tw.callbacks[absPath] = callback
		tw.log.Debug("watching offset table", zap.String("path", absPath))
	}

	return nil
}

// Start begins delivering change events in a background goroutine.
func (tw *TableWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-tw.watcher.Events:
				if !ok {
					return
				}
				tw.handleEvent(event)

			case err, ok := <-tw.watcher.Errors:
				if !ok {
					return
				}
				tw.log.Warn("table watcher error", zap.Error(err))
			}
		}
	}()
}

func (tw *TableWatcher) handleEvent(event fsnotify.Event) {
	// Editors that save via rename drop the inode from the watch list;
	// re-add the path so subsequent saves still fire.
	if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
		tw.rearm(event.Name)
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
		tw.fireDebounced(event.Name)
	}
}

func (tw *TableWatcher) rearm(path string) {
	tw.mu.Lock()
	_, known := tw.callbacks[path]
	tw.mu.Unlock()
	if !known {
		return
	}

	if err := tw.watcher.Add(path); err != nil {
		tw.log.Warn("failed to re-arm watch", zap.String("path", path), zap.Error(err))
		return
	}
	tw.fireDebounced(path)
}

// fireDebounced schedules the callback for a changed file, replacing
// any timer already pending for the same path.
func (tw *TableWatcher) fireDebounced(path string) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	callback, exists := tw.callbacks[path]
	if !exists {
		return
	}
	if timer, exists := tw.timers[path]; exists {
		timer.Stop()
	}
	tw.timers[path] = time.AfterFunc(tw.debounce, func() {
		tw.log.Info("offset table changed", zap.String("path", path))
		callback(path)
	})
}

// Close stops the watcher and releases its resources.
func (tw *TableWatcher) Close() error {
	return tw.watcher.Close()
}

// RemoveAll stops watching every registered file.
func (tw *TableWatcher) RemoveAll() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	for file := range tw.callbacks {
		if err := tw.watcher.Remove(file); err != nil {
			return err
		}
	}
	tw.callbacks = make(map[string]func(string))
	return nil
}
