package service

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// TableWatcher reloads tables when their files change on disk. Directories
// are watched instead of files so that editors that replace files by rename
// are still noticed.
type TableWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	reloads map[string]func() error // cleaned path -> reload
	timers  map[string]*time.Timer
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewTableWatcher(debounce time.Duration, logger *zap.Logger) (*TableWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &TableWatcher{
		watcher:  watcher,
		debounce: debounce,
		logger:   logger,
		reloads:  make(map[string]func() error),
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.watchLoop()

	return w, nil
}

// Watch calls reload after path is written, created or replaced.
func (w *TableWatcher) Watch(path string, reload func() error) error {
	path = filepath.Clean(path)
	if err := w.watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w.mu.Lock()
	w.reloads[path] = reload
	w.mu.Unlock()
	return nil
}

func (w *TableWatcher) watchLoop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule(filepath.Clean(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Table watcher error", zap.Error(err))
		}
	}
}

// schedule coalesces bursts of events for one file into a single reload.
func (w *TableWatcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	reload, ok := w.reloads[path]
	if !ok {
		return
	}
	if timer, ok := w.timers[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		if err := reload(); err != nil {
			w.logger.Error("Table reload after file change failed, keeping previous table",
				zap.String("path", path), zap.Error(err))
			return
		}
		w.logger.Info("Table reloaded after file change", zap.String("path", path))
	})
}

// Close stops watching. Pending reloads are cancelled.
func (w *TableWatcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()
	return err
}
