package dataset

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/logger"
)

// Watcher reloads a store when its table file changes
type Watcher struct {
	store          *Store
	path           string
	watcher        *fsnotify.Watcher
	debouncePeriod time.Duration
	logger         *zap.SugaredLogger

	mu            sync.Mutex
	debounceTimer *time.Timer
	onReload      func(*Session)
}

// NewWatcher watches the store's table. The parent directory is watched so
// editors that save by rename are still seen.
func NewWatcher(store *Store, debounce time.Duration) (*Watcher, error) {
	path, err := filepath.Abs(store.Path())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", store.Path())
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(path))
	}

	return &Watcher{
		store:          store,
		path:           path,
		watcher:        fw,
		debouncePeriod: debounce,
		logger:         logger.ComponentLogger("dataset.watcher"),
	}, nil
}

// OnReload registers a callback for successful reloads
func (w *Watcher) OnReload(fn func(*Session)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Start begins watching until ctx is done or Stop is called
func (w *Watcher) Start(ctx context.Context) {
	go w.watchLoop(ctx)
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debugw("Table change detected",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.scheduleReload(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// relevant keeps writes, creates and renames of the watched file itself
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	// Office lock files (~$arbol.xlsx) share the directory
	if strings.HasPrefix(filepath.Base(name), "~$") {
		return false
	}
	return name == w.path
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		session, err := w.store.Reload(ctx)
		if err != nil {
			w.logger.Errorw("Table reload failed", logger.FieldError, err)
			return
		}

		w.mu.Lock()
		callback := w.onReload
		w.mu.Unlock()
		if callback != nil {
			callback(session)
		}
	})
}

// Stop stops watching for changes
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
