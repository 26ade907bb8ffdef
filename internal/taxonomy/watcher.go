package taxonomy

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/finetype/finetype/internal/errors"
	"github.com/finetype/finetype/internal/logger"
)

// ReloadCallback is called with the freshly reloaded taxonomy whenever
// the watched directory's definitions change.
type ReloadCallback func(*Taxonomy) error

// Watcher reloads a taxonomy directory on file change, for
// `finetype generate --watch` iterative type-authoring loops.
type Watcher struct {
	dir            string
	watcher        *fsnotify.Watcher
	mu             sync.Mutex
	callbacks      []ReloadCallback
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewWatcher watches dir (a taxonomy directory of definitions_*.yaml
// files) for changes.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.At(errors.KindIo, dir, err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, errors.At(errors.KindIo, dir, err)
	}
	logger.Logger.Infow("watching taxonomy directory", logger.FieldPath, absDir(dir))
	return &Watcher{
		dir:            dir,
		watcher:        fw,
		debouncePeriod: 300 * time.Millisecond,
	}, nil
}

// OnReload registers a callback invoked with the reloaded taxonomy
// after each debounced change.
func (w *Watcher) OnReload(cb ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop closes the underlying fsnotify watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Logger.Warnw("taxonomy watcher error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.reload)
}

func (w *Watcher) reload() {
	tax, err := LoadDirectory(w.dir)
	if err != nil {
		logger.Logger.Errorw("taxonomy reload failed",
			logger.FieldPath, w.dir, logger.FieldError, err)
		return
	}
	logger.Logger.Infow("taxonomy reloaded", logger.FieldPath, w.dir,
		logger.FieldCount, tax.Len())

	w.mu.Lock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, cb := range callbacks {
		if err := cb(tax); err != nil {
			logger.Logger.Warnw("taxonomy reload callback failed", logger.FieldError, err)
		}
	}
}

// absDir resolves dir to an absolute path for stable log output.
func absDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
