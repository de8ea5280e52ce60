package keymap

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keyscope/internal/keybinding"
	"github.com/dshills/keyscope/internal/log"
)

// ErrWatcherClosed indicates the watcher has been closed.
var ErrWatcherClosed = errors.New("keymap: watcher closed")

// defaultDebounce coalesces editor write bursts into one reload.
const defaultDebounce = 100 * time.Millisecond

// Watcher reloads keymap files through a Loader when they change on
// disk. Watching is directory-based so files recreated by editors
// (write-rename) keep being tracked.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	loader   *Loader
	logger   *log.Logger
	targets  map[string]keybinding.Scope
	timers   map[string]*time.Timer
	debounce time.Duration
	closed   bool
	closeCh  chan struct{}
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher that applies changed files via loader.
func NewWatcher(loader *Loader, logger *log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Null
	}

	w := &Watcher{
		fsw:      fsw,
		loader:   loader,
		logger:   logger.WithComponent("keymap.watcher"),
		targets:  make(map[string]keybinding.Scope),
		timers:   make(map[string]*time.Timer),
		debounce: defaultDebounce,
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts tracking a keymap file for the given scope.
func (w *Watcher) Watch(scope keybinding.Scope, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	w.targets[abs] = scope
	return nil
}

// Close stops the watcher and releases the underlying resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}

	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	scope, tracked := w.targets[abs]
	if !tracked || w.closed {
		return
	}

	// Debounce: editors emit several events per save.
	if timer, ok := w.timers[abs]; ok {
		timer.Stop()
	}
	w.timers[abs] = time.AfterFunc(w.debounce, func() {
		w.reload(scope, abs)
	})
}

func (w *Watcher) reload(scope keybinding.Scope, path string) {
	w.logger.Info("reloading %s keymap from %s", scope, path)
	if err := w.loader.LoadFile(scope, path); err != nil {
		w.logger.Warn("reload failed: %v", err)
	}
}
