package locale

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Watcher keeps a Set in sync with an override directory on disk.
// The directory must exist on the OS filesystem backing fs.
type Watcher struct {
	fs       afero.Fs
	dir      string
	watcher  *fsnotify.Watcher
	current  atomic.Pointer[Set]
	onReload func(*Set, error)

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewWatcher loads dir once and prepares a watcher for it.
func NewWatcher(fs afero.Fs, dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fs:      fs,
		dir:     dir,
		watcher: fw,
		ctx:     ctx,
		cancel:  cancel,
	}

	set, loadErr := Load(fs, dir)
	if loadErr != nil {
		slog.Warn("some prompt overrides were skipped", "dir", dir, "error", loadErr)
	}
	w.current.Store(set)
	return w, nil
}

// OnReload registers a callback run after every reload. Call before Start.
func (w *Watcher) OnReload(fn func(*Set, error)) {
	w.onReload = fn
}

// Current returns the latest catalog set.
func (w *Watcher) Current() *Set {
	return w.current.Load()
}

// Start begins watching the override directory. A failed Start releases
// the watcher; the Watcher cannot be restarted.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.dir); err != nil {
		w.Stop()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.wg.Add(1)
	go w.eventLoop()
	return nil
}

// Stop stops watching and waits for the event loop to exit. It is safe to
// call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.cancel()
		_ = w.watcher.Close()
	})
	w.wg.Wait()
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if isOverrideFile(event.Name) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("override watch error", "dir", w.dir, "error", err)

		case <-w.ctx.Done():
			return
		}
	}
}

func (w *Watcher) reload() {
	set, err := Load(w.fs, w.dir)
	if err != nil {
		slog.Warn("some prompt overrides were skipped", "dir", w.dir, "error", err)
	}
	w.current.Store(set)
	slog.Debug("reloaded prompt overrides", "dir", w.dir)
	if w.onReload != nil {
		w.onReload(set, err)
	}
}

func isOverrideFile(path string) bool {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	switch strings.TrimSuffix(name, ext) {
	case GuardrailsFile, QuestionsFile, GatesFile:
	default:
		return false
	}
	for _, e := range overrideExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
