package imageio

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/lgl"
)

// DefaultDebounce is the default quiet period before a changed file is
// reloaded.
const DefaultDebounce = 200 * time.Millisecond

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period between the last change event and
// the reload. Non-positive values select DefaultDebounce.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the function called when reloading fails or the
// file system reports an error. Without one, errors are logged at warn
// level.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher reloads an image file when it changes and hands the new surface
// to a callback. Callbacks run on the watcher's goroutine.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	debounce  time.Duration
	onLoad    func(*lgl.Surface)
	onError   func(error)
	stopCh    chan struct{}
	stoppedCh chan struct{}
	closeOnce sync.Once
	mu        sync.Mutex
	running   bool
	stopped   bool
}

// NewWatcher creates a watcher for the image at path. The containing
// directory is watched so that editors saving through a rename are seen.
func NewWatcher(path string, onLoad func(*lgl.Surface), opts ...WatchOption) (*Watcher, error) {
	if onLoad == nil {
		return nil, fmt.Errorf("imageio: watch %s: nil callback: %w", path, lgl.ErrInvalidParams)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("imageio: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("imageio: watch %s: %w", path, err)
	}

	w := &Watcher{
		watcher:   fw,
		path:      path,
		debounce:  DefaultDebounce,
		onLoad:    onLoad,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

// Start begins watching in a new goroutine. Calling Start on a running or
// stopped watcher does nothing.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running || w.stopped {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.loop()
}

// Stop ends watching and waits for the goroutine to exit. It is safe to
// call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	running := w.running
	w.mu.Unlock()

	if !running {
		w.close()
		return
	}
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Watcher) close() {
	w.closeOnce.Do(func() { _ = w.watcher.Close() })
}

func (w *Watcher) loop() {
	defer close(w.stoppedCh)
	defer w.close()

	absPath, _ := filepath.Abs(w.path)
	baseName := filepath.Base(w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			eventAbs, _ := filepath.Abs(event.Name)
			if filepath.Base(event.Name) != baseName && eventAbs != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.fail(err)
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		w.fail(err)
		return
	}
	w.onLoad(s)
}

func (w *Watcher) fail(err error) {
	if w.onError != nil {
		w.onError(err)
		return
	}
	lgl.Logger().Warn("imageio: watch", "path", w.path, "err", err)
}
