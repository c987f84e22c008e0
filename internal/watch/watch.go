// Package watch reports debounced changes to map files below a directory.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/wardleygo/internal/ctxlog"
)

// DefaultDebounce is used when Config.Debounce is not positive.
const DefaultDebounce = 100 * time.Millisecond

var (
	// ErrRootNotExist indicates the watched directory does not exist.
	ErrRootNotExist = errors.New("watch root does not exist")

	// ErrRootNotDirectory indicates the watched path is a file.
	ErrRootNotDirectory = errors.New("watch root is not a directory")
)

// Event is one settled change to a map file.
type Event struct {
	Path    string
	Removed bool
	Time    time.Time
}

// Config configures a Watcher.
type Config struct {
	Root     string
	Debounce time.Duration
	// Match filters files by their slash-separated path relative to Root.
	// A nil Match accepts every file.
	Match func(rel string) bool
}

// Watcher turns fsnotify events into debounced per-file events.
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]*time.Timer
	events  chan Event
	stopped bool
}

// New validates cfg and opens the underlying fsnotify watcher.
func New(cfg Config) (*Watcher, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrRootNotExist
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrRootNotDirectory
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		config:  cfg,
		watcher: fw,
		pending: make(map[string]*time.Timer),
	}, nil
}

// Start watches the root recursively until ctx is cancelled. The returned
// channel is closed once the watcher has shut down.
func (w *Watcher) Start(ctx context.Context) (<-chan Event, error) {
	w.events = make(chan Event, 16)
	if err := w.addRecursive(w.config.Root); err != nil {
		w.watcher.Close()
		return nil, err
	}

	ctxlog.FromContext(ctx).Debug("Watcher started.", "root", w.config.Root, "debounce", w.config.Debounce)
	go w.loop(ctx)
	return w.events, nil
}

// Close releases the underlying fsnotify watcher. It is safe to call after
// Start has shut the watcher down.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) loop(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	defer w.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error.", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.addRecursive(event.Name)
			return
		}
	}
	if event.Op == fsnotify.Chmod || !w.accepts(event.Name) {
		return
	}
	removed := event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
	w.schedule(event.Name, removed)
}

func (w *Watcher) accepts(path string) bool {
	if w.config.Match == nil {
		return true
	}
	rel, err := filepath.Rel(w.config.Root, path)
	if err != nil {
		return false
	}
	return w.config.Match(filepath.ToSlash(rel))
}

// schedule restarts the debounce timer of path. Only the last event of a
// burst is delivered.
func (w *Watcher) schedule(path string, removed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(w.config.Debounce, func() {
		w.emit(Event{Path: path, Removed: removed, Time: time.Now()}, timer)
	})
	w.pending[path] = timer
}

// emit delivers event unless timer has been superseded by a later schedule
// of the same path.
func (w *Watcher) emit(event Event, timer *time.Timer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending[event.Path] != timer {
		return
	}
	delete(w.pending, event.Path)
	if w.stopped {
		return
	}
	select {
	case w.events <- event:
	default:
	}
}

func (w *Watcher) shutdown() {
	w.mu.Lock()
	w.stopped = true
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
	close(w.events)
	w.mu.Unlock()
	w.watcher.Close()
}
