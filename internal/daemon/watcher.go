package daemon

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/txxt/internal/util/sets"
)

// Watcher monitors files and directories for txxt document changes and
// invokes a callback per changed file, debounced so editor save bursts
// collapse into one invocation.
type Watcher struct {
	paths    []string
	exts     sets.Set[string]
	debounce time.Duration
	onChange func(path string)

	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	pending  map[string]*time.Timer
	stopChan chan struct{}
	stopOnce sync.Once

	// Populated during Start, read-only afterwards. fileRoots holds
	// roots that are single files; their parent directories carry the
	// fsnotify watch, so handleEvent must filter siblings out again.
	fileRoots   sets.Set[string]
	watchedDirs sets.Set[string]
}

// NewWatcher creates a watcher over paths (files or directories).
func NewWatcher(paths []string, debounce time.Duration, extensions []string, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if len(extensions) == 0 {
		extensions = []string{".txt", ".txxt"}
	}
	return &Watcher{
		paths:       paths,
		exts:        sets.New(extensions...),
		debounce:    debounce,
		onChange:    onChange,
		watcher:     fsw,
		pending:     make(map[string]*time.Timer),
		stopChan:    make(chan struct{}),
		fileRoots:   sets.New[string](),
		watchedDirs: sets.New[string](),
	}, nil
}

// Start registers the watch roots and begins dispatching events.
// Directories are watched recursively as they exist at start time.
func (w *Watcher) Start(ctx context.Context) error {
	for _, path := range w.paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve watch path: %w", err)
		}
		if err := w.addRecursive(abs); err != nil {
			return err
		}
	}

	slog.Info("Starting document watcher", "paths", w.paths, "debounce", w.debounce)
	go w.watchLoop(ctx)
	return nil
}

// Stop shuts the watcher down and cancels pending debounce timers.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()

		w.mu.Lock()
		for _, t := range w.pending {
			t.Stop()
		}
		w.pending = map[string]*time.Timer{}
		w.mu.Unlock()
	})
	return err
}

// addRecursive watches path and, for directories, every non-hidden
// subdirectory. A file root is watched through its parent directory;
// editors save via rename-and-replace, which only a directory watch
// reports reliably.
func (w *Watcher) addRecursive(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat watch path: %w", err)
	}
	if !info.IsDir() {
		w.fileRoots.Add(path)
		if err := w.watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && p != path {
			return fs.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		w.watchedDirs.Add(p)
		return nil
	})
}

// watchLoop dispatches filesystem events until stopped.
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Document watcher error", "error", err)
		}
	}
}

// handleEvent schedules a debounced callback for relevant writes.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	if !w.exts.Has(strings.ToLower(filepath.Ext(event.Name))) {
		return
	}
	// A parent directory watched for a file root also reports that
	// file's siblings; only the roots themselves and children of
	// directory roots get through.
	if !w.fileRoots.Has(event.Name) && !w.watchedDirs.Has(filepath.Dir(event.Name)) {
		return
	}
	slog.Debug("Document change detected", "file", event.Name, "op", event.Op.String())
	w.schedule(event.Name)
}

// schedule resets the per-file debounce timer.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		select {
		case <-w.stopChan:
			return
		default:
		}
		w.onChange(path)
	})
}
