package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 250 * time.Millisecond

type reloader interface {
	Reload(ctx context.Context, store *Store) error
}

// Watcher reloads the store when a local catalog file changes. Remote
// sources are not watched.
type Watcher struct {
	loader  reloader
	store   *Store
	files   map[string]struct{}
	watcher *fsnotify.Watcher
	log     *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// NewWatcher watches the parent directories of the given local paths.
// Editors commonly replace files by rename, so directories are watched
// rather than the files themselves.
func NewWatcher(logger *slog.Logger, loader reloader, store *Store, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}

	w := &Watcher{
		loader:  loader,
		store:   store,
		files:   make(map[string]struct{}),
		watcher: fw,
		log:     logger.With("component", "catalog_watcher"),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		if p == "" || isRemote(p) {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// Start runs the event loop until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop closes the underlying watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WarnContext(ctx, "fs watcher error", slog.String("error", err.Error()))
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, ev fsnotify.Event) {
	if _, watched := w.files[filepath.Clean(ev.Name)]; !watched {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(reloadDebounce, func() { w.reload(ctx, ev.Name) })
}

func (w *Watcher) reload(ctx context.Context, changed string) {
	if ctx.Err() != nil {
		return
	}
	if err := w.loader.Reload(ctx, w.store); err != nil {
		w.log.ErrorContext(ctx, "catalog reload failed, keeping previous catalog",
			slog.String("file", changed),
			slog.String("error", err.Error()),
		)
		return
	}
	w.log.InfoContext(ctx, "catalog reloaded", slog.String("file", changed))
}
