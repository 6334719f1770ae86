package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/brezel/pkg/core"
)

const watchDebounce = 50 * time.Millisecond

// Watch reports changes to note bodies in the root, including those made
// by external editors. Only the root itself is watched; sidecars are not
// reported. The returned channel is closed once ctx is done.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.layout.Root); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.layout.Root, err)
	}

	known, err := r.noteFilenames()
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}

	w := &watchLoop{
		repo:      r,
		pattern:   pattern,
		watcher:   watcher,
		debouncer: newDebouncer(watchDebounce),
		known:     make(map[string]bool, len(known)),
		out:       make(chan core.Event, 16),
		done:      make(chan struct{}),
	}
	for _, name := range known {
		w.known[TitleFromFilename(name)] = true
	}

	r.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher failed", "error", err)
	}))

	return w.out, nil
}

type watchLoop struct {
	repo      *Repository
	pattern   string
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	known     map[string]bool // titles present in the root; only touched by run
	out       chan core.Event
	done      chan struct{} // closed first on shutdown to unblock pending emits
}

func (w *watchLoop) run(ctx context.Context) error {
	defer close(w.out)
	defer w.repo.setWatcherActive(false)
	defer w.debouncer.stop()
	defer w.watcher.Close()
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.repo.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// handle filters an fsnotify event down to note bodies and classifies it.
// Atomic saves land as a create of an already known title, which is
// reported as a modification.
func (w *watchLoop) handle(ctx context.Context, event fsnotify.Event) {
	w.repo.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	name := filepath.Base(event.Name)
	if filepath.Dir(event.Name) != filepath.Clean(w.repo.layout.Root) || isTempFile(name) || !IsNoteFilename(name) {
		return
	}
	if w.pattern != "" {
		if ok, _ := doublestar.Match(w.pattern, name); !ok {
			return
		}
	}

	title := TitleFromFilename(name)
	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
		if w.known[title] {
			eType = core.EventModify
		}
		w.known[title] = true
	case event.Has(fsnotify.Write):
		eType = core.EventModify
		w.known[title] = true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
		delete(w.known, title)
	default:
		return
	}

	w.debouncer.add(core.Event{
		Type:      eType,
		Title:     title,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		select {
		case w.out <- e:
		case <-ctx.Done():
		case <-w.done:
		}
	})
}
