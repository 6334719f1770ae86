package fs

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/brezel/pkg/core"
)

//go:embed welcome.md
var defaultWelcomeNote []byte

// DefaultConcurrency bounds the per-note metadata resolution of a listing.
const DefaultConcurrency = 8

// Repository implements core.Repository on a local notes root.
type Repository struct {
	layout Layout
	meta   *MetadataStore
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastList      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Layout      Layout
	Logger      *slog.Logger
	WelcomeNote []byte // seeded into an empty root; defaults to the bundled template
	Concurrency int    // parallel sidecar resolutions per listing; zero means DefaultConcurrency
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.WelcomeNote == nil {
		config.WelcomeNote = defaultWelcomeNote
	}
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConcurrency
	}
	return &Repository{
		layout: config.Layout,
		meta:   NewMetadataStore(config.Layout, config.Logger),
		config: config,
	}
}

// Root returns the notes root directory.
func (r *Repository) Root() string {
	return r.layout.Root
}

// Layout returns the on-disk layout.
func (r *Repository) Layout() Layout {
	return r.layout
}

// Metadata returns the sidecar store.
func (r *Repository) Metadata() *MetadataStore {
	return r.meta
}

// Initialize creates the notes root and metadata directories if missing.
func (r *Repository) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.layout.Root, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}
	if err := os.MkdirAll(r.layout.Metadata, 0755); err != nil {
		return fmt.Errorf("failed to create metadata directory: %w", err)
	}
	return nil
}

// List returns every note in the root in enumeration order.
func (r *Repository) List(ctx context.Context) ([]core.NoteInfo, error) {
	return r.ListMatching(ctx, core.ListOptions{})
}

// ListMatching scans the root for note bodies.
//
// Workflow:
//  1. Ensure the root and metadata directories exist.
//  2. Read the root's entries and keep "*.md" files.
//  3. If there are none, seed the welcome note.
//  4. Apply opts.Match (doublestar syntax).
//  5. Stat each body and resolve its id concurrently; each resolution
//     touches a different sidecar.
func (r *Repository) ListMatching(ctx context.Context, opts core.ListOptions) ([]core.NoteInfo, error) {
	if err := r.Initialize(ctx); err != nil {
		return nil, err
	}

	filenames, err := r.noteFilenames()
	if err != nil {
		return nil, err
	}

	if len(filenames) == 0 {
		r.config.Logger.Info("no notes found, creating a welcome note", "root", r.layout.Root)
		if err := writeFileAtomic(r.layout.NotePath(TitleFromFilename(WelcomeFilename)), r.config.WelcomeNote, 0644); err != nil {
			return nil, fmt.Errorf("failed to seed welcome note: %w", err)
		}
		filenames = append(filenames, WelcomeFilename)
	}

	if opts.Match != "" {
		filenames, err = matchFilenames(filenames, opts.Match)
		if err != nil {
			return nil, err
		}
	}

	notes := make([]core.NoteInfo, len(filenames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Concurrency)
	for i, name := range filenames {
		g.Go(func() error {
			info, err := r.noteInfo(gctx, name)
			if err != nil {
				return err
			}
			notes[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.recordList()
	return notes, nil
}

// noteFilenames returns note filenames in directory order. os.ReadDir is
// avoided because it sorts.
func (r *Repository) noteFilenames() ([]string, error) {
	dir, err := os.Open(r.layout.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes directory: %w", err)
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsNoteFilename(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func matchFilenames(names []string, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	var out []string
	for _, name := range names {
		if ok, _ := doublestar.Match(pattern, name); ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// noteInfo combines the body's stat data with its sidecar id. A body that
// vanished since the directory was read fails with core.ErrNotFound.
func (r *Repository) noteInfo(ctx context.Context, filename string) (core.NoteInfo, error) {
	stat, err := os.Stat(r.layout.NotePath(TitleFromFilename(filename)))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return core.NoteInfo{}, fmt.Errorf("%w: %s: %w", core.ErrNotFound, filename, err)
		}
		return core.NoteInfo{}, err
	}

	id, err := r.meta.ResolveOrCreateID(ctx, filename)
	if err != nil {
		return core.NoteInfo{}, err
	}

	return core.NoteInfo{
		ID:             id,
		Title:          TitleFromFilename(filename),
		LastEditedTime: stat.ModTime(),
	}, nil
}

// Read returns the verbatim body of the note.
func (r *Repository) Read(ctx context.Context, title string) (string, error) {
	if err := core.ValidateTitle(title); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(r.layout.NotePath(title))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s: %w", core.ErrNotFound, title, err)
		}
		return "", err
	}
	return string(data), nil
}

// Write replaces the body of the note, creating it if absent.
// Concurrent writers to the same title are not coordinated: last writer wins.
func (r *Repository) Write(ctx context.Context, title, content string) error {
	if err := core.ValidateTitle(title); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.config.Logger.Debug("writing note to disk", "title", title, "path", r.layout.NotePath(title))
	if err := writeFileAtomic(r.layout.NotePath(title), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write note %s: %w", title, err)
	}
	return nil
}

// Create writes an empty body and a fresh sidecar. An existing note of the
// same title is truncated and gets a new id; the host's save dialog is
// expected to have confirmed the overwrite.
func (r *Repository) Create(ctx context.Context, title string) (core.NoteInfo, error) {
	if err := core.ValidateTitle(title); err != nil {
		return core.NoteInfo{}, err
	}
	if err := r.Initialize(ctx); err != nil {
		return core.NoteInfo{}, err
	}

	path := r.layout.NotePath(title)
	if err := writeFileAtomic(path, nil, 0644); err != nil {
		return core.NoteInfo{}, fmt.Errorf("failed to create note %s: %w", title, err)
	}

	id, err := r.meta.Mint(ctx, NoteFilename(title))
	if err != nil {
		return core.NoteInfo{}, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return core.NoteInfo{}, err
	}

	return core.NoteInfo{ID: id, Title: title, LastEditedTime: stat.ModTime()}, nil
}

// Delete removes the body and then the sidecar. Missing files are ignored,
// so deleting twice is harmless.
func (r *Repository) Delete(ctx context.Context, title string) error {
	if err := core.ValidateTitle(title); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path := r.layout.NotePath(title)
	r.config.Logger.Debug("deleting note", "title", title, "path", path)

	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("failed to remove note %s: %w", title, err)
	}
	return r.meta.Remove(NoteFilename(title))
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
var _ core.FilteredLister = (*Repository)(nil)
