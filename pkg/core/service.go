package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
)

const (
	noteExt          = ".md"
	defaultNoteTitle = "Untitled"
)

// Service is the operation surface offered to the host shell. Create and
// delete go through the host's dialogs before touching the repository.
type Service struct {
	repo    Repository
	dialogs Dialogs
	logger  *slog.Logger

	mu       sync.RWMutex
	lastList int
}

// NewService creates a new Service. A nil logger discards output.
func NewService(repo Repository, dialogs Dialogs, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, dialogs: dialogs, logger: logger}
}

// Root returns the notes root directory.
func (s *Service) Root() string {
	return s.repo.Root()
}

// GetNotes lists every note in the root.
func (s *Service) GetNotes(ctx context.Context) ([]NoteInfo, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastList = len(notes)
	s.mu.Unlock()

	return notes, nil
}

// GetNotesMatching lists the notes whose filename matches pattern.
func (s *Service) GetNotesMatching(ctx context.Context, pattern string) ([]NoteInfo, error) {
	if pattern == "" {
		return s.GetNotes(ctx)
	}
	fl, ok := s.repo.(FilteredLister)
	if !ok {
		return nil, errors.New("repository does not support filtered listing")
	}
	notes, err := fl.ListMatching(ctx, ListOptions{Match: pattern})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastList = len(notes)
	s.mu.Unlock()

	return notes, nil
}

// ReadNote returns the body of the note with the given title.
func (s *Service) ReadNote(ctx context.Context, title string) (string, error) {
	return s.repo.Read(ctx, title)
}

// WriteNote replaces the body of the note with the given title.
func (s *Service) WriteNote(ctx context.Context, title, content string) error {
	s.logger.Info("writing note", "title", title)
	return s.repo.Write(ctx, title, content)
}

// CreateNote asks the host for a target path and creates an empty note there.
// ok is false when the user cancelled or picked a path outside the root;
// neither case is an error.
func (s *Service) CreateNote(ctx context.Context) (title string, ok bool, err error) {
	if s.dialogs == nil {
		return "", false, ErrNoDialogs
	}
	if err := s.repo.Initialize(ctx); err != nil {
		return "", false, err
	}

	root := s.repo.Root()
	path, ok, err := s.dialogs.SaveFile(ctx, SaveFileRequest{
		Title:       "New note",
		DefaultPath: filepath.Join(root, defaultNoteTitle+noteExt),
		ButtonLabel: "Create",
		Filters:     []FileFilter{{Name: "Markdown", Extensions: []string{"md"}}},
	})
	if err != nil {
		return "", false, fmt.Errorf("save dialog failed: %w", err)
	}
	if !ok || strings.TrimSpace(path) == "" {
		s.logger.Info("note creation canceled")
		return "", false, nil
	}

	title, err = PlaceNote(root, path)
	if errors.Is(err, ErrPlacementRejected) {
		s.logger.Warn("note creation rejected", "path", path, "root", root, "error", err)
		msgErr := s.dialogs.ShowMessage(ctx, Message{
			Kind:    MessageError,
			Title:   "Creation failed",
			Message: fmt.Sprintf("All notes must be saved under %s. Avoid using other directories!", root),
		})
		if msgErr != nil {
			return "", false, fmt.Errorf("message dialog failed: %w", msgErr)
		}
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	s.logger.Info("creating note", "path", path)
	info, err := s.repo.Create(ctx, title)
	if err != nil {
		return "", false, err
	}
	return info.Title, true, nil
}

// DeleteNote asks the host for confirmation and removes the note.
// It returns false, without error, when the user declined.
func (s *Service) DeleteNote(ctx context.Context, title string) (bool, error) {
	if s.dialogs == nil {
		return false, ErrNoDialogs
	}

	yes, err := s.dialogs.Confirm(ctx, ConfirmRequest{
		Title:   "Delete note",
		Message: fmt.Sprintf("Are you sure you want to delete %s?", title),
		Confirm: "Delete",
		Cancel:  "Cancel",
	})
	if err != nil {
		return false, fmt.Errorf("confirm dialog failed: %w", err)
	}
	if !yes {
		s.logger.Info("note deletion canceled", "title", title)
		return false, nil
	}

	s.logger.Info("deleting note", "title", title)
	if err := s.repo.Delete(ctx, title); err != nil {
		return false, err
	}
	return true, nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// PlaceNote derives the title for a note created at path. The parent
// directory of path must be exactly root; a missing ".md" suffix is implied.
func PlaceNote(root, path string) (string, error) {
	cleaned := filepath.Clean(path)
	if filepath.Dir(cleaned) != filepath.Clean(root) {
		return "", fmt.Errorf("%w: %s", ErrPlacementRejected, path)
	}

	title := strings.TrimSuffix(filepath.Base(cleaned), noteExt)
	if err := ValidateTitle(title); err != nil {
		return "", fmt.Errorf("%w: %s", ErrPlacementRejected, path)
	}
	return title, nil
}

// ValidateTitle rejects titles that cannot name a file directly inside the
// notes root. The ".md" suffix is always appended, so "." and " " name
// ordinary files; only separators can escape the root.
func ValidateTitle(title string) error {
	switch {
	case title == "":
		return fmt.Errorf("%w: empty", ErrInvalidTitle)
	case strings.ContainsAny(title, `/\`) || strings.ContainsRune(title, 0):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidTitle, title)
	}
	return nil
}
