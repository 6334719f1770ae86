// Package state holds the view-facing application state: the cached note
// list and the current selection.
//
// The store is the only cache of NoteInfo values. Every command awaits the
// corresponding core operation first and only then replaces the affected
// slice of state, so a failed operation leaves the state untouched.
package state

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/brezel/pkg/core"
)

// ErrNoSelection is returned by commands that need a selected note.
var ErrNoSelection = errors.New("no note selected")

// NoSelection is the Selected value when nothing is selected.
const NoSelection = -1

// Notes is the subset of core.Service the store drives.
type Notes interface {
	GetNotes(ctx context.Context) ([]core.NoteInfo, error)
	ReadNote(ctx context.Context, title string) (string, error)
	WriteNote(ctx context.Context, title, content string) error
	CreateNote(ctx context.Context) (string, bool, error)
	DeleteNote(ctx context.Context, title string) (bool, error)
}

// State is an immutable snapshot.
type State struct {
	Notes    []core.NoteInfo
	Selected int
}

// SelectedNote is the selected entry together with its body.
type SelectedNote struct {
	core.NoteInfo
	Content string
}

// Store serializes state updates. No lock is held while a core operation
// runs.
type Store struct {
	notes Notes
	now   func() time.Time

	mu    sync.RWMutex
	state State
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for optimistic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(notes Notes, opts ...Option) *Store {
	s := &Store{
		notes: notes,
		now:   time.Now,
		state: State{Selected: NoSelection},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Notes: slices.Clone(s.state.Notes), Selected: s.state.Selected}
}

// Load replaces the note list with a fresh listing, most recently edited
// first, and clears the selection.
func (s *Store) Load(ctx context.Context) (State, error) {
	notes, err := s.notes.GetNotes(ctx)
	if err != nil {
		return State{}, err
	}
	sortByRecency(notes)

	s.mu.Lock()
	s.state = State{Notes: notes, Selected: NoSelection}
	s.mu.Unlock()

	return s.Snapshot(), nil
}

// Select marks the note at index as selected and returns it with its body.
func (s *Store) Select(ctx context.Context, index int) (SelectedNote, error) {
	s.mu.RLock()
	if index < 0 || index >= len(s.state.Notes) {
		s.mu.RUnlock()
		return SelectedNote{}, ErrNoSelection
	}
	info := s.state.Notes[index]
	s.mu.RUnlock()

	content, err := s.notes.ReadNote(ctx, info.Title)
	if err != nil {
		return SelectedNote{}, err
	}

	s.mu.Lock()
	if i := s.indexOf(info); i >= 0 {
		s.state.Selected = i
	}
	s.mu.Unlock()

	return SelectedNote{NoteInfo: info, Content: content}, nil
}

// Selected returns the selected entry without its body.
func (s *Store) Selected() (core.NoteInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected()
}

// Save writes content to the selected note and bumps its cached
// LastEditedTime without re-listing.
func (s *Store) Save(ctx context.Context, content string) error {
	info, ok := s.Selected()
	if !ok {
		return ErrNoSelection
	}

	if err := s.notes.WriteNote(ctx, info.Title, content); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	notes := slices.Clone(s.state.Notes)
	for i := range notes {
		if notes[i].ID == info.ID || notes[i].Title == info.Title {
			notes[i].LastEditedTime = s.now()
		}
	}
	s.state.Notes = notes
	return nil
}

// Create runs the gated create flow. On success the new note is placed
// first and selected; ok is false when the user cancelled.
func (s *Store) Create(ctx context.Context) (core.NoteInfo, bool, error) {
	title, ok, err := s.notes.CreateNote(ctx)
	if err != nil || !ok {
		return core.NoteInfo{}, false, err
	}

	// The id is minted by the repository; listing reads it back.
	listed, err := s.notes.GetNotes(ctx)
	if err != nil {
		return core.NoteInfo{}, false, err
	}
	created := core.NoteInfo{Title: title, LastEditedTime: s.now()}
	for _, n := range listed {
		if n.Title == title {
			created.ID = n.ID
			break
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	notes := []core.NoteInfo{created}
	for _, n := range s.state.Notes {
		if n.Title != title {
			notes = append(notes, n)
		}
	}
	s.state = State{Notes: notes, Selected: 0}
	return created, true, nil
}

// Delete runs the gated delete flow on the selected note. On confirmation
// the note leaves the list and the selection is cleared.
func (s *Store) Delete(ctx context.Context) (bool, error) {
	info, ok := s.Selected()
	if !ok {
		return false, ErrNoSelection
	}

	deleted, err := s.notes.DeleteNote(ctx, info.Title)
	if err != nil || !deleted {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	notes := make([]core.NoteInfo, 0, len(s.state.Notes))
	for _, n := range s.state.Notes {
		if n.ID != info.ID {
			notes = append(notes, n)
		}
	}
	s.state = State{Notes: notes, Selected: NoSelection}
	return true, nil
}

func (s *Store) selected() (core.NoteInfo, bool) {
	i := s.state.Selected
	if i < 0 || i >= len(s.state.Notes) {
		return core.NoteInfo{}, false
	}
	return s.state.Notes[i], true
}

// indexOf finds info again after the lock was released.
func (s *Store) indexOf(info core.NoteInfo) int {
	return slices.IndexFunc(s.state.Notes, func(n core.NoteInfo) bool {
		return n.ID == info.ID && n.Title == info.Title
	})
}

func sortByRecency(notes []core.NoteInfo) {
	slices.SortStableFunc(notes, func(a, b core.NoteInfo) int {
		return b.LastEditedTime.Compare(a.LastEditedTime)
	})
}
