package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Notes are addressed by title; the repository owns identifier assignment.
type Repository interface {
	// Initialize ensures the notes root and metadata directories exist.
	Initialize(ctx context.Context) error

	// Root returns the directory every note body must live in.
	Root() string

	// List returns one NoteInfo per note body, in enumeration order.
	List(ctx context.Context) ([]NoteInfo, error)

	// Read returns the verbatim body of a note.
	Read(ctx context.Context, title string) (string, error)

	// Write replaces (or creates) the body of a note.
	Write(ctx context.Context, title, content string) error

	// Create makes an empty note with a freshly minted identifier.
	Create(ctx context.Context, title string) (NoteInfo, error)

	// Delete removes a note body and its metadata. Missing files are not an error.
	Delete(ctx context.Context, title string) error
}

// Watchable defines an interface for repositories that can report changes
// made outside the process (e.g. by an external editor).
type Watchable interface {
	// Watch emits events for note bodies whose filename matches pattern
	// (empty matches every note). The channel closes when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// ListOptions narrows a listing.
type ListOptions struct {
	// Match is a glob matched against note filenames (e.g. "2024-*.md").
	// Empty matches everything.
	Match string
}

// FilteredLister is implemented by repositories that can narrow a listing.
type FilteredLister interface {
	ListMatching(ctx context.Context, opts ListOptions) ([]NoteInfo, error)
}
