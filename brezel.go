package brezel

import (
	"log/slog"

	"github.com/aretw0/brezel/internal/platform"
	"github.com/aretw0/brezel/pkg/core"
)

// Version is the released version of the module.
const Version = "0.1.0"

// --- Types ---

// NoteInfo is a public alias for the listed note metadata.
type NoteInfo = core.NoteInfo

// Dialogs is a public alias for the host collaborator interface.
type Dialogs = core.Dialogs

// --- Configuration ---

// Option defines a functional option for configuring brezel.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithDialogs sets the save/confirm/message collaborator.
func WithDialogs(d core.Dialogs) Option {
	return platform.WithDialogs(d)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithHomeDir overrides the home directory the notes root is derived from.
func WithHomeDir(home string) Option {
	return platform.WithHomeDir(home)
}

// WithWelcomeNote replaces the template seeded into an empty notes root.
func WithWelcomeNote(content []byte) Option {
	return platform.WithWelcomeNote(content)
}

// WithConcurrency bounds parallel metadata resolution during listings.
func WithConcurrency(n int) Option {
	return platform.WithConcurrency(n)
}

// --- Factory ---

// New creates a new brezel Service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// Init initializes the notes repository explicitly.
func Init(opts ...Option) (core.Repository, error) {
	return platform.Init(opts...)
}
