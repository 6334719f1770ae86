package platform

import (
	"log/slog"

	"github.com/aretw0/brezel/pkg/core"
)

// options holds the internal configuration for the brezel service.
type options struct {
	repository  core.Repository
	dialogs     core.Dialogs
	logger      *slog.Logger
	adapter     string
	homeDir     string
	welcomeNote []byte
	concurrency int
}

// Option defines a functional option for configuring brezel.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
	}
}

func parseOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// WithLogger sets the logger for the service and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDialogs sets the host collaborator used by create and delete.
func WithDialogs(d core.Dialogs) Option {
	return func(o *options) {
		o.dialogs = d
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the storage adapter to use by name (e.g. "fs").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithHomeDir replaces the user's home directory when deriving the notes
// root. Meant for tests and sandboxes; the folder names below it are fixed.
func WithHomeDir(home string) Option {
	return func(o *options) {
		o.homeDir = home
	}
}

// WithWelcomeNote replaces the template seeded into an empty notes root.
func WithWelcomeNote(content []byte) Option {
	return func(o *options) {
		o.welcomeNote = content
	}
}

// WithConcurrency bounds parallel sidecar resolution during listings.
// Zero means the adapter default.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}
