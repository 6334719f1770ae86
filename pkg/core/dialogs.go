package core

import "context"

// FileFilter restricts the files offered by a save dialog.
type FileFilter struct {
	Name       string
	Extensions []string
}

// SaveFileRequest describes a save-file interaction.
type SaveFileRequest struct {
	Title       string
	DefaultPath string
	ButtonLabel string
	Filters     []FileFilter
}

// ConfirmRequest describes a yes/no interaction.
type ConfirmRequest struct {
	Title   string
	Message string
	Confirm string // label of the affirmative button
	Cancel  string // label of the negative button, also the default
}

// MessageKind classifies a user-visible message.
type MessageKind string

const (
	MessageInfo    MessageKind = "info"
	MessageWarning MessageKind = "warning"
	MessageError   MessageKind = "error"
)

// Message is a notification shown to the user.
type Message struct {
	Kind    MessageKind
	Title   string
	Message string
}

// Dialogs is supplied by the host shell. The core never talks to the user
// except through it.
type Dialogs interface {
	// SaveFile asks for a target path. ok is false when the user cancelled.
	SaveFile(ctx context.Context, req SaveFileRequest) (path string, ok bool, err error)

	// Confirm asks a yes/no question. Cancel counts as no.
	Confirm(ctx context.Context, req ConfirmRequest) (bool, error)

	// ShowMessage displays a notification.
	ShowMessage(ctx context.Context, msg Message) error
}
