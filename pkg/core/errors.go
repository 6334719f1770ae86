package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned when a note body is missing, either on read or
	// because it vanished between listing and stat.
	ErrNotFound = errors.New("note not found")

	// ErrCorruptMetadata marks a sidecar that exists but cannot be used.
	// The metadata store logs it and mints a replacement id; it is never
	// returned to callers of the listing.
	ErrCorruptMetadata = errors.New("note metadata is corrupt")

	// ErrPlacementRejected marks a create request targeting a path outside
	// the notes root. The gate reports it to the user and cancels.
	ErrPlacementRejected = errors.New("notes must be created in the notes root")

	// ErrInvalidTitle is returned for titles that are empty or would
	// resolve outside the notes root.
	ErrInvalidTitle = errors.New("invalid note title")
)

// ErrNoDialogs is returned by gated operations when the host supplied no
// dialog collaborator.
var ErrNoDialogs = errors.New("no dialogs configured")
