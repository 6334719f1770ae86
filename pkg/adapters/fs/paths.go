package fs

import (
	"path/filepath"
	"strings"
)

const (
	// AppDirName is the folder under the user's home holding every note.
	AppDirName = "BrezelNotes"
	// MetadataDirName is the sidecar folder inside the notes root.
	MetadataDirName = ".metadata"
	// NoteExt is the extension of note bodies.
	NoteExt = ".md"
	// SidecarExt is appended to a note's filename to name its sidecar.
	SidecarExt = ".json"
	// WelcomeFilename is seeded whenever the root holds no notes.
	WelcomeFilename = "Welcome.md"
)

// RootDir returns the notes root for the given home directory.
func RootDir(home string) string {
	return filepath.Join(home, AppDirName)
}

// MetadataDir returns the sidecar directory for the given notes root.
func MetadataDir(root string) string {
	return filepath.Join(root, MetadataDirName)
}

// Layout is the on-disk arrangement of a notes root:
//
//	<home>/BrezelNotes/
//	  <title>.md
//	  .metadata/
//	    <title>.md.json
type Layout struct {
	Root     string
	Metadata string
}

// NewLayout derives the layout from a home directory.
func NewLayout(home string) Layout {
	root := RootDir(home)
	return Layout{Root: root, Metadata: MetadataDir(root)}
}

// NotePath returns the body path for a title.
func (l Layout) NotePath(title string) string {
	return filepath.Join(l.Root, NoteFilename(title))
}

// SidecarPath returns the sidecar path for a note filename (e.g. "a.md").
func (l Layout) SidecarPath(filename string) string {
	return filepath.Join(l.Metadata, filename+SidecarExt)
}

// NoteFilename returns the body filename for a title.
func NoteFilename(title string) string {
	return title + NoteExt
}

// TitleFromFilename strips the note extension.
func TitleFromFilename(filename string) string {
	return strings.TrimSuffix(filename, NoteExt)
}

// IsNoteFilename reports whether name is a note body filename.
func IsNoteFilename(name string) bool {
	return strings.HasSuffix(name, NoteExt) && name != NoteExt
}
