package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TempFilePrefix marks staging files in the notes root and metadata
// directory. Scanner and watcher skip them.
const TempFilePrefix = ".brezel-tmp-"

// writeFileAtomic replaces filename with data. The bytes are staged in a
// sibling file and renamed over the target once flushed, so a note or
// sidecar is either the old version or the new one.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	stage, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", filepath.Base(filename), err)
	}
	staged := stage.Name()

	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(staged)
		}
	}()

	if err := stage.Chmod(perm); err != nil {
		return errors.Join(fmt.Errorf("failed to set mode on staged file: %w", err), stage.Close())
	}
	if _, err := stage.Write(data); err != nil {
		return errors.Join(fmt.Errorf("failed to write staged file: %w", err), stage.Close())
	}
	if err := stage.Sync(); err != nil {
		return errors.Join(fmt.Errorf("failed to flush staged file: %w", err), stage.Close())
	}
	if err := stage.Close(); err != nil {
		return fmt.Errorf("failed to close staged file: %w", err)
	}

	if err := os.Rename(staged, filename); err != nil {
		return fmt.Errorf("failed to move staged file to %s: %w", filename, err)
	}
	committed = true
	return nil
}

func isTempFile(name string) bool {
	return strings.HasPrefix(filepath.Base(name), TempFilePrefix)
}
