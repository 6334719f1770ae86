package platform

import (
	"fmt"
	"os"

	"github.com/aretw0/brezel/pkg/adapters/fs"
)

// ResolveLayout derives the notes layout from the user's home directory,
// or from home when it is not empty.
func ResolveLayout(home string) (fs.Layout, error) {
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return fs.Layout{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		home = h
	}
	return fs.NewLayout(home), nil
}
