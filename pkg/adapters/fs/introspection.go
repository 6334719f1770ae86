package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Root          string     `json:"root"`
	MetadataDir   string     `json:"metadata_dir"`
	Concurrency   int        `json:"concurrency"`
	WatcherActive bool       `json:"watcher_active"`
	LastList      *time.Time `json:"last_list,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Root:          r.layout.Root,
		MetadataDir:   r.layout.Metadata,
		Concurrency:   r.config.Concurrency,
		WatcherActive: r.watcherActive,
		LastList:      r.lastList,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository) recordList() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastList = &now
}
