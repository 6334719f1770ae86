package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Root           string `json:"root"`
	RepositoryType string `json:"repository_type"`
	Dialogs        bool   `json:"dialogs"`
	LastListSize   int    `json:"last_list_size"`
	Watchable      bool   `json:"watchable"`
	Repository     any    `json:"repository,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType, root := "unknown", ""
	var repoState any
	if s.repo != nil {
		repoType = "repository"
		root = s.repo.Root()
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
		if in, ok := s.repo.(introspection.Introspectable); ok {
			repoState = in.State()
		}
	}
	_, watchable := s.repo.(Watchable)

	return ServiceState{
		Root:           root,
		RepositoryType: repoType,
		Dialogs:        s.dialogs != nil,
		LastListSize:   s.lastList,
		Watchable:      watchable,
		Repository:     repoState,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
