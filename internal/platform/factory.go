package platform

import (
	"github.com/aretw0/brezel/pkg/core"
)

// New wires the repository and the host dialogs into a core.Service.
//
//	svc, err := brezel.New(brezel.WithDialogs(host), brezel.WithLogger(logger))
func New(opts ...Option) (*core.Service, error) {
	repo, err := Init(opts...)
	if err != nil {
		return nil, err
	}

	o := parseOptions(opts)
	return core.NewService(repo, o.dialogs, o.logger), nil
}
