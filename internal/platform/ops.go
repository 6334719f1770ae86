package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/brezel/pkg/adapters/fs"
	"github.com/aretw0/brezel/pkg/core"
)

// Init builds the repository selected by the options and makes sure its
// directories exist.
func Init(opts ...Option) (core.Repository, error) {
	o := parseOptions(opts)

	if o.repository != nil {
		return o.repository, nil
	}

	var repo core.Repository
	var err error

	switch o.adapter {
	case "fs":
		repo, err = initFS(o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(o *options) (core.Repository, error) {
	layout, err := ResolveLayout(o.homeDir)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("using notes root", "root", layout.Root, "metadata", layout.Metadata)

	return fs.NewRepository(fs.Config{
		Layout:      layout,
		Logger:      o.logger,
		WelcomeNote: o.welcomeNote,
		Concurrency: o.concurrency,
	}), nil
}
