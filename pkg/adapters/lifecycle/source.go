// Package lifecycle exposes note change events as a lifecycle.Source so a
// host supervising other workers can consume them uniformly.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/brezel/pkg/core"
)

// noteSource forwards watch events from the notes root.
type noteSource struct {
	changes <-chan core.Event
	out     chan lifecycle.Event
}

// NewSource wraps the channel returned by core.Service.Watch.
// core.Event satisfies lifecycle.Event through its String method.
func NewSource(changes <-chan core.Event) lifecycle.Source {
	return &noteSource{
		changes: changes,
		out:     make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards until ctx ends or the watch channel closes, then closes
// Events.
func (s *noteSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			var change core.Event
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.changes:
				if !ok {
					return nil
				}
				change = e
			}

			select {
			case s.out <- change:
			case <-ctx.Done():
				return nil
			}
		}
	})
	return nil
}
