package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/multilan/pkg/core"
)

type reloadSource struct {
	events <-chan core.ReloadEvent
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits catalog reload events.
// It bridges the typed reload channel to the generic lifecycle Event interface.
func NewSource(events <-chan core.ReloadEvent) lifecycle.Source {
	return &reloadSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *reloadSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *reloadSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.ReloadEvent implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
