package lifecycle

import (
	"context"
	"errors"
	"sync"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/goals/pkg/core"
)

// ErrAlreadyStarted is returned by Start on a source that was started before.
// The output channel has a single forwarder and is closed once.
var ErrAlreadyStarted = errors.New("source already started")

type controllerSource struct {
	ctrl *core.Controller
	out  chan lifecycle.Event

	mu      sync.Mutex
	started bool
}

// NewSource creates a lifecycle.Source that emits controller change events.
// The subscription is opened on Start and ends with its context. A source
// can be started only once.
func NewSource(ctrl *core.Controller) lifecycle.Source {
	return &controllerSource{
		ctrl: ctrl,
		out:  make(chan lifecycle.Event),
	}
}

func (s *controllerSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *controllerSource) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}

	events, err := s.ctrl.Subscribe(ctx)
	if err != nil {
		return err
	}
	s.started = true

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event through String().
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
