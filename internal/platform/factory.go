package platform

import (
	"fmt"

	"github.com/aretw0/goals/pkg/config"
	"github.com/aretw0/goals/pkg/core"
)

// New assembles a controller from the given options.
//
//	ctrl, err := goals.New(goals.WithIDStrategy("counter"), goals.WithConfirmRemoval(true))
func New(opts ...Option) (*core.Controller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	ids := o.ids
	if ids == nil {
		strategy, _ := o.config["id_strategy"].(string)
		var err error
		ids, err = newIDGenerator(strategy)
		if err != nil {
			return nil, err
		}
	}

	confirm, _ := o.config["confirm_removal"].(bool)
	eventBuffer, _ := o.config["event_buffer"].(int)
	if eventBuffer < 0 {
		return nil, fmt.Errorf("%w: event buffer must not be negative", config.ErrInvalidValue)
	}

	ctrl := core.NewController(core.Config{
		IDs:            ids,
		ConfirmRemoval: confirm,
		EventBuffer:    eventBuffer,
		Logger:         o.logger,
		Goals:          o.goals,
	})

	if o.logger != nil {
		o.logger.Debug("controller ready",
			"id_strategy", ids.Strategy(),
			"confirm_removal", confirm,
			"goals", len(o.goals),
		)
	}
	return ctrl, nil
}

func newIDGenerator(strategy string) (core.IDGenerator, error) {
	switch strategy {
	case "", config.IDStrategyUUID:
		return core.UUIDGenerator{}, nil
	case config.IDStrategyCounter:
		return &core.CounterGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidIDStrategy, strategy)
	}
}
