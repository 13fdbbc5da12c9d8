package core

import (
	"github.com/aretw0/introspection"
)

// ControllerState exposes internal state for observability.
type ControllerState struct {
	Goals           int    `json:"goals"`
	Completed       int    `json:"completed"`
	AddMode         bool   `json:"add_mode"`
	PendingRemovals int    `json:"pending_removals"`
	Subscribers     int    `json:"subscribers"`
	DroppedEvents   int    `json:"dropped_events"`
	IDStrategy      string `json:"id_strategy"`
	ConfirmRemoval  bool   `json:"confirm_removal"`
}

// State implements introspection.Introspectable.
func (c *Controller) State() any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total, completed := c.goals.Counts()
	subs, dropped := c.events.stats()

	return ControllerState{
		Goals:           total,
		Completed:       completed,
		AddMode:         c.form.IsOpen(),
		PendingRemovals: len(c.pending),
		Subscribers:     subs,
		DroppedEvents:   dropped,
		IDStrategy:      c.ids.Strategy(),
		ConfirmRemoval:  c.confirm,
	}
}

// ComponentType implements introspection.Component.
func (c *Controller) ComponentType() string {
	return "controller"
}

var _ introspection.Introspectable = (*Controller)(nil)
var _ introspection.Component = (*Controller)(nil)
