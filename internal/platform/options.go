package platform

import (
	"log/slog"

	"github.com/aretw0/goals/pkg/config"
	"github.com/aretw0/goals/pkg/core"
)

// options holds the internal configuration for the controller.
type options struct {
	logger *slog.Logger
	ids    core.IDGenerator
	goals  []core.Goal
	config map[string]interface{}
}

// Option defines a functional option for configuring the controller.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		config: make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIDGenerator injects a custom id generator.
// It takes precedence over WithIDStrategy.
func WithIDGenerator(gen core.IDGenerator) Option {
	return func(o *options) {
		o.ids = gen
	}
}

// WithIDStrategy selects a built-in id generator by name ("uuid" or "counter").
// Defaults to "uuid".
func WithIDStrategy(name string) Option {
	return func(o *options) {
		o.config["id_strategy"] = name
	}
}

// WithConfirmRemoval makes removals go through RequestRemoval/ConfirmRemoval.
func WithConfirmRemoval(enabled bool) Option {
	return func(o *options) {
		o.config["confirm_removal"] = enabled
	}
}

// WithEventBuffer allows specifying the size of the event broker buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithGoals seeds the list with existing goals (e.g. from a replay fixture).
func WithGoals(goals ...core.Goal) Option {
	return func(o *options) {
		o.goals = append(o.goals, goals...)
	}
}

// WithConfig applies the controller-related settings of a file configuration.
// Options given after it override its values.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.config["id_strategy"] = cfg.IDStrategy
		o.config["confirm_removal"] = cfg.ShouldConfirm()
		o.config["event_buffer"] = cfg.EventBuffer
	}
}
