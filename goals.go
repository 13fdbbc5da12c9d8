package goals

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/goals/internal/platform"
	"github.com/aretw0/goals/pkg/config"
	"github.com/aretw0/goals/pkg/core"
)

// Version exposes the version of the library.
//
//go:embed VERSION
var Version string

// --- Types ---

// Goal is a public alias for the domain entity.
type Goal = core.Goal

// Controller is a public alias for the goal list controller.
type Controller = core.Controller

// Snapshot is a public alias for the render input.
type Snapshot = core.Snapshot

// --- Configuration ---

// Option defines a functional option for configuring the controller.
type Option = platform.Option

// WithLogger sets the logger for the controller.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithIDGenerator injects a custom id generator.
func WithIDGenerator(gen core.IDGenerator) Option {
	return platform.WithIDGenerator(gen)
}

// WithIDStrategy selects a built-in id generator ("uuid" or "counter").
func WithIDStrategy(name string) Option {
	return platform.WithIDStrategy(name)
}

// WithConfirmRemoval requires a confirmation step before removals.
func WithConfirmRemoval(enabled bool) Option {
	return platform.WithConfirmRemoval(enabled)
}

// WithEventBuffer allows specifying the size of the event broker buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithGoals seeds the list.
func WithGoals(goals ...Goal) Option {
	return platform.WithGoals(goals...)
}

// WithConfig applies a file configuration.
func WithConfig(cfg config.Config) Option {
	return platform.WithConfig(cfg)
}

// --- Factory ---

// New creates a new goal list controller.
func New(opts ...Option) (*Controller, error) {
	return platform.New(opts...)
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (config.Config, error) {
	return config.Load(path)
}

// FindConfig looks upwards from startDir for a .goals.yaml or goals.yaml file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}
