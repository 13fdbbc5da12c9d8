// Package config loads the presentation and controller policy of the goal
// list from YAML, and can watch the file for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Variant selects the visual flavor of the view layer.
type Variant string

const (
	VariantPlain  Variant = "plain"
	VariantStyled Variant = "styled"
)

const (
	IDStrategyUUID    = "uuid"
	IDStrategyCounter = "counter"
)

var (
	ErrInvalidVariant    = errors.New("invalid variant")
	ErrInvalidIDStrategy = errors.New("invalid id strategy")
	ErrInvalidValue      = errors.New("invalid value")
)

// Config is the file-level configuration. Zero values fall back to Default.
type Config struct {
	Variant Variant `yaml:"variant"`
	// ConfirmRemoval overrides the variant default (plain: false, styled: true).
	ConfirmRemoval *bool         `yaml:"confirm_removal,omitempty"`
	IDStrategy     string        `yaml:"id_strategy"`
	EventBuffer    int           `yaml:"event_buffer"`
	FadeIn         time.Duration `yaml:"fade_in"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Variant:     VariantStyled,
		IDStrategy:  IDStrategyUUID,
		EventBuffer: 100,
		FadeIn:      600 * time.Millisecond,
	}
}

// Load reads and validates a YAML file on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	switch c.Variant {
	case VariantPlain, VariantStyled:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidVariant, c.Variant)
	}
	switch c.IDStrategy {
	case IDStrategyUUID, IDStrategyCounter:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidIDStrategy, c.IDStrategy)
	}
	if c.EventBuffer < 0 {
		return fmt.Errorf("%w: event_buffer must not be negative", ErrInvalidValue)
	}
	if c.FadeIn < 0 {
		return fmt.Errorf("%w: fade_in must not be negative", ErrInvalidValue)
	}
	return nil
}

// ShouldConfirm reports whether removals go through a confirmation step.
func (c Config) ShouldConfirm() bool {
	if c.ConfirmRemoval != nil {
		return *c.ConfirmRemoval
	}
	return c.Variant == VariantStyled
}
