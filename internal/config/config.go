// Package config provides YAML-based configuration loading for Trails.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MinPlayableDimension is the smallest grid side accepted for play.
const MinPlayableDimension = 9

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// TrailsConfig contains all configuration for the maze game.
type TrailsConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Transition TransitionConfig `yaml:"transition"`
	Sampling   SamplingConfig   `yaml:"sampling"`

	// Source is the file the config was read from, or "embedded"/"default".
	Source string `yaml:"-"`
}

// GridConfig defines the maze size.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	// FitTerminal grows the grid to the largest odd size the terminal can show.
	FitTerminal bool `yaml:"fit_terminal"`
}

// TransitionConfig defines the level-clear pacing in milliseconds.
type TransitionConfig struct {
	AdvanceMS int `yaml:"advance_ms"`
	SettleMS  int `yaml:"settle_ms"`
}

// SamplingConfig bounds the placement loops.
type SamplingConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// AdvanceDelay is the wait before the next level is built.
func (t TransitionConfig) AdvanceDelay() time.Duration {
	return time.Duration(t.AdvanceMS) * time.Millisecond
}

// SettleDelay is the wait before play resumes on the new level.
func (t TransitionConfig) SettleDelay() time.Duration {
	return time.Duration(t.SettleMS) * time.Millisecond
}

// Validate checks the config for values the game cannot run with.
func (c TrailsConfig) Validate() error {
	var errs []error
	if c.Grid.Rows < MinPlayableDimension || c.Grid.Rows%2 == 0 {
		errs = append(errs, fmt.Errorf("grid.rows must be odd and >= %d, got %d", MinPlayableDimension, c.Grid.Rows))
	}
	if c.Grid.Cols < MinPlayableDimension || c.Grid.Cols%2 == 0 {
		errs = append(errs, fmt.Errorf("grid.cols must be odd and >= %d, got %d", MinPlayableDimension, c.Grid.Cols))
	}
	if c.Transition.AdvanceMS < 0 {
		errs = append(errs, fmt.Errorf("transition.advance_ms must not be negative, got %d", c.Transition.AdvanceMS))
	}
	if c.Transition.SettleMS < 0 {
		errs = append(errs, fmt.Errorf("transition.settle_ms must not be negative, got %d", c.Transition.SettleMS))
	}
	if c.Sampling.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("sampling.max_attempts must be positive, got %d", c.Sampling.MaxAttempts))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
