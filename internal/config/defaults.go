package config

import (
	_ "embed"
)

//go:embed defaults/trails.yaml
var defaultTrailsYAML []byte

// DefaultTrailsConfig returns the default maze configuration.
func DefaultTrailsConfig() TrailsConfig {
	return TrailsConfig{
		Grid: GridConfig{
			Rows:        21,
			Cols:        21,
			FitTerminal: false,
		},
		Transition: TransitionConfig{
			AdvanceMS: 1500,
			SettleMS:  1000,
		},
		Sampling: SamplingConfig{
			MaxAttempts: 10000,
		},
		Source: "default",
	}
}
