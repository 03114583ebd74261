package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTrails loads the maze configuration and validates it.
// Search order: customPath -> ~/.trails/configs/trails.yaml -> ./configs/trails.yaml -> embedded default
//
// Keys missing from a file keep their default values.
func LoadTrails(customPath string) (TrailsConfig, error) {
	cfg, err := loadTrails(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", cfg.Source, err)
	}
	return cfg, nil
}

func loadTrails(customPath string) (TrailsConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultTrailsConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("trails.yaml"), filepath.Join("configs", "trails.yaml")} {
		if path == "" {
			continue
		}
		if cfg, ok := readTrails(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultTrailsConfig()
	if err := yaml.Unmarshal(defaultTrailsYAML, &cfg); err != nil {
		return DefaultTrailsConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// readTrails reads an optional config file. Missing or unparsable files are skipped.
func readTrails(path string) (TrailsConfig, bool) {
	cfg := DefaultTrailsConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	cfg.Source = path
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trails", "configs", filename)
}

// FitGrid returns the largest odd rows x cols grid that fits a terminal of
// the given size when each cell takes cellW columns and chromeH rows are
// reserved. The result is never below MinPlayableDimension.
func FitGrid(termW, termH, cellW, chromeH int) (rows, cols int) {
	rows = largestOdd(termH - chromeH)
	cols = largestOdd(termW / max(cellW, 1))
	return max(rows, MinPlayableDimension), max(cols, MinPlayableDimension)
}

func largestOdd(n int) int {
	if n%2 == 0 {
		n--
	}
	return n
}
