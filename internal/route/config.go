// Package route describes a chain of translated points and the segments drawn
// between them. Routes are loaded from JSON so the demo can be re-run on other data.
package route

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the starting point and the translation steps of a route
type Config struct {
	Start Coords `json:"start"`
	Steps []Step `json:"steps"`
}

// Coords is the JSON form of a point
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Step is one translation, applied to the previous point of the chain
type Step struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// DefaultConfig returns the classic demo route: six points, three segments
func DefaultConfig() *Config {
	return &Config{
		Start: Coords{X: 0, Y: 0},
		Steps: []Step{
			{DX: 3, DY: 4},
			{DX: 6, DY: 8},
			{DX: 9, DY: 12},
			{DX: 11, DY: 16},
			{DX: 14, DY: 20},
		},
	}
}

// LoadConfig loads a route from a JSON file. An empty path yields the defaults;
// a path that cannot be read is an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse route config: %w", err)
	}

	return config, nil
}
