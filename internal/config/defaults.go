package config

import (
	_ "embed"
)

//go:embed defaults/tetrotime.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			FPS:         30,
			Background:  "#000000",
			Colorscheme: "random",
			Backend:     BackendBubbleTea,
		},
		Animation: AnimationConfig{
			SpawnDelay:    3,
			RemovalMargin: 4,
		},
		Time: TimeConfig{
			ResampleInterval: "5s",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: "30m",
		},
		Source: "default",
	}
}
