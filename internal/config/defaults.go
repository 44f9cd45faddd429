package config

import (
	_ "embed"
)

//go:embed defaults/beltsim.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration, matching the embedded
// defaults file.
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			Duration:  10.0,
			TimeStep:  0.1,
			StrictIDs: false,
		},
		Output: OutputConfig{
			Report: "collisions.txt",
		},
		Playback: PlaybackConfig{
			FPS:   10,
			Stars: 300,
		},
	}
}
