// Package config provides YAML-based configuration loading for the
// simulator: time horizon, sampling step, loader strictness, and playback
// presentation knobs.
package config

// Config is the root configuration document.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Playback   PlaybackConfig   `yaml:"playback"`
}

// SimulationConfig controls the simulation engine inputs.
type SimulationConfig struct {
	Duration  float64 `yaml:"duration"`   // Simulated time horizon
	TimeStep  float64 `yaml:"time_step"`  // Sampling interval
	StrictIDs bool    `yaml:"strict_ids"` // Reject duplicate body IDs at load
}

// OutputConfig controls report writing.
type OutputConfig struct {
	Report string `yaml:"report"` // Report file path
}

// PlaybackConfig controls the terminal replay.
type PlaybackConfig struct {
	FPS   int `yaml:"fps"`   // Frames per second
	Stars int `yaml:"stars"` // Number of background stars (cosmetic)
}
