package core

// RuntimeConfig is passed to the playback layer at startup. It carries the
// terminal geometry and presentation knobs; nothing here reaches the
// simulation engine, which is a pure function of its own inputs.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Playback frames per second
	Stars   int   // Number of background stars (cosmetic)
	Seed    int64 // RNG seed for the cosmetic star field (0 = time-based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     10,
		Stars:   300,
		Seed:    0,
	}
}
