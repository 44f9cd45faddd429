// Package sim implements the collision simulation engine: straight-line
// kinematics, the pairwise overlap test, and the sampled simulation driver.
// It has no external dependencies so the engine stays pure and testable
// without a terminal attached.
package sim

import "github.com/vovakirdan/beltsim/internal/body"

// State is the instantaneous state of one body at a sampled time.
// States are ephemeral values recomputed per sample, never stored.
type State struct {
	ID     int
	X, Y   float64
	Radius float64
}

// PositionAt returns the body's position at elapsed time t.
// Always derived from the initial state, never accumulated step to step,
// so there is no floating-point drift across samples.
func PositionAt(b body.Body, t float64) (x, y float64) {
	return b.X + b.VX*t, b.Y + b.VY*t
}

// At returns the body's full instantaneous state at elapsed time t.
func At(b body.Body, t float64) State {
	x, y := PositionAt(b, t)
	return State{ID: b.ID, X: x, Y: y, Radius: b.Radius}
}
