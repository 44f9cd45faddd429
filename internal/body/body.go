// Package body defines the asteroid record and loads body sets from
// whitespace-separated text files. Loaded bodies are immutable: the
// simulation reads initial state only and never writes back.
package body

import "sort"

// Body is the initial state of one asteroid. Positions and velocities are
// in world units; velocity is distance per unit simulated time.
type Body struct {
	ID     int
	X, Y   float64
	Radius float64
	VX, VY float64
}

// Set is the loaded collection keyed by body ID.
type Set map[int]Body

// IDs returns all body IDs sorted ascending. The simulation driver relies
// on this ordering for deterministic pair enumeration.
func (s Set) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// MaxRadius returns the largest radius in the set, or 0 if empty.
// Used by the renderer to pad world bounds.
func (s Set) MaxRadius() float64 {
	var max float64
	for _, b := range s {
		if b.Radius > max {
			max = b.Radius
		}
	}
	return max
}
