package sim

import "math"

// Overlaps reports whether two instantaneous states overlap: the Euclidean
// distance between centers is strictly less than the sum of radii.
// Exactly-touching bodies do not overlap. No epsilon is applied.
func Overlaps(a, b State) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) < a.Radius+b.Radius
}
