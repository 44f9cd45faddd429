// Package core provides fundamental types for the playback layer: the
// colored screen buffer, world-space bounds, and small numeric helpers.
// It contains no external dependencies (especially no Bubble Tea) so the
// rendering math stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Bounds is an axis-aligned box in world coordinates. The zero value is
// empty; extend it with Include before use.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
	set        bool
}

// EmptyBounds returns bounds that contain nothing.
func EmptyBounds() Bounds {
	return Bounds{}
}

// Include extends the bounds to contain the point (x, y).
func (b Bounds) Include(x, y float64) Bounds {
	if !b.set {
		return Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y, set: true}
	}
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
	return b
}

// Pad expands the bounds by margin on every side.
func (b Bounds) Pad(margin float64) Bounds {
	if !b.set {
		return b
	}
	b.MinX -= margin
	b.MinY -= margin
	b.MaxX += margin
	b.MaxY += margin
	return b
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	if !b.set {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	if !b.set {
		return 0
	}
	return b.MaxY - b.MinY
}

// IsEmpty reports whether the bounds contain no points.
func (b Bounds) IsEmpty() bool {
	return !b.set
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
