package tui

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/beltsim/internal/body"
	"github.com/vovakirdan/beltsim/internal/core"
	"github.com/vovakirdan/beltsim/internal/sim"
)

// Viewport maps world coordinates onto the screen cell grid. Bounds are
// fixed for the whole replay: computed over every body at every sample so
// no body ever leaves the frame.
type Viewport struct {
	bounds core.Bounds
	width  int // drawable width in cells
	height int // drawable height in cells
}

// NewViewport computes the replay viewport for the given bodies and sampled
// times. Bounds are padded by twice the largest radius.
func NewViewport(bodies body.Set, times []float64, width, height int) Viewport {
	bounds := core.EmptyBounds()
	for _, t := range times {
		for _, b := range bodies {
			x, y := sim.PositionAt(b, t)
			bounds = bounds.Include(x, y)
		}
	}
	bounds = bounds.Pad(bodies.MaxRadius() * 2)

	return Viewport{
		bounds: bounds,
		width:  core.Max(width, 1),
		height: core.Max(height, 1),
	}
}

// Project converts a world position to a screen cell. The world Y axis
// points up; the screen Y axis points down.
func (v Viewport) Project(wx, wy float64) (int, int) {
	if v.bounds.IsEmpty() {
		return v.width / 2, v.height / 2
	}

	var fx, fy float64
	if w := v.bounds.Width(); w > 0 {
		fx = (wx - v.bounds.MinX) / w
	} else {
		fx = 0.5
	}
	if h := v.bounds.Height(); h > 0 {
		fy = (v.bounds.MaxY - wy) / h
	} else {
		fy = 0.5
	}

	x := int(fx * float64(v.width-1))
	y := int(fy * float64(v.height-1))
	return core.Clamp(x, 0, v.width-1), core.Clamp(y, 0, v.height-1)
}

// RadiusCells converts a world radius to cell radii per axis. Terminal
// cells are about twice as tall as wide, so the vertical radius is halved
// to keep circles visually round.
func (v Viewport) RadiusCells(r float64) (rx, ry int) {
	if v.bounds.IsEmpty() || v.bounds.Width() <= 0 {
		return 1, 1
	}
	cellsPerUnit := float64(v.width-1) / v.bounds.Width()
	rx = core.Max(int(r*cellsPerUnit), 1)
	ry = core.Max(int(r*cellsPerUnit/2), 1)
	return rx, ry
}

// star is one cosmetic background star. Stars never influence detection;
// they are generated from the presentation seed only.
type star struct {
	x, y  int
	r     rune
	color core.Color
}

var starRunes = []rune{'·', '.', '+', '*'}

var starColors = []core.Color{core.ColorWhite, core.ColorGray, core.ColorCyan, core.ColorYellow}

// generateStars scatters n stars across the screen using the given seed.
func generateStars(n, width, height int, seed int64) []star {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, 0, n)
	for i := 0; i < n; i++ {
		stars = append(stars, star{
			x:     rng.Intn(core.Max(width, 1)),
			y:     rng.Intn(core.Max(height, 1)),
			r:     starRunes[rng.Intn(len(starRunes))],
			color: starColors[rng.Intn(len(starColors))],
		})
	}
	return stars
}

// drawFrame renders one playback frame: star field, every body at time t,
// collision highlights, and the banner listing the colliding pairs.
func drawFrame(s *core.Screen, vp Viewport, bodies body.Set, t float64, events []sim.Event, stars []star) {
	s.Clear()

	for _, st := range stars {
		s.Set(st.x, st.y, st.r, st.color)
	}

	colliding := sim.CollidingIDs(events)

	for _, id := range bodies.IDs() {
		b := bodies[id]
		wx, wy := sim.PositionAt(b, t)
		cx, cy := vp.Project(wx, wy)
		rx, ry := vp.RadiusCells(b.Radius)

		if colliding[id] {
			// Glow ring around colliding bodies
			s.FillCircle(cx, cy, rx+1, ry+1, '░', core.ColorOrange)
			s.FillCircle(cx, cy, rx, ry, '●', core.ColorBrightRed)
		} else {
			s.FillCircle(cx, cy, rx, ry, '●', core.ColorGray)
		}

		s.DrawText(cx, cy, fmt.Sprintf("%d", id), core.ColorBrightWhite)
	}

	s.DrawTextCentered(0, fmt.Sprintf("Asteroid Belt Collision Simulation - Time: %.1fs", t), core.ColorBrightWhite)

	if len(events) > 0 {
		s.DrawText(1, 1, "! COLLISION DETECTED !", core.ColorBrightRed)
		for i, e := range events {
			s.DrawText(1, 2+i, fmt.Sprintf("Asteroids %d and %d", e.IDLow, e.IDHigh), core.ColorBrightYellow)
		}
	}
}
