package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/beltsim/internal/body"
	"github.com/vovakirdan/beltsim/internal/core"
	"github.com/vovakirdan/beltsim/internal/sim"
)

func TestViewportProjectCorners(t *testing.T) {
	// Two stationary bodies spanning the world; bounds padded by 2*radius=2
	bodies := body.Set{
		1: {ID: 1, X: 0, Y: 0, Radius: 1},
		2: {ID: 2, X: 10, Y: 10, Radius: 1},
	}
	vp := NewViewport(bodies, []float64{0}, 80, 24)

	// World (-2, -2) is the bottom-left corner: screen bottom-left
	x, y := vp.Project(-2, -2)
	if x != 0 || y != 23 {
		t.Errorf("Project(-2, -2) = (%d, %d), expected (0, 23)", x, y)
	}

	// World (12, 12) is the top-right corner: screen top-right
	x, y = vp.Project(12, 12)
	if x != 79 || y != 0 {
		t.Errorf("Project(12, 12) = (%d, %d), expected (79, 0)", x, y)
	}

	// World center projects near screen center
	x, y = vp.Project(5, 5)
	if x < 35 || x > 45 || y < 9 || y > 14 {
		t.Errorf("Project(5, 5) = (%d, %d), expected near center", x, y)
	}
}

func TestViewportProjectClamps(t *testing.T) {
	bodies := body.Set{
		1: {ID: 1, X: 0, Y: 0, Radius: 1},
		2: {ID: 2, X: 10, Y: 10, Radius: 1},
	}
	vp := NewViewport(bodies, []float64{0}, 40, 20)

	x, y := vp.Project(-100, 100)
	if x != 0 || y != 0 {
		t.Errorf("Far out-of-bounds point = (%d, %d), expected clamped (0, 0)", x, y)
	}
}

func TestViewportDegenerate(t *testing.T) {
	// A single stationary body has zero-extent bounds before padding;
	// with padding it still projects to the middle of the screen.
	bodies := body.Set{
		1: {ID: 1, X: 3, Y: 3, Radius: 1},
	}
	vp := NewViewport(bodies, []float64{0}, 21, 21)

	x, y := vp.Project(3, 3)
	if x != 10 || y != 10 {
		t.Errorf("Project(center) = (%d, %d), expected (10, 10)", x, y)
	}

	// No bodies at all: projection falls back to screen center
	empty := NewViewport(body.Set{}, []float64{0}, 20, 10)
	x, y = empty.Project(0, 0)
	if x != 10 || y != 5 {
		t.Errorf("Empty viewport Project = (%d, %d), expected (10, 5)", x, y)
	}
}

func TestViewportBoundsCoverMotion(t *testing.T) {
	// A body moving right must stay inside the projection at every sample
	bodies := body.Set{
		1: {ID: 1, X: 0, Y: 0, Radius: 1, VX: 5},
	}
	times := sim.SampleTimes(10, 1)
	vp := NewViewport(bodies, times, 60, 20)

	for _, ts := range times {
		wx, wy := sim.PositionAt(bodies[1], ts)
		x, y := vp.Project(wx, wy)
		if x < 0 || x >= 60 || y < 0 || y >= 20 {
			t.Errorf("Body at t=%v projects off-screen: (%d, %d)", ts, x, y)
		}
	}
}

func TestViewportRadiusCells(t *testing.T) {
	bodies := body.Set{
		1: {ID: 1, X: 0, Y: 0, Radius: 1},
		2: {ID: 2, X: 20, Y: 0, Radius: 1},
	}
	vp := NewViewport(bodies, []float64{0}, 49, 20)

	// World width is 24 (span 20 + 2*2 padding); 48 usable cells over 24
	// units is 2 cells per unit.
	rx, ry := vp.RadiusCells(2)
	if rx != 4 {
		t.Errorf("RadiusCells(2) rx = %d, expected 4", rx)
	}
	if ry != 2 {
		t.Errorf("RadiusCells(2) ry = %d, expected 2 (half of rx)", ry)
	}

	// Tiny radii never vanish
	rx, ry = vp.RadiusCells(0.01)
	if rx < 1 || ry < 1 {
		t.Errorf("RadiusCells(0.01) = (%d, %d), expected at least (1, 1)", rx, ry)
	}
}

func TestGenerateStarsDeterministic(t *testing.T) {
	a := generateStars(50, 80, 24, 42)
	b := generateStars(50, 80, 24, 42)

	if !reflect.DeepEqual(a, b) {
		t.Error("Star field should be deterministic for a fixed seed")
	}
	if len(a) != 50 {
		t.Errorf("Expected 50 stars, got %d", len(a))
	}
	for i, st := range a {
		if st.x < 0 || st.x >= 80 || st.y < 0 || st.y >= 24 {
			t.Errorf("Star %d out of bounds: (%d, %d)", i, st.x, st.y)
		}
	}
}

func TestDrawFrameHighlightsCollisions(t *testing.T) {
	bodies := body.Set{
		1: {ID: 1, X: 0, Y: 0, Radius: 1},
		2: {ID: 2, X: 1, Y: 0, Radius: 1},
		3: {ID: 3, X: 20, Y: 0, Radius: 1},
	}
	times := []float64{0}
	vp := NewViewport(bodies, times, 80, 24)
	screen := core.NewScreen(80, 24)

	events := []sim.Event{{Time: 0, IDLow: 1, IDHigh: 2}}
	drawFrame(screen, vp, bodies, 0, events, nil)

	out := screen.String()
	if !strings.Contains(out, "! COLLISION DETECTED !") {
		t.Error("Frame missing collision banner")
	}
	if !strings.Contains(out, "Asteroids 1 and 2") {
		t.Error("Frame missing colliding pair line")
	}
	if !strings.Contains(out, "Time: 0.0s") {
		t.Error("Frame missing time in title")
	}

	// A colliding body renders bright red somewhere on screen
	foundRed := false
	for y := 0; y < 24 && !foundRed; y++ {
		for x := 0; x < 80; x++ {
			if c := screen.GetCell(x, y); c.Rune == '●' && c.Color == core.ColorBrightRed {
				foundRed = true
				break
			}
		}
	}
	if !foundRed {
		t.Error("No highlighted body cell found")
	}
}

func TestDrawFrameNoCollisions(t *testing.T) {
	bodies := body.Set{
		1: {ID: 1, X: 0, Y: 0, Radius: 1},
		2: {ID: 2, X: 20, Y: 0, Radius: 1},
	}
	vp := NewViewport(bodies, []float64{0}, 80, 24)
	screen := core.NewScreen(80, 24)

	drawFrame(screen, vp, bodies, 0, nil, nil)

	if strings.Contains(screen.String(), "COLLISION DETECTED") {
		t.Error("Banner should not appear without collisions")
	}
}
