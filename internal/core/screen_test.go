package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("Screen size = %dx%d, expected 10x5", s.Width(), s.Height())
	}

	// Freshly created screen is blank
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Cell (%d, %d) = %+v, expected blank default", x, y, cell)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '●', ColorRed)

	cell := s.GetCell(3, 2)
	if cell.Rune != '●' || cell.Color != ColorRed {
		t.Errorf("GetCell(3, 2) = %+v, expected red ●", cell)
	}

	// Out of bounds writes are silently ignored
	s.Set(-1, 0, 'x', ColorRed)
	s.Set(10, 0, 'x', ColorRed)
	s.Set(0, 5, 'x', ColorRed)

	// Out of bounds reads return blank
	if cell := s.GetCell(-1, 0); cell.Rune != ' ' {
		t.Errorf("Out-of-bounds GetCell = %+v, expected blank", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, '#', ColorYellow)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Cell after Clear() = %+v, expected blank default", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi", ColorCyan)

	if s.GetCell(2, 1).Rune != 'h' || s.GetCell(3, 1).Rune != 'i' {
		t.Errorf("Row 1 = %q, expected text at x=2", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorCyan {
		t.Error("DrawText should set the color")
	}

	// Clipped at the right edge without panic
	s.DrawText(8, 0, "long", ColorDefault)
	if s.Row(0) != "        lo" {
		t.Errorf("Clipped row = %q, expected %q", s.Row(0), "        lo")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)

	s.DrawTextCentered(0, "abc", ColorDefault)

	if s.GetCell(4, 0).Rune != 'a' || s.GetCell(6, 0).Rune != 'c' {
		t.Errorf("Row = %q, expected text centered", s.Row(0))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '*', ColorGreen)

	s.Resize(8, 6)

	if s.Width() != 8 || s.Height() != 6 {
		t.Errorf("Size after resize = %dx%d, expected 8x6", s.Width(), s.Height())
	}
	if cell := s.GetCell(2, 2); cell.Rune != '*' || cell.Color != ColorGreen {
		t.Errorf("Content not preserved across resize: %+v", cell)
	}

	// Shrinking clips content
	s.Resize(2, 2)
	if cell := s.GetCell(1, 1); cell.Rune != ' ' {
		t.Errorf("Cell (1,1) after shrink = %+v, expected blank", cell)
	}
}

func TestScreenFillCircle(t *testing.T) {
	s := NewScreen(21, 21)

	s.FillCircle(10, 10, 4, 2, '●', ColorGray)

	if s.GetCell(10, 10).Rune != '●' {
		t.Error("Circle center not filled")
	}
	if s.GetCell(14, 10).Rune != '●' {
		t.Error("Circle right extent not filled")
	}
	if s.GetCell(10, 12).Rune != '●' {
		t.Error("Circle bottom extent not filled")
	}
	if s.GetCell(14, 12).Rune == '●' {
		t.Error("Circle corner should stay empty")
	}
	if s.GetCell(16, 10).Rune == '●' {
		t.Error("Cell beyond radius should stay empty")
	}
}

func TestScreenFillCircleMinimumSize(t *testing.T) {
	s := NewScreen(5, 5)

	// Sub-cell radii still plot at least the center cell
	s.FillCircle(2, 2, 0, 0, '·', ColorDefault)

	if s.GetCell(2, 2).Rune != '·' {
		t.Error("Tiny circle should plot its center cell")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', ColorDefault)
	s.Set(2, 1, 'b', ColorDefault)

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	if len(strings.Split(got, "\n")) != 2 {
		t.Error("String() should have one line per row")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	if s.Row(-1) != "    " || s.Row(2) != "    " {
		t.Error("Out-of-bounds Row() should return blanks")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)

	s.DrawBox(NewRect(0, 0, 6, 4), ColorWhite)

	if s.GetCell(0, 0).Rune != '┌' || s.GetCell(5, 0).Rune != '┐' {
		t.Errorf("Top corners wrong: %q", s.Row(0))
	}
	if s.GetCell(0, 3).Rune != '└' || s.GetCell(5, 3).Rune != '┘' {
		t.Errorf("Bottom corners wrong: %q", s.Row(3))
	}
	if s.GetCell(2, 0).Rune != '─' || s.GetCell(0, 1).Rune != '│' {
		t.Error("Edges not drawn")
	}
	if s.GetCell(2, 1).Rune != ' ' {
		t.Error("Box interior should stay empty")
	}
}
