package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if s.String() != want {
		t.Errorf("new screen not blank: %q", s.String())
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(5, 5)
	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 5}} {
		s.SetColored(p[0], p[1], '#', ColorRed)
		if got := s.GetCell(p[0], p[1]); got != blankCell {
			t.Errorf("GetCell(%d,%d) = %+v, want blank", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Error("out-of-bounds write landed on screen")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '▙', ColorEarth)
	s.DrawTextColored(0, 0, "P1 Red", ColorRed)

	if c := s.GetCell(2, 1); c.Rune != '▙' || c.Color != ColorEarth {
		t.Errorf("cell = %+v", c)
	}
	if c := s.GetCell(3, 0); c.Rune != 'R' || c.Color != ColorRed {
		t.Errorf("text cell = %+v", c)
	}

	s.Clear()
	if c := s.GetCell(2, 1); c != blankCell {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "angle")
	if s.Row(0) != "       ang" {
		t.Errorf("clipped text = %q", s.Row(0))
	}

	s.DrawTextCentered(1, "WIN")
	if s.Row(1) != "   WIN    " {
		t.Errorf("centered = %q", s.Row(1))
	}
	if s.Row(9) != strings.Repeat(" ", 10) {
		t.Error("out-of-range row should be blank")
	}
}

func TestScreenMessageBox(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawText(0, 2, "xxxxxxxx")

	box := NewRect(1, 1, 6, 3)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	want := []string{
		"        ",
		" ┌────┐ ",
		"x│    │x",
		" └────┘ ",
		"        ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestScreenDrawRectClipped(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(-3, -3, 20, 20), '.')
	if s.String() != "....\n....\n...." {
		t.Errorf("clipped fill = %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "abcdef")
	s.DrawText(0, 2, "zzzzzz")

	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "abcd" || s.Row(1) != "    " {
		t.Errorf("shrunk = %q", s.String())
	}

	s.Resize(6, 3)
	if s.Row(0) != "abcd  " || s.Row(2) != "      " {
		t.Errorf("grown = %q", s.String())
	}
}
