package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "P1", core.ColorRed)
	s.SetColored(0, 1, '▟', core.ColorEarth)
	s.SetColored(1, 1, '█', core.ColorEarth)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("rendered %d lines, want 2", strings.Count(out, "\n")+1)
	}
	for _, want := range []string{"P1", "▟█"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestRenderScreenBlankIsPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	if got := RenderScreen(s); got != "    \n    " {
		t.Errorf("blank screen = %q", got)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGrass; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("colour %d has no style", c)
		}
	}
}
