package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mathquiz/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(2, 1, "12 + 7", core.ColorWhite)
	s.DrawText(10, 1, "INCORRECT!", core.ColorBrightRed)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 2 line breaks for 3 rows, got %d", got)
	}
	for _, want := range []string{"12 + 7", "INCORRECT!"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen is missing %q", want)
		}
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetCell(0, 0, 'x', core.Color(200))

	if out := RenderScreen(s); !strings.Contains(out, "x") {
		t.Errorf("unknown colors should fall back to the default style, got %q", out)
	}
}
