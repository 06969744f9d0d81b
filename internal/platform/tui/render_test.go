package tui

import (
	"testing"

	"github.com/vovakirdan/shrink-arena/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '$', core.ColorYellow)
	s.SetColored(3, 0, 'o', core.ColorRed)
	s.DrawTextColored(0, 1, "@@", core.ColorBrightGreen)

	// Test output is not a terminal, so styles render as plain text.
	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(255)).Render("x"); got != "x" {
		t.Errorf("unknown color should use the default style, got %q", got)
	}
}
