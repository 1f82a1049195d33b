package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "HELLO", core.ColorRed)

	if got := RenderScreen(s, false); got != s.String() {
		t.Errorf("plain render = %q, want %q", got, s.String())
	}
}

func TestRenderScreenColored(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "HELLO", core.ColorRed)
	s.DrawTextColor(0, 1, "WORLD", core.ColorNavy)

	out := RenderScreen(s, true)
	if !strings.Contains(out, "HELLO") || !strings.Contains(out, "WORLD") {
		t.Errorf("colored render lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorNavy; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
