package tui

import (
	"testing"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{" ", core.ActionJump},
		{"w", core.ActionJump},
		{"r", core.ActionRestart},
		{"p", core.ActionPause},
		{"esc", core.ActionPause},
		{"q", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyMapToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("r"), &frame) {
		t.Error("r is not a quit key")
	}
	if !frame.Has(core.ActionRestart) {
		t.Error("frame should carry restart")
	}
	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is not forwarded to the game")
	}
}
