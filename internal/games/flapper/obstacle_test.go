package flapper

import (
	"testing"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

func TestNewObstacleNormalizes(t *testing.T) {
	tests := []struct {
		name                      string
		top, bottom, stageH       float64
		wantTop, wantBot, wantStg float64
	}{
		{"in range", 100, 400, 660, 100, 400, 660},
		{"negative top", -20, 300, 660, 0, 300, 660},
		{"top above stage", 900, 950, 660, 660, 660, 660},
		{"bottom above stage", 100, 800, 660, 100, 660, 660},
		{"bottom before top", 300, 200, 660, 300, 300, 660},
		{"negative stage", 10, 20, -5, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewObstacle(ObstacleWidth, tt.top, tt.bottom, tt.stageH, 0)
			if o.Top() != tt.wantTop || o.Bottom() != tt.wantBot || o.StageHeight() != tt.wantStg {
				t.Errorf("got top=%v bottom=%v stage=%v, want %v %v %v",
					o.Top(), o.Bottom(), o.StageHeight(), tt.wantTop, tt.wantBot, tt.wantStg)
			}
			if !(0 <= o.Top() && o.Top() <= o.Bottom() && o.Bottom() <= o.StageHeight()) {
				t.Errorf("ordering broken: %v %v %v", o.Top(), o.Bottom(), o.StageHeight())
			}
		})
	}
}

func TestObstacleHit(t *testing.T) {
	o := NewObstacle(150, 100, 400, 660, 0)

	tests := []struct {
		name   string
		offset float64
		center core.Vec2
		want   bool
	}{
		{"inside top pillar", 0, core.V(75, 50), true},
		{"in gap", 0, core.V(75, 250), false},
		{"grazing bottom pillar", 0, core.V(75, 370), true},
		{"far above stage", 0, core.V(75, -5000), true},
		{"below stage", 0, core.V(75, 2000), true},
		{"shifted away by offset", 300, core.V(75, 50), false},
		{"shifted onto circle", -100, core.V(10, 50), true},
		{"left of pillar", 0, core.V(-60, 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.Hit(tt.offset, tt.center, 40); got != tt.want {
				t.Errorf("Hit(%v, %v) = %v, want %v", tt.offset, tt.center, got, tt.want)
			}
		})
	}
}

func TestObstacleUsesLocalX(t *testing.T) {
	o := NewObstacle(150, 100, 400, 660, 300)

	if o.Hit(0, core.V(75, 50), 40) {
		t.Error("obstacle at local x=300 should not hit a circle at x=75")
	}
	if !o.Hit(0, core.V(375, 50), 40) {
		t.Error("obstacle at local x=300 should hit a circle at x=375")
	}
	if got := o.GapCenterY(); got != 250 {
		t.Errorf("GapCenterY() = %v, want 250", got)
	}
}
