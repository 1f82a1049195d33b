package flapper

import (
	"math/rand"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Stage owns the two scrolling areas (slot 0 is the one the player is in,
// slot 1 the one coming up) plus the background and lawn scroll layers.
type Stage struct {
	layout     Layout
	rng        *rand.Rand
	background ScrollLayer
	lawn       ScrollLayer
	scroll     ScrollLayer
	areas      [2]*Area

	areasPassed  int
	perfectAreas int
	markersEaten int
}

// NewStage creates a stage and resets it with the given RNG.
func NewStage(layout Layout, rng *rand.Rand) *Stage {
	s := &Stage{
		layout:     layout,
		rng:        rng,
		background: NewScrollLayer(BackgroundScrollSpeed, BackgroundPeriod),
		lawn:       NewScrollLayer(LawnScrollSpeed, LawnPeriod),
		scroll:     NewScrollLayer(AreaScrollSpeed, layout.StageWidth),
		areas:      [2]*Area{NewArea(layout), NewArea(layout)},
	}
	s.Reset()
	return s
}

// Width returns the stage width.
func (s *Stage) Width() float64 { return s.layout.StageWidth }

// Height returns the stage height.
func (s *Stage) Height() float64 { return s.layout.StageHeight }

// Center returns the stage center point.
func (s *Stage) Center() core.Vec2 {
	return core.V(s.layout.StageWidth*0.5, s.layout.StageHeight*0.5)
}

// GroundRect returns the ground band at the bottom of the stage.
func (s *Stage) GroundRect() core.Rect {
	return core.NewRect(0, s.layout.StageHeight-s.layout.GroundHeight, s.layout.StageWidth, s.layout.GroundHeight)
}

// Area returns the area in the given slot (0 or 1).
func (s *Stage) Area(slot int) *Area {
	return s.areas[slot]
}

// AreaOffset returns the horizontal offset of the area in the given slot.
func (s *Stage) AreaOffset(slot int) float64 {
	return s.scroll.Offset() + float64(slot)*s.layout.StageWidth
}

// Coverage returns the horizontal span covered by both areas.
func (s *Stage) Coverage() (start, end float64) {
	start = s.AreaOffset(0)
	end = s.AreaOffset(1) + s.areas[1].Width()
	return start, end
}

// BackgroundOffset returns the building layer offset.
func (s *Stage) BackgroundOffset() float64 { return s.background.Offset() }

// LawnOffset returns the lawn layer offset.
func (s *Stage) LawnOffset() float64 { return s.lawn.Offset() }

// ScrollOffset returns the area layer offset.
func (s *Stage) ScrollOffset() float64 { return s.scroll.Offset() }

// AreasPassed returns how many areas have scrolled fully off screen.
func (s *Stage) AreasPassed() int { return s.areasPassed }

// PerfectAreas returns how many areas had all their markers eaten.
func (s *Stage) PerfectAreas() int { return s.perfectAreas }

// MarkersEaten returns how many markers were eaten since the last reset.
func (s *Stage) MarkersEaten() int { return s.markersEaten }

// Reset zeroes all scroll layers, leaves slot 0 empty and fills slot 1.
// The empty slot gives the player an obstacle-free run-in.
func (s *Stage) Reset() {
	s.background.Reset()
	s.lawn.Reset()
	s.scroll.Reset()
	s.areas[0].Clear()
	s.areas[1].Make(s.rng)
	s.areasPassed = 0
	s.perfectAreas = 0
	s.markersEaten = 0
}

// Update advances every scroll layer by one tick and rotates the areas when
// slot 0 has fully left the screen.
func (s *Stage) Update(_ float64) {
	s.background.Advance()
	s.lawn.Advance()
	if s.scroll.Advance() {
		s.rotate()
	}
}

// rotate retires slot 0, promotes slot 1 and generates a fresh slot 1.
func (s *Stage) rotate() {
	next := NewArea(s.layout)
	next.Make(s.rng)
	s.areas[0], s.areas[1] = s.areas[1], next
	s.areasPassed++
}

// CheckCollision tests both areas (always both, so markers in each still
// score) and then, if nothing was hit, the ground.
func (s *Stage) CheckCollision(center core.Vec2, radius float64) (bool, int) {
	hitAny := false
	total := 0

	for slot, a := range s.areas {
		visible := a.VisibleMarkers()
		wasPerfect := a.Perfect()

		hit, score := a.CheckCollision(s.AreaOffset(slot), center, radius)
		if hit {
			hitAny = true
		}
		total += score

		s.markersEaten += visible - a.VisibleMarkers()
		if !wasPerfect && a.Perfect() {
			s.perfectAreas++
		}
	}

	if !hitAny {
		hitAny = core.CircleIntersectsRect(center, radius, s.GroundRect())
	}
	return hitAny, total
}
