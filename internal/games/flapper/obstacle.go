package flapper

import (
	"github.com/vovakirdan/tui-flapper/internal/core"
)

// pillarReach extends pillar collision boxes far beyond the stage so a circle
// leaving the visible area above or below still collides.
const pillarReach = 1_000_000.0

// Obstacle is a static top/bottom pillar pair with a vertical gap.
// Its X position is local to the owning Area.
type Obstacle struct {
	width       float64
	top         float64 // Y where the top pillar ends (top of gap)
	bottom      float64 // Y where the bottom pillar starts (bottom of gap)
	stageHeight float64
	posX        float64
}

// NewObstacle creates an obstacle, normalizing out-of-range inputs so that
// 0 <= top <= bottom <= stageHeight always holds.
func NewObstacle(width, top, bottom, stageHeight, posX float64) Obstacle {
	if stageHeight < 0 {
		stageHeight = 0
	}
	if top < 0 {
		top = 0
	}
	if top > stageHeight {
		top = stageHeight
	}
	if bottom > stageHeight {
		bottom = stageHeight
	}
	if bottom < top {
		bottom = top
	}

	return Obstacle{
		width:       width,
		top:         top,
		bottom:      bottom,
		stageHeight: stageHeight,
		posX:        posX,
	}
}

// Width returns the pillar width.
func (o Obstacle) Width() float64 { return o.width }

// Top returns the Y of the top edge of the gap.
func (o Obstacle) Top() float64 { return o.top }

// Bottom returns the Y of the bottom edge of the gap.
func (o Obstacle) Bottom() float64 { return o.bottom }

// StageHeight returns the height the bottom pillar extends to.
func (o Obstacle) StageHeight() float64 { return o.stageHeight }

// X returns the area-local horizontal position.
func (o Obstacle) X() float64 { return o.posX }

// GapCenterY returns the vertical midpoint of the gap.
func (o Obstacle) GapCenterY() float64 {
	return (o.top + o.bottom) * 0.5
}

// TopRect returns the collision box above the gap at the given area offset.
func (o Obstacle) TopRect(offset float64) core.Rect {
	return core.NewRect(offset+o.posX, -pillarReach, o.width, pillarReach+o.top)
}

// BottomRect returns the collision box below the gap at the given area offset.
func (o Obstacle) BottomRect(offset float64) core.Rect {
	return core.NewRect(offset+o.posX, o.bottom, o.width, o.stageHeight-o.bottom+pillarReach)
}

// Hit reports whether a circle intersects either pillar.
func (o Obstacle) Hit(offset float64, center core.Vec2, radius float64) bool {
	if core.CircleIntersectsRect(center, radius, o.TopRect(offset)) {
		return true
	}
	return core.CircleIntersectsRect(center, radius, o.BottomRect(offset))
}
