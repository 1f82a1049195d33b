package flapper

import (
	"math/rand"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Layout holds the geometry an Area generates its content from.
type Layout struct {
	StageWidth       float64
	StageHeight      float64
	GroundHeight     float64
	ObstacleWidth    float64
	ObstacleInterval float64
	GapHeight        float64
}

// DefaultLayout returns the fixed stage geometry.
func DefaultLayout() Layout {
	return Layout{
		StageWidth:       StageWidth,
		StageHeight:      StageHeight,
		GroundHeight:     GroundHeight,
		ObstacleWidth:    ObstacleWidth,
		ObstacleInterval: ObstacleInterval,
		GapHeight:        GapHeight,
	}
}

// ObstacleCount returns how many obstacles fit in one stage width.
func (l Layout) ObstacleCount() int {
	step := l.ObstacleWidth + l.ObstacleInterval
	if step <= 0 {
		return 0
	}
	return int(l.StageWidth / step)
}

// Area owns one stage width of obstacles and markers. Two areas are scrolled
// side by side and recycled by the Stage.
type Area struct {
	layout    Layout
	obstacles []Obstacle
	markers   []*Marker
	perfect   bool // All markers eaten; bonus granted
}

// NewArea creates an empty area.
func NewArea(layout Layout) *Area {
	return &Area{layout: layout}
}

// Width returns the horizontal extent of the area.
func (a *Area) Width() float64 {
	return a.layout.StageWidth
}

// Obstacles returns the obstacles in left-to-right order.
func (a *Area) Obstacles() []Obstacle {
	return a.obstacles
}

// Markers returns the markers in generation order.
func (a *Area) Markers() []*Marker {
	return a.markers
}

// Perfect reports whether every marker in the area was eaten.
func (a *Area) Perfect() bool {
	return a.perfect
}

// Clear empties the area, leaving an obstacle-free placeholder.
func (a *Area) Clear() {
	a.obstacles = a.obstacles[:0]
	a.markers = a.markers[:0]
	a.perfect = false
}

// Make regenerates obstacles and then markers, replacing any prior content.
func (a *Area) Make(rng *rand.Rand) {
	a.Clear()
	a.makeObstacles(rng)
	a.makeMarkers()
}

func (a *Area) makeObstacles(rng *rand.Rand) {
	l := a.layout
	topMin := ObstacleMinHeight
	topMax := l.StageHeight - l.GroundHeight - l.GapHeight - ObstacleMinHeight

	step := l.ObstacleWidth + l.ObstacleInterval
	x := 0.0
	for i := 0; i < l.ObstacleCount(); i++ {
		top := core.ClampF(rng.Float64()*(l.StageHeight-l.GapHeight), topMin, topMax)
		bottom := top + l.GapHeight
		a.obstacles = append(a.obstacles, NewObstacle(l.ObstacleWidth, top, bottom, l.StageHeight-l.GroundHeight, x))
		x += step
	}
}

func (a *Area) makeMarkers() {
	for _, o := range a.obstacles {
		a.markers = append(a.markers, NewMarker(o.X()+o.Width()*0.5, o.GapCenterY(), true))
	}

	// Vertical ladder in the first lane: large, 16 normal, large.
	x := a.layout.ObstacleWidth + a.layout.ObstacleInterval
	y := MarkerRadiusLarge + MarkerRadiusNormal
	a.markers = append(a.markers, NewMarker(x, y, true))

	spacing := MarkerRadiusNormal * 4
	y += MarkerRadiusLarge + spacing
	for i := 0; i < LadderNormalCount; i++ {
		a.markers = append(a.markers, NewMarker(x, y, false))
		y += spacing
	}

	y += MarkerRadiusLarge
	a.markers = append(a.markers, NewMarker(x, y, true))
}

// VisibleMarkers returns how many markers have not been eaten.
func (a *Area) VisibleMarkers() int {
	n := 0
	for _, m := range a.markers {
		if m.Visible() {
			n++
		}
	}
	return n
}

// CheckCollision eats every visible marker the circle touches, grants the
// perfect bonus on the call that eats the last one, then tests obstacles in
// order and stops at the first hit.
func (a *Area) CheckCollision(offset float64, center core.Vec2, radius float64) (bool, int) {
	score := 0

	before := a.VisibleMarkers()
	for _, m := range a.markers {
		if !m.Visible() {
			continue
		}
		if hit, s := m.Hit(offset, center, radius); hit {
			score += s
			m.Hide()
		}
	}
	after := a.VisibleMarkers()

	if before > 0 && after == 0 && !a.perfect {
		a.perfect = true
		score += AreaBonusScore
	}

	for _, o := range a.obstacles {
		if o.Hit(offset, center, radius) {
			return true, score
		}
	}
	return false, score
}
