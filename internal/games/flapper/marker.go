package flapper

import (
	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Marker is a collectible score token ("dot"). Large markers sit in obstacle
// gaps and are worth more.
type Marker struct {
	pos     core.Vec2 // Local to the owning Area
	large   bool
	visible bool
}

// NewMarker creates a visible marker at an area-local position.
func NewMarker(x, y float64, large bool) *Marker {
	return &Marker{
		pos:     core.V(x, y),
		large:   large,
		visible: true,
	}
}

// Pos returns the area-local position.
func (m *Marker) Pos() core.Vec2 { return m.pos }

// Large reports whether this is a large marker.
func (m *Marker) Large() bool { return m.large }

// Visible reports whether the marker has not been eaten yet.
func (m *Marker) Visible() bool { return m.visible }

// Radius returns the collision radius for the marker's size class.
func (m *Marker) Radius() float64 {
	if m.large {
		return MarkerRadiusLarge
	}
	return MarkerRadiusNormal
}

// Score returns the points the marker is worth.
func (m *Marker) Score() int {
	if m.large {
		return MarkerScoreLarge
	}
	return MarkerScoreNormal
}

// Hit tests the marker against a circle. It never changes visibility;
// the owning Area decides whether to hide it.
func (m *Marker) Hit(offset float64, center core.Vec2, radius float64) (bool, int) {
	at := core.V(m.pos.X+offset, m.pos.Y)
	if !core.CirclesIntersect(at, m.Radius(), center, radius) {
		return false, 0
	}
	return true, m.Score()
}

// Hide marks the marker as eaten. Hiding twice is a no-op.
func (m *Marker) Hide() {
	m.visible = false
}
