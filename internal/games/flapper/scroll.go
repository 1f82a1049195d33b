package flapper

import "math"

// ScrollLayer is a horizontal offset that moves left by a fixed amount each
// tick and snaps back to zero once it has travelled one full period. The
// background, the lawn and the obstacle areas each use one.
type ScrollLayer struct {
	Speed  float64
	Period float64
	offset float64
}

// NewScrollLayer creates a layer at offset zero.
func NewScrollLayer(speed, period float64) ScrollLayer {
	return ScrollLayer{Speed: speed, Period: period}
}

// Offset returns the current offset (zero or negative).
func (s *ScrollLayer) Offset() float64 {
	return s.offset
}

// Reset returns the layer to offset zero.
func (s *ScrollLayer) Reset() {
	s.offset = 0
}

// Advance moves the layer one tick and reports whether it wrapped.
func (s *ScrollLayer) Advance() bool {
	s.offset -= s.Speed
	if math.Abs(s.offset) >= s.Period {
		s.offset = 0
		return true
	}
	return false
}

// TileOffsets returns the x positions of n tiles laid out every period
// starting at the current offset.
func (s *ScrollLayer) TileOffsets(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = s.offset + float64(i)*s.Period
	}
	return xs
}
