package flapper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Visual characters for rendering
const (
	PillarChar       = '█'
	PillarInnerChar  = '░'
	MarkerLargeChar  = '●'
	MarkerNormalChar = '•'
	PlayerChar       = '●'
	DirtChar         = '░'
	LawnChar         = '▀'
	BuildingFarChar  = '░'
	BuildingNearChar = '▒'
)

// pillarInset is the world-unit inset of the inner pillar texture.
const pillarInset = 12.0

// building is one silhouette in the repeating skyline tile.
type building struct {
	x, top, width float64
	near          bool
}

// skyline is the building tile repeated every BackgroundPeriod.
var skyline = []building{
	{5, 560, 25, false},
	{35, 580, 25, false},
	{85, 600, 25, false},
	{115, 590, 25, false},
	{20, 600, 20, true},
	{65, 570, 30, true},
	{50, 550, 30, true},
	{100, 580, 30, true},
	{35, 620, 20, true},
	{75, 610, 30, true},
}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, stageW, stageH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / stageW,
		sy: float64(dst.Height()) / stageH,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

// cell returns the screen cell containing a world point.
func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y * v.sy))
}

// center returns the world position of a cell's center.
func (v viewport) center(x, y int) core.Vec2 {
	return core.V((float64(x)+0.5)/v.sx, (float64(y)+0.5)/v.sy)
}

// span returns the clipped cell range covering [lo, hi) on one axis.
func span(lo, hi, scale float64, limit int) (int, int) {
	from := int(math.Floor(lo * scale))
	to := int(math.Ceil(hi * scale))
	return core.Clamp(from, 0, limit), core.Clamp(to, 0, limit)
}

// fillRect paints every cell whose center lies inside r.
func (v viewport) fillRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, x1 := span(r.X, r.Right(), v.sx, v.w)
	y0, y1 := span(r.Y, r.Bottom(), v.sy, v.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if r.Contains(v.center(x, y)) {
				dst.SetColor(x, y, ch, c)
			}
		}
	}
}

// fillCircle paints every cell whose center lies inside the circle, except
// cells for which skip returns true. The cell holding the center is always
// painted so small circles stay visible.
func (v viewport) fillCircle(dst *core.Screen, center core.Vec2, radius float64, ch rune, c core.Color, skip func(deg float64) bool) {
	x0, x1 := span(center.X-radius, center.X+radius, v.sx, v.w)
	y0, y1 := span(center.Y-radius, center.Y+radius, v.sy, v.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d := v.center(x, y).Sub(center)
			if d.Len() > radius {
				continue
			}
			if skip != nil && skip(math.Atan2(d.Y, d.X)*180/math.Pi) {
				continue
			}
			dst.SetColor(x, y, ch, c)
		}
	}
	cx, cy := v.cell(center)
	dst.SetColor(cx, cy, ch, c)
}

// text draws a string with its first rune in the cell containing p.
func (v viewport) text(dst *core.Screen, p core.Vec2, s string, c core.Color) {
	x, y := v.cell(p)
	dst.DrawTextColor(x, y, s, c)
}

// Render draws the current game state to the screen. It reads state only.
func (w *World) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	v := newViewport(dst, w.layout.StageWidth, w.layout.StageHeight)
	w.stage.render(dst, v)
	w.player.render(dst, v)
	w.renderHUD(dst)
}

// render draws background, ground and both areas.
func (s *Stage) render(dst *core.Screen, v viewport) {
	s.renderSkyline(dst, v)
	s.renderGround(dst, v)
	for slot, a := range s.areas {
		a.render(dst, v, s.AreaOffset(slot))
	}
}

func (s *Stage) renderSkyline(dst *core.Screen, v viewport) {
	for _, base := range s.background.TileOffsets(BackgroundTiles) {
		for _, b := range skyline {
			r := core.NewRect(base+b.x, b.top, b.width, s.layout.StageHeight-b.top)
			if b.near {
				v.fillRect(dst, r, BuildingNearChar, core.ColorNavy)
			} else {
				v.fillRect(dst, r, BuildingFarChar, core.ColorGray)
			}
		}
	}
}

func (s *Stage) renderGround(dst *core.Screen, v viewport) {
	ground := s.GroundRect()
	_, row := v.cell(core.V(0, ground.Y))
	for y := row; y < v.h; y++ {
		dst.FillRect(0, y, v.w, 1, DirtChar, core.ColorWhite)
	}

	// Border and lawn collapse into the first ground row at terminal scale.
	repeat := 1 + int(s.layout.StageWidth/LawnPeriod)
	dst.FillRect(0, row, v.w, 1, LawnChar, core.ColorGreen)
	for _, x := range s.lawn.TileOffsets(repeat) {
		v.fillRect(dst, core.NewRect(x, ground.Y, LawnTileWidth, LawnHeight+BorderHeight), LawnChar, core.ColorBrightGreen)
	}
}

// render draws obstacles, then markers (or the score of eaten ones), then
// the perfect banner.
func (a *Area) render(dst *core.Screen, v viewport, offset float64) {
	for _, o := range a.obstacles {
		o.render(dst, v, offset)
	}

	for _, m := range a.markers {
		m.render(dst, v, offset)
	}

	if a.perfect && len(a.markers) > 0 {
		last := a.markers[len(a.markers)-1]
		at := core.V(offset+last.Pos().X+30, a.layout.StageHeight*0.5)
		x, y := v.cell(at)
		dst.DrawTextColor(x, y, "Perfect!", core.ColorRed)
		dst.DrawTextColor(x, y+1, fmt.Sprint(AreaBonusScore), core.ColorRed)
	}
}

// render draws both pillars.
func (o Obstacle) render(dst *core.Screen, v viewport, offset float64) {
	x := offset + o.posX
	top := core.NewRect(x, 0, o.width, o.top)
	bottom := core.NewRect(x, o.bottom, o.width, o.stageHeight-o.bottom)

	v.fillRect(dst, top, PillarChar, core.ColorBlue)
	v.fillRect(dst, bottom, PillarChar, core.ColorBlue)

	inner := o.width - 2*pillarInset
	if inner > 0 {
		v.fillRect(dst, core.NewRect(x+pillarInset, 0, inner, o.top-pillarInset), PillarInnerChar, core.ColorBrightBlue)
		v.fillRect(dst, core.NewRect(x+pillarInset, o.bottom+pillarInset, inner, o.stageHeight-o.bottom-2*pillarInset), PillarInnerChar, core.ColorBrightBlue)
	}
}

// render draws the marker sprite, or its score value once eaten.
func (m *Marker) render(dst *core.Screen, v viewport, offset float64) {
	at := core.V(offset+m.pos.X, m.pos.Y)
	if !m.visible {
		v.text(dst, at, fmt.Sprint(m.Score()), core.ColorRed)
		return
	}
	if m.large {
		v.fillCircle(dst, at, m.Radius(), MarkerLargeChar, core.ColorOrange, nil)
		return
	}
	x, y := v.cell(at)
	dst.SetColor(x, y, MarkerNormalChar, core.ColorOrange)
}

// render draws the player body with the mouth cut out while it is open,
// shrunk and dimmed after a crash.
func (p *Player) render(dst *core.Screen, v viewport) {
	radius := p.DrawRadius()
	if radius <= 0 {
		return
	}

	color := core.ColorYellow
	if p.Failed() && p.failScale < 0.5 {
		color = core.ColorDimYellow
	}

	var mouth func(deg float64) bool
	if p.mouthOpen {
		mouth = func(deg float64) bool {
			d := math.Mod(deg-p.angle+540, 360) - 180
			return math.Abs(d) < mouthHalfAngle
		}
	}
	v.fillCircle(dst, p.pos, radius, PlayerChar, color, mouth)
}

// renderHUD draws scores and state messages in screen space.
func (w *World) renderHUD(dst *core.Screen) {
	c := w.controller
	width, height := dst.Width(), dst.Height()

	dst.DrawTextColor(1, 0, "1UP", core.ColorRed)
	dst.DrawTextColor(1, 1, fmt.Sprint(c.Score()), core.ColorBrightWhite)

	header := "HIGH SCORE"
	hx := (width - len(header)) / 2
	dst.DrawTextColor(hx, 0, header, core.ColorRed)
	dst.DrawTextColor(hx, 1, fmt.Sprintf("%10d", c.HighScore()), core.ColorBrightWhite)

	switch {
	case c.Ready():
		// Blink every 0.1s
		if int(c.StateTimer()/0.1)%2 == 0 {
			dst.DrawTextCentered(height*70/720+2, "READY?", core.ColorRed)
			dst.DrawTextCentered(height*130/720+3, "Space to start", core.ColorRed)
		}
		if w.showHelp {
			w.renderHelp(dst)
		}
	case c.GameOver():
		dst.DrawTextCentered(height/2-1, "GAME OVER", core.ColorRed)
		if c.StateTimer() > GameOverDuration {
			dst.DrawTextCentered(height/2+1, "Space to restart", core.ColorRed)
		}
	case w.paused:
		dst.DrawTextCentered(height/2, "PAUSED", core.ColorRed)
	}
}

func (w *World) renderHelp(dst *core.Screen) {
	lines := []string{"Space : jump", "R     : restart", "P     : pause", "Q     : quit"}
	boxW, boxH := 20, len(lines)+2
	x := dst.Width() - boxW - 1
	y := dst.Height() - boxH - 1
	if x < 0 || y < 2 {
		return
	}

	dst.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH, core.ColorGray)
	for i, line := range lines {
		dst.DrawTextColor(x+2, y+1+i, line, core.ColorBrightWhite)
	}
}
