package flapper

import (
	"fmt"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

// PlayerState is the life-cycle state of the player.
type PlayerState int

const (
	PlayerAlive PlayerState = iota
	PlayerFailed
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case PlayerAlive:
		return "alive"
	case PlayerFailed:
		return "failed"
	default:
		return fmt.Sprintf("PlayerState(%d)", int(s))
	}
}

// playerTransitions lists the allowed player state changes.
var playerTransitions = map[PlayerState][]PlayerState{
	PlayerAlive:  {PlayerFailed},
	PlayerFailed: {},
}

// Player is the circle the user steers. X stays fixed; only Y moves.
type Player struct {
	pos        core.Vec2
	velY       float64
	angle      float64
	state      PlayerState
	mouthTimer float64
	mouthOpen  bool
	failTimer  float64
	failScale  float64
}

// NewPlayer creates a player at the origin.
func NewPlayer() *Player {
	p := &Player{}
	p.Reset()
	return p
}

// Reset zeroes position, velocity, animation and state.
func (p *Player) Reset() {
	p.pos = core.V(0, 0)
	p.velY = 0
	p.angle = 0
	p.state = PlayerAlive
	p.mouthTimer = 0
	p.mouthOpen = true
	p.failTimer = 0
	p.failScale = 1
}

// Pos returns the player center.
func (p *Player) Pos() core.Vec2 { return p.pos }

// SetPos places the player.
func (p *Player) SetPos(pos core.Vec2) { p.pos = pos }

// VelY returns the vertical velocity (positive is down), in units per tick.
func (p *Player) VelY() float64 { return p.velY }

// Angle returns the tilt in degrees, derived from the vertical velocity.
func (p *Player) Angle() float64 { return p.angle }

// State returns the life-cycle state.
func (p *Player) State() PlayerState { return p.state }

// Failed reports whether the player has crashed.
func (p *Player) Failed() bool { return p.state == PlayerFailed }

// HitRadius returns the collision radius.
func (p *Player) HitRadius() float64 { return PlayerHitRadius }

// DrawRadius returns the current drawing radius, shrinking after a crash.
func (p *Player) DrawRadius() float64 {
	if p.Failed() {
		return PlayerDrawRadius * p.failScale
	}
	return PlayerDrawRadius
}

// FailScale returns the shrink factor in [0, 1]; 1 while alive.
func (p *Player) FailScale() float64 { return p.failScale }

// MouthOpen reports the cosmetic mouth animation phase.
func (p *Player) MouthOpen() bool { return p.mouthOpen }

// Finish marks the player as failed. Calling it again is a no-op.
func (p *Player) Finish() {
	if p.state == PlayerFailed {
		return
	}
	p.setState(PlayerFailed)
}

func (p *Player) setState(next PlayerState) {
	allowed, known := playerTransitions[p.state]
	if !known {
		panic(fmt.Sprintf("flapper: unknown player state %v", p.state))
	}
	for _, s := range allowed {
		if s == next {
			p.state = next
			return
		}
	}
	panic(fmt.Sprintf("flapper: invalid player transition %v -> %v", p.state, next))
}

// Update advances physics and animation by dt seconds. A boost overwrites
// the velocity. Position moves by the raw per-tick velocity.
func (p *Player) Update(dt float64, boost bool) {
	if p.state == PlayerAlive {
		if boost {
			p.velY = -VelBoost
		}
		p.velY += Gravity * dt
		p.pos.Y += p.velY
	}

	p.angle = AngleLimit * core.ClampF(p.velY, -VelBoost, VelBoost) / VelBoost

	switch p.state {
	case PlayerAlive:
		p.mouthOpen = p.mouthTimer <= mouthOpenTime
		p.mouthTimer += dt
		if p.mouthTimer >= mouthCycleTime {
			p.mouthTimer = 0
		}
	case PlayerFailed:
		p.failScale = 1 - p.failTimer
		if p.failScale < 0 {
			p.failScale = 0
		}
		p.failTimer += dt
	}
}
