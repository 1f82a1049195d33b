package flapper

import (
	"errors"
	"fmt"
)

// State is the top-level game state.
type State int

const (
	StateReady State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// stateTransitions lists the allowed controller state changes. Returning to
// Ready only happens through Reset.
var stateTransitions = map[State][]State{
	StateReady:    {StatePlaying},
	StatePlaying:  {StateGameOver},
	StateGameOver: {},
}

// ErrNegativeScore is returned when a score delta below zero is accumulated.
var ErrNegativeScore = errors.New("flapper: negative score delta")

// Controller runs the ready -> playing -> game over state machine and keeps
// the current and high score.
type Controller struct {
	state     State
	timer     float64
	score     int
	highScore int
}

// NewController creates a controller in the Ready state.
func NewController() *Controller {
	c := &Controller{}
	c.Reset()
	return c
}

// Reset returns to Ready with timer and score at zero. The high score is
// kept for the lifetime of the process.
func (c *Controller) Reset() {
	c.state = StateReady
	c.timer = 0
	c.score = 0
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// StateTimer returns seconds since the last transition.
func (c *Controller) StateTimer() float64 { return c.timer }

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// HighScore returns the best score seen in this process.
func (c *Controller) HighScore() int { return c.highScore }

// Ready reports whether the game is waiting for a start signal.
func (c *Controller) Ready() bool { return c.state == StateReady }

// GameOver reports whether the run has ended.
func (c *Controller) GameOver() bool { return c.state == StateGameOver }

// CanRestart reports whether game over has lasted long enough to accept a
// restart from the jump key.
func (c *Controller) CanRestart() bool {
	return c.state == StateGameOver && c.timer > GameOverDuration
}

// Update advances the state timer and starts play once the grace period has
// passed and a start is requested.
func (c *Controller) Update(dt float64, startRequested bool) {
	c.timer += dt
	if c.state == StateReady && c.timer > ReadyDuration && startRequested {
		c.setState(StatePlaying)
	}
}

// Finish ends the run. Calling it after game over is a no-op.
func (c *Controller) Finish() {
	if c.state == StateGameOver {
		return
	}
	c.setState(StateGameOver)
}

// AccumulateScore adds delta to the score and raises the high score in the
// same step. Negative deltas are rejected.
func (c *Controller) AccumulateScore(delta int) error {
	if delta < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeScore, delta)
	}
	c.score += delta
	if c.score > c.highScore {
		c.highScore = c.score
	}
	return nil
}

func (c *Controller) setState(next State) {
	allowed, known := stateTransitions[c.state]
	if !known {
		panic(fmt.Sprintf("flapper: unknown game state %v", c.state))
	}
	if _, valid := stateTransitions[next]; !valid {
		panic(fmt.Sprintf("flapper: unknown game state %v", next))
	}
	for _, s := range allowed {
		if s == next {
			c.state = next
			c.timer = 0
			return
		}
	}
	panic(fmt.Sprintf("flapper: invalid game transition %v -> %v", c.state, next))
}
