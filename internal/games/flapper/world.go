package flapper

import (
	"math/rand"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

// Signals is the per-tick input the simulation consumes.
type Signals struct {
	JumpHeld         bool // Jump key is down (level)
	JumpPressed      bool // Jump key went down this tick (edge)
	RestartRequested bool // Explicit restart key (edge)
}

// SignalsFrom translates a platform input frame.
func SignalsFrom(in core.InputFrame) Signals {
	return Signals{
		JumpHeld:         in.Has(core.ActionJumpHeld) || in.Has(core.ActionJump),
		JumpPressed:      in.Has(core.ActionJump),
		RestartRequested: in.Has(core.ActionRestart),
	}
}

// World aggregates the controller, the stage and the player and advances
// them in a fixed order each tick.
type World struct {
	runtime    core.RuntimeConfig
	layout     Layout
	controller *Controller
	stage      *Stage
	player     *Player
	paused     bool
	restarted  bool
	showHelp   bool
	ticks      uint64 // Playing ticks in the current run
}

// New creates a new game instance. Call Reset before stepping.
func New() *World {
	return &World{
		layout:     DefaultLayout(),
		controller: NewController(),
		player:     NewPlayer(),
		showHelp:   true,
	}
}

// ID returns the unique identifier for this game.
func (w *World) ID() string {
	return "flapper"
}

// Title returns the display name for this game.
func (w *World) Title() string {
	return "Flapper"
}

// Controller returns the game state machine.
func (w *World) Controller() *Controller { return w.controller }

// Stage returns the scrolling stage.
func (w *World) Stage() *Stage { return w.stage }

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// SetShowHelp toggles the key help box drawn while waiting to start.
func (w *World) SetShowHelp(show bool) { w.showHelp = show }

// Reset (re)initializes the world for a new session. The stage RNG is
// reseeded from cfg.Seed; the high score survives.
func (w *World) Reset(cfg core.RuntimeConfig) {
	w.runtime = cfg
	w.stage = NewStage(w.layout, rand.New(rand.NewSource(cfg.Seed)))
	w.restart()
}

// restart begins a new run on the existing stage RNG.
func (w *World) restart() {
	w.controller.Reset()
	w.stage.Reset()
	w.player.Reset()
	w.player.SetPos(core.V(w.stage.Center().X, w.layout.StageHeight*0.5))
	w.paused = false
	w.ticks = 0
}

// Step advances the game by one tick.
func (w *World) Step(in core.InputFrame) core.StepResult {
	sig := SignalsFrom(in)
	w.restarted = false

	if sig.RestartRequested || (w.controller.CanRestart() && sig.JumpPressed) {
		w.restart()
		w.restarted = true
	}

	if in.Has(core.ActionPause) && w.controller.State() == StatePlaying {
		w.paused = !w.paused
	}
	if !w.paused {
		w.Tick(w.runtime.TickSeconds(), sig)
	}

	return core.StepResult{State: w.State()}
}

// Tick runs one simulation step: controller, player physics, stage scroll,
// collision, then scoring. Score from the collision test is applied even
// when the same test ends the run.
func (w *World) Tick(dt float64, sig Signals) {
	start := sig.JumpHeld || sig.JumpPressed || sig.RestartRequested
	w.controller.Update(dt, start)

	if w.controller.Ready() {
		return
	}

	w.player.Update(dt, sig.JumpPressed)

	if w.controller.GameOver() {
		return
	}

	w.ticks++
	w.stage.Update(dt)

	hit, score := w.stage.CheckCollision(w.player.Pos(), w.player.HitRadius())
	if hit {
		w.controller.Finish()
		w.player.Finish()
	}
	if err := w.controller.AccumulateScore(score); err != nil {
		// Stage scores are sums of positive constants.
		panic(err)
	}
}

// State returns the current game state.
func (w *World) State() core.GameState {
	phase := core.PhaseReady
	switch w.controller.State() {
	case StatePlaying:
		phase = core.PhasePlaying
	case StateGameOver:
		phase = core.PhaseGameOver
	}

	return core.GameState{
		Phase:     phase,
		Score:     w.controller.Score(),
		HighScore: w.controller.HighScore(),
		GameOver:  w.controller.GameOver(),
		Paused:    w.paused,
		Restarted: w.restarted,
	}
}

// RunSummary describes the current run for the journal.
func (w *World) RunSummary() core.RunSummary {
	return core.RunSummary{
		Seed:         w.runtime.Seed,
		Score:        w.controller.Score(),
		Ticks:        w.ticks,
		Markers:      w.stage.MarkersEaten(),
		PerfectAreas: w.stage.PerfectAreas(),
		AreasPassed:  w.stage.AreasPassed(),
	}
}
