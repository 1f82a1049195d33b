package flapper

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startPlaying steps through the ready grace period and starts the run.
func startPlaying(t *testing.T, w *World) {
	t.Helper()
	for i := 0; i < 15; i++ {
		w.Step(input())
	}
	if w.Controller().State() != StateReady {
		t.Fatalf("left ready without input: %v", w.Controller().State())
	}
	w.Step(input(core.ActionJump))
	if w.Controller().State() != StatePlaying {
		t.Fatalf("state = %v, want playing", w.Controller().State())
	}
}

func TestWorldDeterminism(t *testing.T) {
	cfg := testConfig(12345)

	// Jump every 15 ticks to try to stay airborne
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		w := New()
		w.Reset(cfg)
		for _, in := range inputs {
			w.Step(in)
		}
		return w.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed:\n run1=%+v\n run2=%+v", s1, s2)
	}
}

func TestWorldSeedChangesLayout(t *testing.T) {
	w1, w2 := New(), New()
	w1.Reset(testConfig(1))
	w2.Reset(testConfig(2))

	if reflect.DeepEqual(w1.Snapshot().GapTops, w2.Snapshot().GapTops) {
		t.Error("different seeds produced the same gap layout")
	}
}

func TestWorldReset(t *testing.T) {
	w := New()
	w.Reset(testConfig(42))
	startPlaying(t, w)
	for i := 0; i < 30; i++ {
		w.Step(input())
	}

	w.Reset(testConfig(42))

	s := w.Snapshot()
	if s.State != StateReady || s.Score != 0 || s.Ticks != 0 || s.PlayerState != PlayerAlive {
		t.Errorf("Reset left %+v", s)
	}
	if w.Player().Pos() != core.V(StageWidth/2, StageHeight/2) {
		t.Errorf("player at %v after reset", w.Player().Pos())
	}
	if len(w.Stage().Area(0).Obstacles()) != 0 {
		t.Error("slot 0 should be empty after reset")
	}
}

func TestWorldReadyHoldsPlayer(t *testing.T) {
	w := New()
	w.Reset(testConfig(1))

	for i := 0; i < 10; i++ {
		w.Step(input(core.ActionJump))
	}
	if w.Player().Pos().Y != StageHeight/2 {
		t.Errorf("player moved while ready: %v", w.Player().Pos())
	}
	if w.Stage().ScrollOffset() != 0 {
		t.Errorf("stage scrolled while ready: %v", w.Stage().ScrollOffset())
	}
}

func TestWorldFallAndRestart(t *testing.T) {
	w := New()
	w.Reset(testConfig(1))
	startPlaying(t, w)

	for i := 0; i < 120 && !w.State().GameOver; i++ {
		w.Step(input())
	}
	if !w.State().GameOver {
		t.Fatal("player should hit the ground")
	}
	if !w.Player().Failed() {
		t.Error("player should be failed after game over")
	}
	if w.State().Phase != core.PhaseGameOver {
		t.Errorf("phase = %v", w.State().Phase)
	}

	for i := 0; i < 30; i++ {
		w.Step(input(core.ActionJump))
	}
	if !w.State().GameOver {
		t.Fatal("jump restarted before the game over delay")
	}

	for i := 0; i < 40; i++ {
		w.Step(input())
	}
	st := w.Step(input(core.ActionJump)).State
	if st.Phase != core.PhaseReady || !st.Restarted {
		t.Errorf("after restart phase=%v restarted=%v", st.Phase, st.Restarted)
	}
	if w.Player().Failed() {
		t.Error("player should be alive after restart")
	}
}

func TestWorldRestartKey(t *testing.T) {
	w := New()
	w.Reset(testConfig(1))
	startPlaying(t, w)
	_ = w.Controller().AccumulateScore(40)

	st := w.Step(input(core.ActionRestart)).State
	if st.Phase != core.PhaseReady || st.Score != 0 || !st.Restarted {
		t.Errorf("restart key: %+v", st)
	}
	if st.HighScore != 40 {
		t.Errorf("high score = %d, want 40", st.HighScore)
	}
}

func TestWorldScoreOnCrashTick(t *testing.T) {
	w := New()
	w.Reset(testConfig(1))
	w.Controller().Update(1, true)

	a := w.Stage().Area(0)
	a.obstacles = []Obstacle{NewObstacle(150, 100, 400, 660, 165)}
	a.markers = []*Marker{NewMarker(242, 361, true)}

	w.Tick(dt, Signals{})

	if !w.Controller().GameOver() || !w.Player().Failed() {
		t.Fatal("bottom pillar should end the run")
	}
	want := MarkerScoreLarge + AreaBonusScore
	if w.Controller().Score() != want || w.Controller().HighScore() != want {
		t.Errorf("score=%d high=%d, want %d", w.Controller().Score(), w.Controller().HighScore(), want)
	}
}

func TestWorldPause(t *testing.T) {
	w := New()
	w.Reset(testConfig(1))

	w.Step(input(core.ActionPause))
	if w.State().Paused {
		t.Fatal("pause should be ignored while ready")
	}

	startPlaying(t, w)
	w.Step(input(core.ActionPause))
	if !w.State().Paused {
		t.Fatal("expected paused")
	}

	y := w.Player().Pos().Y
	for i := 0; i < 10; i++ {
		w.Step(input(core.ActionJump))
	}
	if w.Player().Pos().Y != y {
		t.Error("player moved while paused")
	}

	w.Step(input(core.ActionPause))
	if w.State().Paused {
		t.Error("expected resumed")
	}
}

func TestWorldRunSummary(t *testing.T) {
	w := New()
	w.Reset(testConfig(9))
	startPlaying(t, w)
	for i := 0; i < 9; i++ {
		w.Step(input())
	}

	sum := w.RunSummary()
	if sum.Seed != 9 || sum.Ticks != 10 {
		t.Errorf("RunSummary() = %+v", sum)
	}
}

func TestSignalsFrom(t *testing.T) {
	sig := SignalsFrom(input(core.ActionJump))
	if !sig.JumpHeld || !sig.JumpPressed || sig.RestartRequested {
		t.Errorf("jump: %+v", sig)
	}

	sig = SignalsFrom(input(core.ActionJumpHeld, core.ActionRestart))
	if !sig.JumpHeld || sig.JumpPressed || !sig.RestartRequested {
		t.Errorf("held+restart: %+v", sig)
	}
}

func TestWorldRender(t *testing.T) {
	w := New()
	w.Reset(testConfig(1))
	scr := core.NewScreen(80, 24)

	w.Render(scr)

	if got := scr.Get(0, 23); got != DirtChar {
		t.Errorf("bottom row = %q, want ground", got)
	}
	if got := scr.Get(40, 12); got != PlayerChar {
		t.Errorf("player cell = %q, want %q", got, PlayerChar)
	}
	if row := scr.Row(0); !strings.Contains(row, "1UP") || !strings.Contains(row, "HIGH SCORE") {
		t.Errorf("HUD row = %q", row)
	}
	if !strings.Contains(scr.String(), "Space : jump") {
		t.Error("help box missing while ready")
	}

	empty := core.NewScreen(0, 0)
	w.Render(empty)
}

func TestWorldRenderWithoutHelp(t *testing.T) {
	w := New()
	w.SetShowHelp(false)
	w.Reset(testConfig(1))
	scr := core.NewScreen(80, 24)

	w.Render(scr)

	if strings.Contains(scr.String(), "Space : jump") {
		t.Error("help box drawn while disabled")
	}
}
