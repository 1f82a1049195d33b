package flapper

// Snapshot captures the simulation state for determinism testing and replay.
type Snapshot struct {
	Ticks        uint64
	State        State
	StateTimer   float64
	PlayerState  PlayerState
	PlayerY      float64
	PlayerVelY   float64
	Score        int
	HighScore    int
	ScrollOffset float64
	AreasPassed  int
	PerfectAreas int
	MarkersEaten int
	GapTops      []float64 // Gap tops of both areas, slot 0 first
}

// Snapshot returns the current simulation snapshot.
func (w *World) Snapshot() Snapshot {
	var tops []float64
	for slot := 0; slot < 2; slot++ {
		for _, o := range w.stage.Area(slot).Obstacles() {
			tops = append(tops, o.Top())
		}
	}

	return Snapshot{
		Ticks:        w.ticks,
		State:        w.controller.State(),
		StateTimer:   w.controller.StateTimer(),
		PlayerState:  w.player.State(),
		PlayerY:      w.player.Pos().Y,
		PlayerVelY:   w.player.VelY(),
		Score:        w.controller.Score(),
		HighScore:    w.controller.HighScore(),
		ScrollOffset: w.stage.ScrollOffset(),
		AreasPassed:  w.stage.AreasPassed(),
		PerfectAreas: w.stage.PerfectAreas(),
		MarkersEaten: w.stage.MarkersEaten(),
		GapTops:      tops,
	}
}
