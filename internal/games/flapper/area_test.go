package flapper

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flapper/internal/core"
)

func TestAreaMake(t *testing.T) {
	a := NewArea(DefaultLayout())
	a.Make(rand.New(rand.NewSource(7)))

	if got := len(a.Obstacles()); got != 1 {
		t.Fatalf("obstacle count = %d, want 1", got)
	}
	// One gap marker per obstacle plus the ladder: large, 16 normal, large.
	if got := len(a.Markers()); got != 1+LadderNormalCount+2 {
		t.Fatalf("marker count = %d, want %d", got, 1+LadderNormalCount+2)
	}

	o := a.Obstacles()[0]
	if o.StageHeight() != StageHeight-GroundHeight {
		t.Errorf("obstacle stage height = %v, want %v", o.StageHeight(), StageHeight-GroundHeight)
	}
	if o.Bottom()-o.Top() != GapHeight {
		t.Errorf("gap height = %v, want %v", o.Bottom()-o.Top(), GapHeight)
	}

	gap := a.Markers()[0]
	if !gap.Large() || gap.Pos() != core.V(o.X()+o.Width()/2, o.GapCenterY()) {
		t.Errorf("gap marker at %v large=%v", gap.Pos(), gap.Large())
	}

	ladder := a.Markers()[1:]
	wantY := []float64{32, 88}
	for i, y := range wantY {
		if ladder[i].Pos().Y != y {
			t.Errorf("ladder[%d].Y = %v, want %v", i, ladder[i].Pos().Y, y)
		}
	}
	if last := ladder[len(ladder)-1]; !last.Large() || last.Pos().Y != 624 {
		t.Errorf("closing marker at %v large=%v", last.Pos(), last.Large())
	}
	for i, m := range ladder {
		if m.Pos().X != ObstacleWidth+ObstacleInterval {
			t.Errorf("ladder[%d].X = %v", i, m.Pos().X)
		}
		wantLarge := i == 0 || i == len(ladder)-1
		if m.Large() != wantLarge {
			t.Errorf("ladder[%d].Large() = %v, want %v", i, m.Large(), wantLarge)
		}
	}
}

func TestAreaGapRange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a := NewArea(DefaultLayout())
	minTop := ObstacleMinHeight
	maxTop := StageHeight - GroundHeight - GapHeight - ObstacleMinHeight

	for i := 0; i < 500; i++ {
		a.Make(rng)
		for _, o := range a.Obstacles() {
			if o.Top() < minTop || o.Top() > maxTop {
				t.Fatalf("gap top %v outside [%v, %v]", o.Top(), minTop, maxTop)
			}
		}
	}
}

func TestAreaMakeDeterministic(t *testing.T) {
	a1 := NewArea(DefaultLayout())
	a2 := NewArea(DefaultLayout())
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		a1.Make(r1)
		a2.Make(r2)
		if a1.Obstacles()[0].Top() != a2.Obstacles()[0].Top() {
			t.Fatalf("round %d: tops differ %v vs %v", i, a1.Obstacles()[0].Top(), a2.Obstacles()[0].Top())
		}
	}
}

func TestAreaPerfectBonusOnce(t *testing.T) {
	a := NewArea(DefaultLayout())
	a.markers = []*Marker{NewMarker(100, 100, false), NewMarker(300, 100, true)}

	if hit, score := a.CheckCollision(0, core.V(100, 100), 10); hit || score != MarkerScoreNormal {
		t.Fatalf("first call = %v, %d; want false, %d", hit, score, MarkerScoreNormal)
	}
	if a.Perfect() {
		t.Fatal("area should not be perfect with a marker left")
	}

	_, score := a.CheckCollision(0, core.V(300, 100), 10)
	if score != MarkerScoreLarge+AreaBonusScore {
		t.Errorf("second call score = %d, want %d", score, MarkerScoreLarge+AreaBonusScore)
	}
	if !a.Perfect() {
		t.Error("area should be perfect")
	}

	if _, score := a.CheckCollision(0, core.V(300, 100), 10); score != 0 {
		t.Errorf("third call score = %d, want 0", score)
	}
}

func TestAreaPerfectInOneCall(t *testing.T) {
	a := NewArea(DefaultLayout())
	a.markers = []*Marker{NewMarker(100, 100, false), NewMarker(300, 100, true)}

	_, score := a.CheckCollision(0, core.V(200, 100), 200)
	want := MarkerScoreNormal + MarkerScoreLarge + AreaBonusScore
	if score != want {
		t.Errorf("score = %d, want %d", score, want)
	}
	if a.VisibleMarkers() != 0 {
		t.Errorf("visible markers = %d, want 0", a.VisibleMarkers())
	}
}

func TestAreaObstacleHitKeepsMarkerScore(t *testing.T) {
	a := NewArea(DefaultLayout())
	a.obstacles = []Obstacle{NewObstacle(150, 100, 400, 660, 0)}
	a.markers = []*Marker{NewMarker(75, 50, true), NewMarker(75, 250, false)}

	hit, score := a.CheckCollision(0, core.V(75, 50), 40)
	if !hit {
		t.Error("expected obstacle hit")
	}
	if score != MarkerScoreLarge {
		t.Errorf("score = %d, want %d", score, MarkerScoreLarge)
	}

	hit, score = a.CheckCollision(0, core.V(75, 250), 40)
	if hit {
		t.Error("circle in the gap should not hit")
	}
	if score != MarkerScoreNormal+AreaBonusScore {
		t.Errorf("score = %d, want %d", score, MarkerScoreNormal+AreaBonusScore)
	}
}

func TestAreaEmpty(t *testing.T) {
	a := NewArea(DefaultLayout())
	a.Make(rand.New(rand.NewSource(1)))
	a.Clear()

	if len(a.Obstacles()) != 0 || len(a.Markers()) != 0 || a.Perfect() {
		t.Fatal("Clear should leave an empty area")
	}
	if hit, score := a.CheckCollision(0, core.V(240, 360), 1000); hit || score != 0 {
		t.Errorf("empty area CheckCollision = %v, %d; want false, 0", hit, score)
	}
	if a.Perfect() {
		t.Error("an empty area never becomes perfect")
	}
}
