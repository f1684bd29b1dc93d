package sim

import (
	"math/rand"
	"testing"
)

func newTestGhost(id GhostID) (*Ghost, *Maze) {
	return NewGhost(id, rand.New(rand.NewSource(1))), NewMaze()
}

func TestGhost_ResetPlacesRoles(t *testing.T) {
	for id := GhostID(0); id < GhostCount; id++ {
		g, _ := newTestGhost(id)
		if col, row := g.Tile(); col != ghostStartTiles[id].Col || row != ghostStartTiles[id].Row {
			t.Errorf("%s reset at (%d,%d), want %v", id, col, row, ghostStartTiles[id])
		}
		wantMode := ModePen
		if id == GhostChaser {
			wantMode = ModeScatter
		}
		if g.Mode != wantMode {
			t.Errorf("%s reset mode = %v, want %v", id, g.Mode, wantMode)
		}
	}
}

func TestGhost_PenBounceStaysInterior(t *testing.T) {
	g, m := newTestGhost(GhostAmbusher)
	flips := 0
	prevDir := g.Dir
	for i := 0; i < 400; i++ {
		g.Update(m, TargetContext{})
		if g.Mode != ModePen {
			t.Fatalf("unreleased ghost left pen mode at tick %d: %v", i, g.Mode)
		}
		col, row := g.Tile()
		if col != 13 || row < 13 || row > 15 {
			t.Fatalf("penned ghost at (%d,%d) on tick %d, outside the pen interior", col, row, i)
		}
		if g.Dir != prevDir {
			flips++
			prevDir = g.Dir
		}
	}
	if flips < 3 {
		t.Errorf("pen bounce flipped %d times over 400 ticks, want several", flips)
	}
}

func TestGhost_FrightenEligibility(t *testing.T) {
	cases := []struct {
		mode GhostMode
		want bool
	}{
		{ModePen, false},
		{ModeLeaving, false},
		{ModeScatter, true},
		{ModeChase, true},
		{ModeDead, false},
		{ModeEntering, false},
	}
	for _, tc := range cases {
		g, _ := newTestGhost(GhostChaser)
		g.Mode = tc.mode
		g.Frighten(powerTicks)
		if g.Frightened != tc.want {
			t.Errorf("Frighten in %v: frightened = %v, want %v", tc.mode, g.Frightened, tc.want)
		}
	}
}

func TestGhost_FrightenReversesAndSlows(t *testing.T) {
	g, _ := newTestGhost(GhostChaser)
	g.Mode = ModeChase
	g.Dir = DirLeft
	g.Frighten(powerTicks)
	if g.Dir != DirRight {
		t.Errorf("frightened dir = %v, want reversal to right", g.Dir)
	}
	if g.Speed != frightenedSpeed {
		t.Errorf("frightened speed = %.2f, want %.2f", g.Speed, frightenedSpeed)
	}
}

func TestGhost_RefrightenRestartsTimer(t *testing.T) {
	g, _ := newTestGhost(GhostChaser)
	g.Mode = ModeChase
	g.Frighten(powerTicks)
	g.FrightTimer = 10
	g.Frighten(powerTicks)
	if g.FrightTimer != powerTicks {
		t.Errorf("re-frighten timer = %d, want full %d", g.FrightTimer, powerTicks)
	}
}

func TestGhost_DieClearsFrightAndSpeeds(t *testing.T) {
	g, _ := newTestGhost(GhostChaser)
	g.Mode = ModeChase
	g.Frighten(powerTicks)
	g.Die()
	if g.Mode != ModeDead {
		t.Fatalf("mode = %v, want dead", g.Mode)
	}
	if g.Frightened || g.FrightTimer != 0 {
		t.Error("dead ghost still carries the frightened overlay")
	}
	if g.Speed != deadSpeed {
		t.Errorf("dead speed = %.2f, want %.2f", g.Speed, deadSpeed)
	}
	if g.Target != penEntrance {
		t.Errorf("dead target = %v, want pen entrance %v", g.Target, penEntrance)
	}
}

func TestGhost_DeadReturnsEntersAndRevives(t *testing.T) {
	g, m := newTestGhost(GhostChaser)
	g.Mode = ModeChase
	g.PlaceAtTile(16, 11)
	g.Dir = DirRight
	g.Die() // reverses toward the pen entrance

	sawEntering, sawLeaving := false, false
	revived := -1
	for i := 0; i < 300; i++ {
		g.Update(m, TargetContext{})
		switch g.Mode {
		case ModeEntering:
			sawEntering = true
		case ModeLeaving:
			sawLeaving = true
		case ModeScatter:
			revived = i
		}
		if revived >= 0 {
			break
		}
	}
	if !sawEntering || !sawLeaving {
		t.Fatalf("revival path incomplete: entering=%v leaving=%v mode=%v", sawEntering, sawLeaving, g.Mode)
	}
	if revived < 0 {
		t.Fatalf("ghost never revived, stuck in %v at (%.1f,%.1f)", g.Mode, g.X, g.Y)
	}
	if g.Speed != ghostSpeed {
		t.Errorf("revived speed = %.2f, want %.2f", g.Speed, ghostSpeed)
	}
	if col, row := g.Tile(); row != penExitRow || col != gateCol {
		t.Errorf("revived at (%d,%d), want the pen exit (%d,%d)", col, row, gateCol, penExitRow)
	}
}

func TestGhost_LeavingAlignsToGateColumn(t *testing.T) {
	for _, id := range []GhostID{GhostFlanker, GhostShy} {
		g, m := newTestGhost(id)
		g.Release()
		exited := -1
		for i := 0; i < 300; i++ {
			g.Update(m, TargetContext{})
			col, row := g.Tile()
			if m.IsWall(col, row) {
				t.Fatalf("%s overlaps wall tile (%d,%d) while leaving", id, col, row)
			}
			if g.Mode == ModeScatter {
				exited = i
				break
			}
		}
		if exited < 0 {
			t.Fatalf("%s never left the pen, mode %v at (%.1f,%.1f)", id, g.Mode, g.X, g.Y)
		}
		if col, row := g.Tile(); col != gateCol || row != penExitRow {
			t.Errorf("%s exited at (%d,%d), want (%d,%d)", id, col, row, gateCol, penExitRow)
		}
	}
}

func TestGhost_SeekPrefersEarlierDirectionOnTie(t *testing.T) {
	g, m := newTestGhost(GhostChaser)
	g.Mode = ModeScatter
	g.PlaceAtTile(6, 5)
	g.Dir = DirRight
	// Up and down are both open here and equidistant from the target; the
	// fixed evaluation order breaks the tie upward.
	g.Target = TileCoord{Col: 0, Row: 5}
	g.seekTarget(m)
	if g.Dir != DirUp {
		t.Errorf("tie-break dir = %v, want up", g.Dir)
	}
}

func TestGhost_SeekNeverReverses(t *testing.T) {
	g, m := newTestGhost(GhostChaser)
	g.Mode = ModeScatter
	g.PlaceAtTile(3, 29)
	g.Dir = DirRight
	// Target directly behind, walls above and below: the only non-reverse
	// candidate is to keep going.
	g.Target = TileCoord{Col: 0, Row: 29}
	g.seekTarget(m)
	if g.Dir != DirRight {
		t.Errorf("dir = %v, want right (reverse excluded)", g.Dir)
	}
}

func TestGhost_FrightenedWalkStaysOnCorridors(t *testing.T) {
	g, m := newTestGhost(GhostChaser)
	g.Mode = ModeChase
	g.PlaceAtTile(6, 5)
	g.Dir = DirLeft
	g.Frighten(powerTicks)
	for i := 0; i < 200; i++ {
		g.Update(m, TargetContext{})
		col, row := g.Tile()
		if m.IsWall(col, row) {
			t.Fatalf("frightened ghost on wall tile (%d,%d) at tick %d", col, row, i)
		}
	}
}
