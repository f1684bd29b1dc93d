package sim

import (
	"math"
	"testing"
)

func TestMover_CenteredTolerance(t *testing.T) {
	var mv Mover
	mv.PlaceAtTile(5, 5)
	if !mv.Centered() {
		t.Fatal("mover placed at tile centre not reported as centred")
	}
	mv.X += centerTolerance + 1
	if mv.Centered() {
		t.Error("mover offset past tolerance still reported as centred")
	}
	mv.X = float64(5*TileSize) + TileSize/2 + centerTolerance/2
	if !mv.Centered() {
		t.Error("mover within tolerance not reported as centred")
	}
}

func TestMover_StepRejectsWall(t *testing.T) {
	m := NewMaze()
	mv := Mover{Speed: 1.5, Dir: DirUp}
	mv.PlaceAtTile(13, 23) // wall directly above
	// Within-tile movement toward the wall succeeds until the point would
	// cross the tile boundary, then every step is rejected in place.
	rejected := false
	for i := 0; i < 20; i++ {
		if !mv.step(m, false) {
			rejected = true
			x, y := mv.X, mv.Y
			if mv.step(m, false) || mv.X != x || mv.Y != y {
				t.Fatal("rejected step moved the mover")
			}
			break
		}
	}
	if !rejected {
		t.Fatal("step was never rejected approaching a wall")
	}
	if col, row := mv.Tile(); col != 13 || row != 23 {
		t.Errorf("mover crossed into wall tile (%d,%d)", col, row)
	}
}

func TestMover_TunnelWrapsWest(t *testing.T) {
	m := NewMaze()
	mv := Mover{Speed: 1.5, Dir: DirLeft}
	mv.PlaceAtTile(0, TunnelRow)
	for i := 0; i < 7; i++ {
		if !mv.step(m, false) {
			t.Fatalf("tunnel step %d rejected at (%.1f,%.1f)", i, mv.X, mv.Y)
		}
	}
	if mv.X < PlayfieldWidth/2 {
		t.Errorf("mover did not wrap to east side: X = %.1f", mv.X)
	}
	if col, row := mv.Tile(); col != MazeCols-1 || row != TunnelRow {
		t.Errorf("wrapped mover at tile (%d,%d), want (%d,%d)", col, row, MazeCols-1, TunnelRow)
	}
}

func TestMover_TunnelWrapsEast(t *testing.T) {
	m := NewMaze()
	mv := Mover{Speed: 1.5, Dir: DirRight}
	mv.PlaceAtTile(MazeCols-1, TunnelRow)
	for i := 0; i < 7; i++ {
		if !mv.step(m, false) {
			t.Fatalf("tunnel step %d rejected at (%.1f,%.1f)", i, mv.X, mv.Y)
		}
	}
	if mv.X > PlayfieldWidth/2 {
		t.Errorf("mover did not wrap to west side: X = %.1f", mv.X)
	}
}

func TestMover_TunnelWrapPreservesOffset(t *testing.T) {
	m := NewMaze()
	mv := Mover{Speed: 1.5, Dir: DirLeft}
	mv.PlaceAtTile(0, TunnelRow)
	// Walk until just before the wrap, record the fractional offset, then
	// step once more across the edge.
	for mv.X-mv.Speed >= 0 {
		if !mv.step(m, false) {
			t.Fatalf("tunnel step rejected at (%.1f,%.1f)", mv.X, mv.Y)
		}
	}
	want := mv.X - mv.Speed + PlayfieldWidth
	if !mv.step(m, false) {
		t.Fatal("wrap step rejected")
	}
	if math.Abs(mv.X-want) > 1e-9 {
		t.Errorf("wrap changed sub-tile offset: X = %.4f, want %.4f", mv.X, want)
	}
}

func TestTileDistance_Euclidean(t *testing.T) {
	if d := tileDistance(0, 0, TileCoord{Col: 3, Row: 4}); math.Abs(d-5) > 1e-9 {
		t.Errorf("tileDistance(0,0 → 3,4) = %.4f, want 5", d)
	}
	if d := tileDistance(10, 10, TileCoord{Col: 10, Row: 10}); d != 0 {
		t.Errorf("tileDistance to self = %.4f, want 0", d)
	}
}
