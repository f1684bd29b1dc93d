package sim

import "testing"

func TestMazeLayout_Dimensions(t *testing.T) {
	if len(mazeLayout) != MazeRows {
		t.Fatalf("layout has %d rows, want %d", len(mazeLayout), MazeRows)
	}
	for row, line := range mazeLayout {
		if len(line) != MazeCols {
			t.Errorf("row %d has %d columns, want %d", row, len(line), MazeCols)
		}
	}
}

func TestMaze_TunnelEndsOpen(t *testing.T) {
	m := NewMaze()
	if !m.Passable(0, TunnelRow, false) {
		t.Error("west tunnel mouth is not passable")
	}
	if !m.Passable(MazeCols-1, TunnelRow, false) {
		t.Error("east tunnel mouth is not passable")
	}
}

func TestMaze_GateRequiresRights(t *testing.T) {
	m := NewMaze()
	for _, col := range []int{13, 14} {
		if m.KindAt(col, 12) != TileGate {
			t.Errorf("tile (%d,12) kind = %v, want gate", col, m.KindAt(col, 12))
		}
		if m.Passable(col, 12, false) {
			t.Errorf("gate (%d,12) passable without gate rights", col)
		}
		if !m.Passable(col, 12, true) {
			t.Errorf("gate (%d,12) not passable with gate rights", col)
		}
	}
}

func TestMaze_OutOfGridIsWall(t *testing.T) {
	m := NewMaze()
	cases := []TileCoord{{-1, 5}, {MazeCols, 5}, {5, -1}, {5, MazeRows}}
	for _, c := range cases {
		if !m.IsWall(c.Col, c.Row) {
			t.Errorf("out-of-grid tile (%d,%d) not treated as wall", c.Col, c.Row)
		}
	}
}

func TestMaze_PelletCountMatchesLayout(t *testing.T) {
	m := NewMaze()
	dots, powers := 0, 0
	for _, line := range mazeLayout {
		for _, ch := range line {
			switch ch {
			case '.':
				dots++
			case 'o':
				powers++
			}
		}
	}
	if powers != 4 {
		t.Fatalf("layout has %d power pellets, want 4", powers)
	}
	if got := m.RemainingPellets(); got != dots+powers {
		t.Errorf("RemainingPellets = %d, want %d", got, dots+powers)
	}
}

func TestMaze_TakePelletAndReset(t *testing.T) {
	m := NewMaze()
	if p := m.TakePellet(1, 1); p != PelletDot {
		t.Fatalf("TakePellet(1,1) = %v, want dot", p)
	}
	if p := m.TakePellet(1, 1); p != PelletNone {
		t.Errorf("second TakePellet(1,1) = %v, want none", p)
	}
	if p := m.TakePellet(1, 3); p != PelletPower {
		t.Errorf("TakePellet(1,3) = %v, want power", p)
	}
	before := m.RemainingPellets()
	m.ResetPellets()
	if after := m.RemainingPellets(); after <= before {
		t.Errorf("ResetPellets left %d pellets, had %d before reset", after, before)
	}
}
