package sim

import "testing"

func TestPlayer_BufferedTurnCommitsAtCenter(t *testing.T) {
	m := NewMaze()
	p := NewPlayer()
	p.Dir = DirLeft
	// Up is walled at the spawn column but open one tile to the left; the
	// request must wait until that centre.
	p.SetDesiredDirection(DirUp)

	for i := 0; i < 40; i++ {
		p.Update(m)
	}
	if p.Dir != DirUp {
		t.Fatalf("player dir = %v, want up after buffered turn", p.Dir)
	}
	col, row := p.Tile()
	if col != 12 || row >= 23 {
		t.Errorf("player at (%d,%d), want column 12 above the spawn row", col, row)
	}
	if p.Pending != DirNone {
		t.Errorf("pending dir = %v, want none after commit", p.Pending)
	}
}

func TestPlayer_IllegalTurnKeepsWaiting(t *testing.T) {
	m := NewMaze()
	p := NewPlayer()
	p.Dir = DirLeft
	p.SetDesiredDirection(DirDown) // walled along the whole left run

	for i := 0; i < 10; i++ {
		p.Update(m)
	}
	if p.Dir != DirLeft {
		t.Fatalf("player dir = %v, want left while turn is illegal", p.Dir)
	}
	if p.Pending != DirDown {
		t.Errorf("pending dir = %v, want the request still buffered", p.Pending)
	}
}

func TestPlayer_WallStopsMovement(t *testing.T) {
	m := NewMaze()
	p := NewPlayer()
	p.Dir = DirUp // wall directly above spawn

	for i := 0; i < 30; i++ {
		p.Update(m)
	}
	if col, row := p.Tile(); col != 13 || row != 23 {
		t.Fatalf("player left spawn tile: (%d,%d)", col, row)
	}
	if p.Dir != DirUp {
		t.Errorf("player dir = %v, want heading held against the wall", p.Dir)
	}
	if p.MouthPhase != 0 {
		t.Errorf("mouth phase = %.2f, want 0 while blocked", p.MouthPhase)
	}
}

func TestPlayer_ReversalCommitsOffCenter(t *testing.T) {
	m := NewMaze()
	p := NewPlayer()
	p.Dir = DirUp
	// Drive into the wall above spawn; the player ends off-centre.
	for i := 0; i < 10; i++ {
		p.Update(m)
	}
	if p.Centered() {
		t.Fatal("player unexpectedly centred against the wall")
	}

	p.SetDesiredDirection(DirDown)
	p.Update(m)
	if p.Dir != DirDown {
		t.Fatalf("player dir = %v, want immediate reversal", p.Dir)
	}
	startY := float64(23*TileSize) + TileSize/2
	for i := 0; i < 10; i++ {
		p.Update(m)
	}
	if p.Y <= startY {
		t.Errorf("player Y = %.1f, want moving back down past %.1f", p.Y, startY)
	}
}

func TestPlayer_ResetRestoresSpawn(t *testing.T) {
	m := NewMaze()
	p := NewPlayer()
	p.Dir = DirLeft
	for i := 0; i < 20; i++ {
		p.Update(m)
	}
	p.Reset()
	if col, row := p.Tile(); col != playerStart.Col || row != playerStart.Row {
		t.Errorf("reset player at (%d,%d), want (%d,%d)", col, row, playerStart.Col, playerStart.Row)
	}
	if p.Dir != DirNone || p.Pending != DirNone {
		t.Errorf("reset left movement state: dir=%v pending=%v", p.Dir, p.Pending)
	}
}
