package sim

// Autopilot is a simple scripted driver for headless runs: it steers the
// player toward the nearest live pellet while penalising tiles close to a
// hostile ghost. It exists to exercise the simulation without a keyboard,
// not to play well.
type Autopilot struct{}

// ghostAvoidRadius is the tile distance under which a candidate tile is
// penalised for a nearby hostile ghost.
const ghostAvoidRadius = 4.0

// Steer picks a direction for the current frame and feeds it to the
// simulation. Between tile centres it leaves the committed direction alone.
func (Autopilot) Steer(s *Sim) {
	p := s.player
	if !p.Centered() {
		return
	}
	col, row := p.Tile()
	reverse := p.Dir.Opposite()

	best := p.Dir
	bestCost := 1e18
	for _, d := range seekOrder {
		if d == reverse && p.Dir != DirNone {
			continue
		}
		dx, dy := d.Delta()
		nc, nr := col+dx, row+dy
		if !s.maze.Passable(nc, nr, false) {
			continue
		}
		cost := s.nearestPelletDistance(nc, nr)
		for _, g := range s.ghosts {
			if g.Mode == ModeDead || g.Frightened {
				continue
			}
			gc, gr := g.Tile()
			if tileDistance(nc, nr, TileCoord{Col: gc, Row: gr}) < ghostAvoidRadius {
				cost += 100
			}
		}
		if cost < bestCost {
			bestCost = cost
			best = d
		}
	}
	if best != DirNone {
		s.SetDesiredDirection(best)
	}
}

// nearestPelletDistance scans the overlay for the closest live pellet to
// (col, row). Returns 0 when the maze is empty; the level rolls over then
// anyway.
func (s *Sim) nearestPelletDistance(col, row int) float64 {
	best := 0.0
	found := false
	for r := 0; r < MazeRows; r++ {
		for c := 0; c < MazeCols; c++ {
			if s.maze.PelletAt(c, r) == PelletNone {
				continue
			}
			d := tileDistance(col, row, TileCoord{Col: c, Row: r})
			if !found || d < best {
				best = d
				found = true
			}
		}
	}
	return best
}
