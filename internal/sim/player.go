package sim

import "math"

const playerSpeed = 1.5

// playerStart is the fixed spawn tile. Its pellet is cleared at level start
// so the total-pellet count only covers reachable, uneaten pellets.
var playerStart = TileCoord{Col: 13, Row: 23}

// Player is the keyboard-driven agent. Input arrives as a buffered pending
// direction that commits at the next tile centre where the turn is legal.
type Player struct {
	Mover
	Pending Dir

	// MouthPhase is cosmetic animation state for the renderer, advanced
	// while moving and zeroed when stopped.
	MouthPhase float64
}

// NewPlayer creates the player at the spawn tile.
func NewPlayer() *Player {
	p := &Player{}
	p.Reset()
	return p
}

// Reset restores spawn position and clears movement state. Called at level
// start and after a life is lost.
func (p *Player) Reset() {
	p.PlaceAtTile(playerStart.Col, playerStart.Row)
	p.Dir = DirNone
	p.Pending = DirNone
	p.Speed = playerSpeed
	p.MouthPhase = 0
}

// SetDesiredDirection buffers a turn request. It stays pending until a tile
// centre where the tile ahead is open; an illegal request simply waits.
func (p *Player) SetDesiredDirection(d Dir) {
	p.Pending = d
}

// Update runs one movement frame: commit a pending turn, then step. A
// reversal commits immediately since it stays on the current axis; any
// other turn commits only at a tile centre where the tile ahead is open.
// Immediate reversal matters at walls: the player stops off-centre there,
// and a centre-gated reversal would leave it stuck for good.
func (p *Player) Update(m *Maze) {
	if p.Pending != DirNone {
		if p.Dir != DirNone && p.Pending == p.Dir.Opposite() {
			p.Dir = p.Pending
			p.Pending = DirNone
		} else if p.Centered() {
			col, row := p.Tile()
			dx, dy := p.Pending.Delta()
			if m.Passable(col+dx, row+dy, false) {
				p.Dir = p.Pending
				p.Pending = DirNone
			}
		}
	}

	// A wall ahead rejects the step but keeps the direction, so the player
	// holds its heading while pressed against the wall.
	moved := p.Dir != DirNone && p.step(m, false)

	if moved {
		p.MouthPhase = math.Mod(p.MouthPhase+0.3, 2*math.Pi)
	} else {
		p.MouthPhase = 0
	}
}
