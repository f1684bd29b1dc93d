package sim

import "math"

// Dir is a cardinal movement direction.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the unit tile step for the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone reverses to itself.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// seekOrder is the fixed evaluation order at intersections. The strict
// less-than comparison in chooseDirection makes earlier entries win ties,
// which is what keeps ghost routes reproducible run to run.
var seekOrder = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// centerTolerance is how close (per axis, in pixels) an agent must be to a
// tile centre to count as centred. Turns and mode decisions tied to the
// grid only happen at centres.
const centerTolerance = 2.0

// Mover is the shared sub-tile movement state for the player and ghosts.
type Mover struct {
	X, Y  float64
	Dir   Dir
	Speed float64
}

// Tile returns the grid cell the mover's centre point is in.
func (mv *Mover) Tile() (col, row int) {
	return int(math.Floor(mv.X / TileSize)), int(math.Floor(mv.Y / TileSize))
}

// TileCoord returns the mover's tile as a coordinate value.
func (mv *Mover) TileCoord() TileCoord {
	col, row := mv.Tile()
	return TileCoord{Col: col, Row: row}
}

// Centered reports whether the mover is within tolerance of its tile centre
// on both axes.
func (mv *Mover) Centered() bool {
	col, row := mv.Tile()
	cx := float64(col*TileSize) + TileSize/2
	cy := float64(row*TileSize) + TileSize/2
	return math.Abs(mv.X-cx) < centerTolerance && math.Abs(mv.Y-cy) < centerTolerance
}

// PlaceAtTile snaps the mover to the centre of (col, row).
func (mv *Mover) PlaceAtTile(col, row int) {
	mv.X = float64(col*TileSize) + TileSize/2
	mv.Y = float64(row*TileSize) + TileSize/2
}

// step advances one frame in the current direction. On the tunnel row the
// horizontal position wraps symmetrically, preserving sub-tile offset.
// A wall destination rejects the move and returns false; the caller decides
// whether to zero the direction (player) or hold it (ghost).
func (mv *Mover) step(m *Maze, allowGate bool) bool {
	if mv.Dir == DirNone {
		return false
	}
	dx, dy := mv.Dir.Delta()
	nx := mv.X + float64(dx)*mv.Speed
	ny := mv.Y + float64(dy)*mv.Speed

	if int(math.Floor(ny/TileSize)) == TunnelRow {
		if nx < 0 {
			nx += PlayfieldWidth
		} else if nx >= PlayfieldWidth {
			nx -= PlayfieldWidth
		}
	}

	col := int(math.Floor(nx / TileSize))
	row := int(math.Floor(ny / TileSize))
	if !m.Passable(col, row, allowGate) {
		return false
	}
	mv.X = nx
	mv.Y = ny
	return true
}

// tileDistance is the Euclidean distance between the centre of (col, row)
// and a target tile. Targets may lie outside the grid; the comparison still
// works, it just makes that direction unattractive.
func tileDistance(col, row int, target TileCoord) float64 {
	return math.Hypot(float64(target.Col-col), float64(target.Row-row))
}
