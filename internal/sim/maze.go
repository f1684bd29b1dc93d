package sim

// Geometry constants. All continuous positions are in pixel units with
// TileSize pixels per grid cell.
const (
	TileSize = 20
	MazeCols = 28
	MazeRows = 31

	// TunnelRow is the only row where horizontal movement wraps around the
	// playfield edges.
	TunnelRow = 14

	// PlayfieldWidth is the horizontal extent used for tunnel wraparound.
	PlayfieldWidth = TileSize * MazeCols
)

// mazeLayout is the fixed maze. '#' wall, '.' pellet, 'o' power pellet,
// '-' pen gate, ' ' open corridor or void.
var mazeLayout = [MazeRows]string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"######.##### ## #####.######",
	"######.##          ##.######",
	"######.## ###--### ##.######",
	"######.## #      # ##.######",
	"       ## #      # ##       ",
	"######.## #      # ##.######",
	"######.## ######## ##.######",
	"######.##          ##.######",
	"######.## ######## ##.######",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##................##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// TileKind is the immutable classification of a maze cell.
type TileKind uint8

const (
	TileOpen TileKind = iota // corridor, tunnel, or pen interior
	TileWall
	TileGate // pen gate: one-way, ghosts only
)

// Pellet is the mutable per-tile pellet overlay.
type Pellet uint8

const (
	PelletNone Pellet = iota
	PelletDot
	PelletPower
)

// TileCoord is an integer (column, row) grid index.
type TileCoord struct {
	Col int
	Row int
}

// Maze holds the static tile classification and the mutable pellet overlay.
type Maze struct {
	kinds   [MazeRows * MazeCols]TileKind
	pellets [MazeRows * MazeCols]Pellet
}

// NewMaze parses the fixed layout. The pellet overlay starts fully stocked;
// callers clear the player's start tile before counting the level total.
func NewMaze() *Maze {
	m := &Maze{}
	for row := 0; row < MazeRows; row++ {
		for col := 0; col < MazeCols; col++ {
			switch mazeLayout[row][col] {
			case '#':
				m.kinds[row*MazeCols+col] = TileWall
			case '-':
				m.kinds[row*MazeCols+col] = TileGate
			}
		}
	}
	m.ResetPellets()
	return m
}

// ResetPellets restores the pellet overlay to the layout's initial state.
func (m *Maze) ResetPellets() {
	for row := 0; row < MazeRows; row++ {
		for col := 0; col < MazeCols; col++ {
			switch mazeLayout[row][col] {
			case '.':
				m.pellets[row*MazeCols+col] = PelletDot
			case 'o':
				m.pellets[row*MazeCols+col] = PelletPower
			default:
				m.pellets[row*MazeCols+col] = PelletNone
			}
		}
	}
}

// InBounds reports whether (col, row) is inside the grid.
func (m *Maze) InBounds(col, row int) bool {
	return col >= 0 && col < MazeCols && row >= 0 && row < MazeRows
}

// KindAt returns the static classification of (col, row). Out-of-grid cells
// classify as walls so movement checks reject them uniformly.
func (m *Maze) KindAt(col, row int) TileKind {
	if !m.InBounds(col, row) {
		return TileWall
	}
	return m.kinds[row*MazeCols+col]
}

// IsWall reports whether (col, row) is a wall (or out of grid).
func (m *Maze) IsWall(col, row int) bool {
	return m.KindAt(col, row) == TileWall
}

// Passable reports whether an agent may occupy (col, row). The pen gate is
// passable only for agents with gate rights (ghosts leaving, returning dead,
// or entering the pen).
func (m *Maze) Passable(col, row int, allowGate bool) bool {
	switch m.KindAt(col, row) {
	case TileOpen:
		return true
	case TileGate:
		return allowGate
	default:
		return false
	}
}

// PelletAt returns the pellet overlay state of (col, row).
func (m *Maze) PelletAt(col, row int) Pellet {
	if !m.InBounds(col, row) {
		return PelletNone
	}
	return m.pellets[row*MazeCols+col]
}

// TakePellet removes and returns the pellet at (col, row).
// Returns PelletNone when the tile is already empty.
func (m *Maze) TakePellet(col, row int) Pellet {
	if !m.InBounds(col, row) {
		return PelletNone
	}
	p := m.pellets[row*MazeCols+col]
	m.pellets[row*MazeCols+col] = PelletNone
	return p
}

// RemainingPellets counts live pellets (regular and power) in the overlay.
func (m *Maze) RemainingPellets() int {
	n := 0
	for _, p := range m.pellets {
		if p != PelletNone {
			n++
		}
	}
	return n
}
