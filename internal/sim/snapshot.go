package sim

// PlayerSnapshot is the renderer's read-only view of the player.
type PlayerSnapshot struct {
	X, Y       float64
	Dir        Dir
	MouthPhase float64
}

// GhostSnapshot is the renderer's read-only view of one ghost.
type GhostSnapshot struct {
	X, Y       float64
	Dir        Dir
	ID         GhostID
	Mode       GhostMode
	Frightened bool
}

// Snapshot is a value copy of everything the renderer and the debug report
// need for one frame. Taking a snapshot never mutates the simulation.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	HighScore  int
	Lives      int
	Level      int
	Pellets    int
	Total      int
	PowerTicks int
	BlinkOn    bool
	Player     PlayerSnapshot
	Ghosts     [GhostCount]GhostSnapshot
}
