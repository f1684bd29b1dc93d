package sim

import "math/rand"

// Timing and scoring constants. Durations are in ticks at 60 ticks/second.
const (
	TicksPerSecond = 60
	StartLives     = 3

	DotScore      = 10
	PowerDotScore = 50

	powerTicks  = 6 * TicksPerSecond
	readyTicks  = 2 * TicksPerSecond
	dyingTicks  = 2 * TicksPerSecond
	blinkPeriod = 20

	scatterLegTicks      = 7 * TicksPerSecond
	shortScatterLegTicks = 5 * TicksPerSecond
	chaseLegTicks        = 20 * TicksPerSecond

	// shortScatterLevel is the level from which scatter legs shrink.
	shortScatterLevel = 5
)

// ghostEatScores is the doubling bonus ladder within one power window. The
// ladder caps at its last entry rather than doubling without bound.
var ghostEatScores = [4]int{200, 400, 800, 1600}

// Pen release gates, indexed by GhostID. A ghost leaves when the level's
// eaten-pellet count reaches its threshold or when the elapsed-tick ceiling
// passes, whichever comes first. The chaser starts outside and never waits.
var (
	releasePellets  = [GhostCount]int{0, 7, 17, 32}
	releaseCeilings = [GhostCount]int{0, 240, 480, 720}
)

// Phase is the round controller's top-level state.
type Phase uint8

const (
	PhaseReady    Phase = iota // freeze before play, timed
	PhasePlaying               // live simulation
	PhaseDying                 // death pause, timed
	PhaseGameOver              // terminal until restart
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Sim is the whole deterministic simulation: maze, agents, and the round
// controller. One Update call is one tick; nothing inside runs concurrently,
// and two Sims with the same seed and the same input sequence replay
// identically.
type Sim struct {
	maze   *Maze
	player *Player
	ghosts [GhostCount]*Ghost

	phase      Phase
	phaseTimer int

	score     int
	highScore int
	lives     int
	level     int

	pelletsEaten int
	totalPellets int

	powerActive    bool
	powerTimer     int
	ghostEatStreak int

	releaseTicks int
	released     [GhostCount]bool

	chasing   bool
	modeTicks int

	blinkPhase int
	tick       uint64

	rng    *rand.Rand
	events []Event
}

// New creates a simulation at level 1 in the ready freeze.
func New(seed int64) *Sim {
	s := &Sim{
		rng: rand.New(rand.NewSource(seed)),
	}
	s.maze = NewMaze()
	s.player = NewPlayer()
	for id := GhostID(0); id < GhostCount; id++ {
		s.ghosts[id] = NewGhost(id, s.rng)
	}
	s.lives = StartLives
	s.level = 1
	s.resetLevel()
	s.phase = PhaseReady
	s.phaseTimer = readyTicks
	return s
}

// Update advances exactly one tick. Events queued by previous ticks are
// dropped if not yet drained; callers that care drain after every call.
func (s *Sim) Update() {
	s.events = s.events[:0]
	s.tick++

	switch s.phase {
	case PhaseReady:
		s.phaseTimer--
		if s.phaseTimer <= 0 {
			s.phase = PhasePlaying
		}
	case PhasePlaying:
		s.playTick()
	case PhaseDying:
		s.phaseTimer--
		if s.phaseTimer <= 0 {
			s.lives--
			if s.lives <= 0 {
				s.phase = PhaseGameOver
				s.emit(Event{Kind: EventGameOver})
				return
			}
			s.resetPositions()
			s.phase = PhaseReady
			s.phaseTimer = readyTicks
		}
	case PhaseGameOver:
		// Frozen until Restart.
	}
}

// playTick is the ordered live frame: player movement, pellet resolution,
// power countdown, pen releases, the scatter/chase schedule, ghost movement,
// collisions, level completion. The order is load-bearing: a pellet eaten
// this frame can frighten a ghost before that ghost moves.
func (s *Sim) playTick() {
	s.blinkPhase = (s.blinkPhase + 1) % blinkPeriod

	// 1. Player movement and pellet pickup.
	s.player.Update(s.maze)
	col, row := s.player.Tile()
	switch s.maze.TakePellet(col, row) {
	case PelletDot:
		s.score += DotScore
		s.pelletsEaten++
		s.emit(Event{Kind: EventPelletEaten, Score: DotScore})
	case PelletPower:
		s.score += PowerDotScore
		s.pelletsEaten++
		s.powerActive = true
		s.powerTimer = powerTicks
		s.ghostEatStreak = 0
		s.emit(Event{Kind: EventPowerPelletEaten, Score: PowerDotScore})
		for _, g := range s.ghosts {
			g.Frighten(powerTicks)
		}
	}
	s.bumpHighScore()

	// 2. Power window countdown. Expiry clears any stragglers whose own
	// timers drifted (re-frightening restarts both clocks, so normally they
	// agree).
	if s.powerActive {
		s.powerTimer--
		if s.powerTimer <= 0 {
			s.powerActive = false
			s.ghostEatStreak = 0
			for _, g := range s.ghosts {
				if g.Frightened {
					g.Unfrighten()
				}
			}
		}
	}

	// 3. Pen releases.
	s.releaseTicks++
	for id := GhostID(1); id < GhostCount; id++ {
		if s.released[id] {
			continue
		}
		if s.pelletsEaten >= releasePellets[id] || s.releaseTicks > releaseCeilings[id] {
			s.released[id] = true
			s.ghosts[id].Release()
		}
	}

	// 4. Scatter/chase schedule. The scheduled mode is reasserted every
	// frame so ghosts finishing a pen exit or a death run rejoin the
	// current leg rather than a stale one.
	s.modeTicks++
	legLen := scatterLegTicks
	if s.level >= shortScatterLevel {
		legLen = shortScatterLegTicks
	}
	if s.chasing {
		legLen = chaseLegTicks
	}
	if s.modeTicks >= legLen {
		s.modeTicks = 0
		s.chasing = !s.chasing
	}
	scheduled := ModeScatter
	if s.chasing {
		scheduled = ModeChase
	}
	for _, g := range s.ghosts {
		if g.Mode == ModeScatter || g.Mode == ModeChase {
			g.Mode = scheduled
		}
	}

	// 5. Ghost movement.
	ctx := TargetContext{
		PlayerTile: s.player.TileCoord(),
		PlayerDir:  s.player.Dir,
		ChaserTile: s.ghosts[GhostChaser].TileCoord(),
	}
	for _, g := range s.ghosts {
		g.Update(s.maze, ctx)
	}

	// 6. Collisions. Dead ghosts (eyes) never collide; a frightened contact
	// kills the ghost, any other contact kills the player and ends the
	// frame immediately.
	for _, g := range s.ghosts {
		if g.Mode == ModeDead {
			continue
		}
		if !s.overlaps(g) {
			continue
		}
		if g.Frightened {
			idx := s.ghostEatStreak
			if idx >= len(ghostEatScores) {
				idx = len(ghostEatScores) - 1
			}
			award := ghostEatScores[idx]
			s.ghostEatStreak++
			s.score += award
			s.bumpHighScore()
			g.Die()
			s.emit(Event{Kind: EventGhostEaten, Ghost: g.ID, Score: award})
			continue
		}
		s.phase = PhaseDying
		s.phaseTimer = dyingTicks
		s.emit(Event{Kind: EventPlayerDied})
		return
	}

	// 7. Level completion.
	if s.pelletsEaten >= s.totalPellets {
		s.level++
		s.emit(Event{Kind: EventLevelComplete})
		s.resetLevel()
		s.phase = PhaseReady
		s.phaseTimer = readyTicks
	}
}

// overlaps is the bounding-box collision test between the player and a
// ghost: contact iff both axis separations are under 16 pixels.
func (s *Sim) overlaps(g *Ghost) bool {
	dx := s.player.X - g.X
	dy := s.player.Y - g.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx < 16 && dy < 16
}

func (s *Sim) bumpHighScore() {
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

// resetPositions returns every agent to its spawn and clears the transient
// round state (power window, releases, mode schedule). Scores and pellet
// progress survive; this is the after-death reset.
func (s *Sim) resetPositions() {
	s.player.Reset()
	for _, g := range s.ghosts {
		g.Reset()
	}
	s.releaseTicks = 0
	for i := range s.released {
		s.released[i] = false
	}
	s.powerActive = false
	s.powerTimer = 0
	s.ghostEatStreak = 0
	s.chasing = false
	s.modeTicks = 0
}

// resetLevel restocks the pellet overlay and resets positions. The spawn
// tile's pellet is cleared before counting so the level total covers only
// pellets the player can still eat.
func (s *Sim) resetLevel() {
	s.resetPositions()
	s.maze.ResetPellets()
	s.maze.TakePellet(playerStart.Col, playerStart.Row)
	s.totalPellets = s.maze.RemainingPellets()
	s.pelletsEaten = 0
}

// Restart begins a fresh game. Only legal from game over; the high score
// survives.
func (s *Sim) Restart() {
	if s.phase != PhaseGameOver {
		return
	}
	s.score = 0
	s.lives = StartLives
	s.level = 1
	s.resetLevel()
	s.phase = PhaseReady
	s.phaseTimer = readyTicks
}

// SetDesiredDirection forwards a turn request to the player. Input outside
// the playing phase is discarded, not buffered.
func (s *Sim) SetDesiredDirection(d Dir) {
	if s.phase != PhasePlaying {
		return
	}
	s.player.SetDesiredDirection(d)
}

// Events returns the events queued by the most recent Update.
func (s *Sim) Events() []Event {
	return s.events
}

// PelletAt exposes the pellet overlay for rendering.
func (s *Sim) PelletAt(col, row int) Pellet {
	return s.maze.PelletAt(col, row)
}

// KindAt exposes the static tile classification for rendering.
func (s *Sim) KindAt(col, row int) TileKind {
	return s.maze.KindAt(col, row)
}

// Phase returns the current round phase.
func (s *Sim) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// HighScore returns the best score seen this process.
func (s *Sim) HighScore() int { return s.highScore }

// Lives returns the remaining life count.
func (s *Sim) Lives() int { return s.lives }

// Level returns the current level, starting at 1.
func (s *Sim) Level() int { return s.level }

// Tick returns the number of Update calls since construction.
func (s *Sim) Tick() uint64 { return s.tick }

// Snapshot copies the full render state for this frame.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		Phase:      s.phase,
		Score:      s.score,
		HighScore:  s.highScore,
		Lives:      s.lives,
		Level:      s.level,
		Pellets:    s.pelletsEaten,
		Total:      s.totalPellets,
		PowerTicks: s.powerTimer,
		BlinkOn:    s.blinkPhase < blinkPeriod/2,
		Player: PlayerSnapshot{
			X:          s.player.X,
			Y:          s.player.Y,
			Dir:        s.player.Dir,
			MouthPhase: s.player.MouthPhase,
		},
	}
	if !s.powerActive {
		snap.PowerTicks = 0
	}
	for i, g := range s.ghosts {
		snap.Ghosts[i] = GhostSnapshot{
			X:          g.X,
			Y:          g.Y,
			Dir:        g.Dir,
			ID:         g.ID,
			Mode:       g.Mode,
			Frightened: g.Frightened,
		}
	}
	return snap
}
