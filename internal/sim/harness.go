package sim

import "fmt"

// TestSim is a headless harness used exclusively by tests. It wraps Sim with
// deterministic seeding, structured diff logging, and direct state helpers
// that scenario tests use to stage exact situations.
type TestSim struct {
	Sim    *Sim
	SimLog *SimLog
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, verbose — applied at construction
	simOptState                      // phase/lives/pellet overrides — applied after
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	seed int64
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{kind: simOptInfra, seed: seed}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{kind: simOptInfra, fn: func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithPhase forces the round phase after construction, bypassing the ready
// freeze so movement tests start live immediately.
func WithPhase(p Phase) SimOption {
	return SimOption{kind: simOptState, fn: func(ts *TestSim) {
		ts.Sim.phase = p
		ts.Sim.phaseTimer = 0
	}}
}

// WithLives overrides the starting life count.
func WithLives(n int) SimOption {
	return SimOption{kind: simOptState, fn: func(ts *TestSim) {
		ts.Sim.lives = n
	}}
}

// WithPelletsEaten sets the level's eaten counter without touching the
// overlay, for staging pen-release thresholds.
func WithPelletsEaten(n int) SimOption {
	return SimOption{kind: simOptState, fn: func(ts *TestSim) {
		ts.Sim.pelletsEaten = n
	}}
}

// NewTestSim constructs a TestSim in two ordered passes: infrastructure
// (seed, verbose) first, then state overrides against the built Sim.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{SimLog: NewSimLog(false)}
	var seed int64 = 1
	for _, o := range opts {
		if o.kind != simOptInfra {
			continue
		}
		if o.fn != nil {
			o.fn(ts)
		} else {
			seed = o.seed
		}
	}
	ts.Sim = New(seed)
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	return ts
}

// PlacePlayerAtTile snaps the player to a tile centre facing d.
func (ts *TestSim) PlacePlayerAtTile(col, row int, d Dir) {
	ts.Sim.player.PlaceAtTile(col, row)
	ts.Sim.player.Dir = d
	ts.Sim.player.Pending = DirNone
}

// PlaceGhostAtTile snaps a ghost to a tile centre in the given mode and
// direction. Release bookkeeping is updated so the round controller does not
// re-release it.
func (ts *TestSim) PlaceGhostAtTile(id GhostID, col, row int, mode GhostMode, d Dir) {
	g := ts.Sim.ghosts[id]
	g.PlaceAtTile(col, row)
	g.Mode = mode
	g.Dir = d
	if mode != ModePen {
		ts.Sim.released[id] = true
	}
}

// Ghost exposes a ghost for direct inspection and mutation in tests.
func (ts *TestSim) Ghost(id GhostID) *Ghost {
	return ts.Sim.ghosts[id]
}

// Player exposes the player for direct inspection in tests.
func (ts *TestSim) Player() *Player {
	return ts.Sim.player
}

// RunTicks advances the simulation n ticks, logging diffs to SimLog.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.runOneTick()
	}
}

// RunTicksWith advances n ticks, calling before ahead of every tick. Used to
// hold a steering input or keep staged state pinned.
func (ts *TestSim) RunTicksWith(n int, before func(*Sim)) {
	for i := 0; i < n; i++ {
		before(ts.Sim)
		ts.runOneTick()
	}
}

// RunUntil advances up to maxTicks, stopping early if predicate returns
// true. Returns the tick at which it was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.runOneTick()
		if predicate(ts.Sim) {
			return int(ts.Sim.tick)
		}
	}
	return -1
}

// runOneTick advances the Sim once and records diffs and events.
func (ts *TestSim) runOneTick() {
	s := ts.Sim
	prevPhase := s.phase
	var prevModes [GhostCount]GhostMode
	var prevFright [GhostCount]bool
	for i, g := range s.ghosts {
		prevModes[i] = g.Mode
		prevFright[i] = g.Frightened
	}

	s.Update()
	tick := int(s.tick)

	if s.phase != prevPhase {
		ts.SimLog.Add(tick, "--", "phase", "change",
			fmt.Sprintf("%s → %s", prevPhase, s.phase), 0)
	}
	for i, g := range s.ghosts {
		if g.Mode != prevModes[i] {
			ts.SimLog.Add(tick, g.ID.String(), "mode", "change",
				fmt.Sprintf("%s → %s", prevModes[i], g.Mode), 0)
		}
		if g.Frightened != prevFright[i] {
			key := "fright_off"
			if g.Frightened {
				key = "fright_on"
			}
			ts.SimLog.Add(tick, g.ID.String(), "mode", key, "", 0)
		}
		ts.SimLog.AddVerbose(tick, g.ID.String(), "move", "position",
			fmt.Sprintf("(%.1f,%.1f) %s", g.X, g.Y, g.Dir), 0)
	}
	ts.SimLog.AddVerbose(tick, "player", "move", "position",
		fmt.Sprintf("(%.1f,%.1f) %s", s.player.X, s.player.Y, s.player.Dir), 0)

	for _, e := range s.Events() {
		switch e.Kind {
		case EventPelletEaten:
			ts.SimLog.Add(tick, "player", "pellet", "dot", "", float64(e.Score))
		case EventPowerPelletEaten:
			ts.SimLog.Add(tick, "player", "pellet", "power", "", float64(e.Score))
		case EventGhostEaten:
			ts.SimLog.Add(tick, e.Ghost.String(), "ghost", "eaten",
				fmt.Sprintf("+%d", e.Score), float64(e.Score))
		case EventPlayerDied:
			ts.SimLog.Add(tick, "player", "round", "death", "", 0)
		case EventLevelComplete:
			ts.SimLog.Add(tick, "--", "round", "level_complete",
				fmt.Sprintf("level %d", s.level), float64(s.level))
		case EventGameOver:
			ts.SimLog.Add(tick, "--", "round", "game_over", "", 0)
		}
	}
}
