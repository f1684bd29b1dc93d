package sim

import (
	"math"
	"math/rand"
)

// Speeds in pixels per tick. The ratios matter more than the absolutes:
// frightened ghosts are slower than the player, returning eyes are faster
// than everything.
const (
	ghostSpeed      = 1.2
	frightenedSpeed = 0.8
	deadSpeed       = 2.0
)

const (
	// penFlipInterval is how often a penned ghost reverses its vertical
	// bounce, in ticks.
	penFlipInterval = 60

	// penExitRow is the corridor row above the pen; a leaving ghost that
	// reaches it switches to scatter.
	penExitRow = 11

	// penDepthRow is how deep an entering ghost descends before it
	// reinitialises to leaving.
	penDepthRow = 14

	// gateCol is the column a ghost aligns to before passing the gate.
	gateCol = 13
)

// penEntrance is the tile just above the gate; dead ghosts seek it.
var penEntrance = TileCoord{Col: 13, Row: 11}

// GhostID identifies one of the four fixed adversary roles, named for
// their chase behaviour.
type GhostID uint8

const (
	GhostChaser   GhostID = iota // direct pursuit, starts outside the pen
	GhostAmbusher                // aims ahead of the player
	GhostFlanker                 // reflects through the chaser
	GhostShy                     // pursues only from a distance
	GhostCount
)

func (id GhostID) String() string {
	switch id {
	case GhostChaser:
		return "chaser"
	case GhostAmbusher:
		return "ambusher"
	case GhostFlanker:
		return "flanker"
	case GhostShy:
		return "shy"
	default:
		return "unknown"
	}
}

// GhostMode is the closed set of ghost state-machine states. Frightened is
// deliberately not a mode: it is an overlay flag valid only during scatter
// and chase, so a ghost can never be frightened and dead at once.
type GhostMode uint8

const (
	ModePen      GhostMode = iota // bouncing in the pen, awaiting release
	ModeLeaving                   // aligning to the gate and rising out
	ModeScatter                   // heading for its own corner
	ModeChase                     // pursuing the strategy target
	ModeDead                      // eyes returning to the pen entrance
	ModeEntering                  // descending through the gate
)

func (gm GhostMode) String() string {
	switch gm {
	case ModePen:
		return "pen"
	case ModeLeaving:
		return "leaving"
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeDead:
		return "dead"
	case ModeEntering:
		return "entering"
	default:
		return "unknown"
	}
}

var ghostStartTiles = [GhostCount]TileCoord{
	GhostChaser:   {Col: 13, Row: 11},
	GhostAmbusher: {Col: 13, Row: 14},
	GhostFlanker:  {Col: 11, Row: 14},
	GhostShy:      {Col: 15, Row: 14},
}

var ghostScatterCorners = [GhostCount]TileCoord{
	GhostChaser:   {Col: 25, Row: 0},
	GhostAmbusher: {Col: 2, Row: 0},
	GhostFlanker:  {Col: 27, Row: 29},
	GhostShy:      {Col: 0, Row: 29},
}

// Ghost is one autonomous adversary. Its targeting strategy is bound at
// construction; the mode machine and movement rules are shared.
type Ghost struct {
	Mover
	ID         GhostID
	Mode       GhostMode
	Frightened bool

	// FrightTimer counts down the frightened overlay. The round controller
	// also holds a global power countdown; both restart (never accumulate)
	// when a power pellet is eaten.
	FrightTimer int

	// Target is the tile currently being sought. Fixed at the pen entrance
	// while dead; recomputed every frame in scatter/chase.
	Target TileCoord

	strategy      TargetStrategy
	scatterCorner TileCoord
	startTile     TileCoord
	penTicks      int
	rng           *rand.Rand
}

// NewGhost creates a ghost in its spawn state. The rng drives only the
// frightened random walk; seeding it makes runs reproducible.
func NewGhost(id GhostID, rng *rand.Rand) *Ghost {
	g := &Ghost{
		ID:            id,
		scatterCorner: ghostScatterCorners[id],
		startTile:     ghostStartTiles[id],
		rng:           rng,
	}
	switch id {
	case GhostChaser:
		g.strategy = directTargeting{}
	case GhostAmbusher:
		g.strategy = ambushTargeting{}
	case GhostFlanker:
		g.strategy = flankTargeting{}
	case GhostShy:
		g.strategy = shyTargeting{}
	}
	g.Reset()
	return g
}

// Reset restores the spawn state: the chaser starts outside the pen in
// scatter heading up, everyone else bounces in the pen heading down.
func (g *Ghost) Reset() {
	g.PlaceAtTile(g.startTile.Col, g.startTile.Row)
	g.Speed = ghostSpeed
	g.Frightened = false
	g.FrightTimer = 0
	g.Target = g.scatterCorner
	g.penTicks = 0
	if g.ID == GhostChaser {
		g.Mode = ModeScatter
		g.Dir = DirUp
	} else {
		g.Mode = ModePen
		g.Dir = DirDown
	}
}

// Release starts the exit sequence. A no-op unless the ghost is penned.
func (g *Ghost) Release() {
	if g.Mode != ModePen {
		return
	}
	g.Mode = ModeLeaving
	g.Dir = DirUp
}

// Frighten applies the vulnerable overlay: immediate reversal, reduced
// speed, fresh countdown. Ghosts that are penned, in transit through the
// gate, or already dead are not eligible; re-frightening an already
// frightened ghost restarts the countdown.
func (g *Ghost) Frighten(duration int) {
	if g.Mode != ModeScatter && g.Mode != ModeChase {
		return
	}
	g.Frightened = true
	g.FrightTimer = duration
	g.Dir = g.Dir.Opposite()
	g.Speed = frightenedSpeed
}

// Unfrighten clears the vulnerable overlay and restores pursuit speed.
func (g *Ghost) Unfrighten() {
	g.Frightened = false
	g.FrightTimer = 0
	g.Speed = ghostSpeed
}

// Die sends the ghost home: eyes only, full speed, fixed target at the pen
// entrance. The one legal reversal outside frightening happens implicitly
// here, since seek excludes the reverse of the direction held at death
// only until the next intersection re-evaluates.
func (g *Ghost) Die() {
	g.Mode = ModeDead
	g.Frightened = false
	g.FrightTimer = 0
	g.Speed = deadSpeed
	g.Target = penEntrance
	g.Dir = g.Dir.Opposite()
}

// gateAllowed reports whether the ghost may pass the pen gate in its
// current mode.
func (g *Ghost) gateAllowed() bool {
	return g.Mode == ModeLeaving || g.Mode == ModeDead || g.Mode == ModeEntering
}

// Update advances the ghost one tick.
func (g *Ghost) Update(m *Maze, ctx TargetContext) {
	if g.Frightened {
		g.FrightTimer--
		if g.FrightTimer <= 0 {
			g.Unfrighten()
		}
	}

	switch g.Mode {
	case ModePen:
		g.updatePen(m)
	case ModeLeaving:
		g.updateLeaving(m)
	case ModeDead:
		g.updateDead(m)
	case ModeEntering:
		g.updateEntering(m)
	default: // scatter / chase
		if g.Frightened {
			g.moveRandom(m)
			return
		}
		if g.Mode == ModeScatter {
			g.Target = g.scatterCorner
		} else {
			g.Target = g.strategy.ChaseTarget(g, ctx)
		}
		g.seekTarget(m)
	}
}

// updatePen bounces vertically between the pen floor and the gate row,
// flipping direction on a fixed period. Wall rejection clamps the bounce.
func (g *Ghost) updatePen(m *Maze) {
	g.penTicks++
	if g.penTicks%penFlipInterval == 0 {
		g.Dir = g.Dir.Opposite()
	}
	g.step(m, false)
}

// updateLeaving aligns the ghost to the gate column, rises through the
// gate, and hands over to scatter at the exit row. The horizontal
// alignment keeps off-column ghosts out of the gate's flanking walls.
func (g *Ghost) updateLeaving(m *Maze) {
	cx := tileCenter(gateCol)
	if math.Abs(g.X-cx) > centerTolerance {
		if g.X < cx {
			g.Dir = DirRight
		} else {
			g.Dir = DirLeft
		}
		g.step(m, true)
		return
	}
	g.X = cx

	exitY := tileCenter(penExitRow)
	if g.Y <= exitY {
		g.Y = exitY
		g.Mode = ModeScatter
		g.Dir = DirLeft
		return
	}
	g.Dir = DirUp
	g.step(m, true)
}

// updateDead seeks the pen entrance at full speed and switches to entering
// on arrival.
func (g *Ghost) updateDead(m *Maze) {
	if g.Centered() && g.TileCoord() == penEntrance {
		g.PlaceAtTile(penEntrance.Col, penEntrance.Row)
		g.Mode = ModeEntering
		g.Dir = DirDown
		return
	}
	g.Target = penEntrance
	g.seekTarget(m)
}

// updateEntering descends through the gate; past the pen depth row the
// ghost reinitialises to leaving as if newly released.
func (g *Ghost) updateEntering(m *Maze) {
	_, row := g.Tile()
	if row >= penDepthRow {
		g.Mode = ModeLeaving
		g.Speed = ghostSpeed
		g.Frightened = false
		g.FrightTimer = 0
		g.penTicks = 0
		g.Dir = DirUp
		return
	}
	g.Dir = DirDown
	g.step(m, true)
}

// seekTarget implements the intersection-choice pursuit: at a tile centre,
// evaluate candidates in the fixed up/down/left/right order, excluding the
// direct reverse, and take the passable one whose next tile is nearest the
// target. The strict < keeps ties with the earlier direction. Between
// centres the committed direction holds.
func (g *Ghost) seekTarget(m *Maze) {
	if g.Centered() {
		col, row := g.Tile()
		reverse := g.Dir.Opposite()
		best := g.Dir
		bestDist := math.Inf(1)
		for _, d := range seekOrder {
			if d == reverse && g.Dir != DirNone {
				continue
			}
			dx, dy := d.Delta()
			if !m.Passable(col+dx, row+dy, g.gateAllowed()) {
				continue
			}
			if dist := tileDistance(col+dx, row+dy, g.Target); dist < bestDist {
				bestDist = dist
				best = d
			}
		}
		g.Dir = best
	}
	g.step(m, g.gateAllowed())
}

// moveRandom is the frightened walk: at a tile centre pick uniformly among
// passable non-reverse directions; only a dead end forces a reversal.
func (g *Ghost) moveRandom(m *Maze) {
	if g.Centered() {
		col, row := g.Tile()
		reverse := g.Dir.Opposite()
		var candidates []Dir
		for _, d := range seekOrder {
			if d == reverse {
				continue
			}
			dx, dy := d.Delta()
			if m.Passable(col+dx, row+dy, false) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) > 0 {
			g.Dir = candidates[g.rng.Intn(len(candidates))]
		} else {
			g.Dir = reverse
		}
	}
	g.step(m, false)
}

// tileCenter returns the pixel centre of grid index i on either axis.
func tileCenter(i int) float64 {
	return float64(i*TileSize) + TileSize/2
}
