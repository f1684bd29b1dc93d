package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/jspeirs/mazechomp/internal/sim"
)

var (
	colWall   = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	colGate   = color.RGBA{R: 255, G: 184, B: 222, A: 255}
	colPellet = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colPlayer = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colFright = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	colWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colBlack  = color.RGBA{A: 255}
	colRed    = color.RGBA{R: 255, A: 255}

	ghostColors = [sim.GhostCount]color.RGBA{
		sim.GhostChaser:   {R: 255, G: 0, B: 0, A: 255},
		sim.GhostAmbusher: {R: 255, G: 184, B: 255, A: 255},
		sim.GhostFlanker:  {R: 0, G: 255, B: 255, A: 255},
		sim.GhostShy:      {R: 255, G: 184, B: 82, A: 255},
	}
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colBlack)
	snap := a.sim.Snapshot()

	a.drawMaze(screen, snap)
	if snap.Phase != sim.PhaseDying {
		drawPlayer(screen, snap.Player)
	}
	for _, g := range snap.Ghosts {
		drawGhost(screen, g)
	}
	a.drawHUD(screen, snap)
}

func (a *App) drawMaze(screen *ebiten.Image, snap sim.Snapshot) {
	for row := 0; row < sim.MazeRows; row++ {
		for col := 0; col < sim.MazeCols; col++ {
			x := float32(col * sim.TileSize)
			y := float32(row * sim.TileSize)
			switch {
			case a.sim.KindAt(col, row) == sim.TileWall:
				vector.FillRect(screen, x, y, sim.TileSize, sim.TileSize, colWall, false)
			case a.sim.KindAt(col, row) == sim.TileGate:
				vector.FillRect(screen, x, y+8, sim.TileSize, 4, colGate, false)
			}

			cx := x + sim.TileSize/2
			cy := y + sim.TileSize/2
			switch a.sim.PelletAt(col, row) {
			case sim.PelletDot:
				vector.DrawFilledCircle(screen, cx, cy, 2, colPellet, false)
			case sim.PelletPower:
				if snap.BlinkOn {
					vector.DrawFilledCircle(screen, cx, cy, 6, colPellet, false)
				}
			}
		}
	}
}

// drawPlayer renders the body circle, then cuts the mouth wedge with a fan
// of background-coloured lines. The wedge opens toward the heading and its
// half-angle follows the mouth phase.
func drawPlayer(screen *ebiten.Image, p sim.PlayerSnapshot) {
	const radius = 8
	cx, cy := float32(p.X), float32(p.Y)
	vector.DrawFilledCircle(screen, cx, cy, radius, colPlayer, false)

	mouth := math.Abs(math.Sin(p.MouthPhase)) * 0.8
	if mouth < 0.1 {
		return
	}
	var heading float64
	switch p.Dir {
	case sim.DirRight:
		heading = 0
	case sim.DirDown:
		heading = math.Pi / 2
	case sim.DirLeft:
		heading = math.Pi
	case sim.DirUp:
		heading = 3 * math.Pi / 2
	default:
		heading = 0
	}
	const fan = 9
	for i := 0; i < fan; i++ {
		angle := heading - mouth + 2*mouth*float64(i)/float64(fan-1)
		ex := cx + float32((radius+1)*math.Cos(angle))
		ey := cy + float32((radius+1)*math.Sin(angle))
		vector.StrokeLine(screen, cx, cy, ex, ey, 2.5, colBlack, false)
	}
}

func drawGhost(screen *ebiten.Image, g sim.GhostSnapshot) {
	cx, cy := float32(g.X), float32(g.Y)

	if g.Mode != sim.ModeDead {
		body := ghostColors[g.ID]
		if g.Frightened {
			body = colFright
		}
		vector.DrawFilledCircle(screen, cx, cy, 8, body, false)
	}

	// Eyes render in every state; a dead ghost is nothing but eyes.
	eyeR := float32(2)
	if g.Mode == sim.ModeDead {
		eyeR = 3
	}
	vector.DrawFilledCircle(screen, cx-3, cy-2, eyeR, colWhite, false)
	vector.DrawFilledCircle(screen, cx+3, cy-2, eyeR, colWhite, false)
	vector.DrawFilledCircle(screen, cx-3, cy-2, 1, colBlack, false)
	vector.DrawFilledCircle(screen, cx+3, cy-2, 1, colBlack, false)
}

func (a *App) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	a.hudBuf.Clear()
	face := basicfont.Face7x13

	text.Draw(a.hudBuf, fmt.Sprintf("SCORE %06d", snap.Score), face, 4, 14, colPellet)
	text.Draw(a.hudBuf, fmt.Sprintf("HIGH %06d", snap.HighScore), face, ScreenW/hudScale-100, 14, colPellet)
	text.Draw(a.hudBuf, fmt.Sprintf("LEVEL %d", snap.Level), face, 4, 30, colWhite)
	if a.paused {
		text.Draw(a.hudBuf, "PAUSED", face, ScreenW/hudScale/2-20, 30, colWhite)
	}

	// Reserve lives: one marker per life beyond the one in play.
	for i := 0; i < snap.Lives-1; i++ {
		vector.DrawFilledCircle(a.hudBuf, float32(8+i*14), 40, 5, colPlayer, false)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(0, float64(sim.TileSize*sim.MazeRows))
	screen.DrawImage(a.hudBuf, op)

	// Centre banners over the playfield.
	switch snap.Phase {
	case sim.PhaseReady:
		drawBanner(screen, "READY!", colPellet, 17)
	case sim.PhaseGameOver:
		drawBanner(screen, "GAME OVER", colRed, 17)
		drawBanner(screen, "PRESS R TO RESTART", colWhite, 18)
	}
}

// drawBanner centres msg horizontally on the given maze row.
func drawBanner(screen *ebiten.Image, msg string, col color.RGBA, row int) {
	face := basicfont.Face7x13
	w := len(msg) * 7
	text.Draw(screen, msg, face, ScreenW/2-w/2, sim.TileSize*row+14, col)
}
