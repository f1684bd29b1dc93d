package app

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jspeirs/mazechomp/internal/audio"
	"github.com/jspeirs/mazechomp/internal/sim"
)

// Screen geometry: the playfield plus a HUD strip below it.
const (
	ScreenW = sim.TileSize * sim.MazeCols
	ScreenH = sim.TileSize*sim.MazeRows + hudHeight

	hudHeight = 100

	// hudScale is the integer upscale factor applied to all HUD text.
	hudScale = 2
)

// App is the ebiten shell around the simulation: input, rendering, audio
// dispatch, and telemetry. All game rules live in the sim package; App only
// translates keys in and frames out.
type App struct {
	sim    *sim.Sim
	snd    *audio.SoundManager
	tracer trace.Tracer
	ctx    context.Context

	paused   bool
	prevKeys map[ebiten.Key]bool

	// Offscreen buffer for HUD text — rendered at 1x then blitted at hudScale.
	hudBuf *ebiten.Image
}

// New wires the shell. snd may be uninitialised (silent) and tracer may be
// a noop; both are dispatch targets, not dependencies.
func New(ctx context.Context, s *sim.Sim, snd *audio.SoundManager, tracer trace.Tracer) *App {
	return &App{
		sim:      s,
		snd:      snd,
		tracer:   tracer,
		ctx:      ctx,
		prevKeys: make(map[ebiten.Key]bool),
		hudBuf:   ebiten.NewImage(ScreenW/hudScale, hudHeight/hudScale),
	}
}

func (a *App) Update() error {
	a.handleInput()
	if a.paused {
		return nil
	}

	a.sim.Update()
	for _, e := range a.sim.Events() {
		a.snd.HandleEvent(e)
		a.recordEvent(e)
	}
	return nil
}

// handleInput maps keys to simulation inputs. Steering is level-triggered
// (held arrows keep requesting the turn); everything else is edge-triggered.
func (a *App) handleInput() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		a.sim.SetDesiredDirection(sim.DirUp)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		a.sim.SetDesiredDirection(sim.DirDown)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		a.sim.SetDesiredDirection(sim.DirLeft)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		a.sim.SetDesiredDirection(sim.DirRight)
	}

	currentKeys := map[ebiten.Key]bool{}
	for _, k := range []ebiten.Key{ebiten.KeyR, ebiten.KeyP, ebiten.KeyC} {
		currentKeys[k] = ebiten.IsKeyPressed(k)
	}

	if currentKeys[ebiten.KeyR] && !a.prevKeys[ebiten.KeyR] {
		a.sim.Restart()
	}
	if currentKeys[ebiten.KeyP] && !a.prevKeys[ebiten.KeyP] {
		a.paused = !a.paused
	}
	if currentKeys[ebiten.KeyC] && !a.prevKeys[ebiten.KeyC] {
		if err := a.copyDebugReport(); err != nil {
			log.Printf("debug report copy failed: %v", err)
		}
	}

	a.prevKeys = currentKeys
}

// recordEvent emits a zero-duration span for round milestones. Pellet-level
// events are too chatty to trace.
func (a *App) recordEvent(e sim.Event) {
	var name string
	switch e.Kind {
	case sim.EventPlayerDied:
		name = "player_died"
	case sim.EventLevelComplete:
		name = "level_complete"
	case sim.EventGameOver:
		name = "game_over"
	default:
		return
	}
	_, span := a.tracer.Start(a.ctx, name, trace.WithAttributes(
		attribute.Int("game.score", a.sim.Score()),
		attribute.Int("game.level", a.sim.Level()),
		attribute.Int("game.lives", a.sim.Lives()),
		attribute.Int64("game.tick", int64(a.sim.Tick())),
	))
	span.End()
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenW, ScreenH
}
