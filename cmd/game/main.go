package main

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/jspeirs/mazechomp/internal/app"
	"github.com/jspeirs/mazechomp/internal/audio"
	"github.com/jspeirs/mazechomp/internal/sim"
	"github.com/jspeirs/mazechomp/internal/telemetry"
)

func main() {
	// .env is optional; OTEL_* vars may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	tracer := telemetry.NoopTracer()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("warning: telemetry setup failed, running without it: %v", err)
	} else {
		tracer = telemetry.Tracer("game")
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("telemetry shutdown: %v", err)
			}
		}()
	}

	snd := audio.NewSoundManager()
	if err := snd.Initialize(); err != nil {
		log.Printf("warning: audio unavailable: %v", err)
	}
	defer snd.Cleanup()

	s := sim.New(time.Now().UnixNano())

	ebiten.SetWindowTitle("Maze Chomp")
	ebiten.SetWindowSize(app.ScreenW, app.ScreenH)
	if err := ebiten.RunGame(app.New(ctx, s, snd, tracer)); err != nil {
		log.Fatal(err)
	}
}
