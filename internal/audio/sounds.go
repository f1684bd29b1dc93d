package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/jspeirs/mazechomp/internal/sim"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker and synthesises the game's effects on
// demand. Every effect is generated, not sampled, so there are no assets to
// load; a failed Initialize leaves the manager silent but safe to call.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	// munchFlip alternates the two pellet blips for the classic waka.
	munchFlip bool
}

// NewSoundManager creates an uninitialised manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences and detaches everything.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// HandleEvent plays the effect matching one simulation event.
func (sm *SoundManager) HandleEvent(e sim.Event) {
	switch e.Kind {
	case sim.EventPelletEaten:
		sm.playMunch()
	case sim.EventPowerPelletEaten:
		sm.playPowerUp()
	case sim.EventGhostEaten:
		sm.playGhostEaten()
	case sim.EventPlayerDied:
		sm.playDeath()
	case sim.EventLevelComplete:
		sm.playLevelComplete()
	case sim.EventGameOver:
		sm.playDeath()
	}
}

// play mixes a streamer in at reduced volume. Volume uses base-2 exponents;
// -2 is a quarter of full scale.
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: -2})
	speaker.Unlock()
}

func (sm *SoundManager) playMunch() {
	sm.mu.Lock()
	flip := sm.munchFlip
	sm.munchFlip = !sm.munchFlip
	sm.mu.Unlock()

	if flip {
		sm.play(NewEnvelope(
			NewSweep(400, 200, 100*time.Millisecond, WaveSquare, sampleRate, false),
			100*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond, sampleRate))
		return
	}
	sm.play(NewEnvelope(
		NewOscillator(800, 50*time.Millisecond, WaveSquare, sampleRate),
		50*time.Millisecond, 2*time.Millisecond, 10*time.Millisecond, sampleRate))
}

func (sm *SoundManager) playPowerUp() {
	sm.play(NewEnvelope(
		NewSweep(400, 800, 300*time.Millisecond, WaveSquare, sampleRate, false),
		300*time.Millisecond, 5*time.Millisecond, 50*time.Millisecond, sampleRate))
}

func (sm *SoundManager) playGhostEaten() {
	sm.play(NewEnvelope(
		NewOscillator(1000, 200*time.Millisecond, WaveSine, sampleRate),
		200*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, sampleRate))
}

func (sm *SoundManager) playDeath() {
	sm.play(NewSweep(500, 50, time.Second, WaveSaw, sampleRate, true))
}

func (sm *SoundManager) playLevelComplete() {
	sm.play(NewEnvelope(
		NewSweep(300, 1200, 500*time.Millisecond, WaveSine, sampleRate, false),
		500*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, sampleRate))
}
