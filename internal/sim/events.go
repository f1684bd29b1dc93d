package sim

// EventKind labels the discrete occurrences the round controller emits each
// tick. Consumers (audio, telemetry, the headless reporter) drain the queue
// after every Update; events are facts, not commands.
type EventKind uint8

const (
	EventPelletEaten EventKind = iota
	EventPowerPelletEaten
	EventGhostEaten
	EventPlayerDied
	EventLevelComplete
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventPelletEaten:
		return "pellet_eaten"
	case EventPowerPelletEaten:
		return "power_pellet_eaten"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventPlayerDied:
		return "player_died"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one queued occurrence. Ghost is meaningful only for
// EventGhostEaten; Score carries the points awarded, when any.
type Event struct {
	Kind  EventKind
	Ghost GhostID
	Score int
}
