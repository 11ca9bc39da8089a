package thornfall

// Phase is the top-level game state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseExploding
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseExploding:
		return "exploding"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event drives phase transitions.
type Event int

const (
	EventStart Event = iota
	EventLethalHit
	EventExplosionDone
	EventRestart
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventLethalHit:
		return "lethal_hit"
	case EventExplosionDone:
		return "explosion_done"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

var transitions = map[Phase]map[Event]Phase{
	PhaseTitle:     {EventStart: PhasePlaying},
	PhasePlaying:   {EventLethalHit: PhaseExploding},
	PhaseExploding: {EventExplosionDone: PhaseGameOver},
	PhaseGameOver:  {EventRestart: PhasePlaying},
}

// Next returns the phase reached from p on e.
// ok is false when e is not accepted in p; the phase is then unchanged.
func (p Phase) Next(e Event) (Phase, bool) {
	next, ok := transitions[p][e]
	if !ok {
		return p, false
	}
	return next, true
}
