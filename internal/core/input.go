package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys, clicks and taps into actions; the game only sees intents.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left while held
	ActionRight          // D, Right arrow - move right while held
	ActionFire           // Space, W, Up - fire a thorn (edge-triggered)
	ActionStart          // Enter, click/tap on the start button - leave the title screen
	ActionRestart        // R, Space on game over - start a new session
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input intents for one simulation tick.
// Held actions (Left, Right) are set every tick the key is down; the rest
// are set once per press and consumed by the tick that sees them.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Direction folds the held movement actions into -1, 0 or +1.
func (f InputFrame) Direction() float64 {
	dir := 0.0
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}
