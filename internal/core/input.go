package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Move cursor up
	ActionDown           // Move cursor down
	ActionLeft           // Move cursor left
	ActionRight          // Move cursor right
	ActionReveal         // Uncover the cell under the cursor
	ActionFlag           // Toggle a flag under the cursor
	ActionChord          // Reveal around a satisfied number
	ActionCheat          // Flag every mine
	ActionRestart        // Start a new board
	ActionQuit           // Leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionChord:
		return "Chord"
	case ActionCheat:
		return "Cheat"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one tick, in arrival order.
// Cursor moves and reveals must be applied in the order they were typed.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
