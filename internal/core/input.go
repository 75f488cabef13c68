package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone                Action = iota
	ActionDown                       // S, Down arrow - soft drop
	ActionLeft                       // A, Left arrow - shift left
	ActionRight                      // D, Right arrow - shift right
	ActionRotateClockwise            // K, W, Up arrow
	ActionRotateAntiClockwise        // J, Z
	ActionConfirm                    // Enter - confirm selection in menu
	ActionBack                       // B - go back to menu
	ActionRestart                    // R key - restart game after game over
	ActionQuit                       // Q, Ctrl+C - exit game/session
	ActionPause                      // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotateClockwise:
		return "RotateClockwise"
	case ActionRotateAntiClockwise:
		return "RotateAntiClockwise"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one platform frame.
// Held actions (movement, rotation) stay set for as long as the key is down;
// edge actions (pause, restart) are set only on the frame they were pressed.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
