package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionNorth          // W, Up arrow - move away from the camera
	ActionSouth          // S, Down arrow - move toward the camera
	ActionWest           // A, Left arrow - move left
	ActionEast           // D, Right arrow - move right
	ActionJump           // Space - climb one layer up
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorth:
		return "North"
	case ActionSouth:
		return "South"
	case ActionWest:
		return "West"
	case ActionEast:
		return "East"
	case ActionJump:
		return "Jump"
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

// IsDirectional returns true for actions that steer the snake.
func (a Action) IsDirectional() bool {
	switch a {
	case ActionNorth, ActionSouth, ActionWest, ActionEast, ActionJump:
		return true
	default:
		return false
	}
}

// InputFrame represents the input state for a single simulation tick.
// Actions are kept in press order so the game can resolve conflicting
// directional input as last-pressed-wins.
type InputFrame struct {
	// Actions holds all actions triggered this frame, in press order.
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame, preserving press order.
func (f *InputFrame) Set(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// LastDirectional folds the frame's actions into a single directional
// action, keeping the most recent one. Returns ActionNone if no
// directional action was pressed this frame.
func (f InputFrame) LastDirectional() Action {
	last := ActionNone
	for _, a := range f.Actions {
		if a.IsDirectional() {
			last = a
		}
	}
	return last
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
