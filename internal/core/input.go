package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move up
	ActionDown              // S, Down arrow - move down
	ActionLeft              // A, Left arrow - move left
	ActionRight             // D, Right arrow - move right
	ActionConfirm           // Enter, Space - start or resume a run
	ActionPause             // P, Escape - pause/unpause game
	ActionBack              // M - return to the menu
	ActionScoreboard        // Tab - open the session scoreboard
	ActionQuit              // Q, Ctrl+C - exit game/session
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
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement directions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame is the input snapshot sampled once per simulation frame.
//
// Directions are level-triggered: they stay set for as long as the key is
// held. Every other action is edge-triggered and fires once.
type InputFrame struct {
	// Actions holds the edge-triggered actions raised since the last frame.
	Actions map[Action]bool

	// Held holds the movement directions currently held down.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an edge action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given edge action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks a direction as held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Holding returns true if the given direction is held.
func (f InputFrame) Holding(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Axis returns the horizontal and vertical intent as -1, 0 or 1.
// Opposite directions held together cancel out.
func (f InputFrame) Axis() (int, int) {
	dx, dy := 0, 0
	if f.Holding(ActionRight) {
		dx++
	}
	if f.Holding(ActionLeft) {
		dx--
	}
	if f.Holding(ActionDown) {
		dy++
	}
	if f.Holding(ActionUp) {
		dy--
	}
	return dx, dy
}

// Clear resets all actions and held directions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
