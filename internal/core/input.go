package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, minus - move paddle left
	ActionRight          // Right arrow, D, plus - move paddle right
	ActionLaunch         // Space, mouse click - launch the ball
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R - restart after game over or win
	ActionMenu           // M - back to the menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionSave           // Ctrl+S - quick-save
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
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	case ActionSave:
		return "Save"
	default:
		return "Unknown"
	}
}

// Pointer is an absolute pointer position. X is a fraction of the play
// area width in [0, 1], so terminal cells and window pixels map the same way.
type Pointer struct {
	X     float64
	Valid bool
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame and,
// when a pointer device moved, its latest position.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
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

// PointTo records an absolute pointer position for this frame.
func (f *InputFrame) PointTo(x float64) {
	f.Pointer = Pointer{X: Clamp(x, 0, 1), Valid: true}
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
