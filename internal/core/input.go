package core

// Action is a semantic game action, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space, left mouse button
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R, Enter after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
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
	case ActionFire:
		return "Fire"
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

// Pointer is the last known mouse position in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool // False until the first mouse event
}

// InputFrame is the input state for one simulation tick.
// Direction actions are present while the key is held; the rest are
// one-shot triggers for the tick they arrived in.
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

// Set marks an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is present this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetPointer records a pointer position in screen cells.
func (f *InputFrame) SetPointer(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true}
}

// Clear drops all actions. The pointer is sticky across frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone returns a copy that shares no state with f.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
