package core

import "time"

// Action represents a semantic input event, abstracted from physical keys and
// pointer buttons.
type Action int

const (
	ActionNone        Action = iota
	ActionFlapKey            // Space, Up, W
	ActionFlapPointer        // Pointer button press; only the primary button flaps
	ActionQuit               // Q, Esc, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlapKey:
		return "FlapKey"
	case ActionFlapPointer:
		return "FlapPointer"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerButton identifies which pointer button produced a press.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is a single input occurrence. Button is only meaningful for
// ActionFlapPointer.
type Event struct {
	Action Action
	Button PointerButton
}

// IsFlap reports whether the event is flap-equivalent input. Pointer presses
// of anything but the primary button are ignorable.
func (e Event) IsFlap() bool {
	switch e.Action {
	case ActionFlapKey:
		return true
	case ActionFlapPointer:
		return e.Button == ButtonLeft
	default:
		return false
	}
}

// InputFrame collects the input that arrived during one simulation tick, in
// arrival order, together with the wall-clock time the tick covers.
type InputFrame struct {
	Events []Event

	// Elapsed is the measured frame time. Zero means the nominal tick duration.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]Event, 0, 4)}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e Event) {
	f.Events = append(f.Events, e)
}

// Set appends a button-less event for the given action.
func (f *InputFrame) Set(a Action) {
	f.Push(Event{Action: a})
}

// Clear resets the frame for the next tick, keeping its backing storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
	f.Elapsed = 0
}
