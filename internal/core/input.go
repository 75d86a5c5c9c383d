package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionDigit          // 0-9 - append to the answer buffer
	ActionDelete         // Backspace - remove the last buffered character
	ActionConfirm        // Enter - start a run or submit an answer
	ActionQuit           // Escape - leave the game over screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDigit:
		return "Digit"
	case ActionDelete:
		return "Delete"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Rune is set for ActionDigit.
type Event struct {
	Action Action
	Rune   rune
}

// InputFrame holds the input events received during one frame, in arrival order.
// Unlike a set of flags, the frame keeps every keystroke so that typing
// "12<enter>" within one frame is replayed exactly as typed.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event to the frame. ActionNone is dropped.
func (f *InputFrame) Push(e Event) {
	if e.Action == ActionNone {
		return
	}
	f.Events = append(f.Events, e)
}

// Set appends an action without a rune.
func (f *InputFrame) Set(a Action) {
	f.Push(Event{Action: a})
}

// Digit appends a digit keystroke.
func (f *InputFrame) Digit(r rune) {
	f.Push(Event{Action: ActionDigit, Rune: r})
}

// Has returns true if the given action occurred this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a {
			return true
		}
	}
	return false
}

// Len returns the number of buffered events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for the next tick, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
