package events

// Event is an input delivered to the simulation between frames.
// Handlers apply it immediately; nothing here blocks.
type Event interface {
	event()
}

// WheelMsg is a mouse wheel notch. Positive Delta scrolls down, in pixels.
type WheelMsg struct {
	Delta float64
}

// DragPhase identifies where a pointer drag is in its lifecycle
type DragPhase int

const (
	DragStart DragPhase = iota
	DragMove
	DragEnd
)

// DragMsg is a pointer press, motion or release at vertical pixel position Y
type DragMsg struct {
	Phase DragPhase
	Y     float64
}

// Action is a keyboard command understood by the simulation
type Action int

const (
	ActionToggleAutoScroll Action = iota
	ActionReset
)

// KeyMsg carries a resolved keyboard action.
// Key-to-action mapping belongs to the host.
type KeyMsg struct {
	Action Action
}

// ResizeMsg reports the new window size in pixels
type ResizeMsg struct {
	Width  float64
	Height float64
}

func (WheelMsg) event()  {}
func (DragMsg) event()   {}
func (KeyMsg) event()    {}
func (ResizeMsg) event() {}

func (a Action) String() string {
	switch a {
	case ActionToggleAutoScroll:
		return "toggle-autoscroll"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}
