package sketch

// Event is anything a host publishes to the loop.
type Event interface {
	isEvent()
}

// ResizeEvent reports the logical size of the drawable surface. PixelRatio
// is the framebuffer-to-logical scale; zero leaves the current ratio.
type ResizeEvent struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// PointerMoveEvent carries window coordinates, origin top-left.
type PointerMoveEvent struct {
	X, Y float64
}

// PointerButtonEvent reports a primary button press or release.
type PointerButtonEvent struct {
	X, Y    float64
	Pressed bool
}

// ScrollEvent carries wheel steps; positive is away from the user.
type ScrollEvent struct {
	DY float64
}

// Action is a keyboard-level command.
type Action int

const (
	ActionTogglePlay Action = iota
	ActionProgressUp
	ActionProgressDown
	ActionResetCamera
	ActionTogglePanel
)

func (a Action) String() string {
	switch a {
	case ActionTogglePlay:
		return "toggle-play"
	case ActionProgressUp:
		return "progress-up"
	case ActionProgressDown:
		return "progress-down"
	case ActionResetCamera:
		return "reset-camera"
	case ActionTogglePanel:
		return "toggle-panel"
	}
	return "unknown"
}

// ActionEvent asks the loop to perform an Action.
type ActionEvent struct {
	Action Action
}

func (ResizeEvent) isEvent()        {}
func (PointerMoveEvent) isEvent()   {}
func (PointerButtonEvent) isEvent() {}
func (ScrollEvent) isEvent()        {}
func (ActionEvent) isEvent()        {}
