package wizard

// Control identifies one of the two wizard navigation controls.
type Control int

const (
	ControlBack Control = iota
	ControlForward
)

// String returns the control name used in logs.
func (c Control) String() string {
	switch c {
	case ControlBack:
		return "back"
	case ControlForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Surface is the container collaborator injected into the engine: the
// window title, the two navigation controls, focus, layout and the close
// request. The terminal runner's bubbletea model implements it; tests and
// the headless driver use in-memory implementations, which keeps the
// engine testable without a real UI.
type Surface interface {
	SetTitle(title string)
	SetControlLabel(c Control, label string)
	SetControlVisible(c Control, visible bool)
	SetFocus(c Control)
	HasFocus(c Control) bool
	Relayout()
	Redraw()
	RequestClose()
}
