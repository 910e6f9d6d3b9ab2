package wizard

import "github.com/mark3labs/stepflow/internal/locale"

// The presentation synchronizer derives control state from the registry
// and the cursor and pushes it to the surface. The computations are plain
// functions of their inputs; the only side effects are the surface calls.

// compositeTitle is the window title: the base title, extended with
// " - <step title>" when the registry is non-empty and a current step is
// set.
func compositeTitle(base string, reg *Registry, current *Step) string {
	if reg.Len() == 0 || current == nil {
		return base
	}
	return base + " - " + current.title
}

// backLabel is the back control caption: the step override when set, else
// the localized default.
func backLabel(current *Step) string {
	if current != nil && current.backLabel != "" {
		return current.backLabel
	}
	return locale.Back()
}

// forwardLabel is the forward control caption: the step override when
// set; otherwise localized "Finish" on the last enabled step and
// localized "Next" everywhere else.
func forwardLabel(reg *Registry, current *Step) string {
	if current != nil && current.forwardLabel != "" {
		return current.forwardLabel
	}
	if current != nil && current == reg.LastEnabled() {
		return locale.Finish()
	}
	return locale.Next()
}

// backVisible hides the back control on the first enabled step. The
// comparison is against first-enabled, not first-in-registry: a disabled
// leading step does not make back appear.
func backVisible(reg *Registry, current *Step) bool {
	return current != reg.FirstEnabled()
}

// syncPresentation pushes the derived values and asks the surface to
// relayout and redraw. It runs after every committed transition and
// whenever a registered step's title or enabled flag changes, and is a
// no-op entirely while the cursor is unset.
func (e *Engine) syncPresentation() {
	if e.current == nil {
		return
	}

	e.surface.SetTitle(compositeTitle(e.title, e.reg, e.current))
	e.surface.SetControlLabel(ControlBack, backLabel(e.current))
	e.surface.SetControlVisible(ControlBack, backVisible(e.reg, e.current))
	e.surface.SetControlLabel(ControlForward, forwardLabel(e.reg, e.current))
	e.surface.Relayout()
	e.surface.Redraw()
}
