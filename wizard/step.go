package wizard

import "github.com/gosimple/slug"

// StepPane is the visual collaborator a step may be bound to. The engine
// only ever toggles visibility; rendering, sizing and input stay with the
// embedder.
type StepPane interface {
	SetVisible(visible bool)
}

// Step is one navigable unit of a wizard. Steps are handled by reference:
// the registry stores the pointer it was given and never copies it, so a
// step's identity is stable for the lifetime of the wizard.
type Step struct {
	id           string
	title        string
	enabled      bool
	forwardLabel string
	backLabel    string
	pane         StepPane
	notify       func()
}

// NewStep creates an enabled step. An empty id is derived from the title,
// so NewStep("", "Choose Template") gets the id "choose-template".
func NewStep(id, title string) *Step {
	if id == "" {
		id = slug.Make(title)
	}
	return &Step{id: id, title: title, enabled: true}
}

// ID returns the step's identity. It never changes after registration.
func (s *Step) ID() string { return s.id }

// Title returns the step title used in the composite wizard title.
func (s *Step) Title() string { return s.title }

// SetTitle updates the title. Registered steps trigger a presentation
// resync.
func (s *Step) SetTitle(title string) {
	s.title = title
	s.changed()
}

// Enabled reports whether the step is eligible as a traversal target.
// Disabled steps stay in the registry but are skipped by navigation.
func (s *Step) Enabled() bool { return s.enabled }

// SetEnabled flips traversal eligibility. Disabling the current step does
// not evict it; the cursor keeps pointing at it until the next navigation,
// which uses it as the baseline only.
func (s *Step) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.changed()
}

// ForwardLabel returns the per-step forward caption override, or "" when
// the localized default applies.
func (s *Step) ForwardLabel() string { return s.forwardLabel }

// SetForwardLabel sets the forward caption override ("" restores the
// default).
func (s *Step) SetForwardLabel(label string) { s.forwardLabel = label }

// BackLabel returns the per-step back caption override, or "".
func (s *Step) BackLabel() string { return s.backLabel }

// SetBackLabel sets the back caption override ("" restores the default).
func (s *Step) SetBackLabel(label string) { s.backLabel = label }

// BindPane attaches the visual collaborator whose visibility the engine
// toggles during transitions. Steps without a pane are still navigable.
func (s *Step) BindPane(p StepPane) { s.pane = p }

// Pane returns the bound pane, or nil.
func (s *Step) Pane() StepPane { return s.pane }

func (s *Step) setVisible(visible bool) {
	if s.pane != nil {
		s.pane.SetVisible(visible)
	}
}

func (s *Step) changed() {
	if s.notify != nil {
		s.notify()
	}
}
