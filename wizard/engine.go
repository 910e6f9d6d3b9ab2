// Package wizard implements the step-navigation engine for sequential
// workflow UIs: an ordered registry of independently enableable steps, a
// current-step cursor, forward/backward traversal that skips disabled
// steps, and a cancelable transition protocol that keeps derived
// presentation state (composite title, control labels and visibility)
// consistent with the current step.
//
// The engine is single-threaded and event-driven: every operation runs
// synchronously on the caller's goroutine and nothing blocks. Embedders
// integrating with concurrent code must marshal calls onto one goroutine;
// the flowmcp driver shows the channel-based pattern for that.
package wizard

import "github.com/mark3labs/stepflow/internal/logger"

// Engine owns the navigation state: the step registry, the current-step
// cursor and the finish flag. All mutation goes through its methods;
// collaborators only ever receive derived presentation values.
type Engine struct {
	title   string
	reg     *Registry
	surface Surface
	hooks   Hooks

	current         *Step
	finishCommitted bool
	cancelledFired  bool
	navigating      bool
}

// NewEngine wires the engine to its registry and container surface. Steps
// appended before or after construction both notify the engine when their
// title or enabled flag changes.
func NewEngine(title string, reg *Registry, surface Surface) *Engine {
	e := &Engine{title: title, reg: reg, surface: surface}
	reg.watch = func(*Step) { e.syncPresentation() }
	return e
}

// Title returns the base wizard title.
func (e *Engine) Title() string { return e.title }

// Hooks returns the observer registry.
func (e *Engine) Hooks() *Hooks { return &e.hooks }

// Current returns the current step, or nil while the cursor is unset.
func (e *Engine) Current() *Step { return e.current }

// Registry returns the engine's step registry.
func (e *Engine) Registry() *Registry { return e.reg }

// Initialize selects the first enabled step as current. It is idempotent:
// once the cursor is set, further calls do nothing. The selection is
// silent - no transition events fire - so after initialization the cursor
// is never left unset while an enabled step exists. With no enabled step
// the cursor stays unset.
func (e *Engine) Initialize() {
	if e.current != nil {
		return
	}
	first := e.reg.FirstEnabled()
	if first == nil {
		logger.Debug("wizard: initialize found no enabled step")
		return
	}

	for _, s := range e.reg.steps {
		s.setVisible(s == first)
	}
	e.current = first
	logger.Debug("wizard: initialized at step %q", first.id)
	e.syncPresentation()
}

// NextEnabledAfter scans forward in insertion order from the position
// after s, returning the first enabled step. A nil s, or one that is not
// registered, scans from the start. Returns nil when exhausted.
func (e *Engine) NextEnabledAfter(s *Step) *Step {
	start := 0
	if i := e.reg.IndexOf(s); i >= 0 {
		start = i + 1
	}
	for i := start; i < e.reg.Len(); i++ {
		if st := e.reg.At(i); st.enabled {
			return st
		}
	}
	return nil
}

// PreviousEnabledBefore scans backward from the position before s. A nil
// s, or one that is not registered, scans from the end. Returns nil when
// exhausted.
func (e *Engine) PreviousEnabledBefore(s *Step) *Step {
	start := e.reg.Len() - 1
	if i := e.reg.IndexOf(s); i >= 0 {
		start = i - 1
	}
	for i := start; i >= 0; i-- {
		if st := e.reg.At(i); st.enabled {
			return st
		}
	}
	return nil
}

// GoNext advances to the next enabled step after the current one. Having
// no step to advance to is a silent no-op returning true: boundaries are
// normal flow, not failures. False means the transition was rejected.
func (e *Engine) GoNext() bool {
	if !e.beginNav("GoNext") {
		return false
	}
	defer e.endNav()
	return e.goNext()
}

// GoBack is the backward counterpart of GoNext. Neither ever wraps
// around.
func (e *Engine) GoBack() bool {
	if !e.beginNav("GoBack") {
		return false
	}
	defer e.endNav()
	return e.goBack()
}

// GoToStep runs the transition protocol toward target; a nil target
// clears the cursor. The protocol, in order:
//
//  1. StepChanging fires; an observer cancel, or a non-nil disabled
//     target, aborts with no state change.
//  2. Every registered step's pane visibility becomes step == target, so
//     exactly one pane is visible (zero for a nil target).
//  3. The cursor commits.
//  4. Presentation is resynchronized.
//  5. Focus moves to the back control if it currently holds focus, else
//     to the forward control.
//  6. StepChanged fires; a cancel here is informational only - the commit
//     stands and only the return value reports failure.
func (e *Engine) GoToStep(target *Step) bool {
	if !e.beginNav("GoToStep") {
		return false
	}
	defer e.endNav()
	return e.goToStep(target)
}

func (e *Engine) goNext() bool {
	target := e.NextEnabledAfter(e.current)
	if target == nil {
		return true
	}
	return e.goToStep(target)
}

func (e *Engine) goBack() bool {
	target := e.PreviousEnabledBefore(e.current)
	if target == nil {
		return true
	}
	return e.goToStep(target)
}

func (e *Engine) goToStep(target *Step) bool {
	old := e.current

	if !e.hooks.emitStepChanging(old, target) {
		logger.Debug("wizard: transition %s -> %s cancelled", stepID(old), stepID(target))
		return false
	}
	if target != nil && !target.enabled {
		logger.Debug("wizard: transition to disabled step %q rejected", target.id)
		return false
	}

	for _, s := range e.reg.steps {
		s.setVisible(s == target)
	}
	e.current = target
	e.syncPresentation()

	if e.surface.HasFocus(ControlBack) {
		e.surface.SetFocus(ControlBack)
	} else {
		e.surface.SetFocus(ControlForward)
	}

	logger.Debug("wizard: step %s -> %s", stepID(old), stepID(target))
	return e.hooks.emitStepChanged(old, target)
}

// beginNav is the re-entrancy gate: observers run synchronously inside
// navigation calls and must not navigate themselves. A nested call is
// rejected instead of corrupting the in-flight transition.
func (e *Engine) beginNav(op string) bool {
	if e.navigating {
		logger.Warn("wizard: re-entrant %s rejected", op)
		return false
	}
	e.navigating = true
	return true
}

func (e *Engine) endNav() { e.navigating = false }

func stepID(s *Step) string {
	if s == nil {
		return "<unset>"
	}
	return s.id
}
