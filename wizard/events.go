package wizard

// Transition is the argument delivered to StepChanging and StepChanged
// observers. From and To are nil when the cursor is unset on that side.
// Setting Cancel inside a StepChanging observer aborts the transition
// before any state changes; inside a StepChanged observer it only makes
// GoToStep report failure - the commit already happened and is not rolled
// back.
type Transition struct {
	From   *Step
	To     *Step
	Cancel bool
}

// Intent is the argument delivered to MovingNext, MovingBack and
// Finishing observers. Setting Cancel stops the action before any
// navigation or close happens.
type Intent struct {
	Cancel bool
}

// Hooks is the wizard's observer registry: one subscriber list per event
// kind, delivered synchronously in subscription order on the caller's
// goroutine. Observers must not issue navigation calls from inside a
// delivery; the engine rejects such re-entrant calls.
type Hooks struct {
	stepChanging []func(*Transition)
	stepChanged  []func(*Transition)
	movingNext   []func(*Intent)
	movingBack   []func(*Intent)
	finishing    []func(*Intent)
	cancelled    []func()
}

// OnStepChanging subscribes to the cancelable pre-transition event.
func (h *Hooks) OnStepChanging(fn func(*Transition)) {
	h.stepChanging = append(h.stepChanging, fn)
}

// OnStepChanged subscribes to the post-commit transition event.
func (h *Hooks) OnStepChanged(fn func(*Transition)) {
	h.stepChanged = append(h.stepChanged, fn)
}

// OnMovingNext subscribes to the forward action's pre-traversal event.
func (h *Hooks) OnMovingNext(fn func(*Intent)) {
	h.movingNext = append(h.movingNext, fn)
}

// OnMovingBack subscribes to the back action's pre-traversal event.
func (h *Hooks) OnMovingBack(fn func(*Intent)) {
	h.movingBack = append(h.movingBack, fn)
}

// OnFinishing subscribes to the cancelable finish event raised by the
// forward action on the last enabled step.
func (h *Hooks) OnFinishing(fn func(*Intent)) {
	h.finishing = append(h.finishing, fn)
}

// OnCancelled subscribes to the non-cancelable event fired exactly once
// when the wizard closes without a committed finish.
func (h *Hooks) OnCancelled(fn func()) {
	h.cancelled = append(h.cancelled, fn)
}

// emitStepChanging reports whether the transition may proceed.
func (h *Hooks) emitStepChanging(from, to *Step) bool {
	t := &Transition{From: from, To: to}
	for _, fn := range h.stepChanging {
		fn(t)
	}
	return !t.Cancel
}

// emitStepChanged reports whether any observer flagged the committed
// transition; the flag only affects GoToStep's return value.
func (h *Hooks) emitStepChanged(from, to *Step) bool {
	t := &Transition{From: from, To: to}
	for _, fn := range h.stepChanged {
		fn(t)
	}
	return !t.Cancel
}

func emitIntent(fns []func(*Intent)) bool {
	in := &Intent{}
	for _, fn := range fns {
		fn(in)
	}
	return !in.Cancel
}

func (h *Hooks) emitMovingNext() bool { return emitIntent(h.movingNext) }
func (h *Hooks) emitMovingBack() bool { return emitIntent(h.movingBack) }
func (h *Hooks) emitFinishing() bool  { return emitIntent(h.finishing) }

func (h *Hooks) emitCancelled() {
	for _, fn := range h.cancelled {
		fn()
	}
}
