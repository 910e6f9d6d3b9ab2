package wizard

import "github.com/mark3labs/stepflow/internal/logger"

// The completion controller: the forward control doubles as the terminal
// finish action on the last enabled step, and a container close without a
// committed finish is an out-of-band cancellation.

// Forward dispatches the forward control. On the last enabled step it
// raises the cancelable Finishing event and, uncancelled, commits the
// finish and requests the container close. Elsewhere it raises the
// cancelable MovingNext event and advances. Returns false when an
// observer cancelled or the underlying transition was rejected.
func (e *Engine) Forward() bool {
	if !e.beginNav("Forward") {
		return false
	}
	defer e.endNav()

	if e.current != nil && e.current == e.reg.LastEnabled() {
		if !e.hooks.emitFinishing() {
			logger.Debug("wizard: finish cancelled")
			return false
		}
		e.finishCommitted = true
		logger.Info("wizard: finish committed at step %q", e.current.id)
		e.surface.RequestClose()
		return true
	}

	if !e.hooks.emitMovingNext() {
		logger.Debug("wizard: moving next cancelled")
		return false
	}
	return e.goNext()
}

// Back dispatches the back control through the cancelable MovingBack
// event.
func (e *Engine) Back() bool {
	if !e.beginNav("Back") {
		return false
	}
	defer e.endNav()

	if !e.hooks.emitMovingBack() {
		logger.Debug("wizard: moving back cancelled")
		return false
	}
	return e.goBack()
}

// NotifyClosing is the container's closing lifecycle notification. A
// close without a committed finish fires Cancelled exactly once, no
// matter how many closing signals arrive.
func (e *Engine) NotifyClosing() {
	if e.finishCommitted || e.cancelledFired {
		return
	}
	e.cancelledFired = true
	logger.Info("wizard: closed without finish, cancelled")
	e.hooks.emitCancelled()
}

// FinishCommitted reports whether the terminal finish action completed
// without cancellation.
func (e *Engine) FinishCommitted() bool { return e.finishCommitted }
