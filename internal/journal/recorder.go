package journal

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/stepflow/internal/logger"
	"github.com/mark3labs/stepflow/wizard"
)

// Recorder subscribes to a wizard engine's events and journals them. All
// publishing is best effort: a journal failure is logged and navigation
// continues undisturbed.
type Recorder struct {
	store *Store
	runID string
	flow  string
}

// NewRecorder creates a recorder for one run.
func NewRecorder(store *Store, runID, flow string) *Recorder {
	return &Recorder{store: store, runID: runID, flow: flow}
}

// RunID returns the run identity being recorded.
func (r *Recorder) RunID() string { return r.runID }

// Attach subscribes the recorder to the engine's observer surface:
// committed transitions become step-entered events and a close without a
// committed finish becomes a run-cancelled event. The finish itself is
// recorded by RecordFinished from the runner's close path, after the
// engine has committed it.
//
// Initialize selects the first step without a transition event, so an
// already-current step is journaled here; callers that want the first
// visit recorded initialize the engine before attaching.
func (r *Recorder) Attach(ctx context.Context, e *wizard.Engine) {
	if current := e.Current(); current != nil {
		r.recordEntered(ctx, current.ID())
	}

	e.Hooks().OnStepChanged(func(tr *wizard.Transition) {
		if tr.To == nil {
			return
		}
		r.recordEntered(ctx, tr.To.ID())
	})

	e.Hooks().OnCancelled(func() {
		r.publish(ctx, Event{Type: EventTypeRun, Action: "cancelled"})
	})
}

func (r *Recorder) recordEntered(ctx context.Context, stepID string) {
	r.publish(ctx, Event{
		Type:   EventTypeStep,
		Action: "entered",
		Data:   stepID,
	})
}

// RecordStarted journals the start of the run.
func (r *Recorder) RecordStarted(ctx context.Context) {
	r.publish(ctx, Event{Type: EventTypeRun, Action: "started"})
}

// RecordFinished journals a committed finish.
func (r *Recorder) RecordFinished(ctx context.Context) {
	r.publish(ctx, Event{Type: EventTypeRun, Action: "finished"})
}

// RecordField journals one collected answer.
func (r *Recorder) RecordField(ctx context.Context, name, value string) {
	meta, _ := json.Marshal(map[string]string{"name": name})
	r.publish(ctx, Event{
		Type:   EventTypeField,
		Action: "set",
		Meta:   meta,
		Data:   value,
	})
}

func (r *Recorder) publish(ctx context.Context, event Event) {
	if r == nil || r.store == nil {
		return
	}
	event.RunID = r.runID
	event.Flow = r.flow

	if _, err := r.store.PublishEvent(ctx, event); err != nil {
		logger.Warn("Journal write failed (run=%s type=%s): %v", r.runID, event.Type, err)
	}
}
