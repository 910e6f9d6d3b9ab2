package wizard

import (
	"errors"
	"fmt"
)

// ErrDuplicateStep is returned by Registry.Append when a step with the
// same identity is already registered. This is a programmer error on the
// setup path, not something to recover from at runtime.
var ErrDuplicateStep = errors.New("duplicate step")

// ErrStepNotFound is used by layers that resolve steps by id (flow files,
// the remote driver). The registry itself reports absence through boolean
// results, not errors.
var ErrStepNotFound = errors.New("step not found")

// Registry is the ordered, append-only collection of steps. Insertion
// order is traversal order; steps are never removed or reordered.
type Registry struct {
	steps []*Step
	index map[string]int

	// watch is installed by the engine so step mutations resync
	// presentation.
	watch func(*Step)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Append adds a step at the end. Appending a step whose identity is
// already registered fails with ErrDuplicateStep.
func (r *Registry) Append(s *Step) error {
	if s == nil {
		return errors.New("nil step")
	}
	if _, ok := r.index[s.id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateStep, s.id)
	}

	r.index[s.id] = len(r.steps)
	r.steps = append(r.steps, s)
	s.notify = func() {
		if r.watch != nil {
			r.watch(s)
		}
	}
	return nil
}

// Find returns the position of the step with the given id.
func (r *Registry) Find(id string) (int, bool) {
	i, ok := r.index[id]
	return i, ok
}

// Lookup returns the step with the given id, or nil.
func (r *Registry) Lookup(id string) *Step {
	if i, ok := r.index[id]; ok {
		return r.steps[i]
	}
	return nil
}

// IndexOf returns the position of the step, or -1 when it is not
// registered.
func (r *Registry) IndexOf(s *Step) int {
	if s == nil {
		return -1
	}
	if i, ok := r.index[s.id]; ok && r.steps[i] == s {
		return i
	}
	return -1
}

// At returns the step at position i.
func (r *Registry) At(i int) *Step { return r.steps[i] }

// Len returns the number of registered steps.
func (r *Registry) Len() int { return len(r.steps) }

// Steps returns the steps in insertion order. The slice is a copy; the
// steps are not.
func (r *Registry) Steps() []*Step {
	out := make([]*Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// FirstEnabled returns the first step in order with enabled true, or nil.
func (r *Registry) FirstEnabled() *Step {
	for _, s := range r.steps {
		if s.enabled {
			return s
		}
	}
	return nil
}

// LastEnabled returns the last step in order with enabled true, or nil.
func (r *Registry) LastEnabled() *Step {
	for i := len(r.steps) - 1; i >= 0; i-- {
		if r.steps[i].enabled {
			return r.steps[i]
		}
	}
	return nil
}
