package wizard

import "testing"

func TestInitializeSelectsFirstEnabled(t *testing.T) {
	e, reg, _, panes := newTestWizard("Setup", "a", "b", "c")
	e.Initialize()

	if e.Current() != reg.FirstEnabled() {
		t.Fatalf("current = %v, want first enabled", e.Current())
	}
	if !panes["a"].visible {
		t.Error("first step's pane should be visible")
	}
	if panes["b"].visible || panes["c"].visible {
		t.Error("only the current step's pane may be visible")
	}
}

func TestInitializeIdempotent(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b")
	e.Initialize()
	e.GoNext()

	e.Initialize()
	if e.Current() != mustLookup(reg, "b") {
		t.Error("re-initializing must not move the cursor")
	}
}

func TestInitializeNoEnabledSteps(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b")
	mustLookup(reg, "a").SetEnabled(false)
	mustLookup(reg, "b").SetEnabled(false)

	e.Initialize()
	if e.Current() != nil {
		t.Error("current must stay unset when no step is enabled")
	}
}

func TestInitializeSkipsDisabledHead(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b")
	mustLookup(reg, "a").SetEnabled(false)

	e.Initialize()
	if e.Current() != mustLookup(reg, "b") {
		t.Errorf("current = %v, want b", e.Current())
	}
}

func TestNextEnabledAfter(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b", "c", "d")
	a, b, c, d := mustLookup(reg, "a"), mustLookup(reg, "b"), mustLookup(reg, "c"), mustLookup(reg, "d")
	b.SetEnabled(false)

	tests := []struct {
		name string
		from *Step
		want *Step
	}{
		{"skips disabled", a, c},
		{"from disabled baseline", b, c},
		{"at end", d, nil},
		{"nil scans from start", nil, a},
		{"unregistered scans from start", NewStep("x", "X"), a},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.NextEnabledAfter(tt.from); got != tt.want {
				t.Errorf("NextEnabledAfter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreviousEnabledBefore(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b", "c", "d")
	a, b, c, d := mustLookup(reg, "a"), mustLookup(reg, "b"), mustLookup(reg, "c"), mustLookup(reg, "d")
	c.SetEnabled(false)

	tests := []struct {
		name string
		from *Step
		want *Step
	}{
		{"skips disabled", d, b},
		{"from disabled baseline", c, b},
		{"at start", a, nil},
		{"nil scans from end", nil, d},
		{"unregistered scans from end", NewStep("x", "X"), d},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.PreviousEnabledBefore(tt.from); got != tt.want {
				t.Errorf("PreviousEnabledBefore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoNextWalksToLastEnabled(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b", "c", "d", "e")
	mustLookup(reg, "b").SetEnabled(false)
	e.Initialize()

	transitions := 0
	e.Hooks().OnStepChanged(func(*Transition) { transitions++ })

	for i := 0; i < 10; i++ {
		before := e.Current()
		if !e.GoNext() {
			t.Fatal("GoNext rejected without any cancelling observer")
		}
		if e.Current() == before {
			break
		}
	}

	if e.Current() != reg.LastEnabled() {
		t.Errorf("walk ended at %q, want last enabled %q", e.Current().ID(), reg.LastEnabled().ID())
	}
	// Four enabled steps: exactly three transitions from first to last.
	if transitions != 3 {
		t.Errorf("transitions = %d, want 3", transitions)
	}
}

func TestGoNextAtEndIsNoOp(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a")
	e.Initialize()

	if !e.GoNext() {
		t.Error("boundary no-op must report success")
	}
	if e.Current() != mustLookup(reg, "a") {
		t.Error("current must be unchanged at the boundary")
	}
}

func TestGoBackFromFirstEnabledIsNoOp(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b")
	e.Initialize()

	if !e.GoBack() {
		t.Error("boundary no-op must report success")
	}
	if e.Current() != mustLookup(reg, "a") {
		t.Error("current must be unchanged at the boundary")
	}
}

func TestGoNextGoBackSkipDisabled(t *testing.T) {
	// Scenario: [A enabled, B disabled, C enabled].
	e, reg, _, _ := newTestWizard("Setup", "a", "b", "c")
	mustLookup(reg, "b").SetEnabled(false)
	e.Initialize()

	if e.Current() != mustLookup(reg, "a") {
		t.Fatalf("current = %v, want a", e.Current())
	}
	e.GoNext()
	if e.Current() != mustLookup(reg, "c") {
		t.Errorf("GoNext landed on %q, want c", e.Current().ID())
	}
	e.GoBack()
	if e.Current() != mustLookup(reg, "a") {
		t.Errorf("GoBack landed on %q, want a", e.Current().ID())
	}
}

func TestDisabledCurrentRemainsBaseline(t *testing.T) {
	// Scenario: disable B while current; GoNext must still reach C.
	e, reg, _, _ := newTestWizard("Setup", "a", "b", "c")
	e.Initialize()
	e.GoNext()
	b := mustLookup(reg, "b")
	if e.Current() != b {
		t.Fatalf("setup: current = %v, want b", e.Current())
	}

	b.SetEnabled(false)
	if e.Current() != b {
		t.Fatal("disabling the current step must not evict it")
	}

	e.GoNext()
	if e.Current() != mustLookup(reg, "c") {
		t.Errorf("GoNext from disabled baseline landed on %v, want c", e.Current())
	}
}

func TestGoToStepRejectsDisabledTarget(t *testing.T) {
	e, reg, _, panes := newTestWizard("Setup", "a", "b")
	b := mustLookup(reg, "b")
	b.SetEnabled(false)
	e.Initialize()

	changing := 0
	e.Hooks().OnStepChanging(func(*Transition) { changing++ })

	if e.GoToStep(b) {
		t.Error("transition to a disabled target must fail")
	}
	if changing != 1 {
		t.Errorf("StepChanging should still fire for a disabled target, fired %d times", changing)
	}
	if e.Current() != mustLookup(reg, "a") {
		t.Error("rejected transition must not move the cursor")
	}
	if !panes["a"].visible || panes["b"].visible {
		t.Error("rejected transition must not touch visibility")
	}
}

func TestStepChangingCancelAbortsTransition(t *testing.T) {
	e, reg, _, panes := newTestWizard("Setup", "a", "b")
	e.Initialize()
	// Initialize toggles every pane once; the cancelled transition must
	// add nothing on top of that.
	aSets := panes["a"].sets
	bSets := panes["b"].sets

	e.Hooks().OnStepChanging(func(tr *Transition) {
		if tr.From != mustLookup(reg, "a") || tr.To != mustLookup(reg, "b") {
			t.Errorf("StepChanging from=%v to=%v", tr.From, tr.To)
		}
		tr.Cancel = true
	})

	if e.GoNext() {
		t.Error("cancelled transition must report failure")
	}
	if e.Current() != mustLookup(reg, "a") {
		t.Error("cancelled transition must not move the cursor")
	}
	if panes["a"].sets != aSets || panes["b"].sets != bSets {
		t.Error("cancelled transition must not toggle any pane")
	}
}

func TestStepChangedCancelIsInformationalOnly(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b")
	e.Initialize()

	e.Hooks().OnStepChanged(func(tr *Transition) { tr.Cancel = true })

	if e.GoToStep(mustLookup(reg, "b")) {
		t.Error("post-commit cancel must surface as failure")
	}
	// The commit stands: no rollback.
	if e.Current() != mustLookup(reg, "b") {
		t.Error("post-commit cancel must not roll the cursor back")
	}
}

func TestGoToStepNilClearsCursor(t *testing.T) {
	e, _, _, panes := newTestWizard("Setup", "a", "b")
	e.Initialize()

	var got *Transition
	e.Hooks().OnStepChanged(func(tr *Transition) { got = tr })

	if !e.GoToStep(nil) {
		t.Fatal("GoToStep(nil) should succeed")
	}
	if e.Current() != nil {
		t.Error("cursor should be unset")
	}
	if panes["a"].visible || panes["b"].visible {
		t.Error("no pane may be visible with a nil target")
	}
	if got == nil || got.To != nil {
		t.Error("StepChanged should report a nil To")
	}
}

func TestGoToStepWithUnsetCursor(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b")
	b := mustLookup(reg, "b")

	var got *Transition
	e.Hooks().OnStepChanging(func(tr *Transition) { got = tr })

	if !e.GoToStep(b) {
		t.Fatal("transition from an unset cursor should run the full protocol")
	}
	if got == nil || got.From != nil || got.To != b {
		t.Error("StepChanging should report From=nil To=b")
	}
	if e.Current() != b {
		t.Error("cursor should commit to b")
	}
}

func TestTransitionObserverOrder(t *testing.T) {
	e, _, _, _ := newTestWizard("Setup", "a", "b")
	e.Initialize()

	var order []string
	e.Hooks().OnStepChanging(func(*Transition) { order = append(order, "changing-1") })
	e.Hooks().OnStepChanging(func(*Transition) { order = append(order, "changing-2") })
	e.Hooks().OnStepChanged(func(*Transition) { order = append(order, "changed") })

	e.GoNext()
	want := []string{"changing-1", "changing-2", "changed"}
	if len(order) != len(want) {
		t.Fatalf("observer calls = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("observer calls = %v, want %v", order, want)
		}
	}
}

func TestTransitionFocusesForwardControl(t *testing.T) {
	e, _, surface, _ := newTestWizard("Setup", "a", "b")
	e.Initialize()

	e.GoNext()
	if !surface.focusSet || surface.focused != ControlForward {
		t.Error("focus should land on the forward control by default")
	}
}

func TestTransitionKeepsBackFocus(t *testing.T) {
	e, _, surface, _ := newTestWizard("Setup", "a", "b")
	e.Initialize()
	surface.backFocus = true

	e.GoNext()
	if surface.focused != ControlBack {
		t.Error("focus should stay on the back control when it held focus")
	}
}

func TestReentrantNavigationRejected(t *testing.T) {
	e, reg, _, _ := newTestWizard("Setup", "a", "b", "c")
	e.Initialize()

	var nested bool
	e.Hooks().OnStepChanging(func(*Transition) {
		// A navigation call from inside an observer must be rejected
		// without disturbing the in-flight transition.
		nested = e.GoNext()
	})

	if !e.GoNext() {
		t.Fatal("outer GoNext should succeed")
	}
	if nested {
		t.Error("nested GoNext should have been rejected")
	}
	if e.Current() != mustLookup(reg, "b") {
		t.Errorf("current = %q, want b", e.Current().ID())
	}
}

func TestExactlyOneVisiblePane(t *testing.T) {
	e, reg, _, panes := newTestWizard("Setup", "a", "b", "c")
	e.Initialize()
	e.GoToStep(mustLookup(reg, "c"))

	visible := 0
	for _, p := range panes {
		if p.visible {
			visible++
		}
	}
	if visible != 1 || !panes["c"].visible {
		t.Errorf("exactly the target pane must be visible, got %d visible", visible)
	}
}
