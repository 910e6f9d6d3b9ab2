package wizard

import "testing"

func TestCompositeTitle(t *testing.T) {
	e, _, surface, _ := newTestWizard("Project Setup", "welcome", "name")
	e.Initialize()

	if surface.title != "Project Setup - welcome" {
		t.Errorf("title = %q, want %q", surface.title, "Project Setup - welcome")
	}

	e.GoNext()
	if surface.title != "Project Setup - name" {
		t.Errorf("title = %q, want %q", surface.title, "Project Setup - name")
	}
}

func TestBackVisibility(t *testing.T) {
	e, _, surface, _ := newTestWizard("Setup", "a", "b", "c")
	e.Initialize()

	if surface.visible[ControlBack] {
		t.Error("back must be hidden on the first enabled step")
	}
	e.GoNext()
	if !surface.visible[ControlBack] {
		t.Error("back must be visible past the first enabled step")
	}
	e.GoBack()
	if surface.visible[ControlBack] {
		t.Error("back must hide again on the first enabled step")
	}
}

func TestBackVisibilityComparesFirstEnabled(t *testing.T) {
	// A disabled leading step must not make back appear on the first
	// *enabled* step.
	e, reg, surface, _ := newTestWizard("Setup", "a", "b", "c")
	mustLookup(reg, "a").SetEnabled(false)
	e.Initialize()

	if e.Current() != mustLookup(reg, "b") {
		t.Fatalf("current = %v, want b", e.Current())
	}
	if surface.visible[ControlBack] {
		t.Error("back must be hidden on the first enabled step even mid-registry")
	}
}

func TestForwardLabelNextThenFinish(t *testing.T) {
	e, _, surface, _ := newTestWizard("Setup", "a", "b", "c")
	e.Initialize()

	if surface.labels[ControlForward] != "Next" {
		t.Errorf("forward label = %q, want Next", surface.labels[ControlForward])
	}
	e.GoNext()
	if surface.labels[ControlForward] != "Next" {
		t.Errorf("forward label = %q, want Next", surface.labels[ControlForward])
	}
	e.GoNext()
	if surface.labels[ControlForward] != "Finish" {
		t.Errorf("forward label on last enabled step = %q, want Finish", surface.labels[ControlForward])
	}
}

func TestSingleStepWizardChrome(t *testing.T) {
	// Scenario: a one-step registry is first and last at once.
	e, _, surface, _ := newTestWizard("Setup", "only")
	e.Initialize()

	if surface.visible[ControlBack] {
		t.Error("back must be hidden on a single-step wizard")
	}
	if surface.labels[ControlForward] != "Finish" {
		t.Errorf("forward label = %q, want Finish", surface.labels[ControlForward])
	}
}

func TestLabelOverrides(t *testing.T) {
	e, reg, surface, _ := newTestWizard("Setup", "a", "b")
	a := mustLookup(reg, "a")
	a.SetForwardLabel("Continue")
	a.SetBackLabel("Return")
	b := mustLookup(reg, "b")
	b.SetForwardLabel("Done")
	e.Initialize()

	if surface.labels[ControlForward] != "Continue" {
		t.Errorf("forward label = %q, want the override Continue", surface.labels[ControlForward])
	}
	if surface.labels[ControlBack] != "Return" {
		t.Errorf("back label = %q, want the override Return", surface.labels[ControlBack])
	}

	e.GoNext()
	// The override wins even over "Finish" on the last enabled step.
	if surface.labels[ControlForward] != "Done" {
		t.Errorf("forward label = %q, want the override Done", surface.labels[ControlForward])
	}
	if surface.labels[ControlBack] != "Back" {
		t.Errorf("back label = %q, want the localized default Back", surface.labels[ControlBack])
	}
}

func TestStepMutationResyncsPresentation(t *testing.T) {
	e, reg, surface, _ := newTestWizard("Setup", "a", "b", "c")
	e.Initialize()
	e.GoNext()

	if surface.labels[ControlForward] != "Next" {
		t.Fatalf("forward label = %q, want Next", surface.labels[ControlForward])
	}

	// Disabling the last step makes b the new last enabled step; the
	// synchronizer must notice without an explicit navigation call.
	mustLookup(reg, "c").SetEnabled(false)
	if surface.labels[ControlForward] != "Finish" {
		t.Errorf("forward label = %q, want Finish after c was disabled", surface.labels[ControlForward])
	}

	mustLookup(reg, "b").SetTitle("Renamed")
	if surface.title != "Setup - Renamed" {
		t.Errorf("title = %q, want %q", surface.title, "Setup - Renamed")
	}
}

func TestSyncNoOpWhileUnset(t *testing.T) {
	e, reg, surface, _ := newTestWizard("Setup", "a")
	mustLookup(reg, "a").SetEnabled(false)
	e.Initialize()

	if surface.title != "" || surface.redraws != 0 {
		t.Error("nothing may be pushed while the cursor is unset")
	}
}

func TestSyncTriggersRelayoutAndRedraw(t *testing.T) {
	e, _, surface, _ := newTestWizard("Setup", "a", "b")
	e.Initialize()
	base := surface.redraws
	if base == 0 || surface.relayouts == 0 {
		t.Fatal("initialization must relayout and redraw")
	}

	e.GoNext()
	if surface.redraws <= base {
		t.Error("every committed transition must redraw")
	}
}
