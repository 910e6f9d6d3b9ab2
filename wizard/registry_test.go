package wizard

import (
	"errors"
	"testing"
)

func TestRegistryAppendAndFind(t *testing.T) {
	reg := NewRegistry()
	ids := []string{"welcome", "name", "template", "summary"}
	for _, id := range ids {
		if err := reg.Append(NewStep(id, id)); err != nil {
			t.Fatalf("Append(%q) failed: %v", id, err)
		}
	}

	if reg.Len() != len(ids) {
		t.Fatalf("expected %d steps, got %d", len(ids), reg.Len())
	}

	for want, id := range ids {
		got, ok := reg.Find(id)
		if !ok {
			t.Fatalf("Find(%q) reported absent", id)
		}
		if got != want {
			t.Errorf("Find(%q) = %d, want %d", id, got, want)
		}
		if reg.At(got).ID() != id {
			t.Errorf("At(%d).ID() = %q, want %q", got, reg.At(got).ID(), id)
		}
	}

	if _, ok := reg.Find("missing"); ok {
		t.Error("Find of unregistered id should report absent")
	}
	if reg.Lookup("missing") != nil {
		t.Error("Lookup of unregistered id should return nil")
	}
}

func TestRegistryDuplicateIdentity(t *testing.T) {
	reg := NewRegistry()
	s := NewStep("welcome", "Welcome")
	if err := reg.Append(s); err != nil {
		t.Fatalf("first Append failed: %v", err)
	}

	t.Run("same pointer", func(t *testing.T) {
		err := reg.Append(s)
		if !errors.Is(err, ErrDuplicateStep) {
			t.Errorf("expected ErrDuplicateStep, got %v", err)
		}
	})

	t.Run("same id, different pointer", func(t *testing.T) {
		err := reg.Append(NewStep("welcome", "Other Welcome"))
		if !errors.Is(err, ErrDuplicateStep) {
			t.Errorf("expected ErrDuplicateStep, got %v", err)
		}
	})

	if reg.Len() != 1 {
		t.Errorf("failed appends must not grow the registry, len = %d", reg.Len())
	}
}

func TestRegistryAppendNil(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Append(nil); err == nil {
		t.Error("Append(nil) should fail")
	}
}

func TestNewStepDerivesID(t *testing.T) {
	s := NewStep("", "Choose Template")
	if s.ID() != "choose-template" {
		t.Errorf("derived id = %q, want %q", s.ID(), "choose-template")
	}
}

func TestRegistryFirstLastEnabled(t *testing.T) {
	tests := []struct {
		name      string
		enabled   []bool
		wantFirst int // index, -1 for nil
		wantLast  int
	}{
		{"all enabled", []bool{true, true, true}, 0, 2},
		{"disabled head and tail", []bool{false, true, true, false}, 1, 2},
		{"single enabled", []bool{false, true, false}, 1, 1},
		{"none enabled", []bool{false, false}, -1, -1},
		{"empty", nil, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			for i, en := range tt.enabled {
				s := NewStep(string(rune('a'+i)), "Step")
				s.SetEnabled(en)
				if err := reg.Append(s); err != nil {
					t.Fatalf("Append failed: %v", err)
				}
			}

			first, last := reg.FirstEnabled(), reg.LastEnabled()
			if tt.wantFirst < 0 {
				if first != nil {
					t.Errorf("FirstEnabled = %v, want nil", first.ID())
				}
			} else if first != reg.At(tt.wantFirst) {
				t.Errorf("FirstEnabled wrong, got %v", first)
			}
			if tt.wantLast < 0 {
				if last != nil {
					t.Errorf("LastEnabled = %v, want nil", last.ID())
				}
			} else if last != reg.At(tt.wantLast) {
				t.Errorf("LastEnabled wrong, got %v", last)
			}
		})
	}
}

func TestRegistryIndexOf(t *testing.T) {
	reg := NewRegistry()
	a := NewStep("a", "A")
	if err := reg.Append(a); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if got := reg.IndexOf(a); got != 0 {
		t.Errorf("IndexOf(a) = %d, want 0", got)
	}
	if got := reg.IndexOf(nil); got != -1 {
		t.Errorf("IndexOf(nil) = %d, want -1", got)
	}
	// A foreign step that happens to share the id is not the registered
	// step; identity is the pointer the registry stores.
	if got := reg.IndexOf(NewStep("a", "Impostor")); got != -1 {
		t.Errorf("IndexOf(foreign step) = %d, want -1", got)
	}
}

func TestRegistryStepsIsACopy(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Append(NewStep("a", "A")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	steps := reg.Steps()
	steps[0] = nil
	if reg.At(0) == nil {
		t.Error("mutating the returned slice must not affect the registry")
	}
}
