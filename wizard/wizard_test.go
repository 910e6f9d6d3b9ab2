package wizard

// Shared test doubles: an in-memory Surface recording every push from the
// presentation synchronizer, and a pane recording visibility toggles.

type fakeSurface struct {
	title     string
	labels    map[Control]string
	visible   map[Control]bool
	focused   Control
	focusSet  bool
	backFocus bool

	relayouts int
	redraws   int
	closes    int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		labels:  make(map[Control]string),
		visible: make(map[Control]bool),
	}
}

func (f *fakeSurface) SetTitle(title string) { f.title = title }

func (f *fakeSurface) SetControlLabel(c Control, label string) { f.labels[c] = label }

func (f *fakeSurface) SetControlVisible(c Control, visible bool) { f.visible[c] = visible }

func (f *fakeSurface) SetFocus(c Control) {
	f.focused = c
	f.focusSet = true
}

func (f *fakeSurface) HasFocus(c Control) bool { return c == ControlBack && f.backFocus }

func (f *fakeSurface) Relayout() { f.relayouts++ }

func (f *fakeSurface) Redraw() { f.redraws++ }

func (f *fakeSurface) RequestClose() { f.closes++ }

type fakePane struct {
	visible bool
	sets    int
}

func (p *fakePane) SetVisible(v bool) {
	p.visible = v
	p.sets++
}

// newTestWizard builds a registry with the named steps (all enabled, each
// with a bound pane) and an engine over a fresh fake surface.
func newTestWizard(title string, ids ...string) (*Engine, *Registry, *fakeSurface, map[string]*fakePane) {
	reg := NewRegistry()
	panes := make(map[string]*fakePane, len(ids))
	for _, id := range ids {
		s := NewStep(id, id)
		p := &fakePane{}
		s.BindPane(p)
		panes[id] = p
		if err := reg.Append(s); err != nil {
			panic(err)
		}
	}
	surface := newFakeSurface()
	return NewEngine(title, reg, surface), reg, surface, panes
}

func mustLookup(reg *Registry, id string) *Step {
	s := reg.Lookup(id)
	if s == nil {
		panic("missing step " + id)
	}
	return s
}
