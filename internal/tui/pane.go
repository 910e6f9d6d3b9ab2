package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mark3labs/stepflow/wizard"
)

// Pane is the component contract for step content. The engine only ever
// toggles visibility (wizard.StepPane); everything else is driven by the
// container model.
type Pane interface {
	wizard.StepPane
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Focus()
	Blur()
	Visible() bool
}

// Answerer is implemented by panes that collect a value for the answers
// document.
type Answerer interface {
	Field() string
	Answer() string
}

// Validator is implemented by panes that can veto forward navigation
// while their input is incomplete.
type Validator interface {
	Valid() bool
	ShowError()
}

// basePane carries the geometry and visibility state shared by all panes.
type basePane struct {
	width   int
	height  int
	visible bool
	focused bool
}

func (p *basePane) SetVisible(visible bool) { p.visible = visible }

func (p *basePane) Visible() bool { return p.visible }

func (p *basePane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *basePane) Focus() { p.focused = true }

func (p *basePane) Blur() { p.focused = false }
