// Package tui is the terminal runner for wizard flows: a bubbletea model
// hosting the composite title header, the current step's pane, the
// Back/Forward button bar and a hint bar. The model is the engine's
// Surface, so every presentation push from the engine lands here.
package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/stepflow/internal/flowfile"
	"github.com/mark3labs/stepflow/internal/logger"
	"github.com/mark3labs/stepflow/internal/tui/theme"
	"github.com/mark3labs/stepflow/wizard"
)

var _ tea.Model = (*Model)(nil)

// focusArea tracks which region owns keyboard input.
type focusArea int

const (
	focusPane focusArea = iota
	focusButtons
)

// Model is the bubbletea model for a wizard run. It implements
// wizard.Surface; the engine drives the title, button labels, button
// visibility and focus through it.
type Model struct {
	engine *wizard.Engine
	flow   *flowfile.Flow
	panes  map[string]Pane

	bar   *ButtonBar
	title string

	width  int
	height int

	focus   focusArea
	closing bool // surface received RequestClose
}

// NewModel builds the model for a validated flow: registry, engine,
// one pane per step (bound so the engine toggles visibility), and the
// validation veto on forward navigation.
func NewModel(flow *flowfile.Flow) (*Model, error) {
	reg, err := flow.Registry()
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}

	m := &Model{
		flow:  flow,
		panes: make(map[string]Pane, len(flow.Steps)),
		bar:   NewButtonBar(),
	}
	m.engine = wizard.NewEngine(flow.Title, reg, m)

	for i := range flow.Steps {
		d := &flow.Steps[i]
		pane := m.buildPane(d)
		m.panes[d.ID] = pane
		reg.Lookup(d.ID).BindPane(pane)
	}

	// Required inputs veto forward navigation until they hold a value.
	veto := func(in *wizard.Intent) {
		pane := m.currentPane()
		if v, ok := pane.(Validator); ok && !v.Valid() {
			v.ShowError()
			in.Cancel = true
		}
	}
	m.engine.Hooks().OnMovingNext(veto)
	m.engine.Hooks().OnFinishing(veto)

	// Keyboard focus follows the committed transition into the new pane.
	m.engine.Hooks().OnStepChanged(func(tr *wizard.Transition) {
		m.focusCurrentPane()
	})

	return m, nil
}

func (m *Model) buildPane(d *flowfile.StepDef) Pane {
	switch d.Kind {
	case flowfile.KindInput:
		return NewInputPane(d.ID, d.Prompt, d.Placeholder, d.Required)
	case flowfile.KindChoice:
		return NewChoicePane(d.ID, d.Prompt, d.Options, d.Default)
	case flowfile.KindSummary:
		return NewSummaryPane(m.Answers)
	default:
		return NewNotePane(d.Body)
	}
}

// Engine exposes the underlying engine so runners can attach observers
// (journal recorder, hook executor) before the program starts.
func (m *Model) Engine() *wizard.Engine { return m.engine }

// Answers collects the values of every answer-bearing pane, keyed by
// step id.
func (m *Model) Answers() map[string]string {
	answers := make(map[string]string)
	for _, pane := range m.panes {
		if a, ok := pane.(Answerer); ok {
			answers[a.Field()] = a.Answer()
		}
	}
	return answers
}

// Finished reports whether the run ended with a committed finish.
func (m *Model) Finished() bool { return m.engine.FinishCommitted() }

func (m *Model) currentPane() Pane {
	current := m.engine.Current()
	if current == nil {
		return nil
	}
	return m.panes[current.ID()]
}

func (m *Model) focusCurrentPane() {
	for _, pane := range m.panes {
		pane.Blur()
	}
	if pane := m.currentPane(); pane != nil {
		pane.Focus()
	}
	m.focus = focusPane
	m.bar.SetBarFocused(false)
}

// Init initializes the wizard: the engine selects the first enabled step
// (the container-loaded lifecycle notification) and all panes start up.
func (m *Model) Init() tea.Cmd {
	m.engine.Initialize()
	m.focusCurrentPane()

	var cmds []tea.Cmd
	for _, pane := range m.panes {
		if cmd := pane.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Relayout()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case forwardRequestMsg:
		m.engine.Forward()
		return m, m.checkClose()
	}

	// Everything else goes to the visible pane
	if pane := m.currentPane(); pane != nil {
		return m, pane.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		// Always allow Ctrl+C to quit
		m.closing = true
		return m, m.checkClose()

	case "esc":
		// ESC goes back, or closes on the first enabled step
		current := m.engine.Current()
		if current == nil || current == m.engine.Registry().FirstEnabled() {
			m.closing = true
			return m, m.checkClose()
		}
		m.engine.Back()
		return m, m.checkClose()

	case "tab", "shift+tab":
		// Toggle focus between the pane and the button bar
		if m.focus == focusPane {
			m.focus = focusButtons
			m.bar.SetBarFocused(true)
		} else {
			m.focus = focusPane
			m.bar.SetBarFocused(false)
		}
		return m, nil
	}

	if m.focus == focusButtons {
		switch msg.String() {
		case "left", "right", "h", "l":
			m.bar.CycleFocus()
			return m, nil
		case "enter", "space":
			if m.bar.Focused() == ButtonBack {
				m.engine.Back()
			} else {
				m.engine.Forward()
			}
			return m, m.checkClose()
		}
		return m, nil
	}

	if pane := m.currentPane(); pane != nil {
		return m, pane.Update(msg)
	}
	return m, nil
}

// checkClose quits the program when the engine (or a global key) asked
// for close. The closing notification runs first so a close without a
// committed finish fires Cancelled.
func (m *Model) checkClose() tea.Cmd {
	if !m.closing {
		return nil
	}
	m.engine.NotifyClosing()
	return tea.Quit
}

// View renders the wizard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		// Not ready to render
		view.Content = lipgloss.NewLayer("")
		return view
	}

	// Draw to canvas using ultraviolet
	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(m.render()).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// render assembles the header, the visible pane and the button bar.
func (m *Model) render() string {
	var b strings.Builder

	b.WriteString(theme.Current().S().HeaderTitle.Render(m.title))
	b.WriteString("\n\n")

	if pane := m.currentPane(); pane != nil {
		b.WriteString(pane.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.bar.Render())

	return b.String()
}

// Run executes the wizard as a standalone bubbletea program and reports
// the outcome.
func (m *Model) Run() (*RunResult, error) {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	logger.Info("Wizard run ended (finished=%v)", m.Finished())
	return &RunResult{
		Finished: m.Finished(),
		Answers:  m.Answers(),
	}, nil
}

// RunResult holds the outcome of a wizard run.
type RunResult struct {
	Finished bool // false means the run was cancelled
	Answers  map[string]string
}

// --- wizard.Surface ---

// SetTitle stores the composite window title rendered in the header.
func (m *Model) SetTitle(title string) { m.title = title }

// SetControlLabel updates a navigation button caption.
func (m *Model) SetControlLabel(c wizard.Control, label string) {
	m.bar.SetLabel(buttonFor(c), label)
}

// SetControlVisible shows or hides a navigation button.
func (m *Model) SetControlVisible(c wizard.Control, visible bool) {
	m.bar.SetVisible(buttonFor(c), visible)
}

// SetFocus moves the button bar's focus cursor.
func (m *Model) SetFocus(c wizard.Control) {
	m.bar.SetFocused(buttonFor(c))
}

// HasFocus reports whether a control holds the bar's focus cursor.
func (m *Model) HasFocus(c wizard.Control) bool {
	return m.bar.Focused() == buttonFor(c)
}

// Relayout recomputes component sizes from the window geometry.
func (m *Model) Relayout() {
	if m.width == 0 {
		return
	}

	m.bar.SetWidth(m.width)

	paneWidth := m.width - 4
	paneHeight := m.height - 6
	for _, pane := range m.panes {
		pane.SetSize(paneWidth, paneHeight)
	}
}

// Redraw is a no-op: bubbletea re-renders after every Update.
func (m *Model) Redraw() {}

// RequestClose marks the program for shutdown; the surrounding Update
// cycle quits after notifying the engine.
func (m *Model) RequestClose() {
	m.closing = true
}

func buttonFor(c wizard.Control) ButtonID {
	if c == wizard.ControlBack {
		return ButtonBack
	}
	return ButtonForward
}
