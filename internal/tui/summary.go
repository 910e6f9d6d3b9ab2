package tui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"gopkg.in/yaml.v3"
)

// SummaryPane renders the collected answers as syntax-highlighted YAML.
// The answers provider is read each time the pane becomes visible, so the
// document always reflects the latest values.
type SummaryPane struct {
	basePane
	viewport viewport.Model
	answers  func() map[string]string
}

// NewSummaryPane creates a summary pane over an answers provider.
func NewSummaryPane(answers func() map[string]string) *SummaryPane {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true

	return &SummaryPane{
		basePane: basePane{width: 60, height: 12},
		viewport: vp,
		answers:  answers,
	}
}

// Init initializes the summary pane.
func (p *SummaryPane) Init() tea.Cmd {
	return nil
}

// SetVisible re-renders the answers document on every reveal.
func (p *SummaryPane) SetVisible(visible bool) {
	p.basePane.SetVisible(visible)
	if visible {
		p.refresh()
		p.viewport.GotoTop()
	}
}

// SetSize resizes the viewport, reserving lines for the header and hints.
func (p *SummaryPane) SetSize(width, height int) {
	p.basePane.SetSize(width, height)
	p.viewport.SetWidth(width)

	viewportHeight := height - 4
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	p.viewport.SetHeight(viewportHeight)
}

func (p *SummaryPane) refresh() {
	p.viewport.SetContent(syntaxHighlight(p.document(), "answers.yml"))
}

// document marshals the answers to YAML. yaml.Marshal sorts map keys, so
// the output is stable.
func (p *SummaryPane) document() string {
	answers := p.answers()
	if len(answers) == 0 {
		return "# no answers collected"
	}

	data, err := yaml.Marshal(answers)
	if err != nil {
		return "# failed to render answers"
	}
	return string(data)
}

// Update handles messages for the summary pane.
func (p *SummaryPane) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
		return func() tea.Msg { return forwardRequestMsg{} }
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the summary pane.
func (p *SummaryPane) View() string {
	var b strings.Builder

	b.WriteString(stylePrompt.Render("Review your answers:"))
	b.WriteString("\n")
	b.WriteString(p.viewport.View())
	b.WriteString("\n")
	b.WriteString(RenderHintBar(
		KeyUpDownJK, "scroll",
		KeyTab, "buttons",
		KeyEsc, "back",
	))

	return b.String()
}
