package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// InputPane collects a single text answer via a textinput field.
type InputPane struct {
	basePane
	field    string // step id, used as the answer key
	prompt   string
	required bool
	input    textinput.Model
	err      string // Validation error message
}

// NewInputPane creates an input pane for one field.
func NewInputPane(field, prompt, placeholder string, required bool) *InputPane {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200

	return &InputPane{
		basePane: basePane{width: 60, height: 10},
		field:    field,
		prompt:   prompt,
		required: required,
		input:    ti,
	}
}

// Init initializes the input pane.
func (p *InputPane) Init() tea.Cmd {
	return textinput.Blink
}

// Focus routes keyboard input to the text field.
func (p *InputPane) Focus() {
	p.basePane.Focus()
	p.input.Focus()
}

// Blur releases keyboard input.
func (p *InputPane) Blur() {
	p.basePane.Blur()
	p.input.Blur()
}

// Update handles messages for the input pane.
func (p *InputPane) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			// Validate before asking the container to advance
			if !p.Valid() {
				p.ShowError()
				return nil
			}
			p.err = ""
			return func() tea.Msg { return forwardRequestMsg{} }
		default:
			// Clear error on any other input
			if p.err != "" {
				p.err = ""
			}
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// Valid reports whether the pane's value satisfies the required flag.
func (p *InputPane) Valid() bool {
	return !p.required || strings.TrimSpace(p.input.Value()) != ""
}

// ShowError surfaces the validation message under the field.
func (p *InputPane) ShowError() {
	p.err = fmt.Sprintf("%s is required", p.prompt)
}

// Field returns the answer key for this pane.
func (p *InputPane) Field() string { return p.field }

// Answer returns the trimmed input value.
func (p *InputPane) Answer() string {
	return strings.TrimSpace(p.input.Value())
}

// SetValue replaces the input value. Used by tests and prefills.
func (p *InputPane) SetValue(value string) {
	p.input.SetValue(value)
}

// View renders the input pane.
func (p *InputPane) View() string {
	var b strings.Builder

	b.WriteString(stylePrompt.Render(p.prompt + ":"))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")

	if p.err != "" {
		b.WriteString(styleValidationError.Render("✗ " + p.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHintBar(
		KeyEnter, "continue",
		KeyTab, "buttons",
		KeyEsc, "back",
	))

	return b.String()
}
