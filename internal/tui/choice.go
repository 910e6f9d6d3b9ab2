package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ChoicePane selects one option from a fixed list with keyboard navigation.
type ChoicePane struct {
	basePane
	field    string // step id, used as the answer key
	prompt   string
	options  []string
	cursor   int
	selected int
}

// NewChoicePane creates a choice pane. When preselect matches an option it
// starts selected; otherwise the first option is.
func NewChoicePane(field, prompt string, options []string, preselect string) *ChoicePane {
	selected := 0
	for i, opt := range options {
		if opt == preselect {
			selected = i
			break
		}
	}

	return &ChoicePane{
		basePane: basePane{width: 60, height: 10},
		field:    field,
		prompt:   prompt,
		options:  options,
		cursor:   selected,
		selected: selected,
	}
}

// Init initializes the choice pane.
func (p *ChoicePane) Init() tea.Cmd {
	return nil
}

// Update handles messages for the choice pane.
func (p *ChoicePane) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.options)-1 {
			p.cursor++
		}
	case "space":
		p.selected = p.cursor
	case "enter":
		// Enter selects the cursor option and advances
		p.selected = p.cursor
		return func() tea.Msg { return forwardRequestMsg{} }
	}
	return nil
}

// Field returns the answer key for this pane.
func (p *ChoicePane) Field() string { return p.field }

// Answer returns the selected option.
func (p *ChoicePane) Answer() string {
	if len(p.options) == 0 {
		return ""
	}
	return p.options[p.selected]
}

// Selected returns the selected option index.
func (p *ChoicePane) Selected() int { return p.selected }

// View renders the choice pane.
func (p *ChoicePane) View() string {
	var b strings.Builder

	b.WriteString(stylePrompt.Render(p.prompt + ":"))
	b.WriteString("\n")

	for i, opt := range p.options {
		cursor := "  "
		if i == p.cursor {
			cursor = styleChoiceCursor.Render("> ")
		}

		marker := "○ "
		style := styleChoiceOption
		if i == p.selected {
			marker = "● "
			style = styleChoiceSelected
		}

		b.WriteString(cursor + style.Render(marker+opt))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHintBar(
		KeyUpDownJK, "move",
		KeySpace, "select",
		KeyEnter, "continue",
		KeyEsc, "back",
	))

	return b.String()
}
