package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ButtonID identifies one of the two navigation buttons.
type ButtonID int

const (
	ButtonBack ButtonID = iota
	ButtonForward
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in the button bar.
type Button struct {
	Label    string
	Visible  bool
	Disabled bool
}

// ButtonBar manages the Back/Forward button pair with consistent styling.
// The bar keeps its own focus cursor; whether that cursor is highlighted
// depends on the container routing keyboard focus to the bar.
type ButtonBar struct {
	buttons  map[ButtonID]*Button
	width    int
	focused  ButtonID
	hasFocus bool
}

// NewButtonBar creates a button bar with both buttons visible and the
// forward button focused.
func NewButtonBar() *ButtonBar {
	return &ButtonBar{
		buttons: map[ButtonID]*Button{
			ButtonBack:    {Visible: true},
			ButtonForward: {Visible: true},
		},
		width:   60,
		focused: ButtonForward,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetLabel updates a button's caption.
func (b *ButtonBar) SetLabel(id ButtonID, label string) {
	b.buttons[id].Label = label
}

// Label returns a button's caption.
func (b *ButtonBar) Label(id ButtonID) string {
	return b.buttons[id].Label
}

// SetVisible shows or hides a button.
func (b *ButtonBar) SetVisible(id ButtonID, visible bool) {
	b.buttons[id].Visible = visible
}

// Visible reports whether a button is shown.
func (b *ButtonBar) Visible(id ButtonID) bool {
	return b.buttons[id].Visible
}

// SetDisabled grays out a button without hiding it.
func (b *ButtonBar) SetDisabled(id ButtonID, disabled bool) {
	b.buttons[id].Disabled = disabled
}

// SetFocused moves the bar's focus cursor. A hidden button cannot take
// the cursor; it falls through to the other button.
func (b *ButtonBar) SetFocused(id ButtonID) {
	if !b.buttons[id].Visible {
		id = b.other(id)
	}
	b.focused = id
}

// Focused returns the button holding the bar's focus cursor.
func (b *ButtonBar) Focused() ButtonID {
	return b.focused
}

// SetBarFocused routes keyboard focus to or away from the bar.
func (b *ButtonBar) SetBarFocused(focused bool) {
	b.hasFocus = focused
}

// BarFocused reports whether the bar holds keyboard focus.
func (b *ButtonBar) BarFocused() bool {
	return b.hasFocus
}

// CycleFocus moves the cursor to the other visible button.
func (b *ButtonBar) CycleFocus() {
	other := b.other(b.focused)
	if b.buttons[other].Visible {
		b.focused = other
	}
}

func (b *ButtonBar) other(id ButtonID) ButtonID {
	if id == ButtonBack {
		return ButtonForward
	}
	return ButtonBack
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	// Define button styles
	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")).
		Background(lipgloss.Color("#313244")).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Background(lipgloss.Color("#181825")).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1e1e2e")).
		Background(lipgloss.Color("#b4befe")).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	// Render each visible button in Back, Forward order
	var renderedButtons []string
	for _, id := range []ButtonID{ButtonBack, ButtonForward} {
		btn := b.buttons[id]
		if !btn.Visible {
			continue
		}

		var rendered string
		switch {
		case btn.Disabled:
			rendered = disabledStyle.Render(btn.Label)
		case b.hasFocus && b.focused == id:
			rendered = focusedStyle.Render(btn.Label)
		default:
			rendered = normalStyle.Render(btn.Label)
		}
		renderedButtons = append(renderedButtons, rendered)
	}

	if len(renderedButtons) == 0 {
		return ""
	}

	// Join buttons with spacing and center the bar
	result := strings.Join(renderedButtons, "")
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}
