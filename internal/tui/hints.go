package tui

import (
	"github.com/mark3labs/stepflow/internal/tui/theme"
)

// Standard key representations for consistent hints across the wizard.
// Use arrow symbols (↑↓) as primary, with j/k mentioned as backup where applicable.
const (
	KeyUpDownJK = "↑↓/jk"
	KeyEnter    = "enter"
	KeySpace    = "space"
	KeyEsc      = "esc"
	KeyTab      = "tab"
	KeyCtrlC    = "ctrl+c"
	KeyE        = "e"
	KeyD        = "d"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "select") -> "enter select"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs.
// Example: RenderHintBar("↑↓/jk", "scroll", "enter", "select", "esc", "back")
// Returns: "↑↓/jk scroll • enter select • esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var result string

	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i]
		desc := pairs[i+1]

		if i > 0 {
			result += " " + s.HintSeparator.Render("•") + " "
		}

		result += s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
	}

	return result
}
