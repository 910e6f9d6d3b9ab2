package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles shared by the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	ErrorText   lipgloss.Style
	Subtle      lipgloss.Style

	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style
}
