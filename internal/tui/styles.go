package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette (Catppuccin Mocha)
//
// BACKGROUNDS (darkest to lightest): crust/mantle for chrome, base for the
// main surface, surface0-2 for layered panels. TEXT (dimmest to brightest):
// subtext0 for hints, subtext1 for secondary info, text for content.
var (
	colorBase     = lipgloss.Color("#1e1e2e") // Base background (darkest)
	colorMantle   = lipgloss.Color("#181825") // Slightly darker than base
	colorSurface0 = lipgloss.Color("#313244") // Surface overlay (light)
	colorSurface2 = lipgloss.Color("#585b70") // Surface overlay (dark)

	colorSubtext0 = lipgloss.Color("#a6adc8") // Subtext (muted)
	colorSubtext1 = lipgloss.Color("#bac2de") // Subtext (less muted)
	colorText     = lipgloss.Color("#cdd6f4") // Main text color

	colorPrimary  = lipgloss.Color("#cba6f7") // Mauve (primary brand color)
	colorTertiary = lipgloss.Color("#b4befe") // Lavender (tertiary highlights)
	colorError    = lipgloss.Color("#f38ba8") // Red (validation errors)
)

// Shared component styles
var (
	styleHeader = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	stylePrompt = lipgloss.NewStyle().
			Foreground(colorText).
			MarginBottom(1)

	styleValidationError = lipgloss.NewStyle().
				Foreground(colorError)

	styleCodeBlock = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0)

	styleChoiceCursor = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleChoiceSelected = lipgloss.NewStyle().
				Foreground(colorTertiary)

	styleChoiceOption = lipgloss.NewStyle().
				Foreground(colorSubtext1)
)
