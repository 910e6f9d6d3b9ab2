package theme

// NewCatppuccinLatte creates the light Catppuccin Latte theme.
func NewCatppuccinLatte() *Theme {
	return &Theme{
		Name:   "catppuccin-latte",
		IsDark: false,

		// Semantic colors
		Primary:   "#8839ef", // Mauve
		Secondary: "#1e66f5", // Blue
		Tertiary:  "#7287fd", // Lavender

		// Background hierarchy (inverted: light→dark)
		BgCrust:    "#dce0e8",
		BgBase:     "#eff1f5",
		BgMantle:   "#e6e9ef",
		BgGutter:   "#e2e6ee",
		BgSurface0: "#ccd0da",
		BgSurface1: "#bcc0cc",
		BgSurface2: "#acb0be",
		BgOverlay:  "#9ca0b0",

		// Foreground hierarchy
		FgMuted:  "#6c6f85", // Subtext0
		FgSubtle: "#5c5f77", // Subtext1
		FgBase:   "#4c4f69", // Text
		FgBright: "#dc8a78", // Rosewater

		// Status colors
		Success: "#40a02b", // Green
		Warning: "#df8e1d", // Yellow
		Error:   "#d20f39", // Red
		Info:    "#04a5e5", // Sky

		// Diff colors
		DiffInsertBg:  "#dcefdb",
		DiffDeleteBg:  "#f3dcdc",
		DiffEqualBg:   "#eff1f5",
		DiffMissingBg: "#e6e9ef",

		// Border colors
		BorderMuted:   "#ccd0da", // Surface0
		BorderDefault: "#acb0be", // Surface2
		BorderFocused: "#8839ef", // Mauve
	}
}
