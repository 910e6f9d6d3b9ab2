// Package testfixtures holds the shared plumbing for TUI tests: a pinned
// color profile so rendered output is stable across CI/platforms, the
// canonical test terminal size, and canvas rendering helpers.
package testfixtures

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output for consistent assertions across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// RenderToCanvas draws a view string onto a screen buffer of the canonical
// test size and returns the flattened render. Assertions run against the
// result instead of the raw view so cell-level drawing is exercised too.
func RenderToCanvas(t *testing.T, view string) string {
	t.Helper()
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	area := uv.Rect(0, 0, TestTermWidth, TestTermHeight)
	uv.NewStyledString(view).Draw(canvas, area)
	return canvas.Render()
}

// WriteTempFlow writes a flow definition to a temp file and returns its path.
func WriteTempFlow(t *testing.T, yamlSource string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flow.yml")
	if err := os.WriteFile(path, []byte(yamlSource), 0o644); err != nil {
		t.Fatalf("failed to write flow file: %v", err)
	}
	return path
}

// Contains checks if a string contains a substring.
// This is a simple helper to make test assertions more readable.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
