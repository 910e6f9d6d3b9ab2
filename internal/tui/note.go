package tui

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/x/editor"
)

// NotePane renders a step's markdown body in a scrollable viewport. When
// $EDITOR is set the body can be edited externally; after an edit, "d"
// toggles a unified diff of the changes against the original text.
type NotePane struct {
	basePane
	viewport viewport.Model
	body     string // current (possibly edited) markdown
	original string // body as loaded from the flow file
	tmpFile  string // temp file for external editing
	edited   bool
	diffMode bool
}

// NewNotePane creates a note pane for the given markdown body.
func NewNotePane(body string) *NotePane {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)

	// Enable mouse wheel scrolling
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	vp.SetContent(renderMarkdown(body, 60))

	return &NotePane{
		basePane: basePane{width: 60, height: 12},
		viewport: vp,
		body:     body,
		original: body,
	}
}

// Init initializes the note pane.
func (p *NotePane) Init() tea.Cmd {
	return nil
}

// SetSize resizes the viewport, reserving one line for the hint bar.
func (p *NotePane) SetSize(width, height int) {
	p.basePane.SetSize(width, height)
	p.viewport.SetWidth(width)

	viewportHeight := height - 2
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	p.viewport.SetHeight(viewportHeight)
	p.refresh()
}

// Update handles messages for the note pane.
func (p *NotePane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "e":
			// Open external editor if $EDITOR is set
			if os.Getenv("EDITOR") != "" {
				return p.openEditor()
			}
		case "d":
			if p.edited {
				p.diffMode = !p.diffMode
				p.refresh()
				p.viewport.GotoTop()
			}
			return nil
		case "enter":
			return func() tea.Msg { return forwardRequestMsg{} }
		}

	case bodyEditedMsg:
		// Editor returned with new content
		p.body = msg.Content
		p.edited = p.body != p.original
		p.diffMode = false
		p.refresh()
		p.viewport.GotoTop()
		// Clean up temp file
		if p.tmpFile != "" {
			_ = os.Remove(p.tmpFile)
			p.tmpFile = ""
		}
		return nil
	}

	// Forward viewport messages (scrolling, etc.)
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// refresh re-renders the viewport content for the active mode.
func (p *NotePane) refresh() {
	if p.diffMode {
		p.viewport.SetContent(udiff.Unified("original", "edited", p.original, p.body))
		return
	}
	p.viewport.SetContent(renderMarkdown(p.body, p.width))
}

// openEditor launches the user's $EDITOR with the note body.
func (p *NotePane) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "stepflow_note_*.md")
	if err != nil {
		return nil // Silently fail - editor not available
	}

	if _, err := tmpfile.WriteString(p.body); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()

	// Store temp file path for cleanup
	p.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("stepflow", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	// Execute editor and read result
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return nil
		}

		content, err := os.ReadFile(tmpfile.Name())
		if err != nil {
			return nil
		}

		return bodyEditedMsg{Content: string(content)}
	})
}

// View renders the note pane.
func (p *NotePane) View() string {
	var b strings.Builder

	b.WriteString(p.viewport.View())
	b.WriteString("\n")

	pairs := []string{KeyUpDownJK, "scroll"}
	if os.Getenv("EDITOR") != "" {
		pairs = append(pairs, KeyE, "edit")
	}
	if p.edited {
		pairs = append(pairs, KeyD, "diff")
	}
	pairs = append(pairs, KeyTab, "buttons", KeyEsc, "back")
	b.WriteString(RenderHintBar(pairs...))

	return b.String()
}

// Body returns the current (possibly edited) note body.
func (p *NotePane) Body() string {
	return p.body
}

// WasEdited reports whether the body was changed via the external editor.
func (p *NotePane) WasEdited() bool {
	return p.edited
}
