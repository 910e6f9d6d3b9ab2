package tui

import (
	"bytes"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// syntaxHighlight renders source code with chroma, detecting the language
// from the file name first, then from the content, and finally falling back
// to a plain text lexer. The output uses true color (24-bit) ANSI codes.
func syntaxHighlight(source, fileName string) string {
	// Try to detect lexer from filename
	lexer := lexers.Match(fileName)
	if lexer == nil {
		// Fall back to content-based detection
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		// Fall back to plain text
		lexer = lexers.Fallback
	}

	// Use terminal16m formatter for true color output
	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Get("terminal256")
	}
	if formatter == nil {
		// Last resort: return source unchanged with background style
		return styleCodeBlock.Render(source)
	}

	// Use monokai style (dark theme, similar to our UI palette)
	baseStyle := styles.Get("monokai")
	if baseStyle == nil {
		baseStyle = styles.Fallback
	}

	// Transform all token backgrounds to match our code block background (colorSurface0).
	// Without this, chroma's monokai theme uses #272822 which clashes with our #313244.
	r, g, b, _ := colorSurface0.RGBA()
	bgColour := chroma.NewColour(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	style, err := baseStyle.Builder().Transform(func(entry chroma.StyleEntry) chroma.StyleEntry {
		entry.Background = bgColour
		return entry
	}).Build()
	if err != nil {
		style = baseStyle
	}

	// Tokenize and format
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return styleCodeBlock.Render(source)
	}

	var buf bytes.Buffer
	err = formatter.Format(&buf, style, iterator)
	if err != nil {
		return styleCodeBlock.Render(source)
	}

	// Return the highlighted output, trimming any trailing newline
	return strings.TrimRight(buf.String(), "\n")
}

// HighlightYAML renders a YAML document with syntax highlighting. Exported
// for the inspect command, which prints flow sources to the terminal.
func HighlightYAML(source string) string {
	return syntaxHighlight(source, "flow.yml")
}
