package output

import (
	"bytes"
	"encoding/json"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/ashview/ashview/internal/cli"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// chromaStyle picks a chroma style matching the terminal theme, or nil
// when colors are disabled.
func chromaStyle() *chroma.Style {
	if !cli.ColorsEnabled() {
		return nil
	}
	if lipgloss.HasDarkBackground() {
		return styles.Get("monokai")
	}
	return styles.Get("github")
}

// terminalFormatter returns the chroma formatter matching the terminal
// color depth.
func terminalFormatter() chroma.Formatter {
	profile := lipgloss.ColorProfile()
	switch profile {
	case termenv.TrueColor:
		return formatters.Get("terminal16m")
	case termenv.ANSI256:
		return formatters.Get("terminal256")
	default:
		return formatters.Get("terminal")
	}
}

// HighlightJSON pretty-prints raw JSON and applies syntax highlighting.
// Falls back to the indented plain text when colors are off, and to the
// input verbatim when it is not valid JSON.
func HighlightJSON(data []byte) string {
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return string(data)
	}

	style := chromaStyle()
	if style == nil {
		return indented.String()
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, indented.String())
	if err != nil {
		return indented.String()
	}

	var buf bytes.Buffer
	if err := terminalFormatter().Format(&buf, style, iterator); err != nil {
		return indented.String()
	}
	return buf.String()
}
