package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
)

// highlightStyle is the chroma style used for colored replay output.
const highlightStyle = "kanban-mocha"

func init() {
	// Catppuccin Mocha colors, limited to the tokens YAML, JSON and Markdown produce.
	styles.Register(chroma.MustNewStyle(highlightStyle, chroma.StyleEntries{
		chroma.Text:              "#cdd6f4",
		chroma.Error:             "#f38ba8",
		chroma.Comment:           "#6c7086 italic",
		chroma.Keyword:           "#cba6f7",
		chroma.KeywordConstant:   "#fab387",
		chroma.Punctuation:       "#9399b2",
		chroma.Name:              "#cdd6f4",
		chroma.NameTag:           "#89b4fa",
		chroma.NameAttribute:     "#89b4fa",
		chroma.Literal:           "#cdd6f4",
		chroma.LiteralNumber:     "#fab387",
		chroma.LiteralString:     "#a6e3a1",
		chroma.GenericEmph:       "italic",
		chroma.GenericHeading:    "#89b4fa bold",
		chroma.GenericStrong:     "bold",
		chroma.GenericSubheading: "#f9e2af bold",
		chroma.Background:        "",
	}))
}

// highlight writes source to w with terminal colors for lexer.
func highlight(w io.Writer, source, lexer string) error {
	if err := quick.Highlight(w, source, lexer, "terminal256", highlightStyle); err != nil {
		return fmt.Errorf("highlight %s: %w", lexer, err)
	}
	return nil
}

// renderMarkdown renders md for the terminal using a glamour standard style
// such as "dark", "light" or "notty".
func renderMarkdown(md, style string, width int) (string, error) {
	width = max(width, 20)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown style %q: %w", style, err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
