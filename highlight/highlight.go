// Package highlight writes syntax-highlighted source text into a grid
// through a Writer, one styled run per Chroma token.
package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/lixenwraith/textgrid/grid"
	"github.com/lixenwraith/textgrid/terminal"
)

const defaultStyleName = "monokai"

// Code writes src at (x, y) with per-token foreground colors and
// attributes. Lines are clipped at the view's right edge and dropped
// past the bottom edge; the writer's own style is untouched. The lexer
// is resolved by name, falling back to content analysis; the style
// name falls back to a default palette. On tokenizer failure the text
// is written unstyled.
func Code(w *grid.Writer, x, y int, src, lexerName, styleName string) {
	if x < 0 || x >= w.Width() || y < 0 || y >= w.Height() {
		return
	}

	lexer := getLexer(lexerName, src)
	lexer = chroma.Coalesce(lexer)

	tokens, err := chroma.Tokenise(lexer, nil, src)
	if err != nil {
		writeClipped(w, x, y, src, terminal.Color{}, terminal.AttrNone)
		return
	}

	style := styleName
	if style == "" {
		style = defaultStyleName
	}
	chromaStyle := styles.Get(style)
	baseColour := chromaStyle.Get(chroma.Text).Colour

	col, row := x, y
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		fg, attrs := tokenStyle(chromaStyle.Get(tok.Type), baseColour)

		rest := tok.Value
		for len(rest) > 0 {
			seg, tail, broke := splitLine(rest)
			rest = tail

			if row >= w.Height() {
				return
			}
			if seg != "" && col < w.Width() {
				avail := w.Width() - col
				runes := []rune(seg)
				if len(runes) > avail {
					runes = runes[:avail]
				}
				w.WriteStyled(grid.At(col), grid.At(row), string(runes), fg, terminal.Color{}, attrs)
			}
			col += len([]rune(seg))

			if broke {
				row++
				col = x
			}
		}
	}
}

// tokenStyle extracts foreground and attributes from a style entry.
// Tokens matching the style's base text color keep the default
// foreground so unstyled runs stay escape-free.
func tokenStyle(entry chroma.StyleEntry, base chroma.Colour) (terminal.Color, terminal.Attr) {
	var attrs terminal.Attr
	if entry.Bold == chroma.Yes {
		attrs |= terminal.AttrBold
	}
	if entry.Italic == chroma.Yes {
		attrs |= terminal.AttrItalic
	}
	if entry.Underline == chroma.Yes {
		attrs |= terminal.AttrUnderline
	}

	if !entry.Colour.IsSet() || entry.Colour == base {
		return terminal.Color{}, attrs
	}
	return terminal.RGBColor(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()), attrs
}

// splitLine returns the text before the first newline, the text after
// it, and whether a newline was found.
func splitLine(s string) (seg, rest string, broke bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

// getLexer returns a Chroma lexer by name, or auto-detects from content.
func getLexer(name, text string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// writeClipped writes plain text line by line, clipped to the view.
func writeClipped(w *grid.Writer, x, y int, text string, fg terminal.Color, attrs terminal.Attr) {
	row := y
	rest := text
	for len(rest) > 0 && row < w.Height() {
		seg, tail, _ := splitLine(rest)
		rest = tail
		runes := []rune(seg)
		if avail := w.Width() - x; len(runes) > avail {
			runes = runes[:avail]
		}
		if len(runes) > 0 {
			w.WriteStyled(grid.At(x), grid.At(row), string(runes), fg, terminal.Color{}, attrs)
		}
		row++
	}
}
