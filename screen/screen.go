// Package screen projects rendered grids onto live tcell screens, for
// consumers that present a grid interactively instead of emitting the
// serialized byte stream.
package screen

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/textgrid/grid"
	"github.com/lixenwraith/textgrid/terminal"
)

// StyleFor converts a cell's styling into a tcell style.
func StyleFor(c grid.Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(toTcellColor(c.Fg)).
		Background(toTcellColor(c.Bg))

	if c.Attrs&terminal.AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&terminal.AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&terminal.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&terminal.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&terminal.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&terminal.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// FromTcell converts a tcell style back into grid styling. The
// background token comes back tagged.
func FromTcell(st tcell.Style) (fg, bg terminal.Color, attrs terminal.Attr) {
	tfg, tbg, mask := st.Decompose()

	fg = fromTcellColor(tfg)
	bg = fromTcellColor(tbg).Background()

	if mask&tcell.AttrBold != 0 {
		attrs |= terminal.AttrBold
	}
	if mask&tcell.AttrDim != 0 {
		attrs |= terminal.AttrDim
	}
	if mask&tcell.AttrItalic != 0 {
		attrs |= terminal.AttrItalic
	}
	if mask&tcell.AttrUnderline != 0 {
		attrs |= terminal.AttrUnderline
	}
	if mask&tcell.AttrBlink != 0 {
		attrs |= terminal.AttrBlink
	}
	if mask&tcell.AttrReverse != 0 {
		attrs |= terminal.AttrReverse
	}
	return fg, bg, attrs
}

func toTcellColor(c terminal.Color) tcell.Color {
	switch c.Kind() {
	case terminal.ColorPalette:
		idx, _, _ := c.RGB()
		return tcell.PaletteColor(int(idx))
	case terminal.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

func fromTcellColor(c tcell.Color) terminal.Color {
	if !c.Valid() {
		return terminal.Color{}
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return terminal.RGBColor(uint8(r), uint8(g), uint8(b))
	}
	return terminal.Palette(uint8(c &^ tcell.ColorValid))
}

// Blit writes every cell of g to s with its top-left at (x, y). The
// grid stores one column per cell, so the cell after a wide rune is
// not written; the wide rune's own glyph covers it.
func Blit(g *grid.Grid, s tcell.Screen, x, y int) {
	w := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)
	for row := 0; row < g.Height(); row++ {
		skip := 0
		for col := 0; col < g.Width(); col++ {
			if skip > 0 {
				skip--
				continue
			}
			c := w.Get(grid.At(col), grid.At(row))
			s.SetContent(x+col, y+row, c.Rune, nil, StyleFor(c))
			if cw := runewidth.RuneWidth(c.Rune); cw > 1 {
				skip = cw - 1
			}
		}
	}
}
