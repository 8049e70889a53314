package grid

import (
	"fmt"

	"github.com/lixenwraith/textgrid/terminal"
)

// Writer is a bounded view over a Grid carrying a current style applied
// to subsequent writes. Multiple writers may reference the same grid
// with overlapping bounds. Mutating methods return the writer for
// chaining.
type Writer struct {
	grid   *Grid
	bounds Bounds
	fg     terminal.Color
	bg     terminal.Color
	attrs  terminal.Attr
}

// Width returns the view width.
func (w *Writer) Width() int {
	return w.bounds.Width
}

// Height returns the view height.
func (w *Writer) Height() int {
	return w.bounds.Height
}

// Fg returns the current foreground.
func (w *Writer) Fg() terminal.Color {
	return w.fg
}

// SetFg sets the foreground for subsequent writes.
func (w *Writer) SetFg(c terminal.Color) *Writer {
	w.fg = c
	return w
}

// Bg returns the current background.
func (w *Writer) Bg() terminal.Color {
	return w.bg
}

// SetBg sets the background for subsequent writes. The stored token is
// always background-tagged; this is the only path that stores one.
func (w *Writer) SetBg(c terminal.Color) *Writer {
	w.bg = c.Background()
	return w
}

// Attrs returns the current attributes.
func (w *Writer) Attrs() terminal.Attr {
	return w.attrs
}

// SetAttrs sets the attributes for subsequent writes.
func (w *Writer) SetAttrs(a terminal.Attr) *Writer {
	w.attrs = a
	return w
}

// put writes one cell with the current style. Callers guarantee the
// position is inside the view.
func (w *Writer) put(x, y int, ch rune) {
	w.grid.cells[w.bounds.Index(x, y, w.grid.width)] = Cell{
		Rune:  ch,
		Fg:    w.fg,
		Bg:    w.bg,
		Attrs: w.attrs,
	}
	w.grid.markDirty()
}

// Set writes one cell with the current style.
func (w *Writer) Set(x, y Pos, ch rune) *Writer {
	cx := x.resolve(w.bounds.Width)
	cy := y.resolve(w.bounds.Height)
	w.bounds.check(cx, cy, w.grid.width, len(w.grid.cells))
	w.put(cx, cy, ch)
	return w
}

// Fill writes every cell of the sub-rectangle with the current style.
func (w *Writer) Fill(x, y Pos, width, height Span, ch rune) *Writer {
	cx := x.resolve(w.bounds.Width)
	cy := y.resolve(w.bounds.Height)
	fw := width.resolve(w.bounds.Width, cx)
	fh := height.resolve(w.bounds.Height, cy)

	if fw <= 0 || fh <= 0 {
		panic(fmt.Sprintf("grid: invalid fill size %dx%d", fw, fh))
	}
	w.bounds.check(cx, cy, w.grid.width, len(w.grid.cells))
	w.bounds.check(cx+fw-1, cy+fh-1, w.grid.width, len(w.grid.cells))

	for row := cy; row < cy+fh; row++ {
		for col := cx; col < cx+fw; col++ {
			w.put(col, row, ch)
		}
	}
	return w
}

// Write writes text starting at (x, y) with the current style, wrapping
// back to column x on an explicit newline or at the view's right edge.
// Spaces in the text immediately after a break point are skipped. Text
// past the bottom edge is silently discarded.
func (w *Writer) Write(x, y Pos, text string) *Writer {
	cx := x.resolve(w.bounds.Width)
	cy := y.resolve(w.bounds.Height)
	w.bounds.check(cx, cy, w.grid.width, len(w.grid.cells))

	runes := []rune(text)
	col, row := cx, cy
	for i := 0; i < len(runes) && row < w.bounds.Height; i++ {
		if runes[i] == '\n' {
			row++
			col = cx
			i = skipSpaces(runes, i+1) - 1
			continue
		}
		w.put(col, row, runes[i])
		col++
		if col >= w.bounds.Width {
			row++
			col = cx
			i = skipSpaces(runes, i+1) - 1
		}
	}
	return w
}

// WriteStyled writes text with its own styling, then restores the
// writer's previous style.
func (w *Writer) WriteStyled(x, y Pos, text string, fg, bg terminal.Color, attrs terminal.Attr) *Writer {
	pfg, pbg, pattrs := w.fg, w.bg, w.attrs
	w.SetFg(fg).SetBg(bg).SetAttrs(attrs)
	w.Write(x, y, text)
	w.fg, w.bg, w.attrs = pfg, pbg, pattrs
	return w
}

// Get returns the cell at (x, y).
func (w *Writer) Get(x, y Pos) Cell {
	cx := x.resolve(w.bounds.Width)
	cy := y.resolve(w.bounds.Height)
	w.bounds.check(cx, cy, w.grid.width, len(w.grid.cells))
	return w.grid.cells[w.bounds.Index(cx, cy, w.grid.width)]
}

// Sub returns a Range over the given sub-rectangle. Its origin is
// relative to this writer's bounds.
func (w *Writer) Sub(x, y Pos, width, height Span) *Range {
	cx := x.resolve(w.bounds.Width)
	cy := y.resolve(w.bounds.Height)
	sw := width.resolve(w.bounds.Width, cx)
	sh := height.resolve(w.bounds.Height, cy)

	if cx < 0 || cy < 0 || sw <= 0 || sh <= 0 || cx+sw > w.bounds.Width || cy+sh > w.bounds.Height {
		panic(fmt.Sprintf("grid: sub-range %dx%d at (%d,%d) outside %dx%d view",
			sw, sh, cx, cy, w.bounds.Width, w.bounds.Height))
	}

	return newRange(w.grid, Bounds{
		Left:   w.bounds.Left + cx,
		Top:    w.bounds.Top + cy,
		Width:  sw,
		Height: sh,
	})
}

// skipSpaces returns the index of the first non-space rune at or after
// i. Only literal spaces are skipped, matching the line-wrap utility.
func skipSpaces(runes []rune, i int) int {
	for i < len(runes) && runes[i] == ' ' {
		i++
	}
	return i
}
