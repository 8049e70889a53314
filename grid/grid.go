package grid

import (
	"fmt"

	"github.com/lixenwraith/textgrid/terminal"
)

// LineMode controls row separation in serialized output.
type LineMode uint8

const (
	SideBySide LineMode = iota // rows concatenated with no separator
	AddNewLine                 // newline after each full row of characters
)

// Grid owns the cell storage shared by every view. It is created once
// with fixed dimensions and never resized. Every mutation through any
// view invalidates the cached serialization for the whole grid.
type Grid struct {
	cells     []Cell
	width     int
	height    int
	mode      LineMode
	colorMode terminal.ColorMode

	// Explicit dirty flag alongside a persistently reused output
	// buffer; invalidation never discards the buffer's capacity.
	dirty bool
	out   []byte
}

// New allocates a width*height grid of default cells: space characters
// with default colors and no attributes.
func New(width, height int, mode LineMode) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	g := &Grid{
		cells:     make([]Cell, width*height),
		width:     width,
		height:    height,
		mode:      mode,
		colorMode: terminal.ColorModeTrueColor,
		dirty:     true,
	}
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', Bg: terminal.DefaultBackground}
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// View returns a Writer over the given sub-rectangle. Remaining spans
// resolve against the space left of the grid from the view's origin.
func (g *Grid) View(left, top Pos, width, height Span) *Writer {
	l := left.resolve(g.width)
	t := top.resolve(g.height)
	w := width.resolve(g.width, l)
	h := height.resolve(g.height, t)

	if l < 0 || t < 0 || w <= 0 || h <= 0 || l+w > g.width || t+h > g.height {
		panic(fmt.Sprintf("grid: view %dx%d at (%d,%d) outside %dx%d grid", w, h, l, t, g.width, g.height))
	}

	return &Writer{
		grid:   g,
		bounds: Bounds{Left: l, Top: t, Width: w, Height: h},
		bg:     terminal.DefaultBackground,
	}
}

// SetColorMode sets the color capability serialization targets. Under
// ColorMode256, RGB cell colors are downsampled to their nearest
// palette index at emission time; cell storage keeps full fidelity.
func (g *Grid) SetColorMode(mode terminal.ColorMode) {
	if mode == g.colorMode {
		return
	}
	g.colorMode = mode
	g.markDirty()
}

// markDirty invalidates the cached serialization. Called by every
// mutation path reachable from any view.
func (g *Grid) markDirty() {
	g.dirty = true
}
