package grid

import "fmt"

// Range is a forward, random-access, mutable cursor over a
// sub-rectangle. Construction performs one internal advance, so a
// fresh range already addresses its first cell; indexed access is
// relative to how far the cursor has advanced. A range becomes inert
// once exhausted.
type Range struct {
	grid     *Grid
	bounds   Bounds
	consumed int
}

func newRange(g *Grid, b Bounds) *Range {
	r := &Range{grid: g, bounds: b}
	r.Advance()
	return r
}

func (r *Range) size() int {
	return r.bounds.Width * r.bounds.Height
}

// Done reports whether the cursor has passed the last cell.
func (r *Range) Done() bool {
	return r.consumed > r.size()
}

// Advance moves the cursor one cell forward. Returns false once the
// range is exhausted; a w×h range takes exactly w*h advances.
func (r *Range) Advance() bool {
	if r.Done() {
		return false
	}
	r.consumed++
	return !r.Done()
}

// Remaining returns the number of cells the cursor has yet to pass,
// zero once exhausted.
func (r *Range) Remaining() int {
	if r.Done() {
		return 0
	}
	return r.size() - r.consumed + 1
}

// cellIndex maps a logical index, relative to the current cursor, to a
// flat grid index. The -1 compensates for the construction-time
// advance; both the read and write paths share this arithmetic.
func (r *Range) cellIndex(i int) int {
	li := i + r.consumed - 1
	if li < 0 || li >= r.size() {
		panic(fmt.Sprintf("grid: range index %d outside %d remaining cells", i, r.Remaining()))
	}
	col := li % r.bounds.Width
	row := li / r.bounds.Width
	r.bounds.check(col, row, r.grid.width, len(r.grid.cells))
	return r.bounds.Index(col, row, r.grid.width)
}

// Cell returns the cell at logical index i from the cursor.
func (r *Range) Cell(i int) Cell {
	return r.grid.cells[r.cellIndex(i)]
}

// SetRune replaces the character at logical index i, preserving the
// cell's existing style.
func (r *Range) SetRune(i int, ch rune) {
	r.grid.cells[r.cellIndex(i)].Rune = ch
	r.grid.markDirty()
}

// SetCell replaces style and character at logical index i. The
// background is tagged on the way in, so callers cannot store an
// untagged one.
func (r *Range) SetCell(i int, c Cell) {
	c.Bg = c.Bg.Background()
	r.grid.cells[r.cellIndex(i)] = c
	r.grid.markDirty()
}
