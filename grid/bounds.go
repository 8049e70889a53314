package grid

import "fmt"

// Bounds describes a rectangular view into a grid, in grid coordinates.
// Width and Height must be positive for any view that indexes cells.
type Bounds struct {
	Left, Top     int
	Width, Height int
}

// Index maps view-local coordinates to a flat grid index.
func (b Bounds) Index(x, y, gridWidth int) int {
	return x + b.Left + gridWidth*(y+b.Top)
}

// check validates a view-local position against the view's own size and
// the owning grid's cell count. Violations are caller bugs, not
// recoverable runtime conditions, and panic.
func (b Bounds) check(x, y, gridWidth, gridSize int) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		panic(fmt.Sprintf("grid: position (%d,%d) outside %dx%d view", x, y, b.Width, b.Height))
	}
	if idx := b.Index(x, y, gridWidth); idx < 0 || idx >= gridSize {
		panic(fmt.Sprintf("grid: index %d outside grid of %d cells", idx, gridSize))
	}
}
