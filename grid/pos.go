package grid

type posMode uint8

const (
	posAt posMode = iota
	posCenter
	posEnd
)

// Pos is a position on one axis: an absolute coordinate, or a
// placement resolved once at the API boundary against the view's own
// size. Using tagged values instead of reserved integers keeps every
// legal coordinate addressable.
type Pos struct {
	mode posMode
	n    int
}

// At returns an absolute position.
func At(n int) Pos {
	return Pos{n: n}
}

// Placements resolved against the view's own axis size.
var (
	Center = Pos{mode: posCenter} // (size-1)/2
	End    = Pos{mode: posEnd}    // size-1
)

// resolve returns the concrete coordinate on an axis of the given
// inclusive size.
func (p Pos) resolve(axis int) int {
	switch p.mode {
	case posCenter:
		return (axis - 1) / 2
	case posEnd:
		return axis - 1
	}
	return p.n
}

type spanMode uint8

const (
	spanCells spanMode = iota
	spanRemaining
)

// Span is an extent on one axis: a fixed cell count, or the space
// remaining after an offset.
type Span struct {
	mode spanMode
	n    int
}

// Cells returns a fixed extent.
func Cells(n int) Span {
	return Span{n: n}
}

// Remaining resolves to the axis total minus the starting offset.
var Remaining = Span{mode: spanRemaining}

// resolve returns the concrete extent on an axis of the given total,
// starting at offset.
func (s Span) resolve(axis, offset int) int {
	if s.mode == spanRemaining {
		return axis - offset
	}
	return s.n
}
