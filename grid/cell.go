package grid

import "github.com/lixenwraith/textgrid/terminal"

// Cell is one grid position: a character plus its styling. One cell
// renders as one terminal column; wide runes are the caller's concern.
// Backgrounds stored in cells are always background-tagged.
type Cell struct {
	Fg    terminal.Color
	Bg    terminal.Color
	Attrs terminal.Attr
	Rune  rune
}

// styled reports whether the cell needs an escape sequence when
// serialized: any non-default foreground or background, or any
// attribute bit.
func (c Cell) styled() bool {
	return !c.Fg.IsDefault() || !c.Bg.IsDefault() || c.Attrs != terminal.AttrNone
}

// sameStyle reports whether two cells belong to the same serialization
// run. The character is ignored.
func sameStyle(a, b Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Attrs == b.Attrs
}
