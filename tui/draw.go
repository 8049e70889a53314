package tui

import (
	"github.com/lixenwraith/textgrid/grid"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Frame draws a border around the writer's view edge with the writer's
// current style. An optional title is centered in the top edge.
func Frame(w *grid.Writer, title string, line LineType) {
	if w.Width() < 2 || w.Height() < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	// Corners
	w.Set(grid.At(0), grid.At(0), chars[boxTL])
	w.Set(grid.End, grid.At(0), chars[boxTR])
	w.Set(grid.At(0), grid.End, chars[boxBL])
	w.Set(grid.End, grid.End, chars[boxBR])

	// Edges
	for x := 1; x < w.Width()-1; x++ {
		w.Set(grid.At(x), grid.At(0), chars[boxH])
		w.Set(grid.At(x), grid.End, chars[boxH])
	}
	for y := 1; y < w.Height()-1; y++ {
		w.Set(grid.At(0), grid.At(y), chars[boxV])
		w.Set(grid.End, grid.At(y), chars[boxV])
	}

	if title != "" && w.Width() > 4 {
		display := Truncate(title, w.Width()-4)
		LabelCenter(w, 0, " "+display+" ")
	}
}

// HRule draws a horizontal line across the view at row y.
func HRule(w *grid.Writer, y int, line LineType) {
	if y < 0 || y >= w.Height() {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	w.Fill(grid.At(0), grid.At(y), grid.Remaining, grid.Cells(1), boxChars[line][boxH])
}

// VRule draws a vertical line across the view at column x.
func VRule(w *grid.Writer, x int, line LineType) {
	if x < 0 || x >= w.Width() {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	w.Fill(grid.At(x), grid.At(0), grid.Cells(1), grid.Remaining, boxChars[line][boxV])
}

// Label writes text at position with the writer's current style,
// clipping at the view edges instead of wrapping.
func Label(w *grid.Writer, x, y int, s string) {
	if y < 0 || y >= w.Height() {
		return
	}
	col := 0
	for _, ch := range s {
		if x+col >= w.Width() {
			break
		}
		if x+col >= 0 {
			w.Set(grid.At(x+col), grid.At(y), ch)
		}
		col++
	}
}

// LabelRight writes text right-aligned on row y.
func LabelRight(w *grid.Writer, y int, s string) {
	Label(w, w.Width()-RuneLen(s), y, s)
}

// LabelCenter writes text centered on row y.
func LabelCenter(w *grid.Writer, y int, s string) {
	Label(w, (w.Width()-RuneLen(s))/2, y, s)
}
