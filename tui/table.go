package tui

import "github.com/lixenwraith/textgrid/grid"

const columnGap = 2

// Table writes rows as columns sized to their widest cell, starting at
// (x, y). The header row uses the writer's current style; data rows
// follow below it. Rows past the bottom edge are dropped, cells past
// the right edge are clipped. Returns the number of rows written.
func Table(w *grid.Writer, x, y int, header []string, rows [][]string) int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = RuneLen(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if l := RuneLen(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	written := 0
	writeRow := func(row []string, at int) {
		col := x
		for i := 0; i < len(widths) && i < len(row); i++ {
			Label(w, col, at, PadRight(row[i], widths[i]))
			col += widths[i] + columnGap
		}
	}

	if y >= 0 && y < w.Height() {
		writeRow(header, y)
		written++
	}
	for i, row := range rows {
		at := y + 1 + i
		if at >= w.Height() {
			break
		}
		writeRow(row, at)
		written++
	}
	return written
}
