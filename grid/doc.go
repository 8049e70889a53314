// Package grid implements a fixed-size 2D buffer of styled cells,
// written through bounded views and serialized to a single ANSI byte
// stream with run-merged escape sequences.
//
// A Grid owns the cell storage. Writers and Ranges are lightweight
// views borrowing the grid with their own bounds and cursor state; the
// grid carries no locking, so a single logical owner drives all views
// sequentially. Overlapping writers are last-write-wins.
package grid
