package highlight

import (
	"testing"

	"github.com/lixenwraith/textgrid/grid"
	"github.com/lixenwraith/textgrid/terminal"
)

func rowString(w *grid.Writer, y int) string {
	runes := make([]rune, w.Width())
	for x := range runes {
		runes[x] = w.Get(grid.At(x), grid.At(y)).Rune
	}
	return string(runes)
}

func TestCodeWritesContent(t *testing.T) {
	g := grid.New(20, 2, grid.SideBySide)
	w := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)

	Code(w, 0, 0, "func main() {}", "go", "monokai")

	if got := rowString(w, 0); got != "func main() {}      " {
		t.Errorf("Expected source text laid out plainly, got %q", got)
	}
}

func TestCodeStylesKeywords(t *testing.T) {
	g := grid.New(20, 1, grid.SideBySide)
	w := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)

	Code(w, 0, 0, "func main() {}", "go", "monokai")

	if w.Get(grid.At(0), grid.At(0)).Fg.IsDefault() {
		t.Error("Expected keyword to get a non-default foreground")
	}
	if !w.Get(grid.At(0), grid.At(0)).Bg.IsBackground() {
		t.Error("Expected written cells to keep tagged backgrounds")
	}
}

func TestCodeMultilineAndClipping(t *testing.T) {
	g := grid.New(8, 2, grid.SideBySide)
	w := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)

	Code(w, 0, 0, "aa\nbb\ncc\ndd", "text", "")

	if got := rowString(w, 0); got != "aa      " {
		t.Errorf("Row 0: got %q", got)
	}
	if got := rowString(w, 1); got != "bb      " {
		t.Errorf("Row 1: got %q", got)
	}
	// cc/dd dropped past the bottom edge without panicking
}

func TestCodeClipsLongLines(t *testing.T) {
	g := grid.New(4, 1, grid.SideBySide)
	w := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)

	Code(w, 0, 0, "abcdefghij", "text", "")

	if got := rowString(w, 0); got != "abcd" {
		t.Errorf("Expected right clip, got %q", got)
	}
}

func TestCodeRestoresWriterStyle(t *testing.T) {
	g := grid.New(10, 1, grid.SideBySide)
	w := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)
	w.SetFg(terminal.Palette(9))

	Code(w, 0, 0, "x := 1", "go", "")

	if w.Fg() != terminal.Palette(9) {
		t.Error("Expected writer style untouched after Code")
	}
}

func TestCodeOutsideViewIsNoop(t *testing.T) {
	g := grid.New(4, 1, grid.SideBySide)
	w := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)

	Code(w, 4, 0, "abc", "text", "")
	Code(w, 0, 1, "abc", "text", "")

	if got := rowString(w, 0); got != "    " {
		t.Errorf("Expected untouched row, got %q", got)
	}
}
