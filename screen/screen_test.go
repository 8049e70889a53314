package screen

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/textgrid/grid"
	"github.com/lixenwraith/textgrid/terminal"
)

func newSim(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestBlitContent(t *testing.T) {
	g := grid.New(4, 2, grid.SideBySide)
	w := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)
	w.Write(grid.At(0), grid.At(0), "abcdefgh")

	s := newSim(t, 4, 2)
	Blit(g, s, 0, 0)
	s.Show()

	cells, _, _ := s.GetContents()
	want := "abcdefgh"
	for i, c := range cells {
		if len(c.Runes) == 0 || c.Runes[0] != rune(want[i]) {
			t.Errorf("Cell %d: expected %q, got %v", i, want[i], c.Runes)
		}
	}
}

func TestBlitStyle(t *testing.T) {
	g := grid.New(2, 1, grid.SideBySide)
	w := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)
	w.SetFg(terminal.Palette(2)).SetAttrs(terminal.AttrBold).Set(grid.At(0), grid.At(0), 'x')

	s := newSim(t, 2, 1)
	Blit(g, s, 0, 0)
	s.Show()

	cells, _, _ := s.GetContents()
	fg, _, mask := cells[0].Style.Decompose()
	if fg != tcell.PaletteColor(2) {
		t.Errorf("Expected palette color 2, got %v", fg)
	}
	if mask&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}
}

func TestBlitOffset(t *testing.T) {
	g := grid.New(2, 1, grid.SideBySide)
	g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining).Write(grid.At(0), grid.At(0), "hi")

	s := newSim(t, 6, 3)
	Blit(g, s, 3, 1)
	s.Show()

	cells, w, _ := s.GetContents()
	if got := cells[1*w+3].Runes[0]; got != 'h' {
		t.Errorf("Expected 'h' at offset, got %q", got)
	}
}

func TestStyleRoundTrip(t *testing.T) {
	c := grid.Cell{
		Rune:  'q',
		Fg:    terminal.RGBColor(10, 20, 30),
		Bg:    terminal.Palette(7).Background(),
		Attrs: terminal.AttrItalic | terminal.AttrReverse,
	}

	fg, bg, attrs := FromTcell(StyleFor(c))
	if fg != c.Fg {
		t.Errorf("Expected fg %v, got %v", c.Fg, fg)
	}
	if bg != c.Bg {
		t.Errorf("Expected bg %v, got %v", c.Bg, bg)
	}
	if attrs != c.Attrs {
		t.Errorf("Expected attrs %v, got %v", c.Attrs, attrs)
	}
}

func TestDefaultRoundTrip(t *testing.T) {
	fg, bg, attrs := FromTcell(tcell.StyleDefault)
	if !fg.IsDefault() || !bg.IsDefault() || attrs != terminal.AttrNone {
		t.Error("Expected default style to round-trip to unstyled tokens")
	}
	if !bg.IsBackground() {
		t.Error("Expected converted background to come back tagged")
	}
}
