// Command textgrid-demo renders a sample help screen: a framed panel
// with wrapped text, a command table, and a highlighted code snippet,
// serialized to stdout or presented on a live tcell screen.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/textgrid/grid"
	"github.com/lixenwraith/textgrid/highlight"
	"github.com/lixenwraith/textgrid/screen"
	"github.com/lixenwraith/textgrid/terminal"
	"github.com/lixenwraith/textgrid/tui"
)

const sample = `package main

import "fmt"

func main() {
	fmt.Println("hello")
}`

func main() {
	width := flag.Int("width", 0, "grid width (default: terminal width, else 80)")
	height := flag.Int("height", 0, "grid height (default: 18)")
	live := flag.Bool("live", false, "present on a tcell screen instead of printing")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	w, h := *width, *height
	if w == 0 {
		w = 80
		if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
			w = tw
		}
	}
	if h == 0 {
		h = 18
	}

	mode := terminal.DetectColorMode()
	l.Info("rendering",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Bool("truecolor", mode == terminal.ColorModeTrueColor))

	g := buildHelpScreen(w, h, mode)

	if *live {
		if err := present(g); err != nil {
			l.Fatal("present", zap.Error(err))
		}
		return
	}

	out := g.Render()
	l.Info("serialized", zap.Int("bytes", len(out)))
	fmt.Println(string(out))
}

// Theme colors are stored at full fidelity; the grid's color mode
// downsamples them at serialization time on 256-color terminals.
var (
	titleColor = terminal.RGBColor(122, 162, 247)
	keyColor   = terminal.RGBColor(158, 206, 106)
)

func buildHelpScreen(w, h int, mode terminal.ColorMode) *grid.Grid {
	g := grid.New(w, h, grid.AddNewLine)
	g.SetColorMode(mode)

	root := g.View(grid.At(0), grid.At(0), grid.Remaining, grid.Remaining)
	root.SetFg(titleColor).SetAttrs(terminal.AttrBold)
	tui.Frame(root, "textgrid", tui.LineRounded)

	if w < 10 || h < 8 {
		return g
	}

	body := g.View(grid.At(2), grid.At(2), grid.Cells(w-4), grid.Cells(h-3))
	intro, err := grid.Wrap(
		"A fixed-size grid of styled cells, written through rectangular "+
			"views and serialized to ANSI with run-merged escapes.",
		w-4, "", "")
	if err != nil {
		intro = "textgrid"
	}
	body.Write(grid.At(0), grid.At(0), intro)

	tableTop := strings.Count(intro, "\n") + 2
	body.SetFg(keyColor)
	tui.Table(body, 0, tableTop,
		[]string{"COMMAND", "DESCRIPTION"},
		[][]string{
			{"render", "serialize the grid to ANSI bytes"},
			{"blit", "project the grid onto a tcell screen"},
			{"wrap", "format text with prefix and suffix"},
		})
	body.SetFg(terminal.Color{})

	codeTop := tableTop + 6
	if codeTop < body.Height() {
		highlight.Code(body, 0, codeTop, sample, "go", "monokai")
	}

	return g
}

// present shows the grid on a live screen until a key is pressed.
func present(g *grid.Grid) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	s.Clear()
	screen.Blit(g, s, 0, 0)
	s.Show()

	for {
		switch s.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			s.Sync()
		}
	}
}
