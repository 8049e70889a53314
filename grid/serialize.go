package grid

import (
	"unicode/utf8"

	"github.com/lixenwraith/textgrid/terminal"
)

// Render serializes the grid into a single ANSI byte stream, merging
// consecutive same-styled cells into one escape-introduced run. The
// result is cached: calls between mutations return the same slice,
// stable until the next mutation. Callers must not retain it across
// mutations; RenderString returns an owned copy.
func (g *Grid) Render() []byte {
	if !g.dirty {
		return g.out
	}

	out := g.out[:0]
	last := len(g.cells) - 1
	plain := 0 // characters emitted since the last row separator

	for start := 0; start <= last; {
		end := start + 1
		for end <= last && sameStyle(g.cells[end], g.cells[start]) {
			end++
		}

		styled := g.cells[start].styled()
		if styled {
			c := g.cells[start]
			out = terminal.AppendStyle(out,
				c.Fg.Downsample(g.colorMode),
				c.Bg.Downsample(g.colorMode),
				c.Attrs)
		}

		for i := start; i < end; i++ {
			out = utf8.AppendRune(out, g.cells[i].Rune)
			plain++
			// Row separators count plain characters independently of
			// run boundaries; the final row never gets one.
			if g.mode == AddNewLine && plain == g.width {
				if i != last {
					out = append(out, '\n')
				}
				plain = 0
			}
		}

		if styled {
			out = append(out, terminal.Reset...)
		}
		start = end
	}

	g.out = out
	g.dirty = false
	return g.out
}

// RenderString returns an owned copy of the serialized output.
func (g *Grid) RenderString() string {
	return string(g.Render())
}
