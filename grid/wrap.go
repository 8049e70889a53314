package grid

import (
	"errors"
	"fmt"
)

// ErrBudgetTooSmall reports a wrap budget that cannot fit a single
// character once the prefix, suffix, and line terminator are accounted
// for.
var ErrBudgetTooSmall = errors.New("wrap budget too small for prefix, suffix, and line terminator")

// Wrap formats text into lines of at most budget bytes including the
// prefix, suffix, and line terminator. Wrapping is per character, not
// per word; runs of literal spaces at each break point are skipped.
// The result never ends in a line terminator.
func Wrap(text string, budget int, prefix, suffix string) (string, error) {
	overhead := len(prefix) + len(suffix) + 1
	charsPerLine := budget - overhead
	if charsPerLine <= 0 {
		return "", fmt.Errorf("%w: budget %d, overhead %d", ErrBudgetTooSmall, budget, overhead)
	}

	// Conservative one-shot allocation: chunk bytes never exceed the
	// input, and each non-final line consumes at least charsPerLine.
	estLines := len(text)/charsPerLine + 1
	buf := make([]byte, 0, len(text)+overhead*estLines)

	for off := 0; off < len(text); {
		for off < len(text) && text[off] == ' ' {
			off++
		}
		if off >= len(text) {
			break
		}
		end := off + charsPerLine
		if end > len(text) {
			end = len(text)
		}
		buf = append(buf, prefix...)
		buf = append(buf, text[off:end]...)
		buf = append(buf, suffix...)
		buf = append(buf, '\n')
		off = end
	}

	if len(buf) > 0 && buf[len(buf)-1] == '\n' {
		buf = buf[:len(buf)-1]
	}
	return string(buf), nil
}
