package tui

import (
	"strings"
	"unicode/utf8"
)

// RuneLen returns the width of s in cells, counting runes rather than
// bytes. One rune occupies one cell.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate clips s to at most width cells. When anything is cut, the
// last kept cell becomes an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// TruncateLeft clips from the front instead, keeping the tail of s
// behind a leading ellipsis.
func TruncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return "…" + string(runes[len(runes)-width+1:])
}

type alignment uint8

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// pad grows s to width cells, distributing the space according to the
// alignment. Strings at or beyond width pass through unchanged.
func pad(s string, width int, align alignment) string {
	gap := width - RuneLen(s)
	if gap <= 0 {
		return s
	}
	left := 0
	switch align {
	case alignCenter:
		left = gap / 2
	case alignRight:
		left = gap
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// PadRight pads s with trailing spaces to width cells.
func PadRight(s string, width int) string {
	return pad(s, width, alignLeft)
}

// PadLeft pads s with leading spaces to width cells.
func PadLeft(s string, width int) string {
	return pad(s, width, alignRight)
}

// PadCenter centers s within width cells, the extra space going right.
func PadCenter(s string, width int) string {
	return pad(s, width, alignCenter)
}

// WrapWords breaks s into lines of at most width cells, breaking at the
// last space on each line and falling back to a hard break when a word
// fills the whole line. The character wrapper in package grid splits
// anywhere; this one keeps short words whole, which suits widget text.
func WrapWords(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	runes := []rune(s)
	var lines []string
	for start := 0; ; {
		rest := len(runes) - start
		if rest <= width {
			if rest > 0 || len(lines) == 0 {
				lines = append(lines, string(runes[start:]))
			}
			return lines
		}

		cut := start + width // hard break unless the line holds a space
		for j := cut - 1; j > start; j-- {
			if runes[j] == ' ' {
				cut = j
				break
			}
		}
		lines = append(lines, string(runes[start:cut]))

		start = cut
		if runes[start] == ' ' {
			start++
		}
	}
}
