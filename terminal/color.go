package terminal

import (
	"os"
	"strings"
)

// ColorKind identifies how a Color is encoded.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota // terminal's own default color
	ColorPalette                  // xterm-256 palette index
	ColorRGB                      // 24-bit RGB
)

// Color is an opaque style token. The zero value is the terminal's
// default color. Tokens compare with ==; a token tagged as a background
// emits 48-prefixed SGR codes instead of 38-prefixed ones.
type Color struct {
	kind    ColorKind
	r, g, b uint8
	bg      bool
}

// DefaultBackground is the default color tagged as a background.
var DefaultBackground = Color{bg: true}

// Palette returns a color addressing the xterm-256 palette.
func Palette(n uint8) Color {
	return Color{kind: ColorPalette, r: n}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{kind: ColorRGB, r: r, g: g, b: b}
}

// Background returns the same color tagged as a background. This is
// the only way background-tagged tokens are produced; storage layers
// route every background assignment through it.
func (c Color) Background() Color {
	c.bg = true
	return c
}

// IsDefault reports whether the token is the terminal default,
// regardless of background tagging.
func (c Color) IsDefault() bool {
	return c.kind == ColorDefault
}

// IsBackground reports whether the token is tagged as a background.
func (c Color) IsBackground() bool {
	return c.bg
}

// Kind returns the color encoding.
func (c Color) Kind() ColorKind {
	return c.kind
}

// RGB returns the color channels. For palette colors the index is in
// the first channel.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// ColorMode indicates terminal color capability.
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. Check COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Check terminal-specific env vars
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return ColorModeTrueColor
	}
	if os.Getenv("KONSOLE_VERSION") != "" {
		return ColorModeTrueColor
	}
	if os.Getenv("ITERM_SESSION_ID") != "" {
		return ColorModeTrueColor
	}
	if os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	// 3. Check TERM for known true color terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	// 4. Default to 256-color
	return ColorMode256
}
