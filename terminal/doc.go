// Package terminal provides the styling vocabulary for grid output:
// color tokens, attribute bitmasks, and direct ANSI SGR assembly.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: xterm-compatible terminals with
// 256-color or true color support.
package terminal
