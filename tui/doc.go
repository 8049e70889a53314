// Package tui provides drawing helpers for building help screens and
// panels on top of grid writers: frames, rules, aligned labels, text
// shaping, and column-aligned tables.
package tui
