// Package util holds small text helpers shared by the TUI and CLI renderers.
package util

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to truncated names.
const Ellipsis = "…"

// Truncate shortens s to at most width terminal columns, ending it with an
// ellipsis when it was cut. Escape codes and wide characters are measured
// by their visible width.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return Ellipsis
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// PadRight pads s with spaces up to width visible columns.
func PadRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Count formats n with a noun, pluralizing with "s" unless n is 1:
// Count(1, "name") is "1 name", Count(3, "team") is "3 teams".
func Count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
