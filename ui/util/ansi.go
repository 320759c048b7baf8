package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible display width of a string (excluding ANSI codes).
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Fit truncates or right-pads s to exactly width display cells.
// Escape sequences are preserved and do not count towards the width.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return ansi.Truncate(s, width, "")
}

// Ellipsize truncates s to width cells, ending with "…" when cut.
func Ellipsize(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// FilterClearSequences removes ANSI sequences that would clear the screen.
// Pane content must never wipe the rest of the split.
func FilterClearSequences(line string) string {
	line = strings.ReplaceAll(line, "\x1b[2J", "")   // Clear entire screen
	line = strings.ReplaceAll(line, "\x1b[H", "")    // Move cursor to home
	line = strings.ReplaceAll(line, "\x1b[0;0H", "") // Move cursor to 0,0
	line = strings.ReplaceAll(line, "\x1b[1;1H", "") // Move cursor to 1,1
	return line
}
