package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/splitview/ui/style"
)

// Compile-time check that Splitter implements Widget
var _ Widget = (*Splitter)(nil)

// Splitter renders the divider between the panes with a grab handle.
// A vertical divider separates side-by-side panes; a horizontal one
// separates stacked panes.
type Splitter struct {
	vertical bool // divider runs top to bottom
	width    int
	height   int

	// handle extent along the divider, in cells from its start
	handleStart int
	handleLen   int

	active bool
	styles style.Styles
}

// NewSplitter creates a splitter. vertical is true when the panes sit
// side by side.
func NewSplitter(vertical bool, styles style.Styles) *Splitter {
	return &Splitter{vertical: vertical, styles: styles}
}

// SetSize implements Widget.
func (s *Splitter) SetSize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// SetHandle places the handle along the divider.
func (s *Splitter) SetHandle(start, length int) {
	s.handleStart = max(start, 0)
	s.handleLen = max(length, 0)
}

// SetActive switches to the dragging style.
func (s *Splitter) SetActive(active bool) {
	s.active = active
}

// Active reports whether the dragging style is on.
func (s *Splitter) Active() bool {
	return s.active
}

// View implements Widget.
func (s *Splitter) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}

	rule, handle := s.styles.Splitter, s.styles.Handle
	if s.active {
		rule, handle = s.styles.SplitterActive, s.styles.HandleActive
	}

	if s.vertical {
		rows := make([]string, s.height)
		for i := range rows {
			if s.inHandle(i) {
				rows[i] = handle.Render(strings.Repeat("┃", s.width))
			} else {
				rows[i] = rule.Render(strings.Repeat("│", s.width))
			}
		}
		return strings.Join(rows, "\n")
	}

	var b strings.Builder
	for i := 0; i < s.width; i++ {
		if s.inHandle(i) {
			b.WriteString(handle.Render("━"))
		} else {
			b.WriteString(rule.Render("─"))
		}
	}
	row := b.String()
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = row
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *Splitter) inHandle(i int) bool {
	return i >= s.handleStart && i < s.handleStart+s.handleLen
}
