package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Layout
	App lipgloss.Style

	// Splitter parts
	Splitter       lipgloss.Style
	SplitterActive lipgloss.Style
	Handle         lipgloss.Style
	HandleActive   lipgloss.Style

	// Panes
	PaneHeader          lipgloss.Style
	PaneHeaderSecondary lipgloss.Style
	PaneBody            lipgloss.Style

	// Misc
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle(),

		// Splitter - a thin rule, brighter while it is being dragged
		Splitter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		SplitterActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")),
		Handle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		HandleActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),

		// Panes
		PaneHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")),
		PaneHeaderSecondary: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("240")),
		PaneBody: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		// Misc
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
	}
}
