package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/splitview/ui/style"
	"github.com/drake/splitview/ui/util"
)

// Compile-time check that Pane implements Widget
var _ Widget = (*Pane)(nil)

// maxPaneLines bounds a pane's history; trimming keeps the newest half.
const maxPaneLines = 1000

// Pane is a titled, scrollable text region occupying one slot.
type Pane struct {
	Title string
	Lines []string

	slot     string
	vp       viewport.Model
	styles   style.Styles
	width    int
	height   int
	follow   bool // stick to the bottom as lines arrive
	rendered bool
}

// NewPane creates a new pane widget.
func NewPane(title string, styles style.Styles) *Pane {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return &Pane{
		Title:  title,
		Lines:  make([]string, 0, 100),
		vp:     vp,
		styles: styles,
		follow: true,
	}
}

// SetSlot records which slot the pane is shown in, for the header style.
func (p *Pane) SetSlot(slot string) {
	p.slot = slot
}

// View implements Widget. A pane collapsed to zero cells renders nothing.
func (p *Pane) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}
	p.sync()

	header := p.styles.PaneHeader
	if p.slot != "primary" {
		header = p.styles.PaneHeaderSecondary
	}
	title := header.Render(util.Fit(" "+util.Ellipsize(p.Title, max(p.width-2, 0))+" ", p.width))
	if p.height == 1 {
		return title
	}

	body := p.styles.PaneBody.
		Width(p.width).
		Height(p.height - 1).
		MaxWidth(p.width).
		MaxHeight(p.height - 1).
		Render(p.vp.View())
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// SetSize implements Widget. One row is taken by the header.
func (p *Pane) SetSize(width, height int) {
	p.width = max(width, 0)
	p.height = max(height, 0)
	p.vp.Width = p.width
	p.vp.Height = max(p.height-1, 0)
	p.rendered = false
}

// Size returns the last size set.
func (p *Pane) Size() (width, height int) {
	return p.width, p.height
}

// Write appends a line to the pane.
func (p *Pane) Write(text string) {
	p.Lines = append(p.Lines, util.FilterClearSequences(text))
	if len(p.Lines) > maxPaneLines {
		p.Lines = p.Lines[len(p.Lines)-maxPaneLines/2:]
	}
	p.rendered = false
}

// Clear empties the pane.
func (p *Pane) Clear() {
	p.Lines = p.Lines[:0]
	p.follow = true
	p.rendered = false
}

// ScrollUp scrolls back by n lines and stops following new output.
func (p *Pane) ScrollUp(n int) {
	p.sync()
	p.vp.ScrollUp(n)
	p.follow = p.vp.AtBottom()
}

// ScrollDown scrolls forward by n lines. Reaching the bottom resumes
// following.
func (p *Pane) ScrollDown(n int) {
	p.sync()
	p.vp.ScrollDown(n)
	p.follow = p.vp.AtBottom()
}

// Following reports whether the pane sticks to its newest line.
func (p *Pane) Following() bool {
	return p.follow
}

func (p *Pane) sync() {
	if p.rendered {
		return
	}
	p.vp.SetContent(strings.Join(p.Lines, "\n"))
	if p.follow {
		p.vp.GotoBottom()
	}
	p.rendered = true
}
