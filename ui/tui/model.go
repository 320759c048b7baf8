package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/drake/splitview/dom"
	"github.com/drake/splitview/event"
	"github.com/drake/splitview/splitview"
	"github.com/drake/splitview/ui/style"
	"github.com/drake/splitview/ui/tui/layout"
	"github.com/drake/splitview/ui/tui/widget"
)

// wheelLines is how far one wheel notch scrolls a pane.
const wheelLines = 3

// Options configures a Model.
type Options struct {
	Config splitview.Config
	Dir    splitview.Direction
	Panes  []string // initial pane titles, in child order
	Logger zerolog.Logger
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	// Host tree
	host     *dom.Element
	splitter *dom.Element
	handle   *dom.Element
	view     *splitview.SplitView

	// Layout
	engine *layout.Engine

	// Widgets, keyed by element id
	panes   map[string]*widget.Pane
	divider *widget.Splitter
	styles  style.Styles
	keys    keyMap

	logger   zerolog.Logger
	nextID   *int
	width    int
	height   int
	quitting bool
}

// NewModel builds the host tree, attaches a split view to it and assigns
// the initial panes.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg.Orientation == "" {
		cfg.Orientation = splitview.Horizontal
	}
	if err := cfg.Validate(); err != nil {
		return Model{}, fmt.Errorf("invalid split config: %w", err)
	}
	dir := opts.Dir
	if dir == "" {
		dir = splitview.LTR
	}

	styles := style.DefaultStyles()
	host := dom.NewElement("host")
	host.SetAttribute(splitview.OrientationAttr, string(cfg.Orientation))
	host.SetAttribute(splitview.DirAttr, string(dir))
	if cfg.Hidden {
		host.SetAttribute(splitview.HiddenAttr, "")
	}

	splitter := dom.NewElement("splitter")
	handle := dom.NewElement("handle")
	splitter.AppendChild(handle)
	host.AttachShadow().AppendChild(splitter)

	m := Model{
		host:     host,
		splitter: splitter,
		handle:   handle,
		engine:   layout.NewEngine(),
		panes:    make(map[string]*widget.Pane),
		divider:  widget.NewSplitter(cfg.Orientation == splitview.Horizontal, styles),
		styles:   styles,
		keys:     defaultKeyMap(),
		logger:   opts.Logger,
		nextID:   new(int),
	}

	host.Batch(func() {
		for _, title := range opts.Panes {
			m.appendPane(title)
		}
	})

	m.view = splitview.New(host, splitter, cfg,
		splitview.WithLogger(opts.Logger.With().Str("component", "splitview").Logger()),
	)
	m.view.Ready()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case paneWriteMsg:
		if p := m.paneByTitle(msg.Title); p != nil {
			p.Write(msg.Text)
		}
		return m, nil

	case paneClearMsg:
		if p := m.paneByTitle(msg.Title); p != nil {
			p.Clear()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.view.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Append):
		m.appendPane("")
		m.relayout()

	case key.Matches(msg, m.keys.Remove):
		if children := m.host.ChildElements(); len(children) > 0 {
			first := children[0]
			m.host.RemoveChild(first)
			delete(m.panes, first.ID())
			m.logger.Debug().Str("pane", first.ID()).Msg("pane removed")
		}
		m.relayout()

	case key.Matches(msg, m.keys.ToggleDir):
		dir, _ := m.host.Attribute(splitview.DirAttr)
		next := splitview.RTL
		if splitview.Direction(dir) == splitview.RTL {
			next = splitview.LTR
		}
		m.host.SetAttribute(splitview.DirAttr, string(next))
		m.logger.Debug().Str("dir", string(next)).Msg("direction changed")
	}
	return m, nil
}

// handleMouse turns a terminal mouse event into a pointer event routed
// through the host tree, or scrolls the pane under a wheel event.
func (m Model) handleMouse(msg tea.MouseMsg) {
	var typ event.Type
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		if p := m.paneAt(msg.X, msg.Y); p != nil {
			p.ScrollUp(wheelLines)
		}
		return
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		if p := m.paneAt(msg.X, msg.Y); p != nil {
			p.ScrollDown(wheelLines)
		}
		return
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		typ = event.PointerDown
	case msg.Action == tea.MouseActionMotion:
		typ = event.PointerMove
	case msg.Action == tea.MouseActionRelease:
		typ = event.PointerUp
	default:
		return
	}

	m.host.RoutePointer(event.Pointer{
		Type:      typ,
		PointerID: event.MousePointerID,
		X:         float64(msg.X),
		Y:         float64(msg.Y),
	})
	m.relayout()
}

// appendPane adds a pane element to the host. An empty title is numbered.
func (m Model) appendPane(title string) {
	*m.nextID++
	id := fmt.Sprintf("pane-%d", *m.nextID)
	if title == "" {
		title = fmt.Sprintf("pane %d", *m.nextID)
	}

	p := widget.NewPane(title, m.styles)
	p.Write(m.styles.Muted.Render(helpLine(m.keys)))
	m.panes[id] = p
	m.host.AppendChild(dom.NewElement(id))
	m.logger.Debug().Str("pane", id).Str("title", title).Msg("pane appended")
}

// relayout recomputes bounds and pushes them into the widgets.
func (m Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	cfg := m.view.Config()
	m.engine.SetSize(float64(m.width), float64(m.height))
	m.engine.Calculate(m.host, m.splitter, cfg)

	for _, c := range m.host.ChildElements() {
		p, ok := m.panes[c.ID()]
		if !ok {
			continue
		}
		b := c.Bounds()
		p.SetSize(int(b.Width), int(b.Height))
		slot, _ := c.Attribute(splitview.SlotAttr)
		p.SetSlot(slot)
	}

	sb, hb := m.splitter.Bounds(), m.handle.Bounds()
	m.divider.SetSize(int(sb.Width), int(sb.Height))
	if cfg.Orientation == splitview.Vertical {
		m.divider.SetHandle(int(hb.X-sb.X), int(hb.Width))
	} else {
		m.divider.SetHandle(int(hb.Y-sb.Y), int(hb.Height))
	}
	m.divider.SetActive(m.view.Dragging())
}

// paneAt returns the pane whose element is under the cell, if any.
func (m Model) paneAt(x, y int) *widget.Pane {
	for target := m.host.HitTest(float64(x), float64(y)); target != nil; target = target.Parent() {
		if target.Parent() == m.host {
			return m.panes[target.ID()]
		}
	}
	return nil
}

func (m Model) paneByTitle(title string) *widget.Pane {
	for _, c := range m.host.ChildElements() {
		if p := m.panes[c.ID()]; p != nil && p.Title == title {
			return p
		}
	}
	return nil
}

// View implements tea.Model.
func (m Model) View() string {
	cfg := m.view.Config()
	if m.quitting || cfg.Hidden || m.width <= 0 || m.height <= 0 {
		return ""
	}

	primary, secondary := layout.Slotted(m.host)
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if primary != nil {
		add(m.panes[primary.ID()].View())
	}
	add(m.divider.View())
	if secondary != nil {
		add(m.panes[secondary.ID()].View())
	}

	var body string
	if cfg.Orientation == splitview.Vertical {
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return m.styles.App.
		Width(m.width).
		Height(m.height).
		MaxWidth(m.width).
		MaxHeight(m.height).
		Render(body)
}

// SplitView returns the split view driving the model.
func (m Model) SplitView() *splitview.SplitView {
	return m.view
}

// Host returns the host element.
func (m Model) Host() *dom.Element {
	return m.host
}

func helpLine(k keyMap) string {
	bindings := k.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "drag the divider · " + strings.Join(parts, " · ")
}
