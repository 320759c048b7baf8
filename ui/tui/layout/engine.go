package layout

import (
	"github.com/drake/splitview/dom"
	"github.com/drake/splitview/layout"
	"github.com/drake/splitview/splitview"
)

// DefaultHandleLength is the handle's extent along the splitter, in cells.
const DefaultHandleLength = 3

// Engine lays out a split host: the primary slot, the splitter and the
// secondary slot along the orientation's axis, each filling the cross axis.
type Engine struct {
	width        float64
	height       float64
	snap         bool
	handleLength float64
}

// NewEngine creates a layout engine that snaps sizes to whole cells.
func NewEngine() *Engine {
	return &Engine{snap: true, handleLength: DefaultHandleLength}
}

// SetSize sets the total available size.
func (e *Engine) SetSize(width, height float64) {
	e.width = width
	e.height = height
}

// SetSnap turns cell snapping on or off. Headless layouts keep fractions.
func (e *Engine) SetSnap(snap bool) {
	e.snap = snap
}

// SetHandleLength sets the handle's extent along the splitter.
func (e *Engine) SetHandleLength(n float64) {
	e.handleLength = n
}

// Width returns the current width.
func (e *Engine) Width() float64 {
	return e.width
}

// Height returns the current height.
func (e *Engine) Height() float64 {
	return e.height
}

// Slotted returns the first child carrying each slot name, the way a
// named slot picks up light children.
func Slotted(host *dom.Element) (primary, secondary *dom.Element) {
	for _, c := range host.ChildElements() {
		slot, _ := c.Attribute(splitview.SlotAttr)
		switch {
		case slot == splitview.SlotPrimary && primary == nil:
			primary = c
		case slot == splitview.SlotSecondary && secondary == nil:
			secondary = c
		}
	}
	return primary, secondary
}

// Calculate assigns bounds to the host, its slotted children and the
// splitter subtree. Unslotted children and everything under a hidden
// host get empty bounds.
func (e *Engine) Calculate(host, splitter *dom.Element, cfg splitview.Config) {
	for _, c := range host.ChildElements() {
		c.SetBounds(layout.Rect{})
	}
	clearTree(splitter)

	if cfg.Hidden {
		host.SetBounds(layout.Rect{})
		return
	}
	host.SetBounds(layout.NewRect(0, 0, e.width, e.height))

	axis := cfg.Orientation.Axis()
	main, cross := e.width, e.height
	if axis == layout.Height {
		main, cross = cross, main
	}

	primary, secondary := Slotted(host)
	var (
		nodes []*dom.Element
		items []layout.Item
	)
	if primary != nil {
		nodes = append(nodes, primary)
		items = append(items, layout.Item{Flex: flexOf(primary)})
	}
	nodes = append(nodes, splitter)
	items = append(items, layout.Item{Flex: layout.None, Size: cfg.SplitterSize})
	if secondary != nil {
		nodes = append(nodes, secondary)
		items = append(items, layout.Item{Flex: flexOf(secondary)})
	}

	sizes := layout.Arrange(main, items)
	if e.snap {
		for i, c := range layout.Snap(sizes) {
			sizes[i] = float64(c)
		}
	}

	offset := 0.0
	for i, n := range nodes {
		n.SetBounds(axisRect(axis, offset, sizes[i], cross))
		offset += sizes[i]
	}

	e.placeHandle(splitter, axis)
}

// placeHandle centres the handle children along the splitter's length.
func (e *Engine) placeHandle(splitter *dom.Element, axis layout.Axis) {
	sb := splitter.Bounds()
	for _, h := range splitter.ChildElements() {
		if axis == layout.Height {
			length := min(e.handleLength, sb.Width)
			x := sb.X + e.center(sb.Width, length)
			h.SetBounds(layout.NewRect(x, sb.Y, length, sb.Height))
			continue
		}
		length := min(e.handleLength, sb.Height)
		y := sb.Y + e.center(sb.Height, length)
		h.SetBounds(layout.NewRect(sb.X, y, sb.Width, length))
	}
}

func (e *Engine) center(total, length float64) float64 {
	off := (total - length) / 2
	if e.snap {
		return float64(int(off))
	}
	return off
}

func axisRect(axis layout.Axis, offset, size, cross float64) layout.Rect {
	if axis == layout.Height {
		return layout.NewRect(0, offset, cross, size)
	}
	return layout.NewRect(offset, 0, size, cross)
}

func flexOf(n *dom.Element) layout.Flex {
	f, err := layout.ParseFlex(n.Style(splitview.FlexProperty))
	if err != nil {
		return layout.Initial
	}
	return f
}

func clearTree(e *dom.Element) {
	e.SetBounds(layout.Rect{})
	for _, c := range e.ChildElements() {
		clearTree(c)
	}
}
