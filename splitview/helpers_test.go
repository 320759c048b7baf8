package splitview_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drake/splitview/dom"
	"github.com/drake/splitview/event"
	"github.com/drake/splitview/layout"
	"github.com/drake/splitview/splitview"
)

const (
	testPointer  = event.MousePointerID
	crossSize    = 300.0
	splitterSize = 8.0
)

// fixture is a host with n light children and a splitter in its shadow
// tree, laid out by hand so each test controls the measured sizes.
type fixture struct {
	host     *dom.Element
	splitter *dom.Element
	panes    []*dom.Element
	sv       *splitview.SplitView
}

func newFixture(t *testing.T, cfg splitview.Config, n int, opts ...splitview.Option) *fixture {
	t.Helper()

	f := &fixture{
		host:     dom.NewElement("host"),
		splitter: dom.NewElement("splitter"),
	}
	f.host.AttachShadow().AppendChild(f.splitter)
	for i := range n {
		pane := dom.NewElement(fmt.Sprintf("pane-%d", i))
		f.panes = append(f.panes, pane)
		f.host.AppendChild(pane)
	}

	f.sv = splitview.New(f.host, f.splitter, cfg, opts...)
	t.Cleanup(f.sv.Close)
	return f
}

// layout places primary, splitter and secondary along the config's axis.
func (f *fixture) layout(primary, secondary float64) {
	axis := f.sv.Config().Orientation.Axis()
	rect := func(offset, size float64) layout.Rect {
		if axis == layout.Height {
			return layout.NewRect(0, offset, crossSize, size)
		}
		return layout.NewRect(offset, 0, size, crossSize)
	}

	total := primary + splitterSize + secondary
	f.host.SetBounds(rect(0, total))
	f.splitter.SetBounds(rect(primary, splitterSize))
	if len(f.panes) > 0 {
		f.panes[0].SetBounds(rect(0, primary))
	}
	if len(f.panes) > 1 {
		f.panes[1].SetBounds(rect(primary+splitterSize, secondary))
	}
}

func (f *fixture) pointer(t event.Type, x, y float64) {
	f.host.RoutePointer(event.Pointer{Type: t, PointerID: testPointer, X: x, Y: y})
}

func (f *fixture) down(x, y float64) { f.pointer(event.PointerDown, x, y) }
func (f *fixture) move(x, y float64) { f.pointer(event.PointerMove, x, y) }
func (f *fixture) up(x, y float64)   { f.pointer(event.PointerUp, x, y) }

func (f *fixture) flex(i int) string {
	return f.panes[i].Style(splitview.FlexProperty)
}

func (f *fixture) basis(t *testing.T, i int) float64 {
	t.Helper()
	fl, err := layout.ParseFlex(f.flex(i))
	require.NoError(t, err)
	return fl.Basis
}

func slotOf(n dom.Node) string {
	v, ok := n.Attribute(splitview.SlotAttr)
	if !ok {
		return "<none>"
	}
	return v
}

func horizontal() splitview.Config {
	return splitview.DefaultConfig()
}

func vertical() splitview.Config {
	cfg := splitview.DefaultConfig()
	cfg.Orientation = splitview.Vertical
	return cfg
}
