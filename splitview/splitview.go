// Package splitview implements a two-pane resizable split: positional
// assignment of the host's first two children to the primary and
// secondary slots, and a pointer-drag state machine that redistributes
// the track between them.
package splitview

import (
	"github.com/rs/zerolog"

	"github.com/drake/splitview/dom"
	"github.com/drake/splitview/event"
	"github.com/drake/splitview/layout"
)

// Host is the container element the split view is attached to.
type Host interface {
	dom.Node
	Children() []dom.Node
	ObserveChildList(fn func([]dom.Mutation)) (disconnect func())
}

// Splitter is the draggable divider part.
type Splitter interface {
	Bounds() layout.Rect
	AddEventListener(t event.Type, fn func(event.Pointer)) (remove func())
	SetPointerCapture(pointerID int)
	ReleasePointerCapture(pointerID int)
}

// Resize reports the bases applied by one drag move.
type Resize struct {
	Primary   float64
	Secondary float64
	Track     float64
}

// Option configures a SplitView.
type Option func(*SplitView)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(sv *SplitView) {
		sv.logger = logger
	}
}

// WithResizeListener registers fn to be called after every applied move.
// Without it the view only mutates pane styles.
func WithResizeListener(fn func(Resize)) Option {
	return func(sv *SplitView) {
		sv.onResize = fn
	}
}

// SplitView binds the split behaviour to a host and its splitter.
// It is not safe for concurrent use; drive it from a single event loop.
type SplitView struct {
	cfg      Config
	host     Host
	splitter Splitter
	logger   zerolog.Logger
	onResize func(Resize)

	// Pane assignment, recomputed by position on every pass
	primary   dom.Node
	secondary dom.Node

	drag       *snapshot
	disconnect func()
	removers   []func()
}

// New creates a split view and wires its pointer listeners on the
// splitter. Children are not assigned until Ready.
func New(host Host, splitter Splitter, cfg Config, opts ...Option) *SplitView {
	if cfg.Orientation == "" {
		cfg.Orientation = Horizontal
	}

	sv := &SplitView{
		cfg:      cfg,
		host:     host,
		splitter: splitter,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(sv)
	}

	sv.removers = []func(){
		splitter.AddEventListener(event.PointerDown, sv.pointerDown),
		splitter.AddEventListener(event.PointerMove, sv.pointerMove),
		splitter.AddEventListener(event.PointerUp, sv.pointerUp),
		splitter.AddEventListener(event.LostPointerCapture, sv.lostPointerCapture),
	}
	return sv
}

// Ready assigns slots once and, when Observe is set, installs the
// child-list observer that re-runs assignment on every mutation batch.
func (sv *SplitView) Ready() {
	if sv.cfg.Observe && sv.disconnect == nil {
		sv.disconnect = sv.host.ObserveChildList(func([]dom.Mutation) {
			sv.AssignSlots()
		})
	}
	sv.AssignSlots()
}

// Close ends any gesture, releasing its capture, and detaches the
// observer and the splitter listeners.
func (sv *SplitView) Close() {
	sv.StopResize()
	if sv.disconnect != nil {
		sv.disconnect()
		sv.disconnect = nil
	}
	for _, remove := range sv.removers {
		remove()
	}
	sv.removers = nil
}

// Config returns the config the view was built with.
func (sv *SplitView) Config() Config {
	return sv.cfg
}

// Primary returns the node holding the primary role, or nil.
func (sv *SplitView) Primary() dom.Node {
	return sv.primary
}

// Secondary returns the node holding the secondary role, or nil.
func (sv *SplitView) Secondary() dom.Node {
	return sv.secondary
}

// Dragging reports whether a gesture is in progress.
func (sv *SplitView) Dragging() bool {
	return sv.drag != nil
}
