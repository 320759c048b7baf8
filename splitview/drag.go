package splitview

import (
	"github.com/drake/splitview/event"
	"github.com/drake/splitview/layout"
)

// snapshot is the state of one gesture, taken at pointer-down.
type snapshot struct {
	capture        *capture
	axis           layout.Axis
	startX, startY float64
	track          float64 // host size minus splitter size along axis
	primary        float64
	secondary      float64
}

func (sv *SplitView) pointerDown(ev event.Pointer) {
	sv.StartResize(ev.PointerID, ev.X, ev.Y)
}

func (sv *SplitView) pointerMove(ev event.Pointer) {
	if sv.drag == nil || ev.PointerID != sv.drag.capture.pointerID {
		return
	}
	sv.MoveTo(ev.X, ev.Y)
}

func (sv *SplitView) pointerUp(ev event.Pointer) {
	if sv.drag == nil || ev.PointerID != sv.drag.capture.pointerID {
		return
	}
	sv.StopResize()
}

// lostPointerCapture ends the gesture when capture is taken away without
// a pointer-up, so no stale snapshot survives it.
func (sv *SplitView) lostPointerCapture(ev event.Pointer) {
	if sv.drag == nil || ev.PointerID != sv.drag.capture.pointerID {
		return
	}
	sv.drag.capture.forfeit()
	sv.logger.Debug().Int("pointer", ev.PointerID).Msg("pointer capture lost, gesture cancelled")
	sv.drag = nil
}

// StartResize begins a gesture for pointerID at (x, y). It does nothing
// unless both panes are assigned and no other gesture is active, and
// reports whether a gesture started.
func (sv *SplitView) StartResize(pointerID int, x, y float64) bool {
	if !sv.hasPanes() || sv.drag != nil {
		return false
	}

	axis := sv.cfg.Orientation.Axis()
	s := &snapshot{
		axis:      axis,
		startX:    x,
		startY:    y,
		track:     sv.host.Bounds().Size(axis) - sv.splitter.Bounds().Size(axis),
		primary:   sv.primary.Bounds().Size(axis),
		secondary: sv.secondary.Bounds().Size(axis),
	}
	s.capture = acquireCapture(sv.splitter, pointerID)
	sv.drag = s

	sv.logger.Debug().
		Int("pointer", pointerID).
		Stringer("axis", axis).
		Float64("track", s.track).
		Float64("primary", s.primary).
		Float64("secondary", s.secondary).
		Msg("resize started")
	return true
}

// MoveTo applies the displacement from the gesture start to both panes.
// The primary grows by exactly what the secondary loses; each basis is
// then clamped into [0, track] on its own.
func (sv *SplitView) MoveTo(x, y float64) {
	s := sv.drag
	if s == nil || !sv.hasPanes() {
		return
	}

	distance := x - s.startX
	if s.axis == layout.Height {
		distance = y - s.startY
	}
	if sv.rtl() {
		distance = -distance
	}

	primary := clampBasis(s.primary+distance, s.track)
	secondary := clampBasis(s.secondary-distance, s.track)
	sv.primary.SetStyle(FlexProperty, layout.Basis(primary).String())
	sv.secondary.SetStyle(FlexProperty, layout.Basis(secondary).String())

	if sv.onResize != nil {
		sv.onResize(Resize{Primary: primary, Secondary: secondary, Track: s.track})
	}
}

// StopResize ends the gesture and releases its capture. The last applied
// bases stay as they are.
func (sv *SplitView) StopResize() {
	if sv.drag == nil {
		return
	}
	sv.drag.capture.release()
	sv.drag = nil
	sv.logger.Debug().Msg("resize stopped")
}

// rtl reports whether displacement is mirrored. Only the horizontal axis
// follows the host's dir attribute, and it is read on every move.
func (sv *SplitView) rtl() bool {
	if sv.cfg.Orientation == Vertical {
		return false
	}
	dir, _ := sv.host.Attribute(DirAttr)
	return Direction(dir) == RTL
}

func clampBasis(v, track float64) float64 {
	return max(0, min(v, track))
}
