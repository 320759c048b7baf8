// Package replay drives a headless split view from a JSON gesture script
// and records what each step did to the panes.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/drake/splitview/dom"
	"github.com/drake/splitview/event"
	"github.com/drake/splitview/splitview"
	tuilayout "github.com/drake/splitview/ui/tui/layout"
)

// ErrUnknownStep is returned for a step kind Run does not know.
var ErrUnknownStep = errors.New("unknown step")

// Script describes a host, its children and a sequence of steps.
type Script struct {
	Name         string  `json:"name"`
	Orientation  string  `json:"orientation,omitempty"`
	Dir          string  `json:"dir,omitempty"`
	Observe      bool    `json:"observe,omitempty"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	SplitterSize float64 `json:"splitter_size,omitempty"`
	Children     int     `json:"children"`
	Steps        []Step  `json:"steps"`
}

// Step is one pointer event or tree change. Pointer steps use X/Y and
// Pointer; "append" adds a child; "remove" removes the child at Index;
// "dir" sets the host's dir attribute to Value.
type Step struct {
	Do      string  `json:"do"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Pointer int     `json:"pointer,omitempty"`
	Index   int     `json:"index,omitempty"`
	Value   string  `json:"value,omitempty"`
	Expect  *Expect `json:"expect,omitempty"`
}

// Expect is checked by tests against the Frame a step produced.
// Absent fields are not checked; an empty string means "no flex set".
type Expect struct {
	Primary   *string  `json:"primary,omitempty"`
	Secondary *string  `json:"secondary,omitempty"`
	Slots     []string `json:"slots,omitempty"`
	Dragging  *bool    `json:"dragging,omitempty"`
}

// Frame is the observable state after a step.
type Frame struct {
	Step      int
	Do        string
	Primary   string // flex of the first light child, "" if unset
	Secondary string // flex of the second light child, "" if unset
	Slots     []string
	Dragging  bool
}

// Mismatches lists the named fields of e that f does not satisfy.
func (e *Expect) Mismatches(f Frame) []string {
	if e == nil {
		return nil
	}
	var out []string
	if e.Primary != nil && *e.Primary != f.Primary {
		out = append(out, fmt.Sprintf("primary: want %q, got %q", *e.Primary, f.Primary))
	}
	if e.Secondary != nil && *e.Secondary != f.Secondary {
		out = append(out, fmt.Sprintf("secondary: want %q, got %q", *e.Secondary, f.Secondary))
	}
	if e.Slots != nil && !slices.Equal(e.Slots, f.Slots) {
		out = append(out, fmt.Sprintf("slots: want %v, got %v", e.Slots, f.Slots))
	}
	if e.Dragging != nil && *e.Dragging != f.Dragging {
		out = append(out, fmt.Sprintf("dragging: want %v, got %v", *e.Dragging, f.Dragging))
	}
	return out
}

// File is the on-disk form: a list of scripts.
type File struct {
	Scripts []Script `json:"scripts"`
}

// Load decodes a script file.
func Load(r io.Reader) ([]Script, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scripts: %w", err)
	}
	return f.Scripts, nil
}

// Run builds the host described by s, lays it out, and applies each step
// followed by a relayout. Frames are returned in step order.
func Run(s Script, opts ...splitview.Option) ([]Frame, error) {
	orientation, err := splitview.ParseOrientation(s.Orientation)
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", s.Name, err)
	}
	dir, err := splitview.ParseDirection(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", s.Name, err)
	}

	cfg := splitview.DefaultConfig()
	cfg.Orientation = orientation
	cfg.Observe = s.Observe
	if s.SplitterSize > 0 {
		cfg.SplitterSize = s.SplitterSize
	}

	host := dom.NewElement("host")
	host.SetAttribute(splitview.DirAttr, string(dir))
	splitter := dom.NewElement("splitter")
	host.AttachShadow().AppendChild(splitter)

	next := 0
	newChild := func() *dom.Element {
		c := dom.NewElement(fmt.Sprintf("child-%d", next))
		next++
		return c
	}
	for range s.Children {
		host.AppendChild(newChild())
	}

	engine := tuilayout.NewEngine()
	engine.SetSnap(false)
	engine.SetSize(s.Width, s.Height)

	sv := splitview.New(host, splitter, cfg, opts...)
	defer sv.Close()
	sv.Ready()
	engine.Calculate(host, splitter, cfg)

	frames := make([]Frame, 0, len(s.Steps))
	for i, step := range s.Steps {
		if err := apply(host, step, newChild); err != nil {
			return frames, fmt.Errorf("script %q step %d: %w", s.Name, i, err)
		}
		engine.Calculate(host, splitter, cfg)
		frames = append(frames, capture(i, step.Do, host, sv))
	}
	return frames, nil
}

func apply(host *dom.Element, step Step, newChild func() *dom.Element) error {
	pointer := step.Pointer
	if pointer == 0 {
		pointer = event.MousePointerID
	}

	var t event.Type
	switch step.Do {
	case "down":
		t = event.PointerDown
	case "move":
		t = event.PointerMove
	case "up":
		t = event.PointerUp
	case "append":
		host.AppendChild(newChild())
		return nil
	case "remove":
		children := host.ChildElements()
		if step.Index < 0 || step.Index >= len(children) {
			return fmt.Errorf("remove index %d out of range (%d children)", step.Index, len(children))
		}
		host.RemoveChild(children[step.Index])
		return nil
	case "dir":
		host.SetAttribute(splitview.DirAttr, step.Value)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, step.Do)
	}

	host.RoutePointer(event.Pointer{Type: t, PointerID: pointer, X: step.X, Y: step.Y})
	return nil
}

func capture(i int, do string, host *dom.Element, sv *splitview.SplitView) Frame {
	f := Frame{Step: i, Do: do, Dragging: sv.Dragging()}
	children := host.ChildElements()
	for j, c := range children {
		slot, ok := c.Attribute(splitview.SlotAttr)
		if !ok {
			slot = "-"
		}
		f.Slots = append(f.Slots, slot)
		switch j {
		case 0:
			f.Primary = c.Style(splitview.FlexProperty)
		case 1:
			f.Secondary = c.Style(splitview.FlexProperty)
		}
	}
	return f
}
