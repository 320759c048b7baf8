// Package dom is a small retained element tree: attributes, inline style,
// layout bounds, child-list observation, pointer routing and capture.
// It is the host surface the split view reads and writes.
package dom

import (
	"github.com/drake/splitview/event"
	"github.com/drake/splitview/layout"
)

// Node is the read/write surface of a single element.
type Node interface {
	ID() string
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	Style(property string) string
	SetStyle(property, value string)
	Bounds() layout.Rect
}

// Compile-time check that Element implements Node
var _ Node = (*Element)(nil)

// Element is a node in the tree.
type Element struct {
	id        string
	attrs     map[string]string
	style     map[string]string
	bounds    layout.Rect
	parent    *Element
	children  []*Element
	shadow    *Element
	listeners map[event.Type][]*listener

	// Child-list observation
	observers []*observer
	batching  int
	pending   []Mutation

	// Pointer capture, only populated on the root
	captures map[int]*Element
}

type listener struct {
	fn func(event.Pointer)
}

// NewElement creates a detached element.
func NewElement(id string) *Element {
	return &Element{
		id:        id,
		attrs:     make(map[string]string),
		style:     make(map[string]string),
		listeners: make(map[event.Type][]*listener),
	}
}

// ID returns the element id.
func (e *Element) ID() string {
	return e.id
}

// Attribute returns the attribute value and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute sets an attribute.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
}

// RemoveAttribute removes an attribute. Removing a missing attribute is a no-op.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// Style returns an inline style property, or "" if unset.
func (e *Element) Style(property string) string {
	return e.style[property]
}

// SetStyle sets an inline style property. An empty value clears it.
func (e *Element) SetStyle(property, value string) {
	if value == "" {
		delete(e.style, property)
		return
	}
	e.style[property] = value
}

// Bounds returns the bounding box assigned by the last layout pass.
func (e *Element) Bounds() layout.Rect {
	return e.bounds
}

// SetBounds is called by the layout engine.
func (e *Element) SetBounds(r layout.Rect) {
	e.bounds = r
}

// Parent returns the parent element, or nil if detached or the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Root walks up to the top of the tree.
func (e *Element) Root() *Element {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}
