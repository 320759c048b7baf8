package dom

import (
	"github.com/drake/splitview/event"
)

// AddEventListener registers a listener for t. The returned func removes it.
func (e *Element) AddEventListener(t event.Type, fn func(event.Pointer)) (remove func()) {
	l := &listener{fn: fn}
	e.listeners[t] = append(e.listeners[t], l)
	return func() {
		ls := e.listeners[t]
		for i, cur := range ls {
			if cur == l {
				e.listeners[t] = append(ls[:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev to e and then bubbles it through e's ancestors.
// Returns true if any listener ran.
func (e *Element) Dispatch(ev event.Pointer) bool {
	handled := false
	for n := e; n != nil; n = n.parent {
		ls := make([]*listener, len(n.listeners[ev.Type]))
		copy(ls, n.listeners[ev.Type])
		for _, l := range ls {
			l.fn(ev)
			handled = true
		}
	}
	return handled
}

// RoutePointer delivers ev within the tree rooted at e. A captured pointer
// goes to its capturing element regardless of position; otherwise the
// topmost element under the point receives it.
func (e *Element) RoutePointer(ev event.Pointer) bool {
	if target := e.Root().captures[ev.PointerID]; target != nil {
		return target.Dispatch(ev)
	}
	target := e.HitTest(ev.X, ev.Y)
	if target == nil {
		return false
	}
	return target.Dispatch(ev)
}

// HitTest returns the deepest element whose bounds contain the point.
// Shadow children sit above light children, and later siblings above
// earlier ones.
func (e *Element) HitTest(x, y float64) *Element {
	if e.shadow != nil {
		if hit := e.shadow.hitChildren(x, y); hit != nil {
			return hit
		}
	}
	if hit := e.hitChildren(x, y); hit != nil {
		return hit
	}
	if e.bounds.Contains(x, y) {
		return e
	}
	return nil
}

func (e *Element) hitChildren(x, y float64) *Element {
	for i := len(e.children) - 1; i >= 0; i-- {
		if hit := e.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	return nil
}

// SetPointerCapture routes all later events for pointerID to e until it
// is released. Taking a pointer another element holds fires
// LostPointerCapture on that element.
func (e *Element) SetPointerCapture(pointerID int) {
	root := e.Root()
	if root.captures == nil {
		root.captures = make(map[int]*Element)
	}
	prev := root.captures[pointerID]
	root.captures[pointerID] = e
	if prev != nil && prev != e {
		prev.Dispatch(event.Pointer{Type: event.LostPointerCapture, PointerID: pointerID})
	}
}

// ReleasePointerCapture releases pointerID if e holds it. An explicit
// release does not fire LostPointerCapture.
func (e *Element) ReleasePointerCapture(pointerID int) {
	root := e.Root()
	if root.captures[pointerID] == e {
		delete(root.captures, pointerID)
	}
}

// HasPointerCapture reports whether e holds pointerID.
func (e *Element) HasPointerCapture(pointerID int) bool {
	return e.Root().captures[pointerID] == e
}

// dropCaptures clears captures held inside a detached subtree and tells
// each holder it lost the pointer.
func (e *Element) dropCaptures(subtree *Element) {
	for id, holder := range e.captures {
		if subtree.contains(holder) {
			delete(e.captures, id)
			holder.Dispatch(event.Pointer{Type: event.LostPointerCapture, PointerID: id})
		}
	}
}
