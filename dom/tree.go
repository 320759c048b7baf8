package dom

// Mutation is one child-list change record.
type Mutation struct {
	Target  *Element
	Added   []*Element
	Removed []*Element
}

type observer struct {
	fn func([]Mutation)
}

// Children returns the direct children in document order.
func (e *Element) Children() []Node {
	nodes := make([]Node, len(e.children))
	for i, c := range e.children {
		nodes[i] = c
	}
	return nodes
}

// ChildElements returns the direct children as elements.
func (e *Element) ChildElements() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// AttachShadow returns e's shadow root, creating it on first use. Shadow
// children are hit-tested with e and share its pointer captures, but they
// are not part of Children and never show up in child-list mutations.
func (e *Element) AttachShadow() *Element {
	if e.shadow == nil {
		e.shadow = NewElement(e.id + "#shadow")
		e.shadow.parent = e
	}
	return e.shadow
}

// ShadowRoot returns the shadow root, or nil if none was attached.
func (e *Element) ShadowRoot() *Element {
	return e.shadow
}

// AppendChild moves child to the end of e's child list.
func (e *Element) AppendChild(child *Element) {
	e.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref. A nil or foreign ref appends.
// A child that already has a parent is moved.
func (e *Element) InsertBefore(child, ref *Element) {
	if child == nil || child == ref {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}

	idx := len(e.children)
	for i, c := range e.children {
		if c == ref {
			idx = i
			break
		}
	}

	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = child
	child.parent = e

	e.record(Mutation{Target: e, Added: []*Element{child}})
}

// RemoveChild detaches child. Returns false if child is not a direct child.
// Pointer captures held inside the removed subtree are lost.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c != child {
			continue
		}
		root := e.Root()
		e.children = append(e.children[:i], e.children[i+1:]...)
		child.parent = nil
		root.dropCaptures(child)
		e.record(Mutation{Target: e, Removed: []*Element{child}})
		return true
	}
	return false
}

// ObserveChildList registers fn to receive child-list mutation batches
// for e's direct children. The returned func disconnects it.
func (e *Element) ObserveChildList(fn func([]Mutation)) (disconnect func()) {
	o := &observer{fn: fn}
	e.observers = append(e.observers, o)
	return func() {
		for i, cur := range e.observers {
			if cur == o {
				e.observers = append(e.observers[:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

// Batch runs fn and delivers every child-list change it makes as a single
// batch once fn returns. Batches nest.
func (e *Element) Batch(fn func()) {
	e.batching++
	defer func() {
		e.batching--
		if e.batching == 0 && len(e.pending) > 0 {
			records := e.pending
			e.pending = nil
			e.deliver(records)
		}
	}()
	fn()
}

func (e *Element) record(m Mutation) {
	if e.batching > 0 {
		e.pending = append(e.pending, m)
		return
	}
	e.deliver([]Mutation{m})
}

func (e *Element) deliver(records []Mutation) {
	observers := make([]*observer, len(e.observers))
	copy(observers, e.observers)
	for _, o := range observers {
		o.fn(records)
	}
}

func (e *Element) contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}
