package splitview

// capture is a pointer capture held on the splitter for one gesture.
// release is safe to call more than once.
type capture struct {
	target    Splitter
	pointerID int
	done      bool
}

func acquireCapture(target Splitter, pointerID int) *capture {
	target.SetPointerCapture(pointerID)
	return &capture{target: target, pointerID: pointerID}
}

func (c *capture) release() {
	if c.done {
		return
	}
	c.done = true
	c.target.ReleasePointerCapture(c.pointerID)
}

// forfeit marks the capture gone without releasing it; someone else
// already holds the pointer.
func (c *capture) forfeit() {
	c.done = true
}
