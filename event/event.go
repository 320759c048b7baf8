package event

// Type identifies the kind of pointer event.
type Type int

const (
	PointerDown Type = iota
	PointerMove
	PointerUp
	LostPointerCapture // Capture taken by another element or released by the tree
)

// String returns the DOM-style event name.
func (t Type) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case LostPointerCapture:
		return "lostpointercapture"
	}
	return "unknown"
}

// MousePointerID is the pointer id the terminal front end reports for the mouse.
const MousePointerID = 1

// Pointer is a pointer event in host coordinates.
type Pointer struct {
	Type      Type
	PointerID int
	X, Y      float64
}
