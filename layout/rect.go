// Package layout holds the geometry shared by the split view core and the
// terminal front end: float rectangles, axes and flex declarations.
package layout

// Axis selects the dimension a split is measured along.
type Axis int

const (
	Width Axis = iota
	Height
)

// String returns the CSS-style property name of the axis.
func (a Axis) String() string {
	if a == Height {
		return "height"
	}
	return "width"
}

// Rect is a bounding box in layout units. Sizes are real-valued so
// fractional flex bases survive a round trip through the layout.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Size returns the extent of the rectangle along the axis.
func (r Rect) Size(a Axis) float64 {
	if a == Height {
		return r.Height
	}
	return r.Width
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
