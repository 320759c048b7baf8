package splitview

import (
	"errors"
	"fmt"

	"github.com/drake/splitview/layout"
)

// Orientation is the direction panes are laid out in.
type Orientation string

const (
	Horizontal Orientation = "horizontal" // side by side, resized along width
	Vertical   Orientation = "vertical"   // stacked, resized along height
)

// Direction is the ambient reading direction of the host.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Attribute, slot and style names shared with the style and template layers.
const (
	SlotAttr        = "slot"
	SlotPrimary     = "primary"
	SlotSecondary   = "secondary"
	DirAttr         = "dir"
	OrientationAttr = "orientation"
	HiddenAttr      = "hidden"
	FlexProperty    = "flex"
)

// MinSplitterSize is the minimum cross-axis size of the splitter part.
const MinSplitterSize = 8.0

var (
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrInvalidSplitter    = errors.New("invalid splitter size")
)

// Config holds the typed inputs of a split view. It is read once at
// construction; changing it afterwards has no effect on a live view.
type Config struct {
	Orientation  Orientation
	Observe      bool // re-run slot assignment on child-list changes
	Hidden       bool
	SplitterSize float64
}

// DefaultConfig returns a horizontal, non-observing split.
func DefaultConfig() Config {
	return Config{
		Orientation:  Horizontal,
		SplitterSize: MinSplitterSize,
	}
}

// Validate checks the config for values the view cannot use.
func (c Config) Validate() error {
	if _, err := ParseOrientation(string(c.Orientation)); err != nil {
		return err
	}
	if c.SplitterSize <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSplitter, c.SplitterSize)
	}
	return nil
}

// Axis returns the axis sizes are redistributed along. Anything other
// than Vertical resizes along the width.
func (o Orientation) Axis() layout.Axis {
	if o == Vertical {
		return layout.Height
	}
	return layout.Width
}

// ParseOrientation accepts "horizontal", "vertical" or "" (horizontal).
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case "", Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

// ParseDirection accepts "ltr", "rtl" or "" (ltr).
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", LTR:
		return LTR, nil
	case RTL:
		return RTL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
