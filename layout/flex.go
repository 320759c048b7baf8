package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFlex is returned by ParseFlex for declarations it cannot read.
var ErrInvalidFlex = errors.New("invalid flex declaration")

// Flex is a parsed `flex` shorthand: grow, shrink and a basis in pixels.
// Auto marks an `auto` basis, which this layout treats as a zero basis.
// A zero Flex with Fixed set is `flex: none`.
type Flex struct {
	Grow   float64
	Shrink float64
	Basis  float64
	Auto   bool
	Fixed  bool
}

// Initial is the declaration every slotted pane starts with.
var Initial = Flex{Grow: 1, Shrink: 1, Auto: true}

// None is `flex: none`.
var None = Flex{Fixed: true}

// Basis returns a grow-and-shrink declaration with the given pixel basis.
func Basis(px float64) Flex {
	return Flex{Grow: 1, Shrink: 1, Basis: px}
}

// String renders the declaration in CSS shorthand. Fractional bases are
// written exactly, never rounded.
func (f Flex) String() string {
	if f.Fixed {
		return "none"
	}
	basis := formatPx(f.Basis)
	if f.Auto {
		basis = "auto"
	}
	return formatNum(f.Grow) + " " + formatNum(f.Shrink) + " " + basis
}

// ParseFlex reads a `flex` shorthand as written by Flex.String.
// The empty string parses as Initial.
func ParseFlex(s string) (Flex, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return Initial, nil
	case "none":
		return None, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Flex{}, fmt.Errorf("%w: %q", ErrInvalidFlex, s)
	}

	grow, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Flex{}, fmt.Errorf("%w: grow %q", ErrInvalidFlex, fields[0])
	}
	shrink, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Flex{}, fmt.Errorf("%w: shrink %q", ErrInvalidFlex, fields[1])
	}

	f := Flex{Grow: grow, Shrink: shrink}
	if fields[2] == "auto" {
		f.Auto = true
		return f, nil
	}

	px, ok := strings.CutSuffix(fields[2], "px")
	if !ok {
		return Flex{}, fmt.Errorf("%w: basis %q", ErrInvalidFlex, fields[2])
	}
	f.Basis, err = strconv.ParseFloat(px, 64)
	if err != nil {
		return Flex{}, fmt.Errorf("%w: basis %q", ErrInvalidFlex, fields[2])
	}
	return f, nil
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPx(v float64) string {
	return formatNum(v) + "px"
}
