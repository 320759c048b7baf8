package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	tests := []struct {
		name string
		flex Flex
		want string
	}{
		{"initial", Initial, "1 1 auto"},
		{"none", None, "none"},
		{"whole basis", Basis(250), "1 1 250px"},
		{"zero basis", Basis(0), "1 1 0px"},
		{"fractional basis", Basis(123.75), "1 1 123.75px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flex.String())
		})
	}
}

func TestParseFlex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Flex
	}{
		{"empty is initial", "", Initial},
		{"none", "none", None},
		{"auto basis", "1 1 auto", Initial},
		{"pixel basis", "1 1 250px", Basis(250)},
		{"fractional", " 1 1 0.5px ", Basis(0.5)},
		{"custom factors", "2 0 10px", Flex{Grow: 2, Shrink: 0, Basis: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlex_Invalid(t *testing.T) {
	for _, in := range []string{"1", "1 1", "a 1 10px", "1 b 10px", "1 1 10", "1 1 tenpx", "1 1 1px extra"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFlex(in)
			assert.ErrorIs(t, err, ErrInvalidFlex)
		})
	}
}
