package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleLen(t *testing.T) {
	assert.Equal(t, 5, VisibleLen("hello"))
	assert.Equal(t, 5, VisibleLen("\x1b[31mhello\x1b[0m"))
	assert.Equal(t, 4, VisibleLen("日本"))
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 3, "abc"},
		{"abc", 3, "abc"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fit(tt.in, tt.width), "%q/%d", tt.in, tt.width)
	}

	styled := Fit("\x1b[1mbold text\x1b[0m", 4)
	assert.Equal(t, 4, VisibleLen(styled))
}

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "short", Ellipsize("short", 10))
	assert.Equal(t, "long…", Ellipsize("long title", 5))
	assert.Equal(t, "", Ellipsize("x", 0))
}

func TestFilterClearSequences(t *testing.T) {
	assert.Equal(t, "before after", FilterClearSequences("before \x1b[2J\x1b[Hafter"))
}
