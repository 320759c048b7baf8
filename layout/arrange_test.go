package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrange_AutoPanesSplitEvenly(t *testing.T) {
	sizes := Arrange(101, []Item{
		{Flex: Initial},
		{Flex: None, Size: 1},
		{Flex: Initial},
	})
	assert.Equal(t, []float64{50, 1, 50}, sizes)
}

func TestArrange_BasisIsKeptWhenItFits(t *testing.T) {
	sizes := Arrange(408, []Item{
		{Flex: Basis(250)},
		{Flex: None, Size: 8},
		{Flex: Basis(150)},
	})
	assert.Equal(t, []float64{250, 8, 150}, sizes)
}

func TestArrange_SlackGrowsBothPanes(t *testing.T) {
	// A clamped pane can leave the track underused; growth absorbs it.
	sizes := Arrange(408, []Item{
		{Flex: Basis(400)},
		{Flex: None, Size: 8},
		{Flex: Basis(0)},
	})
	assert.Equal(t, []float64{400, 8, 0}, sizes)

	sizes = Arrange(408, []Item{
		{Flex: Basis(300)},
		{Flex: None, Size: 8},
		{Flex: Basis(0)},
	})
	assert.Equal(t, []float64{350, 8, 50}, sizes)
}

func TestArrange_DeficitShrinksByScaledFactor(t *testing.T) {
	sizes := Arrange(100, []Item{
		{Flex: Basis(150)},
		{Flex: Basis(50)},
	})
	assert.InDelta(t, 75, sizes[0], 1e-9)
	assert.InDelta(t, 25, sizes[1], 1e-9)
}

func TestArrange_FixedItemsDoNotFlex(t *testing.T) {
	sizes := Arrange(10, []Item{{Flex: None, Size: 4}})
	assert.Equal(t, []float64{4}, sizes)
	assert.Empty(t, Arrange(10, nil))
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		want  []int
	}{
		{"whole", []float64{10, 1, 9}, []int{10, 1, 9}},
		{"halves", []float64{10.5, 1, 9.5}, []int{11, 1, 9}},
		{"thirds", []float64{3.333, 3.333, 3.334}, []int{3, 4, 3}},
		{"zero", []float64{0, 1, 19}, []int{0, 1, 19}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.sizes)
			assert.Equal(t, tt.want, got)

			sum := 0
			for _, c := range got {
				sum += c
			}
			total := 0.0
			for _, s := range tt.sizes {
				total += s
			}
			assert.Equal(t, int(total+0.5), sum)
		})
	}
}
