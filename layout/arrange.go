package layout

// Item is one child on the main axis of a flex line.
// Size is only read for fixed items.
type Item struct {
	Flex Flex
	Size float64
}

// Arrange distributes main-axis space across items the way a single-line
// flex container does. Free space is handed out by grow factor; a deficit
// is taken back in proportion to shrink*basis. Sizes never go negative.
func Arrange(main float64, items []Item) []float64 {
	sizes := make([]float64, len(items))
	if len(items) == 0 {
		return sizes
	}

	// Phase 1: base sizes
	used := 0.0
	totalGrow := 0.0
	totalScaledShrink := 0.0
	for i, it := range items {
		if it.Flex.Fixed {
			sizes[i] = it.Size
		} else if !it.Flex.Auto {
			sizes[i] = it.Flex.Basis
		}
		used += sizes[i]
		if !it.Flex.Fixed {
			totalGrow += it.Flex.Grow
			totalScaledShrink += it.Flex.Shrink * sizes[i]
		}
	}

	free := main - used

	// Phase 2: distribute
	switch {
	case free > 0 && totalGrow > 0:
		for i, it := range items {
			if it.Flex.Fixed || it.Flex.Grow == 0 {
				continue
			}
			sizes[i] += free * it.Flex.Grow / totalGrow
		}
	case free < 0 && totalScaledShrink > 0:
		deficit := -free
		for i, it := range items {
			if it.Flex.Fixed || it.Flex.Shrink == 0 {
				continue
			}
			share := it.Flex.Shrink * sizes[i] / totalScaledShrink
			sizes[i] = max(0, sizes[i]-deficit*share)
		}
	}

	return sizes
}

// Snap converts real-valued sizes to whole cells without accumulating
// drift: each edge is rounded from the running total, so the cells always
// sum to the rounded total.
func Snap(sizes []float64) []int {
	cells := make([]int, len(sizes))
	acc := 0.0
	prev := 0
	for i, s := range sizes {
		acc += s
		edge := int(acc + 0.5)
		cells[i] = max(0, edge-prev)
		prev = max(prev, edge)
	}
	return cells
}
