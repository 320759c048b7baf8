package splitview

// AssignSlots gives the first child the primary slot and the second the
// secondary slot, and clears the slot of every later child. Roles follow
// position only, so running it twice on the same child list is a no-op.
func (sv *SplitView) AssignSlots() {
	sv.primary, sv.secondary = nil, nil

	children := sv.host.Children()
	for i, c := range children {
		switch i {
		case 0:
			sv.primary = c
			c.SetAttribute(SlotAttr, SlotPrimary)
		case 1:
			sv.secondary = c
			c.SetAttribute(SlotAttr, SlotSecondary)
		default:
			c.RemoveAttribute(SlotAttr)
		}
	}

	sv.logger.Trace().
		Int("children", len(children)).
		Bool("primary", sv.primary != nil).
		Bool("secondary", sv.secondary != nil).
		Msg("slots assigned")
}

func (sv *SplitView) hasPanes() bool {
	return sv.primary != nil && sv.secondary != nil
}
