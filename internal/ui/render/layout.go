package render

type layoutMetrics struct {
	bodyTop    int
	bodyHeight int
	listWidth  int
	infoStart  int
	infoWidth  int
	showInfo   bool
}

const (
	minSplitWidth    = 60
	infoWidthRatio   = 0.45
	minInfoWidth     = 30
	infoSeparatorGap = 1
	infoLabelWidth   = 10
)

// computeLayout splits the body between the list and the info pane. The info
// pane is dropped when the terminal is too narrow or there is nothing to show.
func computeLayout(w, h int, hasDetails bool) layoutMetrics {
	layout := layoutMetrics{
		bodyTop:    1,
		bodyHeight: h - 2,
		listWidth:  w,
	}
	if layout.bodyHeight < 0 {
		layout.bodyHeight = 0
	}

	if !hasDetails || w < minSplitWidth {
		return layout
	}

	infoWidth := int(float64(w)*infoWidthRatio + 0.5)
	if infoWidth < minInfoWidth {
		infoWidth = minInfoWidth
	}
	layout.showInfo = true
	layout.infoWidth = infoWidth
	layout.infoStart = w - infoWidth
	layout.listWidth = layout.infoStart - infoSeparatorGap
	return layout
}

// scrollOffset returns the first visible row so that cursor stays in view,
// moving the previous offset as little as possible.
func scrollOffset(offset, cursor, total, height int) int {
	if height <= 0 || total <= height || cursor < 0 {
		return 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	if maxOffset := total - height; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
