package view

import "time"

// Fixed chrome sizes. The table region is what remains of the
// terminal after the header row, the status line, the scrollbar
// column, and (when shown) the index column plus its border.
const (
	ScrollbarWidth   = 1
	HeaderHeight     = 1
	StatusLineHeight = 1
	IndexBorderWidth = 2
	CollapsedWidth   = 3
	MinIndexWidth    = 3
)

// StatusMessageDuration is how long a status message stays on screen
// before the status line falls back to position info.
const StatusMessageDuration = 2 * time.Second

// Layout is the width/height budget for each region, derived from the
// terminal size. Recomputed on every resize and every index toggle.
type Layout struct {
	TableWidth  int
	TableHeight int
	IndexWidth  int
	IndexHeight int
}

// ComputeLayout derives the region budgets. indexWidth is the width
// of the row-number column when shown, zero otherwise.
func ComputeLayout(termWidth, termHeight int, showIndex bool, indexWidth int) Layout {
	w := termWidth - ScrollbarWidth
	h := termHeight - HeaderHeight - StatusLineHeight
	iw := 0
	if showIndex {
		iw = indexWidth
		w -= indexWidth + IndexBorderWidth
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Layout{TableWidth: w, TableHeight: h, IndexWidth: iw, IndexHeight: h}
}
