package view

import (
	"fmt"
	"sort"
)

// Histogram is the memoized value/frequency projection for one
// column of one view. Values and Counts are parallel; Labels carries
// the rendered "{pct}% {count}" form.
type Histogram struct {
	Column int
	Values []string
	Counts []int
	Labels []string
}

// HistogramFor computes (or returns the cached) histogram for the
// given dataset column over this view's rows. Entries are ordered by
// descending count, ties broken by descending value.
func (v *TableView) HistogramFor(col int) *Histogram {
	if h, ok := v.histograms[col]; ok {
		return h
	}

	counts := make(map[string]int)
	for _, r := range v.Rows {
		counts[v.ds.Cell(r, col)]++
	}

	values := make([]string, 0, len(counts))
	for val := range counts {
		values = append(values, val)
	}
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] > values[j]
	})

	h := &Histogram{Column: col}
	total := len(v.Rows)
	for _, val := range values {
		n := counts[val]
		h.Values = append(h.Values, val)
		h.Counts = append(h.Counts, n)
		pct := 0
		if total > 0 {
			pct = (n*100 + total/2) / total
		}
		h.Labels = append(h.Labels, fmt.Sprintf("%d%% %d", pct, n))
	}

	v.histograms[col] = h
	return h
}

// HistogramView is the transient scroll state over a histogram while
// Histogram mode is active.
type HistogramView struct {
	Hist   *Histogram
	Offset int
	Cursor int
}

func NewHistogramView(h *Histogram) *HistogramView {
	return &HistogramView{Hist: h}
}

// Len is the number of distinct values.
func (hv *HistogramView) Len() int { return len(hv.Hist.Values) }

// Selected returns the value under the cursor.
func (hv *HistogramView) Selected() string {
	i := hv.Offset + hv.Cursor
	if i < 0 || i >= hv.Len() {
		return ""
	}
	return hv.Hist.Values[i]
}

// Move scrolls the histogram selection, cursor first, offset at the
// window edge.
func (hv *HistogramView) Move(delta, height int) {
	moveWindow(&hv.Offset, &hv.Cursor, delta, height, hv.Len())
}

// moveWindow is the shared cursor/offset stepper used by the record
// and histogram inspectors. Same clamps as the table's vertical move.
func moveWindow(offset, cursor *int, delta, height, total int) {
	if total == 0 || delta == 0 {
		return
	}
	if height < 1 {
		height = 1
	}
	if delta > 0 {
		if *cursor < height-1 {
			*cursor += delta
			if *cursor > height-1 {
				*cursor = height - 1
			}
		} else {
			*offset += delta
			if *offset > total-1 {
				*offset = total - 1
			}
		}
		if *offset+*cursor > total-1 {
			*cursor = total - 1 - *offset
		}
	} else {
		if *cursor > 0 {
			*cursor += delta
			if *cursor < 0 {
				*cursor = 0
			}
		} else {
			*offset += delta
			if *offset < 0 {
				*offset = 0
			}
		}
	}
}
