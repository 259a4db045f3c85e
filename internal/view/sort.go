package view

import (
	"sort"
	"strconv"
	"strings"
)

// SortByColumn orders the view's row mapping by the content of one
// dataset column and replaces the mapping with the new sequence. The
// old slice is never touched, so parent views sharing it are safe.
//
// Numeric columns compare parsed values; a parseable value always
// orders before an unparseable one regardless of direction, and two
// unparseable values fall back to direction-aware string comparison.
func (v *TableView) SortByColumn(col int, descending bool) {
	if col < 0 || col >= v.ds.ColumnCount() || len(v.Rows) == 0 {
		return
	}
	c := v.ds.Columns[col]

	rows := make([]int, len(v.Rows))
	copy(rows, v.Rows)

	strLess := func(a, b string) bool {
		if descending {
			return a > b
		}
		return a < b
	}

	if c.Numeric {
		sort.Slice(rows, func(i, j int) bool {
			a, b := c.Data[rows[i]], c.Data[rows[j]]
			fa, ea := strconv.ParseFloat(strings.TrimSpace(a), 64)
			fb, eb := strconv.ParseFloat(strings.TrimSpace(b), 64)
			switch {
			case ea == nil && eb == nil:
				if descending {
					return fa > fb
				}
				return fa < fb
			case ea == nil:
				return true
			case eb == nil:
				return false
			default:
				return strLess(a, b)
			}
		})
	} else {
		sort.Slice(rows, func(i, j int) bool {
			return strLess(c.Data[rows[i]], c.Data[rows[j]])
		})
	}

	v.Rows = rows
	v.Matches = nil
}
