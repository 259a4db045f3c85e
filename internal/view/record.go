package view

import "github.com/mattn/go-runewidth"

// RecordView is the single-row inspector: two parallel columns of
// header names and the selected record's values, with its own scroll
// window over the field list.
type RecordView struct {
	view *TableView

	Index   int // into the parent view's row mapping
	Headers []string
	Values  []string

	Offset int
	Cursor int
}

// NewRecordView builds the inspector for view-row idx of v.
func NewRecordView(v *TableView, idx int, maxHeaderWidth int) *RecordView {
	rv := &RecordView{view: v, Index: idx}
	rv.build(maxHeaderWidth)
	return rv
}

func (rv *RecordView) build(maxHeaderWidth int) {
	rv.Headers = rv.Headers[:0]
	rv.Values = rv.Values[:0]
	if len(rv.view.Rows) == 0 {
		return
	}
	row := rv.view.Rows[rv.Index]
	for _, c := range rv.view.ds.Columns {
		rv.Headers = append(rv.Headers, runewidth.Truncate(c.Name, maxHeaderWidth, ""))
		rv.Values = append(rv.Values, c.Data[row])
	}
}

// Len is the field count.
func (rv *RecordView) Len() int { return len(rv.Headers) }

// SelectedValue is the value of the field under the cursor.
func (rv *RecordView) SelectedValue() string {
	i := rv.Offset + rv.Cursor
	if i < 0 || i >= len(rv.Values) {
		return ""
	}
	return rv.Values[i]
}

// Move scrolls the field window.
func (rv *RecordView) Move(delta, height int) {
	moveWindow(&rv.Offset, &rv.Cursor, delta, height, rv.Len())
}

// Step switches to the record delta rows away, clamped to the view,
// and rebuilds the field lists. Scroll position is kept.
func (rv *RecordView) Step(delta, maxHeaderWidth int) {
	m := len(rv.view.Rows)
	if m == 0 {
		return
	}
	rv.Index += delta
	if rv.Index < 0 {
		rv.Index = 0
	}
	if rv.Index > m-1 {
		rv.Index = m - 1
	}
	rv.build(maxHeaderWidth)
}
