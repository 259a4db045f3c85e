package view

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"tabview/internal/dataset"
)

// Options are the display knobs shared by every view.
type Options struct {
	MaxColumnWidth int
	ColumnMargin   int
}

// ColumnView is the materialized projection of one visible column:
// its header, the width it renders at, and the window of cell values.
type ColumnView struct {
	Index int // dataset column index
	Name  string
	Width int
	Rows  []string
}

// Match is one search hit, expressed in view-row space.
type Match struct {
	Row int
	Col int
}

// TableView is a windowed projection over a row mapping into the
// Dataset. Rows is shared immutable: operations that change it build
// a new slice and replace the reference, never mutate in place.
type TableView struct {
	Name string
	ds   *dataset.Dataset
	opts Options

	Rows []int

	OffsetRow int
	CursorRow int
	OffsetCol int
	CursorCol int

	ShowIndex bool

	// refreshed projections
	VisibleColumns []ColumnView
	IndexView      ColumnView
	visibleWidth   int // unclamped sum of visible column widths plus spacers

	histograms map[int]*Histogram

	Matches  []Match
	MatchIdx int
}

// NewTableView builds the root view over the whole dataset with the
// identity row mapping.
func NewTableView(name string, ds *dataset.Dataset, opts Options, showIndex bool) *TableView {
	rows := make([]int, ds.RowCount())
	for i := range rows {
		rows[i] = i
	}
	return newDerivedView(name, ds, rows, opts, showIndex)
}

func newDerivedView(name string, ds *dataset.Dataset, rows []int, opts Options, showIndex bool) *TableView {
	return &TableView{
		Name:       name,
		ds:         ds,
		opts:       opts,
		Rows:       rows,
		ShowIndex:  showIndex,
		histograms: make(map[int]*Histogram),
	}
}

func (v *TableView) Dataset() *dataset.Dataset { return v.ds }

// AbsRow is the selected view-row (index into Rows).
func (v *TableView) AbsRow() int { return v.OffsetRow + v.CursorRow }

// AbsCol is the selected dataset column index.
func (v *TableView) AbsCol() int { return v.OffsetCol + v.CursorCol }

// DatasetRow resolves the selection to an absolute dataset row.
func (v *TableView) DatasetRow() int {
	if len(v.Rows) == 0 {
		return 0
	}
	return v.Rows[v.AbsRow()]
}

// SelectedCell returns the display value under the cursor.
func (v *TableView) SelectedCell() string {
	if len(v.Rows) == 0 || v.ds.ColumnCount() == 0 {
		return ""
	}
	return v.ds.Cell(v.DatasetRow(), v.AbsCol())
}

// Refresh recomputes column render widths, the visible column set,
// the materialized cell windows, and the index projection. Steps are
// ordered: widths first, then the greedy fit, then cursor clamping,
// then materialization.
func (v *TableView) Refresh(ly Layout) {
	for _, c := range v.ds.Columns {
		switch c.Status {
		case dataset.StatusCollapsed:
			c.RenderWidth = CollapsedWidth
		case dataset.StatusExpanded:
			c.RenderWidth = c.MaxWidth + v.opts.ColumnMargin
		default:
			w := c.MaxWidth + v.opts.ColumnMargin
			if w > v.opts.MaxColumnWidth {
				w = v.opts.MaxColumnWidth
			}
			c.RenderWidth = w
		}
	}

	if v.OffsetCol >= v.ds.ColumnCount() {
		v.OffsetCol = v.ds.ColumnCount() - 1
	}
	if v.OffsetCol < 0 {
		v.OffsetCol = 0
	}

	// Greedy left-to-right fit from offset_column. The first column
	// that overflows is still kept, truncated to the remaining
	// budget, so horizontal overflow stays observable. visibleWidth
	// keeps the untruncated total for the right-move check.
	visible := make([]int, 0, v.ds.ColumnCount())
	running := 0
	v.visibleWidth = 0
	for i := v.OffsetCol; i < v.ds.ColumnCount(); i++ {
		c := v.ds.Columns[i]
		v.visibleWidth += c.RenderWidth + 1
		if running+c.RenderWidth+1 <= ly.TableWidth {
			visible = append(visible, i)
			running += c.RenderWidth + 1
			continue
		}
		rem := ly.TableWidth - running - 1
		if rem < 0 {
			rem = 0
		}
		c.RenderWidth = rem
		visible = append(visible, i)
		break
	}

	if v.CursorCol >= len(visible) {
		v.CursorCol = len(visible) - 1
	}
	if v.CursorCol < 0 {
		v.CursorCol = 0
	}

	// keep the selected row inside the window when the terminal shrinks
	if ly.TableHeight > 0 && v.CursorRow > ly.TableHeight-1 {
		v.OffsetRow += v.CursorRow - (ly.TableHeight - 1)
		v.CursorRow = ly.TableHeight - 1
	}

	lo, hi := v.rowWindow(ly.TableHeight)
	v.VisibleColumns = v.VisibleColumns[:0]
	for _, ci := range visible {
		c := v.ds.Columns[ci]
		cv := ColumnView{Index: ci, Name: c.Name, Width: c.RenderWidth}
		if c.Status == dataset.StatusCollapsed {
			// collapsed content is deliberately not materialized
			for r := lo; r < hi; r++ {
				cv.Rows = append(cv.Rows, dataset.CollapseMark)
			}
		} else {
			for r := lo; r < hi; r++ {
				cv.Rows = append(cv.Rows, c.Data[v.Rows[r]])
			}
		}
		v.VisibleColumns = append(v.VisibleColumns, cv)
	}

	v.IndexView = v.buildIndex(lo, hi)
}

func (v *TableView) rowWindow(height int) (int, int) {
	lo := v.OffsetRow
	hi := lo + height
	if hi > len(v.Rows) {
		hi = len(v.Rows)
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// buildIndex materializes the synthetic 1-based row number column
// for the current window. Width is the widest entry, minimum 3.
func (v *TableView) buildIndex(lo, hi int) ColumnView {
	cv := ColumnView{Name: "", Width: MinIndexWidth}
	for r := lo; r < hi; r++ {
		s := strconv.Itoa(v.Rows[r] + 1)
		cv.Rows = append(cv.Rows, s)
		if w := runewidth.StringWidth(s); w > cv.Width {
			cv.Width = w
		}
	}
	return cv
}

// IndexWidth reports the index column width for the current window
// without materializing it, so the layout can be computed first.
func (v *TableView) IndexWidth(height int) int {
	lo, hi := v.rowWindow(height)
	w := MinIndexWidth
	for r := lo; r < hi; r++ {
		if n := len(strconv.Itoa(v.Rows[r] + 1)); n > w {
			w = n
		}
	}
	return w
}

// MoveVertical moves the selection by delta view-rows. The cursor
// moves inside the window first; at the window edge the offset
// shifts instead. Both stay clamped so offset+cursor < len(Rows).
func (v *TableView) MoveVertical(delta int, ly Layout) {
	m := len(v.Rows)
	if m == 0 || delta == 0 {
		return
	}
	h := ly.TableHeight
	if h < 1 {
		h = 1
	}
	if delta > 0 {
		if v.CursorRow < h-1 {
			v.CursorRow += delta
			if v.CursorRow > h-1 {
				v.CursorRow = h - 1
			}
		} else {
			v.OffsetRow += delta
			if v.OffsetRow > m-1 {
				v.OffsetRow = m - 1
			}
		}
		if v.AbsRow() > m-1 {
			v.CursorRow = m - 1 - v.OffsetRow
		}
	} else {
		if v.CursorRow > 0 {
			v.CursorRow += delta
			if v.CursorRow < 0 {
				v.CursorRow = 0
			}
		} else {
			v.OffsetRow += delta
			if v.OffsetRow < 0 {
				v.OffsetRow = 0
			}
		}
	}
}

// MoveRight advances the column selection. When the last visible
// column is the selected one, the view scrolls as long as there are
// unseen columns or the visible set is wider than the table.
func (v *TableView) MoveRight(ly Layout) {
	n := len(v.VisibleColumns)
	if n == 0 {
		return
	}
	if v.CursorCol < n-1 {
		v.CursorCol++
		return
	}
	lastShown := v.VisibleColumns[n-1].Index
	if lastShown < v.ds.ColumnCount()-1 || v.visibleWidth > ly.TableWidth {
		v.OffsetCol++
	}
}

func (v *TableView) MoveLeft() {
	if v.CursorCol > 0 {
		v.CursorCol--
		return
	}
	if v.OffsetCol > 0 {
		v.OffsetCol--
	}
}

// MoveHome selects the first view-row.
func (v *TableView) MoveHome() {
	v.OffsetRow = 0
	v.CursorRow = 0
}

// MoveEnd selects the last view-row, keeping the window as full as
// possible.
func (v *TableView) MoveEnd(ly Layout) {
	m := len(v.Rows)
	if m == 0 {
		return
	}
	h := ly.TableHeight
	if h < 1 {
		h = 1
	}
	if m > h {
		v.OffsetRow = m - h
		v.CursorRow = h - 1
	} else {
		v.OffsetRow = 0
		v.CursorRow = m - 1
	}
}

func (v *TableView) MoveFirstColumn() {
	v.OffsetCol = 0
	v.CursorCol = 0
}

func (v *TableView) MoveLastColumn() {
	if v.ds.ColumnCount() == 0 {
		return
	}
	v.OffsetCol = v.ds.ColumnCount() - 1
	v.CursorCol = 0
}

// SelectCell moves the selection to view-row row and dataset column
// col. A column already visible only moves the column cursor; a row
// already inside the vertical window only moves the row cursor.
// Anything else re-anchors the corresponding offset.
func (v *TableView) SelectCell(row, col int, ly Layout) {
	if row < 0 || row >= len(v.Rows) || col < 0 || col >= v.ds.ColumnCount() {
		return
	}
	found := false
	for i, cv := range v.VisibleColumns {
		if cv.Index == col {
			v.CursorCol = i
			found = true
			break
		}
	}
	if !found {
		v.OffsetCol = col
		v.CursorCol = 0
	}

	h := ly.TableHeight
	if row >= v.OffsetRow && row < v.OffsetRow+h {
		v.CursorRow = row - v.OffsetRow
	} else {
		v.OffsetRow = row
		v.CursorRow = 0
	}
}

// ToggleCollapse flips the selected column between Collapsed and
// Normal.
func (v *TableView) ToggleCollapse() {
	if v.ds.ColumnCount() == 0 {
		return
	}
	c := v.ds.Columns[v.AbsCol()]
	if c.Status == dataset.StatusCollapsed {
		c.Status = dataset.StatusNormal
	} else {
		c.Status = dataset.StatusCollapsed
	}
}

// ToggleExpand flips the selected column between Expanded and Normal.
func (v *TableView) ToggleExpand() {
	if v.ds.ColumnCount() == 0 {
		return
	}
	c := v.ds.Columns[v.AbsCol()]
	if c.Status == dataset.StatusExpanded {
		c.Status = dataset.StatusNormal
	} else {
		c.Status = dataset.StatusExpanded
	}
}

// Filter resolves a list of view-row indices through this view's row
// mapping and pushes the result into a new derived view named after
// this one.
func (v *TableView) Filter(viewRows []int) *TableView {
	rows := make([]int, 0, len(viewRows))
	for _, r := range viewRows {
		if r >= 0 && r < len(v.Rows) {
			rows = append(rows, v.Rows[r])
		}
	}
	return newDerivedView("F["+v.Name+"]", v.ds, rows, v.opts, v.ShowIndex)
}

// FilterContains returns the view rows whose cell in column col
// contains term. Case-sensitive, same predicate as search.
func (v *TableView) FilterContains(col int, term string) []int {
	c := v.ds.Columns[col]
	hits := make([]int, 0)
	for i, r := range v.Rows {
		if strings.Contains(c.Data[r], term) {
			hits = append(hits, i)
		}
	}
	return hits
}

// FilterEquals returns the view rows whose cell in column col equals
// value exactly.
func (v *TableView) FilterEquals(col int, value string) []int {
	c := v.ds.Columns[col]
	hits := make([]int, 0)
	for i, r := range v.Rows {
		if c.Data[r] == value {
			hits = append(hits, i)
		}
	}
	return hits
}
