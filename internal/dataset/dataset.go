// Package dataset holds an immutable in-memory table loaded from a
// CSV, Parquet, or Arrow IPC file. Cells are strings; absent values
// carry a placeholder so every column has exactly RowCount entries.
package dataset

import "strings"

// Placeholder marks an absent value. It survives into rendering so
// missing cells are visibly distinct from empty strings.
const Placeholder = "∅"

// NewlineMark replaces embedded newlines so a cell never breaks a
// rendered row.
const NewlineMark = " ↵ "

// CollapseMark stands in for the cells of a collapsed column.
const CollapseMark = "⋮"

type ColumnStatus int

const (
	StatusNormal ColumnStatus = iota
	StatusExpanded
	StatusCollapsed
)

// Column is one named column of cell data. Data always has the
// dataset's full row count. MaxWidth is the display width of the
// widest cell (header included). RenderWidth is mutated by the view
// layer during window refresh; everything else is read-only after
// load.
type Column struct {
	Name    string
	Numeric bool
	Data    []string
	Status  ColumnStatus

	MaxWidth    int
	RenderWidth int
}

type Dataset struct {
	Path    string
	Columns []*Column
	rows    int
}

// New assembles a Dataset from prepared columns. All columns must
// share the same length.
func New(path string, cols []*Column) *Dataset {
	n := 0
	if len(cols) > 0 {
		n = len(cols[0].Data)
	}
	return &Dataset{Path: path, Columns: cols, rows: n}
}

func (d *Dataset) RowCount() int    { return d.rows }
func (d *Dataset) ColumnCount() int { return len(d.Columns) }

// Cell returns the stored value at (row, col). Callers index with
// absolute dataset rows, not view rows.
func (d *Dataset) Cell(row, col int) string {
	return d.Columns[col].Data[row]
}

// Headers returns the column names in order.
func (d *Dataset) Headers() []string {
	hs := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		hs[i] = c.Name
	}
	return hs
}

// sanitizeCell normalizes a raw value for display: absent values get
// the placeholder, embedded newlines become the newline mark.
func sanitizeCell(v string, present bool) string {
	if !present || v == "" {
		return Placeholder
	}
	if strings.ContainsAny(v, "\r\n") {
		v = strings.ReplaceAll(v, "\r\n", "\n")
		v = strings.ReplaceAll(v, "\r", "\n")
		v = strings.ReplaceAll(v, "\n", NewlineMark)
	}
	return v
}
