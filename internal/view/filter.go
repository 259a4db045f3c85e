package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// ExprFilter evaluates a boolean expression against every view row
// and returns the matching view-row indices. Column names are the
// expression variables; numeric-looking cell values are bound as
// floats so comparisons like `age > 30` work, everything else binds
// as a string. Only columns the expression references are
// materialized per row.
type ExprFilter struct {
	expr *govaluate.EvaluableExpression
	cols []int // dataset column indices referenced by the expression
}

// NewExprFilter compiles expr against the view's column names.
// Unknown variables are a compile-time error so typos surface before
// any row is evaluated.
func NewExprFilter(v *TableView, expr string) (*ExprFilter, error) {
	ev, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("parse filter: %w", err)
	}

	byName := make(map[string]int, v.ds.ColumnCount())
	for i, c := range v.ds.Columns {
		byName[c.Name] = i
	}

	var cols []int
	seen := make(map[int]bool)
	for _, name := range ev.Vars() {
		ci, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		if !seen[ci] {
			seen[ci] = true
			cols = append(cols, ci)
		}
	}
	return &ExprFilter{expr: ev, cols: cols}, nil
}

// Apply returns the view rows for which the expression is true. Rows
// where evaluation errors or yields a non-boolean are skipped.
func (f *ExprFilter) Apply(v *TableView) []int {
	params := make(map[string]interface{}, len(f.cols))
	hits := make([]int, 0)
	for i, r := range v.Rows {
		for _, ci := range f.cols {
			c := v.ds.Columns[ci]
			cell := c.Data[r]
			if n, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
				params[c.Name] = n
			} else {
				params[c.Name] = cell
			}
		}
		res, err := f.expr.Evaluate(params)
		if err != nil {
			continue
		}
		if b, ok := res.(bool); ok && b {
			hits = append(hits, i)
		}
	}
	return hits
}
