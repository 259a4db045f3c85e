package view

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SearchAll scans every dataset column for term, one goroutine per
// column, and stores the merged hits sorted by (row, column). Rows in
// the hits are view rows. An empty result leaves the match cursor
// untouched.
func (v *TableView) SearchAll(ctx context.Context, term string) int {
	nc := v.ds.ColumnCount()
	perCol := make([][]Match, nc)

	g, _ := errgroup.WithContext(ctx)
	for col := 0; col < nc; col++ {
		col := col
		g.Go(func() error {
			data := v.ds.Columns[col].Data
			var hits []Match
			for i, r := range v.Rows {
				if strings.Contains(data[r], term) {
					hits = append(hits, Match{Row: i, Col: col})
				}
			}
			perCol[col] = hits
			return nil
		})
	}
	g.Wait()

	var all []Match
	for _, hits := range perCol {
		all = append(all, hits...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Row != all[j].Row {
			return all[i].Row < all[j].Row
		}
		return all[i].Col < all[j].Col
	})
	v.setMatches(all)
	return len(all)
}

// SearchColumn scans only column col. Sequential: a single column
// does not pay for fan-out.
func (v *TableView) SearchColumn(col int, term string) int {
	data := v.ds.Columns[col].Data
	var hits []Match
	for i, r := range v.Rows {
		if strings.Contains(data[r], term) {
			hits = append(hits, Match{Row: i, Col: col})
		}
	}
	v.setMatches(hits)
	return len(hits)
}

// setMatches installs fresh results and positions the match cursor
// on the first hit at or below the currently selected row, wrapping
// to the first hit when none qualifies.
func (v *TableView) setMatches(hits []Match) {
	if len(hits) == 0 {
		v.Matches = nil
		return
	}
	v.Matches = hits
	cur := v.AbsRow()
	v.MatchIdx = 0
	for i, m := range hits {
		if m.Row >= cur {
			v.MatchIdx = i
			break
		}
	}
}

// StepMatch advances the match cursor by delta with modular
// wraparound and moves the selection to the match. A delta of zero
// re-applies the current match without advancing, used right after a
// fresh search.
func (v *TableView) StepMatch(delta int, ly Layout) bool {
	n := len(v.Matches)
	if n == 0 {
		return false
	}
	v.MatchIdx = ((v.MatchIdx+delta)%n + n) % n
	m := v.Matches[v.MatchIdx]
	v.SelectCell(m.Row, m.Col, ly)
	return true
}
