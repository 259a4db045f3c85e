package view

import (
	"context"
	"reflect"
	"testing"

	"tabview/internal/dataset"
)

func matchDataset() *dataset.Dataset {
	vals := make([]string, 12)
	for i := range vals {
		vals[i] = "row"
	}
	vals[2], vals[5], vals[9] = "needle", "needle", "needle"
	return dataset.New("t", []*dataset.Column{
		dataset.NewColumn("v", vals),
	})
}

func TestSearchWraparound(t *testing.T) {
	v := NewTableView("t", matchDataset(), testOpts, false)
	ly := ComputeLayout(40, 20, false, 0)
	v.Refresh(ly)
	v.SelectCell(6, 0, ly)

	n := v.SearchAll(context.Background(), "needle")
	if n != 3 {
		t.Fatalf("matches = %d, want 3", n)
	}
	v.StepMatch(0, ly)
	if v.AbsRow() != 9 {
		t.Errorf("fresh search abs row = %d, want 9 (first >= 6)", v.AbsRow())
	}

	v.StepMatch(1, ly)
	if v.AbsRow() != 2 {
		t.Errorf("next from last match abs row = %d, want 2 (wrap)", v.AbsRow())
	}
	v.StepMatch(-1, ly)
	if v.AbsRow() != 9 {
		t.Errorf("prev wraps back, abs row = %d, want 9", v.AbsRow())
	}
}

func TestSearchResultsSorted(t *testing.T) {
	ds := dataset.New("t", []*dataset.Column{
		dataset.NewColumn("a", []string{"x", "needle", "needle"}),
		dataset.NewColumn("b", []string{"needle", "needle", "x"}),
	})
	v := NewTableView("t", ds, testOpts, false)
	v.Refresh(testLayout())

	v.SearchAll(context.Background(), "needle")
	want := []Match{{0, 1}, {1, 0}, {1, 1}, {2, 0}}
	if !reflect.DeepEqual(v.Matches, want) {
		t.Errorf("matches = %v, want %v", v.Matches, want)
	}
}

func TestSearchColumnOnly(t *testing.T) {
	ds := dataset.New("t", []*dataset.Column{
		dataset.NewColumn("a", []string{"needle", "x"}),
		dataset.NewColumn("b", []string{"needle", "needle"}),
	})
	v := NewTableView("t", ds, testOpts, false)
	v.Refresh(testLayout())

	if n := v.SearchColumn(1, "needle"); n != 2 {
		t.Fatalf("matches = %d, want 2", n)
	}
	for _, m := range v.Matches {
		if m.Col != 1 {
			t.Errorf("match in column %d, want 1", m.Col)
		}
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	ds := dataset.New("t", []*dataset.Column{
		dataset.NewColumn("a", []string{"Needle", "needle"}),
	})
	v := NewTableView("t", ds, testOpts, false)
	v.Refresh(testLayout())
	if n := v.SearchAll(context.Background(), "needle"); n != 1 {
		t.Errorf("matches = %d, want 1 (case-sensitive)", n)
	}
}

func TestSearchNoMatchKeepsCursor(t *testing.T) {
	v := NewTableView("t", matchDataset(), testOpts, false)
	ly := ComputeLayout(40, 20, false, 0)
	v.Refresh(ly)
	v.SearchAll(context.Background(), "needle")
	v.StepMatch(0, ly)
	idx := v.MatchIdx

	if n := v.SearchAll(context.Background(), "absent"); n != 0 {
		t.Fatalf("matches = %d, want 0", n)
	}
	if v.Matches != nil {
		t.Errorf("matches not cleared")
	}
	if v.MatchIdx != idx {
		t.Errorf("match cursor moved on empty result")
	}
	if v.StepMatch(1, ly) {
		t.Errorf("StepMatch reported a hit with no matches")
	}
}

func TestSearchOverFilteredView(t *testing.T) {
	v := NewTableView("t", matchDataset(), testOpts, false)
	ly := ComputeLayout(40, 20, false, 0)
	v.Refresh(ly)

	child := v.Filter([]int{5, 9}) // dataset rows 5 and 9
	child.Refresh(ly)
	child.SearchAll(context.Background(), "needle")
	want := []Match{{0, 0}, {1, 0}}
	if !reflect.DeepEqual(child.Matches, want) {
		t.Errorf("matches = %v, want view-row hits %v", child.Matches, want)
	}
}
