package view

import (
	"reflect"
	"testing"

	"tabview/internal/dataset"
)

func TestHistogramOrderAndTotals(t *testing.T) {
	ds := dataset.New("t", []*dataset.Column{
		dataset.NewColumn("city", []string{"berlin", "paris", "berlin", "rome", "paris", "berlin"}),
	})
	v := NewTableView("t", ds, testOpts, false)

	h := v.HistogramFor(0)
	if !reflect.DeepEqual(h.Values, []string{"berlin", "paris", "rome"}) {
		t.Errorf("values = %v", h.Values)
	}
	if !reflect.DeepEqual(h.Counts, []int{3, 2, 1}) {
		t.Errorf("counts = %v", h.Counts)
	}

	total := 0
	for _, n := range h.Counts {
		total += n
	}
	if total != len(v.Rows) {
		t.Errorf("count total = %d, want %d", total, len(v.Rows))
	}

	if h.Labels[0] != "50% 3" {
		t.Errorf("label = %q, want 50%% 3", h.Labels[0])
	}
}

func TestHistogramPercentageRounds(t *testing.T) {
	ds := dataset.New("t", []*dataset.Column{
		dataset.NewColumn("c", []string{"x", "x", "y"}),
	})
	v := NewTableView("t", ds, testOpts, false)
	h := v.HistogramFor(0)
	if h.Labels[0] != "67% 2" {
		t.Errorf("label = %q, want 67%% 2", h.Labels[0])
	}
	if h.Labels[1] != "33% 1" {
		t.Errorf("label = %q, want 33%% 1", h.Labels[1])
	}
}

func TestHistogramTiesBreakByValueDescending(t *testing.T) {
	ds := dataset.New("t", []*dataset.Column{
		dataset.NewColumn("c", []string{"a", "b", "c", "a", "b", "c"}),
	})
	v := NewTableView("t", ds, testOpts, false)
	h := v.HistogramFor(0)
	if !reflect.DeepEqual(h.Values, []string{"c", "b", "a"}) {
		t.Errorf("tied values = %v, want [c b a]", h.Values)
	}
}

func TestHistogramMemoizedPerView(t *testing.T) {
	v := NewTableView("t", testDataset(), testOpts, false)
	h1 := v.HistogramFor(2)
	h2 := v.HistogramFor(2)
	if h1 != h2 {
		t.Errorf("histogram recomputed instead of cached")
	}

	child := v.Filter([]int{0, 2})
	hc := child.HistogramFor(2)
	if hc == h1 {
		t.Errorf("derived view shares parent cache")
	}
	if !reflect.DeepEqual(hc.Values, []string{"berlin"}) {
		t.Errorf("child values = %v, want [berlin]", hc.Values)
	}
	if hc.Counts[0] != 2 {
		t.Errorf("child count = %d, want 2", hc.Counts[0])
	}
}

func TestHistogramViewNavigation(t *testing.T) {
	ds := dataset.New("t", []*dataset.Column{
		dataset.NewColumn("c", []string{"a", "b", "c", "d", "e"}),
	})
	v := NewTableView("t", ds, testOpts, false)
	hv := NewHistogramView(v.HistogramFor(0))

	hv.Move(1, 3)
	hv.Move(1, 3)
	hv.Move(1, 3) // cursor at window edge, offset shifts
	if hv.Offset+hv.Cursor != 3 {
		t.Errorf("selected = %d, want 3", hv.Offset+hv.Cursor)
	}
	hv.Move(10, 3)
	if hv.Offset+hv.Cursor != 4 {
		t.Errorf("overshoot selected = %d, want 4", hv.Offset+hv.Cursor)
	}
	if hv.Selected() == "" {
		t.Errorf("no selection at bottom")
	}
	hv.Move(-10, 3)
	hv.Move(-10, 3)
	if hv.Offset != 0 || hv.Cursor != 0 {
		t.Errorf("underflow: offset=%d cursor=%d", hv.Offset, hv.Cursor)
	}
}
