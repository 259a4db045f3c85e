package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tabview/internal/dataset"
	"tabview/internal/view"
)

func testApp() *App {
	ds := dataset.New("t.csv", []*dataset.Column{
		dataset.NewColumn("name", []string{"alice", "bob"}),
		dataset.NewColumn("age", []string{"30", "25"}),
	})
	opts := view.Options{MaxColumnWidth: 20, ColumnMargin: 1}
	a := &App{
		engine: view.NewEngine(ds, "t.csv", opts, false, nil),
		ds:     ds,
		keymap: DefaultKeyMap(),
		styles: NewStyles(true),
	}
	a.termW, a.termH = 40, 10
	a.engine.Apply(view.Message{Kind: view.KindResize, Width: 40, Height: 10})
	return a
}

func TestMapKey(t *testing.T) {
	a := testApp()
	tests := []struct {
		msg  tea.KeyMsg
		want view.Kind
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, view.KindMoveDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, view.KindQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, view.KindSearch},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'F'}}, view.KindHistogram},
		{tea.KeyMsg{Type: tea.KeyCtrlD}, view.KindPageDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, view.KindMoveLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, view.KindMoveRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Z'}}, view.KindNone},
	}
	for _, tt := range tests {
		if got := a.mapKey(tt.msg); got != tt.want {
			t.Errorf("mapKey(%v) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestRenderTableFrame(t *testing.T) {
	a := testApp()
	out := a.render(a.engine.Render())
	if !strings.Contains(out, "name") || !strings.Contains(out, "age") {
		t.Errorf("headers missing from frame")
	}
	if !strings.Contains(out, "alice") {
		t.Errorf("cell content missing from frame")
	}
	if !strings.Contains(out, "1/2") {
		t.Errorf("status position missing: %q", out)
	}
}

func TestRenderRedrawGating(t *testing.T) {
	a := testApp()
	first := a.View()
	if a.View() != first {
		t.Errorf("unchanged state produced a different frame")
	}
	a.engine.Apply(view.Message{Kind: view.KindMoveDown})
	if a.View() == first {
		t.Errorf("state change did not invalidate the frame")
	}
}

func TestFit(t *testing.T) {
	if got := fit("abc", 5); got != "abc  " {
		t.Errorf("pad = %q", got)
	}
	if got := fit("abcdef", 3); len([]rune(got)) != 3 {
		t.Errorf("truncate = %q", got)
	}
	if got := fit("x", 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
}

func TestOverlayTransparency(t *testing.T) {
	base := "aaa\nbbb\nccc"
	over := "\nXXX\n"
	got := overlay(base, over)
	if got != "aaa\nXXX\nccc" {
		t.Errorf("overlay = %q", got)
	}
}
