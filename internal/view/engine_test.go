package view

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(testDataset(), "people.csv", testOpts, false, nil)
	e.Apply(Message{Kind: KindResize, Width: 40, Height: 12})
	return e
}

func typeText(e *Engine, s string) {
	e.Apply(Message{Kind: KindRawKey, Key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}})
}

func pressEnter(e *Engine) {
	e.Apply(Message{Kind: KindRawKey, Key: tea.KeyMsg{Type: tea.KeyEnter}})
}

func pressEsc(e *Engine) {
	e.Apply(Message{Kind: KindRawKey, Key: tea.KeyMsg{Type: tea.KeyEsc}})
}

func TestEngineRecordMode(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindMoveDown})
	e.Apply(Message{Kind: KindEnter})

	m := e.Render()
	if m.Mode != ModeRecord {
		t.Fatalf("mode = %v, want Record", m.Mode)
	}
	if m.Record.Values[0] != "bob" {
		t.Errorf("record value = %q, want bob", m.Record.Values[0])
	}

	e.Apply(Message{Kind: KindMoveRight})
	if got := e.Render().Record.Values[0]; got != "carol" {
		t.Errorf("next record = %q, want carol", got)
	}
	e.Apply(Message{Kind: KindMoveLeft})
	if got := e.Render().Record.Values[0]; got != "bob" {
		t.Errorf("previous record = %q, want bob", got)
	}

	e.Apply(Message{Kind: KindExit})
	if e.Render().Mode != ModeTable {
		t.Errorf("exit did not return to table")
	}
}

func TestEngineMoveRightTableColumn(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindMoveRight})
	if got := e.Render().AbsCol; got != 1 {
		t.Errorf("column after move right = %d, want 1", got)
	}
	e.Apply(Message{Kind: KindMoveLeft})
	if got := e.Render().AbsCol; got != 0 {
		t.Errorf("column after move left = %d, want 0", got)
	}
}

func TestEngineRecordCopyCell(t *testing.T) {
	var copied string
	e := NewEngine(testDataset(), "t", testOpts, false, func(s string) error {
		copied = s
		return nil
	})
	e.Apply(Message{Kind: KindResize, Width: 40, Height: 12})
	e.Apply(Message{Kind: KindMoveDown})
	e.Apply(Message{Kind: KindEnter})
	e.Apply(Message{Kind: KindMoveDown})
	e.Apply(Message{Kind: KindCopyCell})
	if copied != "25" {
		t.Errorf("copied %q, want 25", copied)
	}
}

func TestEngineRecordDisablesIndex(t *testing.T) {
	e := NewEngine(testDataset(), "t", testOpts, true, nil)
	e.Apply(Message{Kind: KindResize, Width: 40, Height: 12})
	e.Apply(Message{Kind: KindEnter})
	if e.view().ShowIndex {
		t.Errorf("index still enabled in record mode")
	}
}

func TestEngineHistogramFilter(t *testing.T) {
	e := newTestEngine(t)
	// select the city column, open its histogram
	e.Apply(Message{Kind: KindLastColumn})
	e.Apply(Message{Kind: KindHistogram})
	if e.Render().Mode != ModeHistogram {
		t.Fatalf("mode = %v, want Histogram", e.Render().Mode)
	}

	// top entry is paris (count 2, wins the tie on value)
	e.Apply(Message{Kind: KindEnter})
	m := e.Render()
	if m.Mode != ModeTable {
		t.Fatalf("mode = %v, want Table after histogram filter", m.Mode)
	}
	if m.ViewName != "F[people.csv]" {
		t.Errorf("view name = %q", m.ViewName)
	}
	if m.TotalRows != 2 {
		t.Errorf("rows = %d, want 2", m.TotalRows)
	}

	e.Apply(Message{Kind: KindExit})
	if got := e.Render(); got.ViewName != "people.csv" || got.TotalRows != 5 {
		t.Errorf("pop restored %q/%d rows", got.ViewName, got.TotalRows)
	}
}

func TestEngineHistogramEscDoesNotFilter(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindHistogram})
	e.Apply(Message{Kind: KindExit})
	m := e.Render()
	if m.Mode != ModeTable || m.TotalRows != 5 {
		t.Errorf("esc from histogram changed the view: %q/%d", m.ViewName, m.TotalRows)
	}
}

func TestEngineHelpPopup(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindEnter}) // record mode
	e.Apply(Message{Kind: KindHelp})
	m := e.Render()
	if m.Mode != ModePopup || m.PopupText == "" {
		t.Fatalf("help popup not shown")
	}
	e.Apply(Message{Kind: KindExit})
	if e.Render().Mode != ModeRecord {
		t.Errorf("popup exit did not restore prior mode")
	}
}

func TestEngineAppLogsPopup(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindAppLogs})
	m := e.Render()
	if m.Mode != ModePopup || m.PopupTitle != "application log" {
		t.Fatalf("log popup not shown: mode=%v title=%q", m.Mode, m.PopupTitle)
	}
	e.Apply(Message{Kind: KindExit})
	if e.Render().Mode != ModeTable {
		t.Errorf("exit did not restore table mode")
	}
}

func TestEngineSearchFlow(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindSearch})
	if m := e.Render(); !m.InputActive || m.InputPrompt != "/" {
		t.Fatalf("command input not active")
	}

	typeText(e, "paris")
	pressEnter(e)

	m := e.Render()
	if m.Mode != ModeTable {
		t.Fatalf("mode = %v, want Table", m.Mode)
	}
	if m.MatchCount != 2 {
		t.Fatalf("matches = %d, want 2", m.MatchCount)
	}
	if m.AbsRow != 1 {
		t.Errorf("selection at row %d, want 1", m.AbsRow)
	}
	e.Apply(Message{Kind: KindSearchNext})
	if e.Render().AbsRow != 4 {
		t.Errorf("next match at %d, want 4", e.Render().AbsRow)
	}
	e.Apply(Message{Kind: KindSearchNext})
	if e.Render().AbsRow != 1 {
		t.Errorf("wraparound at %d, want 1", e.Render().AbsRow)
	}
}

func TestEngineSearchCancel(t *testing.T) {
	e := newTestEngine(t)
	before := e.Render()
	e.Apply(Message{Kind: KindSearch})
	typeText(e, "paris")
	pressEsc(e)
	m := e.Render()
	if m.Mode != ModeTable || m.MatchCount != 0 {
		t.Errorf("canceled input still dispatched")
	}
	if m.AbsRow != before.AbsRow {
		t.Errorf("selection moved on cancel")
	}
}

func TestEngineColumnFilter(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindLastColumn}) // city
	e.Apply(Message{Kind: KindFilterColumn})
	typeText(e, "berlin")
	pressEnter(e)

	m := e.Render()
	if m.TotalRows != 2 || m.ViewName != "F[people.csv]" {
		t.Errorf("filter produced %q/%d rows", m.ViewName, m.TotalRows)
	}
}

func TestEngineExprFilterCommand(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindCommand})
	typeText(e, "filter age > 29")
	pressEnter(e)

	if m := e.Render(); m.TotalRows != 3 {
		t.Errorf("rows = %d, want 3", m.TotalRows)
	}
}

func TestEngineGotoCommand(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindCommand})
	typeText(e, "goto 4")
	pressEnter(e)
	if got := e.Render().AbsRow; got != 3 {
		t.Errorf("abs row = %d, want 3", got)
	}

	e.Apply(Message{Kind: KindCommand})
	typeText(e, "goto 99")
	pressEnter(e)
	m := e.Render()
	if m.AbsRow != 3 {
		t.Errorf("out of range goto moved the cursor")
	}
	if !strings.Contains(m.Status, "goto") {
		t.Errorf("status = %q, want goto usage hint", m.Status)
	}
}

func TestEngineExportCommand(t *testing.T) {
	e := newTestEngine(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	e.Apply(Message{Kind: KindCommand})
	typeText(e, "export csv "+path)
	pressEnter(e)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export did not write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 6 {
		t.Fatalf("exported %d lines, want header + 5 rows", len(lines))
	}
	if lines[0] != "name,age,city" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestEngineUnknownCommand(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindCommand})
	typeText(e, "frobnicate")
	pressEnter(e)
	if !strings.Contains(e.Render().Status, "unknown command") {
		t.Errorf("status = %q", e.Render().Status)
	}
}

func TestEngineCopyRow(t *testing.T) {
	var copied string
	e := NewEngine(testDataset(), "t", testOpts, false, func(s string) error {
		copied = s
		return nil
	})
	e.Apply(Message{Kind: KindResize, Width: 40, Height: 12})
	e.Apply(Message{Kind: KindCopyRow})
	if copied != "alice,30,berlin" {
		t.Errorf("copied %q", copied)
	}

	e.Apply(Message{Kind: KindCopyCell})
	if copied != "alice" {
		t.Errorf("copied cell %q", copied)
	}
}

func TestQuoteField(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"a,b", `"a,b"`},
		{"a b", `"a b"`},
		{"a\tb", "\"a\tb\""},
		{`say "hi"`, `"say ""hi"""`},
		{`a"b`, `a""b`},
	}
	for _, tt := range tests {
		if got := quoteField(tt.in); got != tt.want {
			t.Errorf("quoteField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEngineQuit(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindQuit})
	if !e.Quitting() {
		t.Fatalf("not quitting")
	}
	e.Apply(Message{Kind: KindMoveDown})
	if e.Render().AbsRow != 0 {
		t.Errorf("message processed after quit")
	}
}

func TestEngineExitNeverPopsRoot(t *testing.T) {
	e := newTestEngine(t)
	e.Apply(Message{Kind: KindExit})
	if len(e.stack) != 1 {
		t.Fatalf("root view popped")
	}
}

func TestEngineToggleIndexRelayouts(t *testing.T) {
	e := newTestEngine(t)
	w := e.Render().Layout.TableWidth
	e.Apply(Message{Kind: KindToggleIndex})
	m := e.Render()
	if m.Index == nil {
		t.Fatalf("index column not rendered")
	}
	if m.Layout.TableWidth >= w {
		t.Errorf("table width %d did not shrink from %d", m.Layout.TableWidth, w)
	}
}
