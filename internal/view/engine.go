package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tabview/internal/dataset"
	"tabview/internal/export"
	"tabview/internal/util/logx"
)

// Mode is the top-level interaction state.
type Mode int

const (
	ModeTable Mode = iota
	ModeRecord
	ModeHistogram
	ModePopup
	ModeCommandInput
)

// InputKind selects how finished command input is interpreted.
type InputKind int

const (
	InputRaw InputKind = iota
	InputSearch
	InputSearchColumn
	InputFilterColumn
)

func (k InputKind) prompt() string {
	switch k {
	case InputSearch:
		return "/"
	case InputSearchColumn:
		return "|"
	case InputFilterColumn:
		return "f "
	default:
		return ":"
	}
}

// Engine owns the view stack and the transient inspectors, applies
// one Message at a time, and publishes a render model. It is
// single-threaded: a Message is fully applied before the next one is
// accepted.
type Engine struct {
	ds   *dataset.Dataset
	opts Options

	stack  []*TableView
	record *RecordView
	hist   *HistogramView

	mode      Mode
	prevMode  Mode
	inputKind InputKind
	input     *Inputter

	width  int
	height int
	layout Layout

	status   string
	statusAt time.Time

	popupTitle string
	popupText  string

	clip func(string) error

	quitting   bool
	lastUpdate time.Time
}

// NewEngine builds the engine over a loaded dataset. clip is the
// clipboard sink; pass nil to disable copy operations.
func NewEngine(ds *dataset.Dataset, name string, opts Options, showIndex bool, clip func(string) error) *Engine {
	root := NewTableView(name, ds, opts, showIndex)
	return &Engine{
		ds:    ds,
		opts:  opts,
		stack: []*TableView{root},
		input: NewInputter(),
		mode:  ModeTable,
		clip:  clip,
	}
}

func (e *Engine) view() *TableView { return e.stack[len(e.stack)-1] }

// Quitting reports whether a quit Message has been applied. No
// further Messages are processed once set.
func (e *Engine) Quitting() bool { return e.quitting }

// InputActive reports whether raw key events should be routed to the
// input buffer instead of being mapped to operations.
func (e *Engine) InputActive() bool { return e.mode == ModeCommandInput }

// PopupActive reports whether a popup is on screen.
func (e *Engine) PopupActive() bool { return e.mode == ModePopup }

func (e *Engine) setStatus(format string, a ...any) {
	e.status = fmt.Sprintf(format, a...)
	e.statusAt = time.Now()
}

// SetStatus posts a status message from outside the Message flow,
// e.g. the load report at startup.
func (e *Engine) SetStatus(format string, a ...any) {
	e.setStatus(format, a...)
	e.lastUpdate = time.Now()
}

func (e *Engine) openPopup(title, text string) {
	if e.mode == ModePopup || e.mode == ModeCommandInput {
		return
	}
	e.prevMode = e.mode
	e.popupTitle = title
	e.popupText = text
	e.mode = ModePopup
}

// Apply processes one Message and leaves the engine in a consistent,
// renderable state.
func (e *Engine) Apply(msg Message) {
	if e.quitting {
		return
	}
	defer func() { e.lastUpdate = time.Now() }()

	switch msg.Kind {
	case KindQuit:
		e.quitting = true
		return
	case KindResize:
		e.width, e.height = msg.Width, msg.Height
		e.refresh()
		return
	case KindHelp:
		e.openPopup("keys", helpText)
		return
	case KindAppLogs:
		text := logx.Dump()
		if text == "" {
			text = "no log lines yet"
		}
		e.openPopup("application log", text)
		return
	}

	switch e.mode {
	case ModeTable:
		e.applyTable(msg)
	case ModeRecord:
		e.applyRecord(msg)
	case ModeHistogram:
		e.applyHistogram(msg)
	case ModePopup:
		if msg.Kind == KindExit || msg.Kind == KindEnter {
			e.mode = e.prevMode
		}
	case ModeCommandInput:
		e.applyInput(msg)
	}
}

func (e *Engine) applyTable(msg Message) {
	v := e.view()
	switch msg.Kind {
	case KindMoveUp:
		v.MoveVertical(-1, e.layout)
	case KindMoveDown:
		v.MoveVertical(1, e.layout)
	case KindPageUp:
		v.MoveVertical(-e.layout.TableHeight, e.layout)
	case KindPageDown:
		v.MoveVertical(e.layout.TableHeight, e.layout)
	case KindHome:
		v.MoveHome()
	case KindEnd:
		v.MoveEnd(e.layout)
	case KindMoveLeft:
		v.MoveLeft()
	case KindMoveRight:
		v.MoveRight(e.layout)
	case KindFirstColumn:
		v.MoveFirstColumn()
	case KindLastColumn:
		v.MoveLastColumn()

	case KindToggleCollapse:
		v.ToggleCollapse()
	case KindToggleExpand:
		v.ToggleExpand()
	case KindToggleIndex:
		v.ShowIndex = !v.ShowIndex

	case KindEnter:
		if len(v.Rows) == 0 {
			return
		}
		// the index column is redundant next to a single record
		v.ShowIndex = false
		e.record = NewRecordView(v, v.AbsRow(), e.opts.MaxColumnWidth)
		e.mode = ModeRecord

	case KindHistogram:
		if v.ds.ColumnCount() == 0 {
			return
		}
		v.ShowIndex = false
		e.hist = NewHistogramView(v.HistogramFor(v.AbsCol()))
		e.mode = ModeHistogram

	case KindExit:
		if len(e.stack) > 1 {
			e.stack = e.stack[:len(e.stack)-1]
			e.setStatus("view: %s", e.view().Name)
		}

	case KindSortAsc:
		v.SortByColumn(v.AbsCol(), false)
		e.setStatus("sorted by %s", e.ds.Columns[v.AbsCol()].Name)
	case KindSortDesc:
		v.SortByColumn(v.AbsCol(), true)
		e.setStatus("sorted by %s (desc)", e.ds.Columns[v.AbsCol()].Name)

	case KindSearchNext:
		v.StepMatch(1, e.layout)
	case KindSearchPrev:
		v.StepMatch(-1, e.layout)

	case KindCommand:
		e.enterInput(InputRaw)
	case KindSearch:
		e.enterInput(InputSearch)
	case KindSearchColumn:
		e.enterInput(InputSearchColumn)
	case KindFilterColumn:
		e.enterInput(InputFilterColumn)

	case KindCopyCell:
		e.copy(v.SelectedCell())
	case KindCopyRow:
		e.copy(e.rowAsCSV(v))
	}
	e.refresh()
}

func (e *Engine) applyRecord(msg Message) {
	switch msg.Kind {
	case KindMoveUp:
		e.record.Move(-1, e.layout.TableHeight)
	case KindMoveDown:
		e.record.Move(1, e.layout.TableHeight)
	case KindPageUp:
		e.record.Move(-e.layout.TableHeight, e.layout.TableHeight)
	case KindPageDown:
		e.record.Move(e.layout.TableHeight, e.layout.TableHeight)
	case KindMoveLeft:
		e.record.Step(-1, e.opts.MaxColumnWidth)
	case KindMoveRight:
		e.record.Step(1, e.opts.MaxColumnWidth)
	case KindCopyCell:
		e.copy(e.record.SelectedValue())
	case KindExit, KindEnter:
		e.mode = ModeTable
		e.refresh()
	}
}

func (e *Engine) applyHistogram(msg Message) {
	switch msg.Kind {
	case KindMoveUp:
		e.hist.Move(-1, e.layout.TableHeight)
	case KindMoveDown:
		e.hist.Move(1, e.layout.TableHeight)
	case KindPageUp:
		e.hist.Move(-e.layout.TableHeight, e.layout.TableHeight)
	case KindPageDown:
		e.hist.Move(e.layout.TableHeight, e.layout.TableHeight)
	case KindEnter:
		v := e.view()
		value := e.hist.Selected()
		hits := v.FilterEquals(e.hist.Hist.Column, value)
		e.stack = append(e.stack, v.Filter(hits))
		e.setStatus("%d rows where %s = %q", len(hits), e.ds.Columns[e.hist.Hist.Column].Name, value)
		e.mode = ModeTable
		e.refresh()
	case KindExit:
		e.mode = ModeTable
		e.refresh()
	}
}

func (e *Engine) enterInput(kind InputKind) {
	e.prevMode = e.mode
	e.inputKind = kind
	e.input.Reset()
	e.mode = ModeCommandInput
}

func (e *Engine) applyInput(msg Message) {
	if msg.Kind != KindRawKey {
		return
	}
	e.input.Handle(msg.Key)
	st := e.input.State()
	if !st.Finished {
		return
	}
	e.mode = e.prevMode
	if st.Canceled {
		return
	}
	e.dispatchInput(st.Text)
	e.refresh()
}

func (e *Engine) dispatchInput(text string) {
	v := e.view()
	switch e.inputKind {
	case InputSearch:
		n := v.SearchAll(context.Background(), text)
		if n == 0 {
			e.setStatus("no match for %q", text)
			return
		}
		v.StepMatch(0, e.layout)
		e.setStatus("%d matches", n)
	case InputSearchColumn:
		n := v.SearchColumn(v.AbsCol(), text)
		if n == 0 {
			e.setStatus("no match for %q", text)
			return
		}
		v.StepMatch(0, e.layout)
		e.setStatus("%d matches", n)
	case InputFilterColumn:
		hits := v.FilterContains(v.AbsCol(), text)
		e.stack = append(e.stack, v.Filter(hits))
		e.setStatus("%d rows match %q", len(hits), text)
	case InputRaw:
		e.runCommand(text)
	}
}

// runCommand interprets the raw command grammar: `filter <expr>`,
// `export csv|json <path>`, `goto <n>`.
func (e *Engine) runCommand(text string) {
	v := e.view()
	cmd, rest, _ := strings.Cut(strings.TrimSpace(text), " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case "":
	case "filter":
		f, err := NewExprFilter(v, rest)
		if err != nil {
			e.setStatus("%v", err)
			return
		}
		hits := f.Apply(v)
		e.stack = append(e.stack, v.Filter(hits))
		e.setStatus("%d rows match filter", len(hits))
	case "export":
		e.runExport(rest)
	case "goto":
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > len(v.Rows) {
			e.setStatus("goto: want a row between 1 and %d", len(v.Rows))
			return
		}
		v.SelectCell(n-1, v.AbsCol(), e.layout)
	default:
		e.setStatus("unknown command %q", cmd)
	}
}

func (e *Engine) runExport(rest string) {
	format, path, ok := strings.Cut(rest, " ")
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		e.setStatus("usage: export csv|json <path>")
		return
	}
	v := e.view()
	var err error
	switch format {
	case "csv":
		err = export.ToCSV(path, e.ds, v.Rows)
	case "json":
		err = export.ToNDJSON(path, e.ds, v.Rows)
	default:
		e.setStatus("usage: export csv|json <path>")
		return
	}
	if err != nil {
		e.setStatus("export: %v", err)
		return
	}
	e.setStatus("wrote %d rows to %s", len(v.Rows), path)
}

func (e *Engine) copy(s string) {
	if e.clip == nil {
		e.setStatus("clipboard unavailable")
		return
	}
	if err := e.clip(s); err != nil {
		// non-fatal, the session continues
		logx.Warnf("clipboard: %v", err)
		e.setStatus("copy failed")
		return
	}
	e.setStatus("copied %d bytes", len(s))
}

// rowAsCSV renders the selected row with field quoting: embedded
// quotes are doubled, and fields containing a comma, space, or tab
// are wrapped in quotes.
func (e *Engine) rowAsCSV(v *TableView) string {
	if len(v.Rows) == 0 {
		return ""
	}
	row := v.DatasetRow()
	fields := make([]string, e.ds.ColumnCount())
	for i := range e.ds.Columns {
		fields[i] = quoteField(e.ds.Cell(row, i))
	}
	return strings.Join(fields, ",")
}

func quoteField(s string) string {
	s = strings.ReplaceAll(s, `"`, `""`)
	if strings.ContainsAny(s, ", \t") {
		return `"` + s + `"`
	}
	return s
}

// refresh recomputes the layout and the active mode's projection.
// The index width is derived before the layout because index
// visibility changes the width budget left for data columns.
func (e *Engine) refresh() {
	v := e.view()
	th := e.height - HeaderHeight - StatusLineHeight
	e.layout = ComputeLayout(e.width, e.height, v.ShowIndex, v.IndexWidth(th))

	switch e.mode {
	case ModeTable:
		v.Refresh(e.layout)
	case ModeCommandInput:
		// command input floats over the table's last render
		v.Refresh(e.layout)
	case ModeRecord, ModeHistogram, ModePopup:
		// these windows are re-sliced at render time from the layout
	}
}
