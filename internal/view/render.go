package view

import "time"

// RenderModel is the read-only snapshot the presentation layer draws
// from. It must be treated as immutable; a redraw is only warranted
// when LastUpdate is newer than the presenter's last render.
type RenderModel struct {
	Mode     Mode
	ViewName string

	Columns   []ColumnView
	Index     *ColumnView
	TotalRows int

	CursorRow int // window-relative
	CursorCol int
	AbsRow    int
	AbsCol    int

	Record    *RecordView
	Histogram *HistogramView

	PopupTitle string
	PopupText  string

	Status    string
	StatusAge time.Duration

	InputActive bool
	InputPrompt string
	InputText   string
	InputCursor int

	MatchCount int
	MatchIdx   int

	Layout     Layout
	LastUpdate time.Time
}

// Render publishes the current state as a render model.
func (e *Engine) Render() RenderModel {
	v := e.view()
	m := RenderModel{
		Mode:       e.mode,
		ViewName:   v.Name,
		Columns:    v.VisibleColumns,
		TotalRows:  len(v.Rows),
		CursorRow:  v.CursorRow,
		CursorCol:  v.CursorCol,
		AbsRow:     v.AbsRow(),
		AbsCol:     v.AbsCol(),
		Record:     e.record,
		Histogram:  e.hist,
		MatchCount: len(v.Matches),
		MatchIdx:   v.MatchIdx,
		Layout:     e.layout,
		LastUpdate: e.lastUpdate,
	}
	if v.ShowIndex {
		idx := v.IndexView
		m.Index = &idx
	}
	if e.mode == ModePopup {
		m.PopupTitle = e.popupTitle
		m.PopupText = e.popupText
	}
	if e.status != "" {
		age := time.Since(e.statusAt)
		if age < StatusMessageDuration {
			m.Status = e.status
			m.StatusAge = age
		}
	}
	if e.mode == ModeCommandInput {
		st := e.input.State()
		m.InputActive = true
		m.InputPrompt = e.inputKind.prompt()
		m.InputText = st.Text
		m.InputCursor = st.Cursor
	}
	return m
}

const helpText = `Navigation
  j/k, arrows     move down/up         h/l, arrows   move left/right
  ctrl+d/ctrl+u   page down/up         g/G           first/last row
  0/$             first/last column    :goto n       jump to row n

Columns
  c   collapse/restore column          x   expand/restore column
  i   toggle row numbers
  s   sort by column (ascending)       S   sort descending

Views
  enter   inspect record               F   column histogram
  esc     leave inspector / pop filtered view
  h/l in the inspector step to the previous/next record

Search and filter
  /       search whole table           |   search current column
  f       filter rows containing text (current column)
  n/N     next/previous match
  :filter <expr>        expression filter, e.g. :filter age > 30
  :export csv <path>    write the current view to a file

Other
  y   copy cell        Y   copy row as CSV
  L   application log
  ?   this help        q   quit`
