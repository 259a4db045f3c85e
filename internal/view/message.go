package view

import tea "github.com/charmbracelet/bubbletea"

// Kind identifies an engine operation. The presentation layer maps
// key bindings to Kinds; the engine never sees key names outside of
// command input.
type Kind int

const (
	KindNone Kind = iota

	KindMoveUp
	KindMoveDown
	KindMoveLeft
	KindMoveRight
	KindPageUp
	KindPageDown
	KindHome
	KindEnd
	KindFirstColumn
	KindLastColumn

	KindToggleCollapse
	KindToggleExpand
	KindToggleIndex

	KindEnter
	KindExit
	KindHelp
	KindAppLogs
	KindQuit

	KindCommand
	KindSearch
	KindSearchColumn
	KindFilterColumn
	KindSearchNext
	KindSearchPrev

	KindSortAsc
	KindSortDesc
	KindHistogram

	KindCopyCell
	KindCopyRow

	KindResize
	KindRawKey
)

// Message is one input event. Width/Height are set for KindResize,
// Key for KindRawKey (only delivered while command input is active).
type Message struct {
	Kind   Kind
	Width  int
	Height int
	Key    tea.KeyMsg
}
