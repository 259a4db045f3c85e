package view

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Inputter is the single-line edit buffer used while composing a
// command, search, or filter string. Editing is delegated to
// bubbles/textinput; Enter and Esc terminate the buffer.
type Inputter struct {
	ti       textinput.Model
	finished bool
	canceled bool
}

// InputState is the read-only snapshot exposed to the engine and the
// render model.
type InputState struct {
	Text     string
	Cursor   int
	Finished bool
	Canceled bool
}

func NewInputter() *Inputter {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	return &Inputter{ti: ti}
}

// Reset clears the buffer and both terminal flags.
func (in *Inputter) Reset() {
	in.ti.SetValue("")
	in.ti.SetCursor(0)
	in.finished = false
	in.canceled = false
}

// Handle consumes one raw key event. Enter finishes the buffer; Esc
// clears it and finishes with the canceled flag set; everything else
// is an edit.
func (in *Inputter) Handle(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		in.finished = true
	case tea.KeyEsc:
		in.ti.SetValue("")
		in.canceled = true
		in.finished = true
	default:
		in.ti, _ = in.ti.Update(msg)
	}
}

func (in *Inputter) State() InputState {
	return InputState{
		Text:     in.ti.Value(),
		Cursor:   in.ti.Position(),
		Finished: in.finished,
		Canceled: in.canceled,
	}
}
