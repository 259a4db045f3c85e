package ui

import tea "github.com/charmbracelet/bubbletea"

type KeyMap struct {
	Quit         tea.Key
	Help         tea.Key
	AppLogs      tea.Key
	Command      tea.Key
	Search       tea.Key
	SearchColumn tea.Key
	Filter       tea.Key
	SearchNext   tea.Key
	SearchPrev   tea.Key
	SortAsc      tea.Key
	SortDesc     tea.Key
	Histogram    tea.Key
	Collapse     tea.Key
	Expand       tea.Key
	ToggleIndex  tea.Key
	CopyCell     tea.Key
	CopyRow      tea.Key
	Top          tea.Key
	Bottom       tea.Key
	FirstColumn  tea.Key
	LastColumn   tea.Key
	Left         tea.Key
	Right        tea.Key
	PageUp       tea.Key
	PageDown     tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
		Help:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'?'}},
		AppLogs:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'L'}},
		Command:      tea.Key{Type: tea.KeyRunes, Runes: []rune{':'}},
		Search:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'/'}},
		SearchColumn: tea.Key{Type: tea.KeyRunes, Runes: []rune{'|'}},
		Filter:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'f'}},
		SearchNext:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'n'}},
		SearchPrev:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'N'}},
		SortAsc:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'s'}},
		SortDesc:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'S'}},
		Histogram:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'F'}},
		Collapse:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'c'}},
		Expand:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'x'}},
		ToggleIndex:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'i'}},
		CopyCell:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'y'}},
		CopyRow:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'Y'}},
		Top:          tea.Key{Type: tea.KeyRunes, Runes: []rune{'g'}},
		Bottom:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'G'}},
		FirstColumn:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'0'}},
		LastColumn:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'$'}},
		Left:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'h'}},
		Right:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'l'}},
		PageUp:       tea.Key{Type: tea.KeyCtrlU},
		PageDown:     tea.Key{Type: tea.KeyCtrlD},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}
