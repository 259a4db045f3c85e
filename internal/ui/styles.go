package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Base       lipgloss.Style
	Status     lipgloss.Style
	Message    lipgloss.Style
	Help       lipgloss.Style
	PopupBox   lipgloss.Style
	PopupTitle lipgloss.Style
	Prompt     lipgloss.Style
	Scrollbar  lipgloss.Style
	ViewName   lipgloss.Style

	Header         lipgloss.Style
	HeaderSelected lipgloss.Style
	Cell           lipgloss.Style
	CellNumeric    lipgloss.Style
	Selected       lipgloss.Style
	Index          lipgloss.Style
	Collapsed      lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Base = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.Message = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
		s.Scrollbar = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.ViewName = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
		s.HeaderSelected = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("45"))
		s.Cell = lipgloss.NewStyle()
		s.CellNumeric = lipgloss.NewStyle().Foreground(lipgloss.Color("150"))
		s.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
		s.Index = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
		s.Collapsed = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	} else {
		s.Base = lipgloss.NewStyle()
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Message = lipgloss.NewStyle().Foreground(lipgloss.Color("130"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("27"))
		s.Scrollbar = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.ViewName = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.HeaderSelected = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("27"))
		s.Cell = lipgloss.NewStyle()
		s.CellNumeric = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
		s.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27"))
		s.Index = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Collapsed = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
	return s
}
