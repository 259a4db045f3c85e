package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tabview/internal/util/logx"
	"tabview/internal/view"
)

// render draws the full frame for the current mode. Popup and
// command input draw over the table frame.
func (a *App) render(m view.RenderModel) string {
	var body string
	switch m.Mode {
	case view.ModeRecord:
		body = a.renderRecord(m)
	case view.ModeHistogram:
		body = a.renderHistogram(m)
	default:
		body = a.renderTable(m)
	}

	frame := body + "\n" + a.renderStatusLine(m)
	if m.Mode == view.ModePopup {
		frame = a.renderPopup(frame, m.PopupTitle, m.PopupText)
	}
	return frame
}

func (a *App) renderTable(m view.RenderModel) string {
	st := a.styles
	h := m.Layout.TableHeight
	if h < 0 {
		h = 0
	}

	lines := make([]strings.Builder, h+1) // header plus data window

	if m.Index != nil {
		pad := strings.Repeat(" ", m.Index.Width)
		lines[0].WriteString(st.Index.Render(pad) + " │")
		for r := 0; r < h; r++ {
			entry := pad
			if r < len(m.Index.Rows) {
				entry = runewidth.FillLeft(m.Index.Rows[r], m.Index.Width)
			}
			lines[r+1].WriteString(st.Index.Render(entry) + " │")
		}
	}

	for ci, cv := range m.Columns {
		selected := ci == m.CursorCol
		head := st.Header
		if selected {
			head = st.HeaderSelected
		}
		lines[0].WriteString(head.Render(fit(cv.Name, cv.Width)) + " ")
		for r := 0; r < h; r++ {
			cell := ""
			if r < len(cv.Rows) {
				cell = cv.Rows[r]
			}
			style := st.Cell
			if selected && r == m.CursorRow {
				style = st.Selected
			}
			lines[r+1].WriteString(style.Render(fit(cell, cv.Width)) + " ")
		}
	}

	bar := a.scrollbar(m, h)
	out := make([]string, h+1)
	for i := range lines {
		s := lines[i].String()
		if i > 0 {
			s += bar[i-1]
		}
		out[i] = s
	}
	return strings.Join(out, "\n")
}

// scrollbar returns one glyph per data row, a thumb at the position
// proportional to the absolute row.
func (a *App) scrollbar(m view.RenderModel, h int) []string {
	bar := make([]string, h)
	thumb := 0
	if m.TotalRows > 1 && h > 1 {
		thumb = m.AbsRow * (h - 1) / (m.TotalRows - 1)
	}
	for i := range bar {
		if i == thumb && m.TotalRows > 0 {
			bar[i] = a.styles.Scrollbar.Render("█")
		} else {
			bar[i] = a.styles.Scrollbar.Render("│")
		}
	}
	return bar
}

func (a *App) renderRecord(m view.RenderModel) string {
	st := a.styles
	rv := m.Record
	h := m.Layout.TableHeight

	headerWidth := 0
	for _, hd := range rv.Headers {
		if w := runewidth.StringWidth(hd); w > headerWidth {
			headerWidth = w
		}
	}

	title := st.ViewName.Render(fmt.Sprintf("record %d/%d", rv.Index+1, m.TotalRows))
	lines := []string{title}
	lo := rv.Offset
	hi := lo + h
	if hi > rv.Len() {
		hi = rv.Len()
	}
	for i := lo; i < hi; i++ {
		name := st.Header.Render(runewidth.FillRight(rv.Headers[i], headerWidth))
		val := rv.Values[i]
		if i-lo == rv.Cursor {
			val = st.Selected.Render(val)
		}
		lines = append(lines, name+"  "+val)
	}
	return padLines(lines, h+1)
}

func (a *App) renderHistogram(m view.RenderModel) string {
	st := a.styles
	hv := m.Histogram
	h := m.Layout.TableHeight
	hist := hv.Hist
	if hist.Column < 0 || hist.Column >= len(a.ds.Columns) {
		// a missed frame is recoverable, a panic mid-session is not
		logx.Warnf("histogram column %d out of range", hist.Column)
		return padLines(nil, h+1)
	}

	colName := a.ds.Columns[hist.Column].Name
	title := st.ViewName.Render(fmt.Sprintf("histogram: %s (%d values)", colName, len(hist.Values)))
	lines := []string{title}

	valueWidth := 0
	for _, v := range hist.Values {
		if w := runewidth.StringWidth(v); w > valueWidth {
			valueWidth = w
		}
	}
	if max := m.Layout.TableWidth / 2; valueWidth > max && max > 0 {
		valueWidth = max
	}

	lo := hv.Offset
	hi := lo + h
	if hi > hv.Len() {
		hi = hv.Len()
	}
	for i := lo; i < hi; i++ {
		val := fit(hist.Values[i], valueWidth)
		if i-lo == hv.Cursor {
			val = st.Selected.Render(val)
		}
		lines = append(lines, val+"  "+st.Status.Render(hist.Labels[i]))
	}
	return padLines(lines, h+1)
}

func (a *App) renderStatusLine(m view.RenderModel) string {
	st := a.styles
	if m.InputActive {
		text := m.InputText
		// block cursor over the character at the edit position
		if m.InputCursor >= len([]rune(text)) {
			text += st.Selected.Render(" ")
		} else {
			rs := []rune(text)
			text = string(rs[:m.InputCursor]) + st.Selected.Render(string(rs[m.InputCursor])) + string(rs[m.InputCursor+1:])
		}
		return st.Prompt.Render(m.InputPrompt) + text
	}
	if m.Status != "" {
		return st.Message.Render(m.Status)
	}

	pos := fmt.Sprintf("%d/%d", m.AbsRow+1, m.TotalRows)
	if m.TotalRows == 0 {
		pos = "0/0"
	}
	col := ""
	if m.AbsCol < len(a.ds.Columns) {
		col = a.ds.Columns[m.AbsCol].Name
	}
	match := ""
	if m.MatchCount > 0 {
		match = fmt.Sprintf("  [%d/%d]", m.MatchIdx+1, m.MatchCount)
	}
	return st.ViewName.Render(m.ViewName) + st.Status.Render(fmt.Sprintf("  %s  %s%s", pos, col, match))
}

func (a *App) renderPopup(base, title, text string) string {
	if a.popupOpen {
		text = a.popupVP.View()
	}
	box := a.styles.PopupBox.Render(a.styles.PopupTitle.Render(title) + "\n\n" + text)
	placed := lipgloss.Place(a.termW, a.termH, lipgloss.Center, lipgloss.Center, box)
	return overlay(base, placed)
}

// overlay draws over base line by line, treating whitespace-only
// overlay lines as transparent.
func overlay(base, over string) string {
	bLines := strings.Split(base, "\n")
	oLines := strings.Split(over, "\n")
	maxLen := len(bLines)
	if len(oLines) > maxLen {
		maxLen = len(oLines)
	}
	for len(bLines) < maxLen {
		bLines = append(bLines, "")
	}
	for len(oLines) < maxLen {
		oLines = append(oLines, "")
	}
	out := make([]string, maxLen)
	for i := 0; i < maxLen; i++ {
		if strings.TrimSpace(oLines[i]) != "" {
			out[i] = oLines[i]
		} else {
			out[i] = bLines[i]
		}
	}
	return strings.Join(out, "\n")
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

func padLines(lines []string, height int) string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
