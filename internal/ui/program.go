package ui

import (
	"context"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tabview/internal/config"
	"tabview/internal/dataset"
	"tabview/internal/util/logx"
	"tabview/internal/view"
)

// App adapts the engine to bubbletea: it translates terminal events
// into Messages and paints the engine's render model.
type App struct {
	engine *view.Engine
	ds     *dataset.Dataset
	keymap KeyMap
	styles Styles

	termW, termH int

	popupVP   viewport.Model
	popupOpen bool

	cached        string
	lastRender    time.Time
	statusVisible bool
}

// Run loads the dataset and drives the TUI until quit.
func Run(ctx context.Context, cfg *config.Config) error {
	started := time.Now()
	ds, err := dataset.Load(ctx, cfg.FilePath)
	if err != nil {
		return err
	}

	opts := view.Options{
		MaxColumnWidth: cfg.MaxColumnWidth,
		ColumnMargin:   cfg.ColumnMargin,
	}
	engine := view.NewEngine(ds, filepath.Base(cfg.FilePath), opts, cfg.ShowIndex, clipboard.WriteAll)
	engine.SetStatus("loaded %s (%d rows) in %dms", cfg.FilePath, ds.RowCount(), time.Since(started).Milliseconds())

	app := &App{
		engine: engine,
		ds:     ds,
		keymap: DefaultKeyMap(),
		styles: NewStyles(cfg.Theme != config.ThemeLight),
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a *App) Init() tea.Cmd { return tick() }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.termW, a.termH = msg.Width, msg.Height
		a.engine.Apply(view.Message{Kind: view.KindResize, Width: msg.Width, Height: msg.Height})
		a.popupOpen = false // re-sized on next sync
		a.syncPopup()
		return a, nil

	case tea.KeyMsg:
		if a.engine.InputActive() && msg.Type != tea.KeyCtrlC {
			a.engine.Apply(view.Message{Kind: view.KindRawKey, Key: msg})
			return a, nil
		}
		if a.popupOpen && !popupCloseKey(msg, a.keymap) {
			var cmd tea.Cmd
			a.popupVP, cmd = a.popupVP.Update(msg)
			a.cached = ""
			return a, cmd
		}
		kind := a.mapKey(msg)
		if kind == view.KindNone {
			return a, nil
		}
		a.engine.Apply(view.Message{Kind: kind})
		if a.engine.Quitting() {
			logx.Infof("quit")
			return a, tea.Quit
		}
		a.syncPopup()
		return a, nil

	case tickMsg:
		// status messages expire on their own, force a repaint
		if a.statusVisible {
			a.cached = ""
		}
		return a, tick()
	}
	return a, nil
}

// popupCloseKey reports whether a key should leave the popup instead
// of scrolling it.
func popupCloseKey(msg tea.KeyMsg, km KeyMap) bool {
	return msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter ||
		keyMatches(msg, km.Quit) || msg.Type == tea.KeyCtrlC
}

// syncPopup keeps the scrolling viewport in step with the engine's
// popup state.
func (a *App) syncPopup() {
	if !a.engine.PopupActive() {
		a.popupOpen = false
		return
	}
	if a.popupOpen {
		return
	}
	w := a.termW * 3 / 4
	h := a.termH - 6
	if w < 20 {
		w = a.termW
	}
	if h < 3 {
		h = 3
	}
	a.popupVP = viewport.New(w, h)
	a.popupVP.SetContent(a.engine.Render().PopupText)
	a.popupOpen = true
}

func (a *App) mapKey(msg tea.KeyMsg) view.Kind {
	switch msg.Type {
	case tea.KeyUp:
		return view.KindMoveUp
	case tea.KeyDown:
		return view.KindMoveDown
	case tea.KeyLeft:
		return view.KindMoveLeft
	case tea.KeyRight:
		return view.KindMoveRight
	case tea.KeyPgUp:
		return view.KindPageUp
	case tea.KeyPgDown:
		return view.KindPageDown
	case tea.KeyHome:
		return view.KindHome
	case tea.KeyEnd:
		return view.KindEnd
	case tea.KeyEnter:
		return view.KindEnter
	case tea.KeyEsc:
		return view.KindExit
	case tea.KeyCtrlC:
		return view.KindQuit
	}

	km := a.keymap
	switch {
	case keyMatches(msg, km.Quit):
		return view.KindQuit
	case keyMatches(msg, km.Help):
		return view.KindHelp
	case keyMatches(msg, km.AppLogs):
		return view.KindAppLogs
	case keyMatches(msg, km.Command):
		return view.KindCommand
	case keyMatches(msg, km.Search):
		return view.KindSearch
	case keyMatches(msg, km.SearchColumn):
		return view.KindSearchColumn
	case keyMatches(msg, km.Filter):
		return view.KindFilterColumn
	case keyMatches(msg, km.SearchNext):
		return view.KindSearchNext
	case keyMatches(msg, km.SearchPrev):
		return view.KindSearchPrev
	case keyMatches(msg, km.SortAsc):
		return view.KindSortAsc
	case keyMatches(msg, km.SortDesc):
		return view.KindSortDesc
	case keyMatches(msg, km.Histogram):
		return view.KindHistogram
	case keyMatches(msg, km.Collapse):
		return view.KindToggleCollapse
	case keyMatches(msg, km.Expand):
		return view.KindToggleExpand
	case keyMatches(msg, km.ToggleIndex):
		return view.KindToggleIndex
	case keyMatches(msg, km.CopyCell):
		return view.KindCopyCell
	case keyMatches(msg, km.CopyRow):
		return view.KindCopyRow
	case keyMatches(msg, km.Top):
		return view.KindHome
	case keyMatches(msg, km.Bottom):
		return view.KindEnd
	case keyMatches(msg, km.FirstColumn):
		return view.KindFirstColumn
	case keyMatches(msg, km.LastColumn):
		return view.KindLastColumn
	case keyMatches(msg, km.Left):
		return view.KindMoveLeft
	case keyMatches(msg, km.Right):
		return view.KindMoveRight
	case keyMatches(msg, km.PageUp):
		return view.KindPageUp
	case keyMatches(msg, km.PageDown):
		return view.KindPageDown
	}
	return view.KindNone
}

// View repaints only when the engine has newer state than the last
// painted frame.
func (a *App) View() string {
	m := a.engine.Render()
	if a.cached != "" && !m.LastUpdate.After(a.lastRender) {
		return a.cached
	}
	a.cached = a.render(m)
	a.lastRender = time.Now()
	a.statusVisible = m.Status != ""
	return a.cached
}
