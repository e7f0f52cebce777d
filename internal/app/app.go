// Package app implements the interactive terminal interface.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agalitsyn/todo-tui/internal/model"
	"github.com/agalitsyn/todo-tui/internal/state"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeSearch
	modeHelp
)

// App is the Bubble Tea model. It owns the application state and advances it
// through the reducer only, every user interaction becomes an action.
type App struct {
	reducer *state.Reducer

	st      state.State
	visible []model.Task
	stats   state.Stats

	mode   mode
	cursor int
	form   *taskForm
	search textinput.Model

	width  int
	height int
}

func New() *App {
	search := textinput.New()
	search.Placeholder = "search title or description"
	search.Prompt = "/"
	search.CharLimit = 120

	a := &App{
		reducer: state.NewReducer(),
		st:      state.NewState(),
		search:  search,
	}
	a.refresh()
	return a
}

// Run starts the interface and blocks until quit or context cancellation.
func Run(ctx context.Context) error {
	if !isTTY(os.Stdout) {
		return fmt.Errorf("interactive mode requires a TTY")
	}

	program := tea.NewProgram(New(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("could not run program: %w", err)
	}
	return nil
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeForm:
			return a.updateForm(msg)
		case modeSearch:
			return a.updateSearch(msg)
		case modeHelp:
			return a.updateHelp(msg)
		default:
			return a.updateList(msg)
		}
	}

	// Forward component messages (cursor blink) to the focused input.
	var cmd tea.Cmd
	switch a.mode {
	case modeSearch:
		a.search, cmd = a.search.Update(msg)
	case modeForm:
		cmd = a.form.updateFocused(msg)
	}
	return a, cmd
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}

	case "a":
		a.form = newTaskForm()
		a.mode = modeForm
		return a, textinput.Blink

	case "e", "enter":
		if t, ok := a.selected(); ok {
			a.form = editTaskForm(t)
			a.mode = modeForm
			return a, textinput.Blink
		}

	case "d":
		if t, ok := a.selected(); ok {
			log.Printf("DEBUG delete task id=%s", t.ID)
			a.dispatch(state.DeleteTask{ID: t.ID})
		}

	case "x", " ":
		if t, ok := a.selected(); ok {
			a.dispatch(state.ToggleTask{ID: t.ID})
		}

	case "/":
		a.search.SetValue(a.st.Search)
		a.search.Focus()
		a.mode = modeSearch
		return a, textinput.Blink

	case "f":
		a.dispatch(state.SetStatusFilter{Filter: nextStatusFilter(a.st.StatusFilter)})

	case "p":
		a.dispatch(state.SetPriorityFilter{Filter: nextPriorityFilter(a.st.PriorityFilter)})

	case "C":
		// Gated on having something to clear.
		if a.stats.Completed > 0 {
			log.Printf("DEBUG clear completed, count=%d", a.stats.Completed)
			a.dispatch(state.ClearCompleted{})
		}

	case "h", "?":
		a.mode = modeHelp
	}

	return a, nil
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.search.Blur()
		a.mode = modeList
		a.dispatch(state.SetSearch{Query: ""})
		return a, nil
	case "enter":
		a.search.Blur()
		a.mode = modeList
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	// Live search: the projection recomputes on every keystroke.
	a.dispatch(state.SetSearch{Query: a.search.Value()})
	return a, cmd
}

func (a *App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	default:
		a.mode = modeList
	}
	return a, nil
}

// dispatch routes an action through the reducer and recomputes the derived
// projection and counters.
func (a *App) dispatch(action state.Action) {
	a.st = a.reducer.Apply(a.st, action)
	a.refresh()
}

func (a *App) refresh() {
	a.visible = state.Visible(a.st)
	a.stats = state.ComputeStats(a.st)
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) selected() (model.Task, bool) {
	if len(a.visible) == 0 || a.cursor >= len(a.visible) {
		return model.Task{}, false
	}
	return a.visible[a.cursor], true
}

// State returns the current application state.
func (a *App) State() state.State {
	return a.st
}

func nextStatusFilter(f model.StatusFilter) model.StatusFilter {
	switch f {
	case model.StatusFilterAll:
		return model.StatusFilterActive
	case model.StatusFilterActive:
		return model.StatusFilterCompleted
	default:
		return model.StatusFilterAll
	}
}

func nextPriorityFilter(f model.PriorityFilter) model.PriorityFilter {
	switch f {
	case model.PriorityFilterAll:
		return model.PriorityFilterLow
	case model.PriorityFilterLow:
		return model.PriorityFilterMedium
	case model.PriorityFilterMedium:
		return model.PriorityFilterHigh
	default:
		return model.PriorityFilterAll
	}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
