// Package state implements the application state and the pure reducer that
// advances it.
package state

import (
	"github.com/agalitsyn/todo-tui/internal/model"
	"github.com/agalitsyn/todo-tui/internal/store"
)

// State is the complete application state: the task set plus the current
// view filters. It has value semantics, a reducer produces a new State and
// never mutates the previous one.
type State struct {
	Tasks          store.TaskSet
	StatusFilter   model.StatusFilter
	Search         string
	PriorityFilter model.PriorityFilter
}

func NewState() State {
	return State{
		Tasks:          store.NewTaskSet(),
		StatusFilter:   model.StatusFilterAll,
		PriorityFilter: model.PriorityFilterAll,
	}
}
