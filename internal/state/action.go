package state

import (
	"time"

	"github.com/agalitsyn/todo-tui/internal/model"
)

// Action is the closed set of state transitions. New kinds are added by
// declaring a new variant here, never by dispatching on raw strings.
type Action interface {
	isAction()
}

// AddTask creates a new task. Title must trim to non-empty, otherwise the
// action is ignored.
type AddTask struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     time.Time
	Tags        []string
}

// UpdateTask overwrites the patched fields of an existing task.
type UpdateTask struct {
	ID    string
	Patch model.TaskPatch
}

// DeleteTask removes a task if present.
type DeleteTask struct {
	ID string
}

// ToggleTask flips the completion flag of an existing task.
type ToggleTask struct {
	ID string
}

// SetStatusFilter replaces the status filter.
type SetStatusFilter struct {
	Filter model.StatusFilter
}

// SetSearch replaces the search text verbatim, no trimming.
type SetSearch struct {
	Query string
}

// SetPriorityFilter replaces the priority filter.
type SetPriorityFilter struct {
	Filter model.PriorityFilter
}

// ClearCompleted removes every completed task.
type ClearCompleted struct{}

func (AddTask) isAction()           {}
func (UpdateTask) isAction()        {}
func (DeleteTask) isAction()        {}
func (ToggleTask) isAction()        {}
func (SetStatusFilter) isAction()   {}
func (SetSearch) isAction()         {}
func (SetPriorityFilter) isAction() {}
func (ClearCompleted) isAction()    {}
