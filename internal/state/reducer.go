package state

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agalitsyn/todo-tui/internal/model"
)

// Reducer applies actions to states. It is a pure function of its inputs:
// the only non-determinism, ID and timestamp generation, is injected so
// tests can supply fixed values.
type Reducer struct {
	NewID func() string
	Now   func() time.Time
}

func NewReducer() *Reducer {
	return &Reducer{
		NewID: uuid.NewString,
		Now:   time.Now,
	}
}

// Apply returns the state after the action. It is total: an action that does
// not apply (absent ID, empty title, unknown kind) returns the state
// unchanged, never an error.
func (r *Reducer) Apply(s State, a Action) State {
	switch a := a.(type) {
	case AddTask:
		return r.addTask(s, a)
	case UpdateTask:
		return r.updateTask(s, a)
	case DeleteTask:
		s.Tasks, _ = s.Tasks.Remove(a.ID)
		return s
	case ToggleTask:
		return r.toggleTask(s, a)
	case SetStatusFilter:
		if a.Filter.IsValid() {
			s.StatusFilter = a.Filter
		}
		return s
	case SetSearch:
		s.Search = a.Query
		return s
	case SetPriorityFilter:
		if a.Filter.IsValid() {
			s.PriorityFilter = a.Filter
		}
		return s
	case ClearCompleted:
		return r.clearCompleted(s)
	default:
		return s
	}
}

func (r *Reducer) addTask(s State, a AddTask) State {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		return s
	}

	t := model.NewTask(r.NewID(), title, r.Now())
	t.Description = a.Description
	if a.Priority.IsValid() {
		t.Priority = a.Priority
	}
	t.DueDate = a.DueDate
	t.Tags = append([]string(nil), a.Tags...)

	s.Tasks = s.Tasks.Upsert(t)
	return s
}

func (r *Reducer) updateTask(s State, a UpdateTask) State {
	t, ok := s.Tasks.Get(a.ID)
	if !ok {
		return s
	}
	s.Tasks = s.Tasks.Upsert(a.Patch.Apply(t))
	return s
}

func (r *Reducer) toggleTask(s State, a ToggleTask) State {
	t, ok := s.Tasks.Get(a.ID)
	if !ok {
		return s
	}
	t.Completed = !t.Completed
	s.Tasks = s.Tasks.Upsert(t)
	return s
}

func (r *Reducer) clearCompleted(s State) State {
	for _, t := range s.Tasks.All() {
		if t.Completed {
			s.Tasks, _ = s.Tasks.Remove(t.ID)
		}
	}
	return s
}
