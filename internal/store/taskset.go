// Package store holds the in-memory task collection.
package store

import (
	"github.com/agalitsyn/todo-tui/internal/model"
)

// TaskSet is an immutable collection of tasks keyed by ID. Mutating methods
// return a new set and leave the receiver untouched, so older application
// states stay valid after an update.
//
// The ID index and the insertion-order list live in one place and every
// mutation updates both, single-item and bulk operations can never drift
// apart.
type TaskSet struct {
	byID  map[string]model.Task
	order []string
}

func NewTaskSet() TaskSet {
	return TaskSet{byID: make(map[string]model.Task)}
}

func (s TaskSet) clone() TaskSet {
	c := TaskSet{
		byID:  make(map[string]model.Task, len(s.byID)+1),
		order: make([]string, len(s.order), len(s.order)+1),
	}
	for id, t := range s.byID {
		c.byID[id] = t
	}
	copy(c.order, s.order)
	return c
}

// Upsert returns a set with the task inserted, or overwritten if a task with
// the same ID already exists.
func (s TaskSet) Upsert(t model.Task) TaskSet {
	c := s.clone()
	if _, ok := c.byID[t.ID]; !ok {
		c.order = append(c.order, t.ID)
	}
	c.byID[t.ID] = t
	return c
}

// Remove returns a set without the given task and reports whether a task with
// that ID existed. Removing an absent ID is a no-op, not a fault.
func (s TaskSet) Remove(id string) (TaskSet, bool) {
	if _, ok := s.byID[id]; !ok {
		return s, false
	}
	c := s.clone()
	delete(c.byID, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return c, true
}

func (s TaskSet) Get(id string) (model.Task, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// All returns every stored task in a fresh slice. The order is the insertion
// order, but callers should not rely on it: presentation ordering is imposed
// by the view projection.
func (s TaskSet) All() []model.Task {
	out := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s TaskSet) Len() int {
	return len(s.byID)
}
