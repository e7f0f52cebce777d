package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agalitsyn/todo-tui/internal/model"
)

func newTask(id, title string) model.Task {
	return model.NewTask(id, title, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
}

func TestTaskSet_UpsertGetAll(t *testing.T) {
	s := NewTaskSet()

	s = s.Upsert(newTask("t1", "pick up eggs"))
	s = s.Upsert(newTask("t2", "water plants"))

	got, ok := s.Get("t1")
	require.True(t, ok)
	assert.Equal(t, "pick up eggs", got.Title)

	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.All(), 2)

	// Upsert with an existing ID overwrites, it does not grow the set.
	patched := newTask("t1", "pick up eggs and milk")
	s = s.Upsert(patched)
	assert.Equal(t, 2, s.Len())
	got, _ = s.Get("t1")
	assert.Equal(t, "pick up eggs and milk", got.Title)
}

func TestTaskSet_RemoveReportsExistence(t *testing.T) {
	s := NewTaskSet()
	s = s.Upsert(newTask("t1", "a"))

	s, existed := s.Remove("t1")
	assert.True(t, existed)
	assert.Equal(t, 0, s.Len())

	s, existed = s.Remove("t1")
	assert.False(t, existed)
	assert.Equal(t, 0, s.Len())

	s, existed = s.Remove("never-there")
	assert.False(t, existed)
	assert.Equal(t, 0, s.Len())
}

func TestTaskSet_CopyOnWrite(t *testing.T) {
	base := NewTaskSet()
	base = base.Upsert(newTask("t1", "a"))

	grown := base.Upsert(newTask("t2", "b"))
	shrunk, _ := base.Remove("t1")

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, grown.Len())
	assert.Equal(t, 0, shrunk.Len())

	_, ok := base.Get("t2")
	assert.False(t, ok)
}

func TestTaskSet_IndexStaysConsistent(t *testing.T) {
	s := NewTaskSet()
	for _, id := range []string{"t1", "t2", "t3", "t4"} {
		s = s.Upsert(newTask(id, "task "+id))
	}

	// Bulk removal through the same path as single deletes must keep the
	// enumeration and the ID lookup in agreement.
	for _, tk := range s.All() {
		if tk.ID == "t2" || tk.ID == "t4" {
			s, _ = s.Remove(tk.ID)
		}
	}

	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.All(), 2)
	for _, tk := range s.All() {
		got, ok := s.Get(tk.ID)
		require.True(t, ok)
		assert.Equal(t, tk, got)
	}
	_, ok := s.Get("t2")
	assert.False(t, ok)
}

func TestTaskSet_ZeroValueUsable(t *testing.T) {
	var s TaskSet

	_, ok := s.Get("x")
	assert.False(t, ok)
	assert.Empty(t, s.All())

	s = s.Upsert(newTask("t1", "a"))
	assert.Equal(t, 1, s.Len())
}
