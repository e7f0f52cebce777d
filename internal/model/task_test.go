package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	task := NewTask("t1", "  buy milk  ", createdAt)

	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "buy milk", task.Title)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, createdAt, task.CreatedAt)
	assert.False(t, task.Completed)
	assert.False(t, task.HasDueDate())
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 1, PriorityLow.Rank())
	assert.Equal(t, 0, Priority("bogus").Rank())
}

func TestParsePriority(t *testing.T) {
	p, ok := ParsePriority(" HIGH ")
	assert.True(t, ok)
	assert.Equal(t, PriorityHigh, p)

	_, ok = ParsePriority("urgent")
	assert.False(t, ok)
}

func TestTaskPatchApply(t *testing.T) {
	base := NewTask("t1", "buy milk", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	base.Description = "2 liters"
	base.Completed = true

	title := "buy oat milk"
	priority := PriorityHigh
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tags := []string{"groceries"}

	got := TaskPatch{Title: &title, Priority: &priority, DueDate: &due, Tags: &tags}.Apply(base)

	assert.Equal(t, "buy oat milk", got.Title)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.Equal(t, due, got.DueDate)
	assert.Equal(t, []string{"groceries"}, got.Tags)

	// Untouched fields survive, including the immutable ones.
	assert.Equal(t, base.ID, got.ID)
	assert.Equal(t, base.CreatedAt, got.CreatedAt)
	assert.Equal(t, base.Description, got.Description)
	assert.True(t, got.Completed)
}

func TestTaskPatchApply_EmptyTitleIgnored(t *testing.T) {
	base := NewTask("t1", "buy milk", time.Now())

	empty := "   "
	got := TaskPatch{Title: &empty}.Apply(base)
	assert.Equal(t, "buy milk", got.Title)
}

func TestTaskPatchApply_TagsAreCopied(t *testing.T) {
	base := NewTask("t1", "a", time.Now())

	tags := []string{"x", "y"}
	got := TaskPatch{Tags: &tags}.Apply(base)
	tags[0] = "mutated"

	assert.Equal(t, []string{"x", "y"}, got.Tags)
}

func TestStatusFilterMatches(t *testing.T) {
	assert.True(t, StatusFilterAll.Matches(true))
	assert.True(t, StatusFilterAll.Matches(false))
	assert.True(t, StatusFilterActive.Matches(false))
	assert.False(t, StatusFilterActive.Matches(true))
	assert.True(t, StatusFilterCompleted.Matches(true))
	assert.False(t, StatusFilterCompleted.Matches(false))
}

func TestPriorityFilterMatches(t *testing.T) {
	assert.True(t, PriorityFilterAll.Matches(PriorityLow))
	assert.True(t, PriorityFilterHigh.Matches(PriorityHigh))
	assert.False(t, PriorityFilterHigh.Matches(PriorityLow))
}
