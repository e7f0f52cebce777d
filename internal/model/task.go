package model

import (
	"strings"
	"time"
)

type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	CreatedAt   time.Time
	DueDate     time.Time
	Tags        []string
}

func NewTask(id string, title string, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Title:     strings.TrimSpace(title),
		Priority:  PriorityMedium,
		CreatedAt: createdAt,
	}
}

// HasDueDate reports whether a due date was set (zero time means none).
func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the sort weight of the priority, higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// TaskPatch describes a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *time.Time
	Tags        *[]string
}

// Apply returns a copy of the task with the non-nil patch fields overwritten.
// ID, CreatedAt and Completed are never touched. A title that trims to empty
// is ignored, the stored title stays non-empty for the task's lifetime.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		if title := strings.TrimSpace(*p.Title); title != "" {
			t.Title = title
		}
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil && p.Priority.IsValid() {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), (*p.Tags)...)
	}
	return t
}
