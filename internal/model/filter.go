package model

// StatusFilter restricts the visible task set by completion.
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterActive    StatusFilter = "active"
	StatusFilterCompleted StatusFilter = "completed"
)

func (f StatusFilter) IsValid() bool {
	switch f {
	case StatusFilterAll, StatusFilterActive, StatusFilterCompleted:
		return true
	default:
		return false
	}
}

// Matches reports whether a task with the given completion flag passes the filter.
func (f StatusFilter) Matches(completed bool) bool {
	switch f {
	case StatusFilterActive:
		return !completed
	case StatusFilterCompleted:
		return completed
	default:
		return true
	}
}

// PriorityFilter restricts the visible task set by priority.
type PriorityFilter string

const (
	PriorityFilterAll    PriorityFilter = "all"
	PriorityFilterLow    PriorityFilter = "low"
	PriorityFilterMedium PriorityFilter = "medium"
	PriorityFilterHigh   PriorityFilter = "high"
)

func (f PriorityFilter) IsValid() bool {
	switch f {
	case PriorityFilterAll, PriorityFilterLow, PriorityFilterMedium, PriorityFilterHigh:
		return true
	default:
		return false
	}
}

func (f PriorityFilter) Matches(p Priority) bool {
	return f == PriorityFilterAll || Priority(f) == p
}
