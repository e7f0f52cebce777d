package state

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/agalitsyn/todo-tui/internal/model"
)

// Visible computes the view projection: the full task set narrowed by the
// status, search and priority filters (all three must pass), ordered by
// priority rank descending with newer tasks first inside a rank. The sort is
// stable, identical input always yields identically ordered output.
func Visible(s State) []model.Task {
	folder := cases.Fold()
	query := folder.String(s.Search)

	var out []model.Task
	for _, t := range s.Tasks.All() {
		if !s.StatusFilter.Matches(t.Completed) {
			continue
		}
		if !s.PriorityFilter.Matches(t.Priority) {
			continue
		}
		if query != "" && !matchesQuery(folder, t, query) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Priority.Rank(), out[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// matchesQuery does a case-insensitive substring match against title and
// description. Case folding handles letters that ToLower misses.
func matchesQuery(folder cases.Caser, t model.Task, query string) bool {
	return strings.Contains(folder.String(t.Title), query) ||
		strings.Contains(folder.String(t.Description), query)
}

// Stats are aggregate counts over the full, unfiltered task set.
type Stats struct {
	Total        int
	Completed    int
	Active       int
	HighPriority int
}

// ComputeStats derives the counters from state. HighPriority counts tasks
// that are high priority and not yet completed.
func ComputeStats(s State) Stats {
	var st Stats
	for _, t := range s.Tasks.All() {
		st.Total++
		if t.Completed {
			st.Completed++
			continue
		}
		st.Active++
		if t.Priority == model.PriorityHigh {
			st.HighPriority++
		}
	}
	return st
}
