// Package projection computes the filtered and searched view of the tasks.
package projection

import (
	"fmt"
	"strings"

	"github.com/firstapi/todo-tui/internal/api"
)

// Filter selects a category of tasks.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterCompleted    Filter = "completed"
	FilterPending      Filter = "pending"
	FilterHighPriority Filter = "high-priority"
)

// Filters lists the categories in display order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterPending, FilterHighPriority}

// ParseFilter parses a filter name. "high" is accepted for high-priority.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "pending", "open":
		return FilterPending, nil
	case "high", "high-priority":
		return FilterHighPriority, nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Label is the human-readable name of the filter.
func (f Filter) Label() string {
	switch f {
	case FilterCompleted:
		return "Completed"
	case FilterPending:
		return "Pending"
	case FilterHighPriority:
		return "High Priority"
	default:
		return "All"
	}
}

func (f Filter) match(t api.Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	case FilterHighPriority:
		return t.Priority == api.PriorityHigh
	default:
		return true
	}
}

// Project returns the tasks matching filter, then narrowed by query, in the
// input order. The query matches title or description case-insensitively;
// a blank query matches everything. The input is never modified.
func Project(tasks []api.Task, filter Filter, query string) []api.Task {
	needle := strings.ToLower(strings.TrimSpace(query))

	out := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		if !filter.match(t) {
			continue
		}
		if needle != "" && !matchesQuery(t, needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesQuery(t api.Task, needle string) bool {
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if t.Description == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*t.Description), needle)
}
