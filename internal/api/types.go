// Package api provides a client for the todo HTTP API.
package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is used when a task is created without one.
const DefaultPriority = PriorityMedium

// Priorities lists the valid priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority parses a priority name, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	case "":
		return DefaultPriority, nil
	default:
		return "", fmt.Errorf("unknown priority %q (want low, medium or high)", s)
	}
}

// Next returns the following priority, wrapping around.
func (p Priority) Next() Priority {
	for i, q := range Priorities {
		if q == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return DefaultPriority
}

// Task represents a todo item. ID is assigned by the server.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// UnmarshalJSON accepts both "id" and the backend's Mongo-style "_id".
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	var wire struct {
		plain
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*t = Task(wire.plain)
	if t.ID == "" {
		t.ID = wire.MongoID
	}
	return nil
}

// HasDescription reports whether the task carries a description.
func (t Task) HasDescription() bool {
	return t.Description != nil
}

// DescriptionText returns the description or "" when absent.
func (t Task) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// CreateTaskRequest is the body for creating a task.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
}

// UpdateTaskRequest is the body for updating a task. Nil fields are left
// unchanged by the server.
type UpdateTaskRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
}

// ListResponse is the body returned by GET /todos.
type ListResponse struct {
	Total int    `json:"total"`
	Todos []Task `json:"todos"`
}

// SearchResponse is the body returned by GET /todos/search.
type SearchResponse struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
	Results []Task `json:"results"`
}

// taskEnvelope tolerates both a bare task and {"message", "todo"}.
type taskEnvelope struct {
	Message string
	Task    *Task
}

func (e *taskEnvelope) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Message string `json:"message"`
		Todo    *Task  `json:"todo"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	e.Message = wrapped.Message
	if wrapped.Todo != nil {
		e.Task = wrapped.Todo
		return nil
	}
	var bare Task
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	if bare.ID != "" {
		e.Task = &bare
	}
	return nil
}

// PriorityCounts is the per-priority breakdown in Stats.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Stats is the server-computed aggregate snapshot.
type Stats struct {
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Pending    int            `json:"pending"`
	ByPriority PriorityCounts `json:"by_priority"`
}

// Health is the body returned by GET /health.
type Health struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// DatabaseConnected reports whether the backend has a live database.
func (h Health) DatabaseConnected() bool {
	return h.Database == "connected"
}
