// Package testutil provides an in-memory todo backend for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/firstapi/todo-tui/internal/api"
)

// wireTask mirrors the backend's JSON, which keys ids as "_id".
type wireTask struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Priority    api.Priority `json:"priority"`
	Completed   bool         `json:"completed"`
}

func toWire(t api.Task) wireTask {
	return wireTask{ID: t.ID, Title: t.Title, Description: t.Description, Priority: t.Priority, Completed: t.Completed}
}

func fromWire(w wireTask) api.Task {
	return api.Task{ID: w.ID, Title: w.Title, Description: w.Description, Priority: w.Priority, Completed: w.Completed}
}

// Backend is a fake todo API served over httptest. Routes are mounted under
// /api like the real backend.
type Backend struct {
	server *httptest.Server

	mu       sync.Mutex
	todos    []wireTask
	nextID   int
	calls    map[string]int
	failures map[string]reply
	database string
}

// NewBackend starts a fake backend seeded with tasks. It is closed when the
// test ends.
func NewBackend(t testing.TB, seed ...api.Task) *Backend {
	t.Helper()

	b := &Backend{
		calls:    map[string]int{},
		failures: map[string]reply{},
		nextID:   1,
		database: "connected",
	}
	for _, task := range seed {
		b.todos = append(b.todos, toWire(task))
		if n, err := strconv.Atoi(task.ID); err == nil && n >= b.nextID {
			b.nextID = n + 1
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", b.handleHealth)
	mux.HandleFunc("GET /api/stats", b.handleStats)
	mux.HandleFunc("GET /api/todos", b.handleList)
	mux.HandleFunc("POST /api/todos", b.handleCreate)
	mux.HandleFunc("GET /api/todos/search", b.handleSearch)
	mux.HandleFunc("PATCH /api/todos/{id}/toggle", b.handleToggle)
	mux.HandleFunc("DELETE /api/todos/{id}", b.handleDelete)

	b.server = httptest.NewServer(b.record(mux))
	t.Cleanup(b.server.Close)
	return b
}

// URL is the API base URL to hand to api.NewClient.
func (b *Backend) URL() string {
	return b.server.URL + "/api"
}

// Client returns an API client pointed at the backend.
func (b *Backend) Client() *api.Client {
	return api.NewClient(b.URL())
}

// reply is a canned response that replaces a route's handler.
type reply struct {
	status int
	body   string
}

// Fail makes every request to route (e.g. "GET /todos")
// answer with status until cleared with status 0.
func (b *Backend) Fail(route string, status int) {
	b.Reply(route, status, `{"detail":"injected failure"}`)
}

// Reply makes every request to route answer with status and a raw body
// until cleared with status 0.
func (b *Backend) Reply(route string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if status == 0 {
		delete(b.failures, route)
		return
	}
	b.failures[route] = reply{status: status, body: body}
}

// SetDatabase sets the database field reported by /health.
func (b *Backend) SetDatabase(state string) {
	b.mu.Lock()
	b.database = state
	b.mu.Unlock()
}

// Calls returns how many requests hit route, in the same form as Fail.
func (b *Backend) Calls(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[route]
}

// TotalCalls returns the number of requests received.
func (b *Backend) TotalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		n += c
	}
	return n
}

// Tasks returns the server-side tasks.
func (b *Backend) Tasks() []api.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]api.Task, 0, len(b.todos))
	for _, w := range b.todos {
		out = append(out, fromWire(w))
	}
	return out
}

// Put adds or replaces a task directly on the server, bypassing the API.
func (b *Backend) Put(task api.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.todos {
		if b.todos[i].ID == task.ID {
			b.todos[i] = toWire(task)
			return
		}
	}
	b.todos = append(b.todos, toWire(task))
}

// routeKey is the method and path without the /api prefix, for example
// "PATCH /todos/7/toggle".
func routeKey(r *http.Request) string {
	return r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := routeKey(r)

		b.mu.Lock()
		b.calls[key]++
		canned, ok := b.failures[key]
		b.mu.Unlock()

		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(canned.status)
			w.Write([]byte(canned.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (b *Backend) handleHealth(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	db := b.database
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "database": db})
}

func (b *Backend) handleStats(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var s api.Stats
	for _, t := range b.todos {
		s.Total++
		if t.Completed {
			s.Completed++
		}
		switch t.Priority {
		case api.PriorityHigh:
			s.ByPriority.High++
		case api.PriorityMedium:
			s.ByPriority.Medium++
		case api.PriorityLow:
			s.ByPriority.Low++
		}
	}
	s.Pending = s.Total - s.Completed
	writeJSON(w, http.StatusOK, s)
}

func (b *Backend) handleList(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	todos := append([]wireTask{}, b.todos...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"total": len(todos), "todos": todos})
}

func (b *Backend) handleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := strings.ToLower(r.URL.Query().Get("keyword"))

	b.mu.Lock()
	results := []wireTask{}
	for _, t := range b.todos {
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		if strings.Contains(strings.ToLower(t.Title), keyword) || strings.Contains(strings.ToLower(desc), keyword) {
			results = append(results, t)
		}
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"keyword": keyword, "count": len(results), "results": results})
}

func (b *Backend) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
		return
	}
	if req.Priority == "" {
		req.Priority = api.DefaultPriority
	}

	b.mu.Lock()
	task := wireTask{
		ID:          strconv.Itoa(b.nextID),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}
	b.nextID++
	b.todos = append(b.todos, task)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"message": "Todo created successfully", "todo": task})
}

func (b *Backend) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.todos {
		if b.todos[i].ID == id {
			b.todos[i].Completed = !b.todos[i].Completed
			writeJSON(w, http.StatusOK, map[string]any{"message": "Todo status toggled", "todo": b.todos[i]})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Todo not found"})
}

func (b *Backend) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.todos {
		if b.todos[i].ID == id {
			b.todos = append(b.todos[:i], b.todos[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted successfully"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Todo not found"})
}
