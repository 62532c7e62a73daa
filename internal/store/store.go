// Package store holds the local snapshot of tasks that the views render.
package store

import (
	"sync"

	"github.com/firstapi/todo-tui/internal/api"
)

// Store is an ordered, id-unique collection of tasks. Each mutation is
// all-or-nothing: a wholesale replacement or a single field flip.
type Store struct {
	mu      sync.RWMutex
	tasks   []api.Task
	version uint64
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// ReplaceAll discards the prior contents and stores tasks in the given order.
// Later duplicates of an id are dropped so ids stay unique.
func (s *Store) ReplaceAll(tasks []api.Task) {
	next := make([]api.Task, 0, len(tasks))
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		next = append(next, t)
	}

	s.mu.Lock()
	s.tasks = next
	s.version++
	s.mu.Unlock()
}

// FindByID returns the task with the given id.
func (s *Store) FindByID(id string) (api.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return api.Task{}, false
}

// ApplyToggle flips Completed on the matching task. It reports whether a task
// was found; an absent id is not an error (a reload may have removed it).
func (s *Store) ApplyToggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.version++
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the tasks in store order.
func (s *Store) Snapshot() []api.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]api.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Version increases on every mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
