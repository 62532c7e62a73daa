package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/firstapi/todo-tui/internal/api"
)

func sample() []api.Task {
	return []api.Task{
		{ID: "3", Title: "c"},
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b", Completed: true},
	}
}

func ids(tasks []api.Task) string {
	s := ""
	for _, t := range tasks {
		s += t.ID
	}
	return s
}

func TestReplaceAllPreservesOrder(t *testing.T) {
	s := New()
	s.ReplaceAll(sample())

	if got := ids(s.Snapshot()); got != "312" {
		t.Errorf("expected order 312, got %s", got)
	}

	s.ReplaceAll([]api.Task{{ID: "9"}})
	if got := ids(s.Snapshot()); got != "9" {
		t.Errorf("expected wholesale replacement, got %s", got)
	}
}

func TestReplaceAllDropsDuplicateIDs(t *testing.T) {
	s := New()
	s.ReplaceAll([]api.Task{{ID: "1", Title: "first"}, {ID: "1", Title: "second"}, {ID: "2"}})

	if s.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", s.Len())
	}
	task, _ := s.FindByID("1")
	if task.Title != "first" {
		t.Errorf("expected first occurrence kept, got %q", task.Title)
	}
}

func TestFindByID(t *testing.T) {
	s := New()
	s.ReplaceAll(sample())

	if task, ok := s.FindByID("2"); !ok || task.Title != "b" {
		t.Errorf("expected task 2, got %+v %v", task, ok)
	}
	if _, ok := s.FindByID("missing"); ok {
		t.Error("expected missing id to be absent")
	}
}

func TestApplyToggle(t *testing.T) {
	s := New()
	s.ReplaceAll([]api.Task{{ID: "42", Completed: false}})
	before := s.Version()

	if !s.ApplyToggle("42") {
		t.Fatal("expected toggle to find task")
	}
	task, _ := s.FindByID("42")
	if !task.Completed {
		t.Error("expected task to be completed")
	}
	if s.Version() == before {
		t.Error("expected version to change")
	}
}

func TestApplyToggleAbsentIsNoop(t *testing.T) {
	s := New()
	s.ReplaceAll(sample())
	before := s.Snapshot()
	version := s.Version()

	if s.ApplyToggle("gone") {
		t.Error("expected absent id to report false")
	}

	after := s.Snapshot()
	if len(after) != len(before) {
		t.Fatalf("store changed size")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("task %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if s.Version() != version {
		t.Error("expected version unchanged")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.ReplaceAll(sample())

	snap := s.Snapshot()
	snap[0].Title = "mutated"

	task, _ := s.FindByID("3")
	if task.Title != "c" {
		t.Error("snapshot mutation leaked into store")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.ReplaceAll([]api.Task{{ID: fmt.Sprint(i)}})
		}(i)
		go func(i int) {
			defer wg.Done()
			s.ApplyToggle(fmt.Sprint(i))
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()

	if s.Len() != 1 {
		t.Errorf("expected last replacement to hold one task, got %d", s.Len())
	}
}
