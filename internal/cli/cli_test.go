package cli

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/testutil"
)

// isolate points config and log paths at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("TODO_API_URL", "")
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func seed() []api.Task {
	desc := "2 litres"
	return []api.Task{
		{ID: "1", Title: "Buy milk", Description: &desc, Priority: api.PriorityHigh},
		{ID: "2", Title: "Walk dog", Priority: api.PriorityLow, Completed: true},
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), Version) {
		t.Errorf("expected version in output, got %q", out)
	}
}

func TestList(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t, seed()...)

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "all",
			args: nil,
			want: []string{"Buy milk", "2 litres", "Walk dog", "[x]"},
		},
		{
			name:    "pending",
			args:    []string{"--filter", "pending"},
			want:    []string{"Buy milk"},
			notWant: []string{"Walk dog"},
		},
		{
			name:    "search is case-insensitive",
			args:    []string{"--search", "DOG"},
			want:    []string{"Walk dog"},
			notWant: []string{"Buy milk"},
		},
		{
			name: "nothing matches",
			args: []string{"--filter", "completed", "--search", "milk"},
			want: []string{"No todos found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--base-url", backend.URL(), "list"}, tt.args...)
			out, _, err := runCLI(t, "", args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(string(out), w) {
					t.Errorf("expected %q in output:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(string(out), w) {
					t.Errorf("did not expect %q in output:\n%s", w, out)
				}
			}
		})
	}
}

func TestListRejectsUnknownFilter(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t, seed()...)

	_, _, err := runCLI(t, "", "--base-url", backend.URL(), "list", "--filter", "urgent")
	if err == nil {
		t.Fatal("expected error for unknown filter")
	}
	if backend.TotalCalls() != 0 {
		t.Errorf("expected no requests, got %d", backend.TotalCalls())
	}
}

func TestListReportsServerError(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t)
	backend.Fail("GET /todos", http.StatusInternalServerError)

	_, _, err := runCLI(t, "", "--base-url", backend.URL(), "list")
	if _, ok := api.AsRequestError(err); !ok {
		t.Fatalf("expected RequestError, got %v", err)
	}
}

func TestAdd(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t, seed()...)

	out, _, err := runCLI(t, "", "--base-url", backend.URL(),
		"add", "  File taxes ", "--priority", "HIGH", "--description", "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "Todo added") || !strings.Contains(string(out), "Created 3") {
		t.Errorf("unexpected output %q", out)
	}

	tasks := backend.Tasks()
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks on server, got %d", len(tasks))
	}
	got := tasks[2]
	if got.Title != "File taxes" || got.Priority != api.PriorityHigh || got.Description != nil {
		t.Errorf("unexpected created task %+v", got)
	}
}

func TestAddUsesConfiguredDefaultPriority(t *testing.T) {
	dir := isolate(t)
	backend := testutil.NewBackend(t)

	path := filepath.Join(dir, "todo.yaml")
	body := "api:\n  base_url: " + backend.URL() + "\nui:\n  default_priority: low\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, "", "--config", path, "add", "Stretch"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tasks := backend.Tasks()
	if len(tasks) != 1 || tasks[0].Priority != api.PriorityLow {
		t.Errorf("expected low priority task, got %+v", tasks)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t)

	_, _, err := runCLI(t, "", "--base-url", backend.URL(), "add", "   ")
	if err == nil || !strings.Contains(err.Error(), "Please enter a title") {
		t.Fatalf("expected title error, got %v", err)
	}
	if backend.TotalCalls() != 0 {
		t.Errorf("expected no requests, got %d", backend.TotalCalls())
	}
}

func TestToggle(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t, seed()...)

	out, _, err := runCLI(t, "", "--base-url", backend.URL(), "toggle", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "Todo updated") {
		t.Errorf("unexpected output %q", out)
	}
	if !backend.Tasks()[0].Completed {
		t.Error("expected task 1 to be completed on the server")
	}
}

func TestToggleUnknownID(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t, seed()...)

	_, _, err := runCLI(t, "", "--base-url", backend.URL(), "toggle", "99")
	reqErr, ok := api.AsRequestError(err)
	if !ok || !reqErr.IsNotFound() {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		args        []string
		wantDeleted bool
		wantPrompt  bool
	}{
		{name: "declined", stdin: "n\n", wantPrompt: true},
		{name: "no answer", stdin: "", wantPrompt: true},
		{name: "confirmed", stdin: "y\n", wantPrompt: true, wantDeleted: true},
		{name: "yes flag", args: []string{"--yes"}, wantDeleted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			backend := testutil.NewBackend(t, seed()...)

			args := append([]string{"--base-url", backend.URL(), "rm", "1"}, tt.args...)
			out, _, err := runCLI(t, tt.stdin, args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			prompted := strings.Contains(string(out), `Delete "Buy milk"? [y/N]`)
			if prompted != tt.wantPrompt {
				t.Errorf("prompted = %v, want %v; output:\n%s", prompted, tt.wantPrompt, out)
			}

			deletes := backend.Calls("DELETE /todos/1")
			if tt.wantDeleted && deletes != 1 {
				t.Errorf("expected one delete, got %d", deletes)
			}
			if !tt.wantDeleted && deletes != 0 {
				t.Errorf("expected no delete, got %d", deletes)
			}
			if got := len(backend.Tasks()); tt.wantDeleted && got != 1 {
				t.Errorf("expected 1 task left, got %d", got)
			}
		})
	}
}

func TestSearchAsksServer(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t, seed()...)

	out, _, err := runCLI(t, "", "--base-url", backend.URL(), "search", "milk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "Buy milk") || strings.Contains(string(out), "Walk dog") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if backend.Calls("GET /todos/search") != 1 {
		t.Errorf("expected one search request, got %d", backend.Calls("GET /todos/search"))
	}
	if backend.Calls("GET /todos") != 0 {
		t.Error("expected no list request")
	}
}

func TestStats(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t, seed()...)

	out, _, err := runCLI(t, "", "--base-url", backend.URL(), "stats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Total", "Completed", "Pending", "High"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestHealth(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t)

	out, _, err := runCLI(t, "", "--base-url", backend.URL(), "health")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "online") || !strings.Contains(string(out), "Database: connected") {
		t.Errorf("unexpected output:\n%s", out)
	}

	backend.Fail("GET /health", http.StatusServiceUnavailable)
	if _, _, err := runCLI(t, "", "--base-url", backend.URL(), "health"); err == nil {
		t.Error("expected error when the server is down")
	}
}

func TestInit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cfg", "config.yaml")

	if _, _, err := runCLI(t, "", "--config", path, "init"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	if _, _, err := runCLI(t, "", "--config", path, "init"); err == nil {
		t.Error("expected error when the file exists")
	}
	if _, _, err := runCLI(t, "", "--config", path, "init", "--force"); err != nil {
		t.Errorf("expected --force to overwrite: %v", err)
	}
}

func TestBaseURLPrecedence(t *testing.T) {
	dir := isolate(t)
	backend := testutil.NewBackend(t, seed()...)

	path := filepath.Join(dir, "todo.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: http://127.0.0.1:1/file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	// Environment beats the file.
	t.Setenv("TODO_API_URL", backend.URL())
	if _, _, err := runCLI(t, "", "--config", path, "list"); err != nil {
		t.Fatalf("expected env base URL to be used: %v", err)
	}

	// The flag beats the environment.
	t.Setenv("TODO_API_URL", "http://127.0.0.1:1/env")
	if _, _, err := runCLI(t, "", "--config", path, "--base-url", backend.URL(), "list"); err != nil {
		t.Fatalf("expected flag base URL to be used: %v", err)
	}

	if backend.Calls("GET /todos") != 2 {
		t.Errorf("expected 2 list requests, got %d", backend.Calls("GET /todos"))
	}
}

func TestInvalidConfigIsRejected(t *testing.T) {
	isolate(t)
	backend := testutil.NewBackend(t)

	_, _, err := runCLI(t, "", "--base-url", backend.URL(), "--view", "calendar", "list")
	if err == nil || !strings.Contains(err.Error(), "ui.default_view") {
		t.Fatalf("expected view error, got %v", err)
	}
	if backend.TotalCalls() != 0 {
		t.Errorf("expected no requests, got %d", backend.TotalCalls())
	}
}

func TestLogsGoToStateDir(t *testing.T) {
	dir := isolate(t)
	backend := testutil.NewBackend(t, seed()...)

	if _, _, err := runCLI(t, "", "--base-url", backend.URL(), "list"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "state", "todo-tui", "todo-tui.log")); err != nil {
		t.Errorf("expected log file: %v", err)
	}
}
