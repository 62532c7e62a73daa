package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/firstapi/todo-tui/internal/api"
)

func strPtr(s string) *string { return &s }

func TestRenderEmpty(t *testing.T) {
	for _, in := range [][]api.Task{nil, {}} {
		v := Render(in)
		if !v.Empty {
			t.Fatal("expected empty-state view")
		}
		if v.EmptyMessage != EmptyMessage {
			t.Errorf("expected %q, got %q", EmptyMessage, v.EmptyMessage)
		}
		if v.Entries != nil {
			t.Errorf("expected no entries, got %v", v.Entries)
		}
	}
}

func TestRenderEntries(t *testing.T) {
	v := Render([]api.Task{
		{ID: "2", Title: "Second", Priority: api.PriorityHigh, Completed: true},
		{ID: "1", Title: "First", Description: strPtr("details"), Priority: api.PriorityLow},
		{ID: "3", Title: "Third", Description: strPtr("")},
	})

	if v.Empty {
		t.Fatal("expected non-empty view")
	}
	if len(v.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(v.Entries))
	}
	if v.Entries[0].ID != "2" || v.Entries[1].ID != "1" {
		t.Error("expected input order preserved")
	}
	if !v.Entries[0].Completed || v.Entries[0].Priority != api.PriorityHigh {
		t.Errorf("unexpected first entry %+v", v.Entries[0])
	}
	if !v.Entries[1].HasDescription || v.Entries[1].Description != "details" {
		t.Errorf("expected description, got %+v", v.Entries[1])
	}
	if v.Entries[2].HasDescription {
		t.Error("expected empty description to render as absent")
	}
	if !reflect.DeepEqual(v.Entries[0].Actions, []Action{ActionToggle, ActionDelete}) {
		t.Errorf("unexpected actions %v", v.Entries[0].Actions)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	tasks := []api.Task{{ID: "1", Title: "a"}, {ID: "2", Title: "b", Description: strPtr("c")}}
	if !reflect.DeepEqual(Render(tasks), Render(tasks)) {
		t.Error("expected identical views for identical input")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Buy milk", "Buy milk"},
		{"markup is literal", "<b>bold</b> & [link](x)", "<b>bold</b> & [link](x)"},
		{"color escape", "\x1b[31mred\x1b[0m", "red"},
		{"newlines", "line1\nline2\r\tend", "line1 line2  end"},
		{"bidi override", "abc\u202edef", "abcdef"},
		{"bidi isolate", "\u2066x\u2069 y", "x y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderSanitizesUserText(t *testing.T) {
	v := Render([]api.Task{{ID: "1", Title: "\x1b[2Jwipe", Description: strPtr("a\nb")}})
	e := v.Entries[0]
	if strings.ContainsRune(e.Title, '\x1b') {
		t.Errorf("escape sequence survived: %q", e.Title)
	}
	if strings.Contains(e.Description, "\n") {
		t.Errorf("newline survived: %q", e.Description)
	}
}

func TestTable(t *testing.T) {
	if got := Table(Render(nil)); got != EmptyMessage {
		t.Errorf("expected empty message, got %q", got)
	}

	out := Table(Render([]api.Task{{ID: "42", Title: "Buy milk", Priority: api.PriorityLow, Completed: true}}))
	for _, want := range []string{"42", "Buy milk", "low", "[x]", "Title"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table output:\n%s", want, out)
		}
	}
}
