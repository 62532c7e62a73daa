// Package render turns a projected task sequence into a display model.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/firstapi/todo-tui/internal/api"
)

// EmptyMessage is shown when nothing matches the current filter and search.
const EmptyMessage = "No todos found"

// Action is something the user can do to an entry.
type Action string

const (
	ActionToggle Action = "toggle"
	ActionDelete Action = "delete"
)

// Entry is the display form of one task. Text fields are sanitized.
type Entry struct {
	ID             string
	Title          string
	Description    string
	HasDescription bool
	Priority       api.Priority
	Completed      bool
	Actions        []Action
}

// View is the display model for a task list. Empty is distinct from a list
// with zero entries so callers can show positive feedback.
type View struct {
	Empty        bool
	EmptyMessage string
	Entries      []Entry
}

// Render builds the view for tasks. It is a pure function of its input.
func Render(tasks []api.Task) View {
	if len(tasks) == 0 {
		return View{Empty: true, EmptyMessage: EmptyMessage}
	}

	entries := make([]Entry, 0, len(tasks))
	for _, t := range tasks {
		e := Entry{
			ID:        Sanitize(t.ID),
			Title:     Sanitize(t.Title),
			Priority:  api.Priority(Sanitize(string(t.Priority))),
			Completed: t.Completed,
			Actions:   []Action{ActionToggle, ActionDelete},
		}
		// An empty description renders like an absent one.
		if d := Sanitize(t.DescriptionText()); d != "" {
			e.Description = d
			e.HasDescription = true
		}
		entries = append(entries, e)
	}
	return View{Entries: entries}
}

// Sanitize reduces untrusted text to literal printable text: terminal escape
// sequences and bidi marks are removed and control characters become
// spaces, so the text cannot restyle the screen or break the row layout.
func Sanitize(s string) string {
	// Flatten line breaks and tabs first so Strip sees only escape sequences.
	s = strings.Map(func(r rune) rune {
		if r != '\x1b' && unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r):
			return ' '
		case isBidiControl(r):
			return -1
		}
		return r
	}, s)
}

// isBidiControl matches the embedding, override, and isolate marks that can
// visually reorder neighbouring text.
func isBidiControl(r rune) bool {
	return (r >= '\u202a' && r <= '\u202e') || (r >= '\u2066' && r <= '\u2069')
}
