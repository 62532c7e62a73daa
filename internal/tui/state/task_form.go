// Package state holds TUI state that is independent of rendering.
package state

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/tasksync"
)

// FormField constants for focus management
const (
	FormFieldTitle = iota
	FormFieldDescription
	FormFieldPriority
)

const formFieldCount = 3

// TaskForm is the add-todo form.
type TaskForm struct {
	Title       textinput.Model
	Description textinput.Model
	Priority    api.Priority
	FocusIndex  int

	defaultPriority api.Priority
	focused         bool
}

// NewTaskForm creates an empty, unfocused form.
func NewTaskForm(defaultPriority api.Priority) *TaskForm {
	if defaultPriority == "" {
		defaultPriority = api.DefaultPriority
	}

	title := textinput.New()
	title.Placeholder = "What needs to be done?"
	title.CharLimit = 200
	title.Width = 50

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = 500
	desc.Width = 50

	return &TaskForm{
		Title:           title,
		Description:     desc,
		Priority:        defaultPriority,
		defaultPriority: defaultPriority,
	}
}

// Focus gives the form keyboard focus at the current field.
func (f *TaskForm) Focus() tea.Cmd {
	f.focused = true
	return f.updateFocus()
}

// Blur removes keyboard focus from every field.
func (f *TaskForm) Blur() {
	f.focused = false
	f.Title.Blur()
	f.Description.Blur()
}

// Focused reports whether the form has keyboard focus.
func (f *TaskForm) Focused() bool {
	return f.focused
}

// NextField moves focus to the next field. It reports false when focus
// wrapped past the last field.
func (f *TaskForm) NextField() bool {
	f.FocusIndex++
	wrapped := f.FocusIndex >= formFieldCount
	if wrapped {
		f.FocusIndex = 0
	}
	f.updateFocus()
	return !wrapped
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.FocusIndex--
	if f.FocusIndex < 0 {
		f.FocusIndex = formFieldCount - 1
	}
	f.updateFocus()
}

func (f *TaskForm) updateFocus() tea.Cmd {
	f.Title.Blur()
	f.Description.Blur()
	if !f.focused {
		return nil
	}
	switch f.FocusIndex {
	case FormFieldTitle:
		return f.Title.Focus()
	case FormFieldDescription:
		return f.Description.Focus()
	}
	return nil
}

// Update routes input to the focused field. Field navigation and submit are
// handled by the caller.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch f.FocusIndex {
	case FormFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
	case FormFieldDescription:
		f.Description, cmd = f.Description.Update(msg)
	case FormFieldPriority:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "l", "right", " ":
				f.Priority = f.Priority.Next()
			case "h", "left":
				f.Priority = f.Priority.Next().Next()
			}
		}
	}

	return cmd
}

// Draft returns the form contents as entered. Validation happens when the
// draft is submitted.
func (f *TaskForm) Draft() tasksync.Draft {
	return tasksync.Draft{
		Title:       f.Title.Value(),
		Description: f.Description.Value(),
		Priority:    f.Priority,
	}
}

// Reset clears the inputs after a successful add and returns focus to the
// title.
func (f *TaskForm) Reset() {
	f.Title.Reset()
	f.Description.Reset()
	f.Priority = f.defaultPriority
	f.FocusIndex = FormFieldTitle
	f.updateFocus()
}
