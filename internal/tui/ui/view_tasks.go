// Package ui renders the TUI views from plain state.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/projection"
	"github.com/firstapi/todo-tui/internal/render"
	"github.com/firstapi/todo-tui/internal/tui/state"
	"github.com/firstapi/todo-tui/internal/tui/styles"
)

// RenderTabs renders a tab bar with the active tab highlighted.
func RenderTabs(labels []string, active int) string {
	tabs := make([]string, 0, len(labels))
	for i, l := range labels {
		if i == active {
			tabs = append(tabs, styles.TabActive.Render(l))
		} else {
			tabs = append(tabs, styles.Tab.Render(l))
		}
	}
	return styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// RenderFilterTabs renders the filter categories, numbered by their key.
func RenderFilterTabs(active projection.Filter) string {
	labels := make([]string, 0, len(projection.Filters))
	current := 0
	for i, f := range projection.Filters {
		labels = append(labels, fmt.Sprintf("%d %s", i+1, f.Label()))
		if f == active {
			current = i
		}
	}
	return RenderTabs(labels, current)
}

// RenderForm renders the add-todo form.
func RenderForm(f *state.TaskForm) string {
	field := func(label, body string, focused bool) string {
		style := styles.Input
		if focused {
			style = styles.InputFocused
		}
		return styles.InputLabel.Render(label) + "\n" + style.Render(body)
	}

	focus := -1
	if f.Focused() {
		focus = f.FocusIndex
	}

	priorities := make([]string, 0, len(api.Priorities))
	for _, p := range api.Priorities {
		label := string(p)
		if p == f.Priority {
			priorities = append(priorities, styles.PriorityStyle(p).Render("("+label+")"))
		} else {
			priorities = append(priorities, styles.HelpDesc.Render(" "+label+" "))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		field("Title", f.Title.View(), focus == state.FormFieldTitle),
		field("Description", f.Description.View(), focus == state.FormFieldDescription),
		field("Priority", strings.Join(priorities, " "), focus == state.FormFieldPriority),
	)
}

// RenderTaskList renders the entries and returns the content together with
// the line on which the cursor's entry starts.
func RenderTaskList(v render.View, cursor, width int) (string, int) {
	if v.Empty {
		return styles.EmptyState.Render(v.EmptyMessage), 0
	}

	var b strings.Builder
	cursorLine, line := 0, 0
	for i, e := range v.Entries {
		if i == cursor {
			cursorLine = line
		}
		b.WriteString(renderEntry(e, i == cursor, width))
		b.WriteString("\n")
		line++
		if e.HasDescription {
			b.WriteString(styles.TaskListDescription.Render(fitCell(e.Description, width-8)))
			b.WriteString("\n")
			line++
		}
	}
	return strings.TrimSuffix(b.String(), "\n"), cursorLine
}

// fitCell squeezes sanitized task text onto one row of the given display
// width. Sanitizing turns line breaks into spaces, so runs of blanks are
// collapsed before measuring; wide runes count as two columns.
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(strings.Join(strings.Fields(s), " "), width, "…")
}

func renderEntry(e render.Entry, selected bool, width int) string {
	checkbox := styles.CheckboxUnchecked
	if e.Completed {
		checkbox = styles.CheckboxChecked
	}

	badge := styles.PriorityStyle(e.Priority).Render(string(e.Priority))
	// 2 for padding, 4 for the checkbox, 1 before the badge.
	titleWidth := width - 7 - lipgloss.Width(badge)
	title := fitCell(e.Title, titleWidth)
	if e.Completed {
		title = styles.TaskCompleted.Render(title)
	}

	row := checkbox + " " + title + " " + badge
	if selected {
		return styles.TaskSelected.Render(row)
	}
	return styles.TaskItem.Render(row)
}

// RenderStatsBar renders the aggregate counts, or a placeholder before the
// first successful fetch.
func RenderStatsBar(s api.Stats, ok bool) string {
	if !ok {
		return styles.HelpDesc.Render("Stats unavailable")
	}
	return fmt.Sprintf("%s %d  %s %d  %s %d  │  %s %d  %s %d  %s %d",
		styles.CardLabel.Render("Total"), s.Total,
		styles.CardLabel.Render("Done"), s.Completed,
		styles.CardLabel.Render("Pending"), s.Pending,
		styles.TaskPriorityHigh.Render("high"), s.ByPriority.High,
		styles.TaskPriorityMedium.Render("medium"), s.ByPriority.Medium,
		styles.TaskPriorityLow.Render("low"), s.ByPriority.Low,
	)
}

// RenderConfirm renders the delete confirmation dialog.
func RenderConfirm(prompt string) string {
	body := styles.DialogTitle.Render("Delete todo") + "\n" +
		prompt + "\n\n" +
		styles.HelpKey.Render("y") + styles.HelpDesc.Render(" delete  ") +
		styles.HelpKey.Render("n") + styles.HelpDesc.Render(" cancel")
	return styles.Dialog.Render(body)
}
