package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders the view as a bordered table for non-interactive output.
func Table(v View) string {
	if v.Empty {
		return v.EmptyMessage
	}

	rows := make([][]string, 0, len(v.Entries))
	for _, e := range v.Entries {
		rows = append(rows, []string{
			e.ID,
			Checkbox(e.Completed),
			e.Title,
			e.Description,
			string(e.Priority),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "Done", "Title", "Description", "Priority").
		Rows(rows...)

	return t.String()
}

// Checkbox is the completion marker used by every text rendering.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
