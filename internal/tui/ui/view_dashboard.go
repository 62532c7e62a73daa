package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/health"
	"github.com/firstapi/todo-tui/internal/render"
	"github.com/firstapi/todo-tui/internal/tui/styles"
)

// Dashboard is everything the dashboard view shows.
type Dashboard struct {
	BaseURL string
	Health  health.Status
	Stats   api.Stats
	StatsOK bool
}

func card(label, value string) string {
	return styles.Card.Render(styles.CardLabel.Render(label) + "\n" + value)
}

// RenderDashboard renders the server status cards.
func RenderDashboard(d Dashboard) string {
	var status, database, latency, checked string

	switch {
	case !d.Health.Checked:
		status = styles.Pending.Render("Checking…")
		database, latency, checked = "-", "-", "never"
	case d.Health.Online:
		status = styles.Online.Render("● Online")
		if d.Health.DatabaseConnected {
			database = styles.Online.Render("Connected")
		} else {
			database = styles.Offline.Render(dbLabel(render.Sanitize(d.Health.Database)))
		}
		latency = styles.CardValue.Render(fmt.Sprintf("%d ms", d.Health.ResponseTime.Milliseconds()))
		checked = d.Health.LastChecked.Format("15:04:05")
	default:
		status = styles.Offline.Render("● Offline")
		database, latency = "-", "-"
		checked = d.Health.LastChecked.Format("15:04:05")
	}

	total := "-"
	if d.StatsOK {
		total = styles.CardValue.Render(strconv.Itoa(d.Stats.Total))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		card("API status", status),
		card("Database", database),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Response time", latency),
		card("Total todos", total),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Server"),
		styles.HelpDesc.Render(d.BaseURL),
		"",
		top,
		bottom,
		"",
		styles.HelpDesc.Render("Last checked: "+checked),
	)
}

func dbLabel(s string) string {
	if s == "" {
		return "Disconnected"
	}
	return s
}
