package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/firstapi/todo-tui/internal/tui/styles"
	"github.com/firstapi/todo-tui/internal/tui/ui"
)

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch {
	case a.showHelp:
		body = a.help.View()
	case a.currentView == ViewDashboard:
		stats, ok := a.stats.Snapshot()
		body = ui.RenderDashboard(ui.Dashboard{
			BaseURL: a.config.API.BaseURL,
			Health:  a.monitor.Status(),
			Stats:   stats,
			StatsOK: ok,
		})
	default:
		body = a.renderTasks()
	}

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		body,
		"",
		a.renderStatusBar(),
	))
}

func (a *App) renderHeader() string {
	title := styles.Title.Render("todo-tui")
	if a.loading > 0 {
		title += " " + a.spinner.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		ui.RenderTabs(viewNames, int(a.currentView)),
	)
}

func (a *App) renderTasks() string {
	stats, ok := a.stats.Snapshot()

	list := a.list.View()
	if a.pending != nil {
		list = ui.RenderConfirm(a.pending.Prompt())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		ui.RenderForm(a.form),
		"",
		ui.RenderFilterTabs(a.ctrl.Filter()),
		a.searchInput.View(),
		ui.RenderStatsBar(stats, ok),
		"",
		list,
	)
}

func (a *App) renderStatusBar() string {
	if t := a.toast.View(); t != "" {
		return t
	}
	hint := a.help.ShortView()
	if a.focus == FocusForm && a.currentView == ViewTasks {
		hint = strings.Join([]string{
			styles.StatusBarKey.Render("enter") + " add",
			styles.StatusBarKey.Render("tab") + " next field",
			styles.StatusBarKey.Render("esc") + " back to list",
		}, "  ")
	}
	return styles.StatusBar.Render(hint)
}
