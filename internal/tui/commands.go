package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firstapi/todo-tui/internal/config"
	"github.com/firstapi/todo-tui/internal/tasksync"
)

// statusMsg shows a toast for an outcome the controller does not report.
type statusMsg struct {
	text    string
	isError bool
}

// statsMsg signals a finished stats refresh.
type statsMsg struct{}

// The controller reports progress and failures as events, so the operation
// commands below return no message of their own.

func (a *App) loadCmd() tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		ctrl.Refresh(context.Background())
		return nil
	}
}

func (a *App) createCmd(d tasksync.Draft) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		ctrl.Create(context.Background(), d)
		return nil
	}
}

func (a *App) toggleCmd(id string) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		ctrl.Toggle(context.Background(), id)
		return nil
	}
}

func (a *App) deleteCmd(p tasksync.PendingDelete) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		ctrl.ConfirmDelete(context.Background(), p)
		return nil
	}
}

func (a *App) healthCmd() tea.Cmd {
	monitor := a.monitor
	return func() tea.Msg {
		return healthMsg{status: monitor.Check(context.Background())}
	}
}

func (a *App) statsCmd() tea.Cmd {
	panel := a.stats
	return func() tea.Msg {
		panel.Refresh(context.Background())
		return statsMsg{}
	}
}

// copyCmd copies the title of the task under the cursor.
func (a *App) copyCmd() tea.Cmd {
	task, ok := a.selected()
	if !ok {
		return nil
	}

	copyText, logger := a.copyText, a.logger
	title := task.Title
	return func() tea.Msg {
		if err := copyText(title); err != nil {
			logger.Warn("clipboard write failed", "err", err)
			return statusMsg{text: "Failed to copy: " + err.Error(), isError: true}
		}
		return statusMsg{text: "Copied to clipboard"}
	}
}

// desktopCmd raises a desktop alert for a failure when enabled in config.
func (a *App) desktopCmd(n tasksync.Notice) tea.Cmd {
	if !a.config.Notifications.Desktop || n.Level != tasksync.LevelError {
		return nil
	}
	notify, logger := a.notifyDesktop, a.logger
	msg := n.Message
	return func() tea.Msg {
		if err := notify(config.AppName, msg); err != nil {
			logger.Warn("failed to send notification", "err", err)
		}
		return nil
	}
}
