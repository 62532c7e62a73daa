package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/firstapi/todo-tui/internal/tasksync"
	"github.com/firstapi/todo-tui/internal/tui"
)

func runTUI(cmd *cobra.Command, app *App) error {
	e, err := app.setup()
	if err != nil {
		return err
	}
	defer e.Close()

	panel := e.statsPanel()
	ctrl := e.controller(tasksync.WithStats(panel))
	model := tui.NewApp(ctrl, panel, e.monitor(), e.cfg, e.logger)
	defer model.Close()

	e.logger.Info("starting", "base_url", e.cfg.API.BaseURL)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
