package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/firstapi/todo-tui/internal/config"
	"github.com/firstapi/todo-tui/internal/render"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show todo counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			defer e.Close()

			panel := e.statsPanel()
			if err := panel.Refresh(cmd.Context()); err != nil {
				return err
			}
			s, _ := panel.Snapshot()

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				Headers("Total", "Completed", "Pending", "High", "Medium", "Low").
				Row(
					fmt.Sprint(s.Total),
					fmt.Sprint(s.Completed),
					fmt.Sprint(s.Pending),
					fmt.Sprint(s.ByPriority.High),
					fmt.Sprint(s.ByPriority.Medium),
					fmt.Sprint(s.ByPriority.Low),
				)
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			defer e.Close()

			s := e.monitor().Check(cmd.Context())
			if !s.Online {
				return fmt.Errorf("%s is offline: %w", e.cfg.API.BaseURL, s.Err)
			}

			db := "disconnected"
			if s.DatabaseConnected {
				db = "connected"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Server:   %s\n", e.cfg.API.BaseURL)
			fmt.Fprintln(out, "Status:   online")
			fmt.Fprintf(out, "Database: %s (%s)\n", db, render.Sanitize(s.Database))
			fmt.Fprintf(out, "Response: %d ms\n", s.ResponseTime.Milliseconds())
			return nil
		},
	}
}

func newInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.ConfigPath
			if path == "" {
				p, err := config.ConfigPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
