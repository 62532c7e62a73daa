// Package cli wires the cobra command tree. With no subcommand the
// interactive TUI starts.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "0.1.0"

// App holds the persistent flags shared by every command.
type App struct {
	ConfigPath string
	BaseURL    string
	View       string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todo-tui",
		Short:        "Terminal client for the todo API",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo-tui

  # Start on the dashboard against another server
  todo-tui --view dashboard --base-url http://10.0.0.5:8000/api

  # Scriptable commands
  todo-tui list --filter pending --search milk
  todo-tui add "Buy milk" --priority high
  todo-tui toggle 42
  todo-tui rm 7 --yes
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config file (default ~/.config/todo-tui/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.BaseURL, "base-url", "", "API base URL (overrides config and $TODO_API_URL)")
	cmd.PersistentFlags().StringVar(&app.View, "view", "", "Initial TUI view (tasks|dashboard)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newHealthCmd(app))

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todo-tui version %s\n", Version)
		},
	}
}
