package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/projection"
	"github.com/firstapi/todo-tui/internal/render"
	"github.com/firstapi/todo-tui/internal/tasksync"
)

// printNotices writes info notices to the command's output. Errors are
// returned by the operation itself, so they are not printed twice.
func printNotices(cmd *cobra.Command) tasksync.Observer {
	return tasksync.ObserverFunc(func(e tasksync.Event) {
		if e.Kind == tasksync.EventNotice && e.Notice.Level == tasksync.LevelInfo {
			fmt.Fprintln(cmd.OutOrStdout(), e.Notice.Message)
		}
	})
}

func newListCmd(app *App) *cobra.Command {
	var filter, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Example: strings.TrimSpace(`
  todo-tui list
  todo-tui list --filter high
  todo-tui list --search milk`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := projection.ParseFilter(filter)
			if err != nil {
				return err
			}

			e, err := app.setup()
			if err != nil {
				return err
			}
			defer e.Close()

			ctrl := e.controller()
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}
			ctrl.SetFilter(f)
			ctrl.SetQuery(search)

			fmt.Fprintln(cmd.OutOrStdout(), render.Table(ctrl.View()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Filter: all, completed, pending, high")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show todos whose title or description contains this text")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var description, priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo",
		Example: strings.TrimSpace(`
  todo-tui add "Buy milk"
  todo-tui add "File taxes" --priority high --description "before April"`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			defer e.Close()

			ctrl := e.controller(tasksync.WithObserver(printNotices(cmd)))
			task, err := ctrl.Create(cmd.Context(), tasksync.Draft{
				Title:       args[0],
				Description: description,
				Priority:    api.Priority(strings.ToLower(strings.TrimSpace(priority))),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Optional description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high (default from config)")
	return cmd
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo between done and open",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			defer e.Close()

			ctrl := e.controller(tasksync.WithObserver(printNotices(cmd)))
			return ctrl.Toggle(cmd.Context(), args[0])
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			defer e.Close()

			ctrl := e.controller(tasksync.WithObserver(printNotices(cmd)))
			// Load so the prompt can name the task.
			if err := ctrl.Load(cmd.Context()); err != nil {
				return err
			}

			pending := ctrl.RequestDelete(args[0])
			if !yes && e.cfg.UI.ConfirmDelete {
				ok, err := confirm(cmd, pending.Prompt())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}
			return ctrl.ConfirmDelete(cmd.Context(), pending)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// confirm asks a yes/no question on the command's input. Anything other than
// y or yes, including end of input, is a no.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search todos on the server",
		Long:  "Search asks the server, unlike list --search which filters the loaded list locally.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.setup()
			if err != nil {
				return err
			}
			defer e.Close()

			tasks, err := e.client.SearchTasks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Table(render.Render(tasks)))
			return nil
		},
	}
}
