package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/projection"
	"github.com/firstapi/todo-tui/internal/render"
	"github.com/firstapi/todo-tui/internal/tasksync"
	"github.com/firstapi/todo-tui/internal/tui/components"
	"github.com/firstapi/todo-tui/internal/tui/ui"
)

// Space taken by everything in the tasks view except the list.
const tasksChromeHeight = 22

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bridgedMsg:
		_, cmd := a.Update(msg.msg)
		return a, tea.Batch(cmd, a.bridge.listen())

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.SetSize(msg.Width)
		a.list.Width = msg.Width - 4
		a.list.Height = max(msg.Height-tasksChromeHeight, 3)
		a.syncList()
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case syncEventMsg:
		return a, a.handleEvent(msg.event)

	case healthMsg, statsMsg:
		// Both are read back from their owners in View.
		return a, nil

	case statusMsg:
		return a, a.toast.Show(msg.text, msg.isError)

	case components.ToastExpiredMsg:
		a.toast.Update(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleEvent(e tasksync.Event) tea.Cmd {
	switch e.Kind {
	case tasksync.EventLoadingStarted:
		a.loading++
	case tasksync.EventLoadingFinished:
		if a.loading > 0 {
			a.loading--
		}
	case tasksync.EventStoreChanged:
		a.refreshList()
	case tasksync.EventTaskCreated:
		a.form.Reset()
	case tasksync.EventNotice:
		return tea.Batch(
			a.toast.Show(e.Notice.Message, e.Notice.Level == tasksync.LevelError),
			a.desktopCmd(e.Notice),
		)
	}
	return nil
}

// refreshList re-projects the store after a store, filter, or search change.
func (a *App) refreshList() {
	a.visible = a.ctrl.Visible()
	a.entries = render.Render(a.visible)
	if a.cursor >= len(a.entries.Entries) {
		a.cursor = max(len(a.entries.Entries)-1, 0)
	}
	a.syncList()
}

// syncList renders the list into the viewport and scrolls the cursor into
// view.
func (a *App) syncList() {
	content, line := ui.RenderTaskList(a.entries, a.cursor, a.list.Width)
	a.list.SetContent(content)

	switch {
	case line < a.list.YOffset:
		a.list.SetYOffset(line)
	case line >= a.list.YOffset+a.list.Height:
		a.list.SetYOffset(line - a.list.Height + 1)
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	if a.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			a.showHelp = false
		}
		return a, nil
	}

	if a.pending != nil {
		return a, a.handleConfirmKey(msg)
	}

	if a.currentView == ViewTasks {
		if key.Matches(msg, a.keymap.QuickAdd) {
			return a, a.submit()
		}
		switch a.focus {
		case FocusForm:
			return a, a.handleFormKey(msg)
		case FocusSearch:
			return a, a.handleSearchKey(msg)
		}
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a.quit()
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, a.keymap.SwitchView):
		next := (a.currentView + 1) % View(len(viewNames))
		return a, a.enterView(next)
	case key.Matches(msg, a.keymap.Refresh):
		if a.currentView == ViewDashboard {
			return a, tea.Batch(a.healthCmd(), a.statsCmd())
		}
		return a, a.loadCmd()
	}

	if a.currentView == ViewTasks {
		return a, a.handleListKey(msg)
	}
	return a, nil
}

func (a *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Up):
		if a.cursor > 0 {
			a.cursor--
			a.syncList()
		}
	case key.Matches(msg, a.keymap.Down):
		if a.cursor < len(a.visible)-1 {
			a.cursor++
			a.syncList()
		}
	case key.Matches(msg, a.keymap.AddTask), key.Matches(msg, a.keymap.NextField):
		a.focus = FocusForm
		return a.form.Focus()
	case key.Matches(msg, a.keymap.Search):
		a.focus = FocusSearch
		return a.searchInput.Focus()
	case key.Matches(msg, a.keymap.ClearSearch):
		a.clearSearch()
	case key.Matches(msg, a.keymap.FilterAll):
		a.setFilter(projection.FilterAll)
	case key.Matches(msg, a.keymap.FilterDone):
		a.setFilter(projection.FilterCompleted)
	case key.Matches(msg, a.keymap.FilterOpen):
		a.setFilter(projection.FilterPending)
	case key.Matches(msg, a.keymap.FilterHigh):
		a.setFilter(projection.FilterHighPriority)
	case key.Matches(msg, a.keymap.Toggle):
		if t, ok := a.selected(); ok {
			return a.toggleCmd(t.ID)
		}
	case key.Matches(msg, a.keymap.Delete):
		if t, ok := a.selected(); ok {
			p := a.ctrl.RequestDelete(t.ID)
			a.pending = &p
		}
	case key.Matches(msg, a.keymap.Copy):
		return a.copyCmd()
	}
	return nil
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Confirm):
		p := *a.pending
		a.pending = nil
		return a.deleteCmd(p)
	case key.Matches(msg, a.keymap.Cancel):
		a.pending = nil
	}
	return nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "esc":
		a.form.Blur()
		a.focus = FocusList
		return nil
	case key.Matches(msg, a.keymap.NextField):
		a.form.NextField()
		return nil
	case key.Matches(msg, a.keymap.PrevField):
		a.form.PrevField()
		return nil
	case key.Matches(msg, a.keymap.Submit):
		return a.submit()
	}
	return a.form.Update(msg)
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.clearSearch()
		return nil
	case "enter", "tab":
		a.searchInput.Blur()
		a.focus = FocusList
		return nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() != a.ctrl.Query() {
		a.ctrl.SetQuery(a.searchInput.Value())
		a.cursor = 0
		a.refreshList()
	}
	return cmd
}

// submit sends the form contents. Validation and the outcome are reported
// through controller events; the form is cleared only on success.
func (a *App) submit() tea.Cmd {
	return a.createCmd(a.form.Draft())
}

func (a *App) clearSearch() {
	a.searchInput.Reset()
	a.searchInput.Blur()
	a.focus = FocusList
	if a.ctrl.Query() != "" {
		a.ctrl.SetQuery("")
		a.cursor = 0
		a.refreshList()
	}
}

func (a *App) setFilter(f projection.Filter) {
	if a.ctrl.Filter() == f {
		return
	}
	a.ctrl.SetFilter(f)
	a.cursor = 0
	a.refreshList()
}

// selected returns the task under the cursor.
func (a *App) selected() (api.Task, bool) {
	if a.cursor < 0 || a.cursor >= len(a.visible) {
		return api.Task{}, false
	}
	return a.visible[a.cursor], true
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.Close()
	return a, tea.Quit
}
