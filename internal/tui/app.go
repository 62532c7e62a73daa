// Package tui provides the terminal user interface for the todo API.
package tui

import (
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/config"
	"github.com/firstapi/todo-tui/internal/health"
	"github.com/firstapi/todo-tui/internal/render"
	"github.com/firstapi/todo-tui/internal/stats"
	"github.com/firstapi/todo-tui/internal/tasksync"
	"github.com/firstapi/todo-tui/internal/tui/components"
	"github.com/firstapi/todo-tui/internal/tui/state"
	"github.com/firstapi/todo-tui/internal/tui/styles"
)

// View represents the current screen.
type View int

const (
	ViewTasks View = iota
	ViewDashboard
)

var viewNames = []string{"Tasks", "Dashboard"}

// ParseView maps a config or flag value to a View.
func ParseView(s string) View {
	if s == config.ViewDashboard {
		return ViewDashboard
	}
	return ViewTasks
}

// Focus is the part of the tasks view receiving keys.
type Focus int

const (
	FocusList Focus = iota
	FocusForm
	FocusSearch
)

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	ctrl    *tasksync.Controller
	stats   *stats.Panel
	monitor *health.Monitor
	config  *config.Config
	logger  *slog.Logger
	bridge  *bridge

	// View state
	currentView View
	focus       Focus
	showHelp    bool
	entered     map[View]bool

	// Data
	visible []api.Task
	entries render.View
	cursor  int
	pending *tasksync.PendingDelete

	// UI state
	loading int
	width   int
	height  int

	// Components
	spinner     spinner.Model
	form        *state.TaskForm
	searchInput textinput.Model
	list        viewport.Model
	toast       components.Toast
	help        *components.HelpModel
	keymap      state.KeymapData

	// Side effects, replaceable in tests
	copyText      func(string) error
	notifyDesktop func(title, message string) error
}

// NewApp creates the model. The controller's events are routed through the
// app from here on.
func NewApp(ctrl *tasksync.Controller, panel *stats.Panel, monitor *health.Monitor, cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	searchInput := textinput.New()
	searchInput.Prompt = "/ "
	searchInput.Placeholder = "Search title or description..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	keymap := state.DefaultKeymap()

	a := &App{
		ctrl:        ctrl,
		stats:       panel,
		monitor:     monitor,
		config:      cfg,
		logger:      logger,
		bridge:      newBridge(),
		currentView: ParseView(cfg.UI.DefaultView),
		entered:     make(map[View]bool),
		width:       80,
		height:      24,
		spinner:     s,
		form:        state.NewTaskForm(cfg.Priority()),
		searchInput: searchInput,
		list:        viewport.New(76, 3),
		help:        components.NewHelp(keymap),
		keymap:      keymap,
		copyText:    clipboard.WriteAll,
		notifyDesktop: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
	ctrl.SetObserver(a.bridge)
	a.refreshList()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.bridge.listen(),
		a.enterView(a.currentView),
	)
}

// Close stops background polling and releases the event bridge.
func (a *App) Close() {
	a.ctrl.StopPolling()
	a.monitor.StopPolling()
	a.bridge.close()
}

// enterView switches screens. The first visit to a screen loads its data
// and starts its poller; later visits reuse both.
func (a *App) enterView(v View) tea.Cmd {
	a.currentView = v
	if a.entered[v] {
		return nil
	}
	a.entered[v] = true

	switch v {
	case ViewDashboard:
		bridge := a.bridge
		a.monitor.StartPolling(a.config.Sync.HealthInterval.Std(), func(s health.Status) {
			bridge.send(healthMsg{status: s})
		})
		return tea.Batch(a.healthCmd(), a.statsCmd())
	default:
		a.ctrl.StartPolling(a.config.Sync.PollInterval.Std())
		return a.loadCmd()
	}
}
