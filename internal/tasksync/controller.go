// Package tasksync keeps the local task store in step with the server.
//
// Every user action and every poll tick goes through the Controller: it calls
// the API, updates the store only after the server confirms, and reports what
// happened to an Observer. Operations may overlap; each one is sequential on
// its own and the store serializes their writes, so the last response to
// arrive wins.
package tasksync

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/projection"
	"github.com/firstapi/todo-tui/internal/render"
	"github.com/firstapi/todo-tui/internal/schedule"
	"github.com/firstapi/todo-tui/internal/store"
)

// API is the subset of the API client the controller needs.
type API interface {
	ListTasks(ctx context.Context) ([]api.Task, error)
	CreateTask(ctx context.Context, req api.CreateTaskRequest) (*api.Task, error)
	ToggleTask(ctx context.Context, id string) (*api.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// StatsRefresher re-fetches the aggregate counts.
type StatsRefresher interface {
	Refresh(ctx context.Context) error
}

// Controller orchestrates load, create, toggle, delete, and poll.
type Controller struct {
	client   API
	store    *store.Store
	stats    StatsRefresher
	observer Observer
	logger   *slog.Logger

	defaultPriority api.Priority

	mu     sync.Mutex
	filter projection.Filter
	query  string
	poller *schedule.Poller
}

// Option configures a Controller.
type Option func(*Controller)

// WithStats refreshes the given stats panel after count-changing operations.
func WithStats(s StatsRefresher) Option {
	return func(c *Controller) { c.stats = s }
}

// WithObserver sets the event receiver.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultPriority sets the priority used for drafts without one.
func WithDefaultPriority(p api.Priority) Option {
	return func(c *Controller) { c.defaultPriority = p }
}

// New creates a controller that owns a fresh, empty store.
func New(client API, opts ...Option) *Controller {
	c := &Controller{
		client:          client,
		store:           store.New(),
		observer:        nopObserver{},
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaultPriority: api.DefaultPriority,
		filter:          projection.FilterAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetObserver replaces the event receiver. Used when the receiver is built
// after the controller.
func (c *Controller) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	c.mu.Lock()
	c.observer = o
	c.mu.Unlock()
}

func (c *Controller) emit(e Event) {
	c.mu.Lock()
	o := c.observer
	c.mu.Unlock()
	o.Observe(e)
}

func (c *Controller) notify(level Level, msg string, err error) {
	c.emit(Event{Kind: EventNotice, Notice: Notice{Level: level, Message: msg, Err: err}})
}

// fail surfaces a foreground failure.
func (c *Controller) fail(msg string, err error) {
	c.logger.Error(msg, "err", err)
	c.notify(LevelError, msg, err)
}

func (c *Controller) loadingStarted() { c.emit(Event{Kind: EventLoadingStarted}) }

func (c *Controller) loadingFinished() { c.emit(Event{Kind: EventLoadingFinished}) }

// reload replaces the store with the server list. On failure the store is
// left as it was.
func (c *Controller) reload(ctx context.Context) error {
	tasks, err := c.client.ListTasks(ctx)
	if err != nil {
		return err
	}
	c.store.ReplaceAll(tasks)
	c.emit(Event{Kind: EventStoreChanged})
	return nil
}

func (c *Controller) refreshStats(ctx context.Context) {
	if c.stats == nil {
		return
	}
	if err := c.stats.Refresh(ctx); err != nil {
		return
	}
	c.emit(Event{Kind: EventStatsChanged})
}

// Load fetches the full list and replaces the store.
func (c *Controller) Load(ctx context.Context) error {
	c.loadingStarted()
	defer c.loadingFinished()

	if err := c.reload(ctx); err != nil {
		c.fail("Failed to load todos", err)
		return err
	}
	return nil
}

// Refresh is a user-triggered reload of both the list and the stats.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.Load(ctx); err != nil {
		return err
	}
	c.refreshStats(ctx)
	return nil
}

// Draft is the user's input for a new task.
type Draft struct {
	Title       string
	Description string
	Priority    api.Priority
}

// Request validates the draft and builds the create body. A blank
// description is sent as absent.
func (d Draft) Request(defaultPriority api.Priority) (api.CreateTaskRequest, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return api.CreateTaskRequest{}, &ValidationError{Field: "title", Message: "Please enter a title"}
	}

	req := api.CreateTaskRequest{
		Title:    title,
		Priority: d.Priority,
	}
	if req.Priority == "" {
		req.Priority = defaultPriority
	}
	if _, err := api.ParsePriority(string(req.Priority)); err != nil {
		return api.CreateTaskRequest{}, &ValidationError{Field: "priority", Message: err.Error()}
	}
	if desc := strings.TrimSpace(d.Description); desc != "" {
		req.Description = &desc
	}
	return req, nil
}

// Create validates the draft, creates the task, and reloads the full list.
// A validation failure makes no network call. EventTaskCreated is emitted
// before the reload so the caller can clear its form; on failure the form
// should be kept.
func (c *Controller) Create(ctx context.Context, d Draft) (*api.Task, error) {
	req, err := d.Request(c.defaultPriority)
	if err != nil {
		c.notify(LevelError, err.Error(), err)
		return nil, err
	}

	c.loadingStarted()
	defer c.loadingFinished()

	task, err := c.client.CreateTask(ctx, req)
	if err != nil {
		c.fail("Failed to add todo", err)
		return nil, err
	}
	c.logger.Info("task created", "id", task.ID)
	c.emit(Event{Kind: EventTaskCreated, Task: task})
	c.notify(LevelInfo, "Todo added", nil)

	if err := c.reload(ctx); err != nil {
		c.fail("Failed to load todos", err)
	}
	c.refreshStats(ctx)
	return task, nil
}

// Toggle flips completion on the server and, once confirmed, on the local
// copy. No reload is made. A task that vanished from the store in the
// meantime is ignored.
func (c *Controller) Toggle(ctx context.Context, id string) error {
	if _, err := c.client.ToggleTask(ctx, id); err != nil {
		c.fail("Failed to update todo", err)
		return err
	}

	if c.store.ApplyToggle(id) {
		c.emit(Event{Kind: EventStoreChanged})
	} else {
		c.logger.Debug("toggle confirmed for task no longer held", "id", id)
	}
	c.refreshStats(ctx)
	c.notify(LevelInfo, "Todo updated", nil)
	return nil
}

// PendingDelete is a delete awaiting the user's confirmation.
type PendingDelete struct {
	ID    string
	Title string

	requested bool
}

// Prompt is the confirmation question to show the user.
func (p PendingDelete) Prompt() string {
	if p.Title == "" {
		return "Are you sure you want to delete this todo?"
	}
	return "Delete \"" + render.Sanitize(p.Title) + "\"?"
}

// RequestDelete prepares a delete. Nothing is sent until ConfirmDelete.
func (c *Controller) RequestDelete(id string) PendingDelete {
	p := PendingDelete{ID: id, requested: true}
	if t, ok := c.store.FindByID(id); ok {
		p.Title = t.Title
	}
	return p
}

// ConfirmDelete deletes the task on the server and then reloads the full
// list rather than pruning locally. As with Create, a failed reload after a
// successful delete is reported as a notice, not as the delete's error.
func (c *Controller) ConfirmDelete(ctx context.Context, p PendingDelete) error {
	if !p.requested || p.ID == "" {
		return ErrNotConfirmed
	}

	c.loadingStarted()
	defer c.loadingFinished()

	if err := c.client.DeleteTask(ctx, p.ID); err != nil {
		c.fail("Failed to delete todo", err)
		return err
	}
	c.logger.Info("task deleted", "id", p.ID)
	c.notify(LevelInfo, "Todo deleted", nil)

	if err := c.reload(ctx); err != nil {
		c.fail("Failed to load todos", err)
	}
	c.refreshStats(ctx)
	return nil
}

// Poll is the background refresh: no loading signals, and failures are
// logged rather than shown.
func (c *Controller) Poll(ctx context.Context) {
	if err := c.reload(ctx); err != nil {
		c.logger.Warn("background sync failed", "err", err)
		return
	}
	c.refreshStats(ctx)
}

// StartPolling starts the periodic background refresh. Later calls return
// the poller already running.
func (c *Controller) StartPolling(interval time.Duration) *schedule.Poller {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poller == nil {
		c.poller = schedule.Every(interval, c.Poll)
	}
	return c.poller
}

// StopPolling stops the background refresh if running.
func (c *Controller) StopPolling() {
	c.mu.Lock()
	p := c.poller
	c.poller = nil
	c.mu.Unlock()
	if p != nil {
		p.Stop()
	}
}

// SetFilter changes the filter category. It does not touch the network.
func (c *Controller) SetFilter(f projection.Filter) {
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
}

// Filter returns the current filter category.
func (c *Controller) Filter() projection.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// SetQuery changes the search text. It does not touch the network.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	c.query = q
	c.mu.Unlock()
}

// Query returns the current search text.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Tasks returns a read-only snapshot of every task held.
func (c *Controller) Tasks() []api.Task {
	return c.store.Snapshot()
}

// Task returns the task with the given id from the store.
func (c *Controller) Task(id string) (api.Task, bool) {
	return c.store.FindByID(id)
}

// Version changes whenever the store does.
func (c *Controller) Version() uint64 {
	return c.store.Version()
}

// Visible projects the current snapshot through the filter and search.
func (c *Controller) Visible() []api.Task {
	c.mu.Lock()
	f, q := c.filter, c.query
	c.mu.Unlock()
	return projection.Project(c.store.Snapshot(), f, q)
}

// View renders the visible tasks.
func (c *Controller) View() render.View {
	return render.Render(c.Visible())
}
