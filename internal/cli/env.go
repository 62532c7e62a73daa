package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/config"
	"github.com/firstapi/todo-tui/internal/health"
	"github.com/firstapi/todo-tui/internal/logging"
	"github.com/firstapi/todo-tui/internal/stats"
	"github.com/firstapi/todo-tui/internal/tasksync"
)

// env is everything a command needs once config is resolved.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
	client *api.Client
}

// setup resolves config from file, then environment, then flags, and opens
// the log file.
func (a *App) setup() (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.ConfigPath != "" {
		cfg, err = config.LoadFile(a.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	if a.BaseURL != "" {
		cfg.API.BaseURL = a.BaseURL
	}
	if a.View != "" {
		cfg.UI.DefaultView = a.View
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	opts := []api.Option{
		api.WithDefaultHeaders(cfg.API.Headers),
		api.WithLogger(logger),
	}
	if cfg.API.Timeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.API.Timeout.Std()))
	}

	logger.Debug("config resolved", "base_url", cfg.API.BaseURL, "view", cfg.UI.DefaultView)
	return &env{
		cfg:    cfg,
		logger: logger,
		closer: closer,
		client: api.NewClient(cfg.API.BaseURL, opts...),
	}, nil
}

func (e *env) Close() error {
	return e.closer.Close()
}

func (e *env) statsPanel() *stats.Panel {
	return stats.NewPanel(e.client, e.logger)
}

func (e *env) monitor() *health.Monitor {
	return health.NewMonitor(e.client, e.logger)
}

func (e *env) controller(opts ...tasksync.Option) *tasksync.Controller {
	opts = append([]tasksync.Option{
		tasksync.WithLogger(e.logger),
		tasksync.WithDefaultPriority(e.cfg.Priority()),
	}, opts...)
	return tasksync.New(e.client, opts...)
}
