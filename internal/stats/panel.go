// Package stats holds the server-computed aggregate counts shown alongside
// the task list.
package stats

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/firstapi/todo-tui/internal/api"
)

// Fetcher loads the current stats.
type Fetcher interface {
	Stats(ctx context.Context) (*api.Stats, error)
}

// Panel is a read-only consumer of /stats. A failed refresh keeps the last
// good snapshot.
type Panel struct {
	client Fetcher
	logger *slog.Logger

	mu        sync.RWMutex
	current   api.Stats
	loaded    bool
	updatedAt time.Time
}

// NewPanel creates a panel with no snapshot yet.
func NewPanel(client Fetcher, logger *slog.Logger) *Panel {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Panel{client: client, logger: logger}
}

// Refresh fetches the stats. Failures are logged and returned; the previous
// snapshot stays in place.
func (p *Panel) Refresh(ctx context.Context) error {
	s, err := p.client.Stats(ctx)
	if err != nil {
		p.logger.Warn("failed to load stats", "err", err)
		return err
	}

	p.mu.Lock()
	p.current = *s
	p.loaded = true
	p.updatedAt = time.Now()
	p.mu.Unlock()
	return nil
}

// Snapshot returns the last fetched stats and whether any fetch succeeded.
func (p *Panel) Snapshot() (api.Stats, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current, p.loaded
}

// UpdatedAt is the time of the last successful refresh.
func (p *Panel) UpdatedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.updatedAt
}
