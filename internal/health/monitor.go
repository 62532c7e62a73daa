// Package health tracks whether the backend is reachable.
package health

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/firstapi/todo-tui/internal/api"
	"github.com/firstapi/todo-tui/internal/schedule"
)

// Checker calls the health endpoint.
type Checker interface {
	Health(ctx context.Context) (*api.Health, error)
}

// Status is the outcome of the latest check.
type Status struct {
	Checked           bool
	Online            bool
	DatabaseConnected bool
	Database          string
	ResponseTime      time.Duration
	LastChecked       time.Time
	Err               error
}

// Monitor runs health checks and remembers the latest result.
type Monitor struct {
	client Checker
	logger *slog.Logger
	now    func() time.Time

	mu     sync.RWMutex
	status Status
	poller *schedule.Poller
}

// NewMonitor creates a monitor that has not checked yet.
func NewMonitor(client Checker, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Monitor{client: client, logger: logger, now: time.Now}
}

// Check calls /health once, timing the round trip.
func (m *Monitor) Check(ctx context.Context) Status {
	start := m.now()
	h, err := m.client.Health(ctx)
	end := m.now()

	s := Status{Checked: true, LastChecked: end}
	if err != nil {
		m.logger.Warn("health check failed", "err", err)
		s.Err = err
	} else {
		s.Online = true
		s.Database = h.Database
		s.DatabaseConnected = h.DatabaseConnected()
		s.ResponseTime = end.Sub(start).Round(time.Millisecond)
	}

	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
	return s
}

// Status returns the latest result.
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// StartPolling checks every interval, calling onCheck after each check.
// Later calls return the poller already running.
func (m *Monitor) StartPolling(interval time.Duration, onCheck func(Status)) *schedule.Poller {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.poller == nil {
		m.poller = schedule.Every(interval, func(ctx context.Context) {
			s := m.Check(ctx)
			if onCheck != nil {
				onCheck(s)
			}
		})
	}
	return m.poller
}

// StopPolling stops the periodic check if running.
func (m *Monitor) StopPolling() {
	m.mu.Lock()
	p := m.poller
	m.poller = nil
	m.mu.Unlock()
	if p != nil {
		p.Stop()
	}
}
