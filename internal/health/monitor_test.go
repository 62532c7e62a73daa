package health

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/firstapi/todo-tui/internal/testutil"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		database      string
		fail          bool
		wantOnline    bool
		wantConnected bool
	}{
		{name: "online with database", database: "connected", wantOnline: true, wantConnected: true},
		{name: "online without database", database: "disconnected", wantOnline: true},
		{name: "offline", database: "connected", fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := testutil.NewBackend(t)
			backend.SetDatabase(tt.database)
			if tt.fail {
				backend.Fail("GET /health", http.StatusBadGateway)
			}

			m := NewMonitor(backend.Client(), nil)
			s := m.Check(context.Background())

			if !s.Checked {
				t.Error("expected checked")
			}
			if s.Online != tt.wantOnline {
				t.Errorf("expected online=%v, got %v", tt.wantOnline, s.Online)
			}
			if s.DatabaseConnected != tt.wantConnected {
				t.Errorf("expected connected=%v, got %v", tt.wantConnected, s.DatabaseConnected)
			}
			if tt.fail && s.Err == nil {
				t.Error("expected error to be recorded")
			}
			if m.Status() != s {
				t.Error("expected status to be remembered")
			}
		})
	}
}

func TestCheckMeasuresResponseTime(t *testing.T) {
	backend := testutil.NewBackend(t)
	m := NewMonitor(backend.Client(), nil)

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	m.now = func() time.Time {
		calls++
		if calls == 1 {
			return clock
		}
		return clock.Add(42 * time.Millisecond)
	}

	s := m.Check(context.Background())
	if s.ResponseTime != 42*time.Millisecond {
		t.Errorf("expected 42ms, got %v", s.ResponseTime)
	}
	if !s.LastChecked.Equal(clock.Add(42 * time.Millisecond)) {
		t.Errorf("unexpected last checked %v", s.LastChecked)
	}
}

func TestStartPollingIsIdempotent(t *testing.T) {
	backend := testutil.NewBackend(t)
	m := NewMonitor(backend.Client(), nil)

	checked := make(chan Status, 1)
	p1 := m.StartPolling(5*time.Millisecond, func(s Status) {
		select {
		case checked <- s:
		default:
		}
	})
	defer p1.Stop()

	if p2 := m.StartPolling(time.Hour, nil); p2 != p1 {
		t.Error("expected the running poller to be reused")
	}

	select {
	case s := <-checked:
		if !s.Online {
			t.Errorf("expected online status, got %+v", s)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a polled check")
	}
}
