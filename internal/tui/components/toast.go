package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firstapi/todo-tui/internal/tui/styles"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 3 * time.Second

// ToastExpiredMsg clears the toast it belongs to.
type ToastExpiredMsg struct {
	seq int
}

// Toast is a transient status line message.
type Toast struct {
	Message string
	IsError bool

	seq int
}

// Show replaces the current toast and schedules its expiry. A newer toast is
// not cleared by an older one's timer.
func (t *Toast) Show(msg string, isError bool) tea.Cmd {
	t.seq++
	t.Message = msg
	t.IsError = isError
	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{seq: seq}
	})
}

// Update clears the toast when its own timer fires.
func (t *Toast) Update(msg ToastExpiredMsg) {
	if msg.seq == t.seq {
		t.Message = ""
		t.IsError = false
	}
}

// View renders the toast, or nothing.
func (t *Toast) View() string {
	if t.Message == "" {
		return ""
	}
	if t.IsError {
		return styles.StatusBarError.Render(t.Message)
	}
	return styles.StatusBarSuccess.Render(t.Message)
}
