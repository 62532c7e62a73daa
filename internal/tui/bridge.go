package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firstapi/todo-tui/internal/health"
	"github.com/firstapi/todo-tui/internal/tasksync"
)

// syncEventMsg carries a controller event into the update loop.
type syncEventMsg struct {
	event tasksync.Event
}

// healthMsg carries a finished health check.
type healthMsg struct {
	status health.Status
}

// bridgedMsg wraps a message that arrived through the bridge, so Update
// knows to listen again.
type bridgedMsg struct {
	msg tea.Msg
}

// bridge moves messages produced off the update loop (controller events,
// poller results) onto it. Senders block while the buffer is full until the
// bridge is closed.
type bridge struct {
	msgs chan tea.Msg
	done chan struct{}
	once sync.Once
}

func newBridge() *bridge {
	return &bridge{
		msgs: make(chan tea.Msg, 64),
		done: make(chan struct{}),
	}
}

// Observe implements tasksync.Observer.
func (b *bridge) Observe(e tasksync.Event) {
	b.send(syncEventMsg{event: e})
}

func (b *bridge) send(msg tea.Msg) {
	select {
	case b.msgs <- msg:
	case <-b.done:
	}
}

// listen waits for the next bridged message.
func (b *bridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.msgs:
			return bridgedMsg{msg: msg}
		case <-b.done:
			return nil
		}
	}
}

func (b *bridge) close() {
	b.once.Do(func() { close(b.done) })
}
