package tasksync

import "github.com/firstapi/todo-tui/internal/api"

// EventKind identifies what happened inside the controller.
type EventKind int

const (
	EventLoadingStarted EventKind = iota
	EventLoadingFinished
	EventStoreChanged
	EventStatsChanged
	EventTaskCreated
	EventNotice
)

// Level is the severity of a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notice is a user-visible message.
type Notice struct {
	Level   Level
	Message string
	Err     error
}

// Event is delivered to the Observer. Task is set for EventTaskCreated and
// Notice for EventNotice.
type Event struct {
	Kind   EventKind
	Notice Notice
	Task   *api.Task
}

// Observer receives controller events. Observe may be called from any
// goroutine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(e Event) { f(e) }

type nopObserver struct{}

func (nopObserver) Observe(Event) {}
