package state

import "github.com/charmbracelet/bubbles/key"

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	QuickAdd  key.Binding
	AddTask   key.Binding

	// Filter and search
	Search      key.Binding
	ClearSearch key.Binding
	FilterAll   key.Binding
	FilterDone  key.Binding
	FilterOpen  key.Binding
	FilterHigh  key.Binding

	// Task actions
	Toggle  key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Copy    key.Binding

	// General
	Refresh    key.Binding
	SwitchView key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add todo")),
		QuickAdd:  key.NewBinding(key.WithKeys("ctrl+s", "shift+enter"), key.WithHelp("ctrl+s", "quick add")),
		AddTask:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new todo")),

		Search:      key.NewBinding(key.WithKeys("/", "ctrl+k"), key.WithHelp("/", "search")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		FilterAll:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterDone:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "completed")),
		FilterOpen:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "pending")),
		FilterHigh:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "high priority")),

		Toggle:  key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x/space", "toggle done")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),

		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		SwitchView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "switch view")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeymapData) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.Toggle, k.Delete, k.Search, k.SwitchView, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeymapData) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.AddTask, k.NextField, k.PrevField, k.Submit, k.QuickAdd},
		{k.Search, k.ClearSearch, k.FilterAll, k.FilterDone, k.FilterOpen, k.FilterHigh},
		{k.Toggle, k.Delete, k.Copy, k.Refresh, k.SwitchView, k.Help, k.Quit},
	}
}
