// Package components provides reusable UI components for the TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/firstapi/todo-tui/internal/tui/styles"
)

// HelpModel renders the key binding overlay and the one-line hint bar.
type HelpModel struct {
	width  int
	model  help.Model
	keymap help.KeyMap
}

// NewHelp creates a help component for keymap.
func NewHelp(keymap help.KeyMap) *HelpModel {
	m := help.New()
	m.Styles.ShortKey = styles.HelpKey
	m.Styles.ShortDesc = styles.HelpDesc
	m.Styles.FullKey = styles.HelpKey
	m.Styles.FullDesc = styles.HelpDesc
	return &HelpModel{model: m, keymap: keymap}
}

// SetSize sets the available width.
func (h *HelpModel) SetSize(width int) {
	h.width = width
	h.model.Width = width
}

// ShortView is the single-line hint shown in the status bar.
func (h *HelpModel) ShortView() string {
	return h.model.ShortHelpView(h.keymap.ShortHelp())
}

// View renders the full overlay.
func (h *HelpModel) View() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(h.model.FullHelpView(h.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Press ? or esc to close"))

	dialog := styles.Dialog.Render(b.String())
	if h.width <= 0 {
		return dialog
	}
	return lipgloss.PlaceHorizontal(h.width, lipgloss.Center, dialog)
}
