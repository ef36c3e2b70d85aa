package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cronograma/internal/tui/state"
)

// HandleConfirmDeleteState waits for y or n. Esc counts as no.
func HandleConfirmDeleteState(m *state.Model, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		pending := m.PendingAction
		m.PendingAction = nil
		closeSubState(m)
		if pending != nil && pending.Action != nil {
			return pending.Action()
		}
	case "n", "N", "esc":
		m.PendingAction = nil
		closeSubState(m)
	}
	return nil
}
