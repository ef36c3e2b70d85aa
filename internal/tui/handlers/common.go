package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/tui/state"
)

// StatusMsg reports a finished write to the status line.
type StatusMsg string

// ErrorMsg reports a failed write. The model switches to the error state.
type ErrorMsg struct {
	Op  string // what was being written, e.g. "delete session"
	Err error
}

func result(op string, err error, status string) tea.Cmd {
	return func() tea.Msg {
		if err != nil {
			return ErrorMsg{Op: op, Err: err}
		}
		return StatusMsg(status)
	}
}

// HandleResult applies StatusMsg and ErrorMsg. It reports whether msg was one
// of them.
func HandleResult(m *state.Model, msg tea.Msg) bool {
	switch msg := msg.(type) {
	case StatusMsg:
		m.Status = string(msg)
		m.Refresh()
		return true
	case ErrorMsg:
		m.Err = msg.Err
		m.ErrOp = msg.Op
		if isMainView(m.State) {
			m.PreviousState = m.State
		}
		m.State = constants.StateError
		return true
	}
	return false
}

// HandleErrorState dismisses the error on any key.
func HandleErrorState(m *state.Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.Err = nil
		m.ErrOp = ""
		m.State = m.PreviousState
	}
	return nil
}

func isMainView(s constants.SessionState) bool {
	return s == constants.StateCalendar || s == constants.StateHolidays
}

// openSubState remembers the tab a form or dialog was opened from.
func openSubState(m *state.Model, s constants.SessionState) {
	if isMainView(m.State) {
		m.PreviousState = m.State
	}
	m.FormError = ""
	m.State = s
}

// closeSubState returns to the tab the form or dialog was opened from.
func closeSubState(m *state.Model) {
	m.Form = nil
	m.FormError = ""
	m.State = m.PreviousState
}
