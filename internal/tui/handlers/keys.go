package handlers

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/tui/state"
)

// HandleGlobalKeys handles key presses shared by the main views. Forms and
// dialogs never reach it.
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return true, tea.Quit
	}
	if m.State == constants.StateHolidays && m.Holidays.Filtering() {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Tab), key.Matches(msg, m.Keys.ShiftTab):
		switch m.State {
		case constants.StateCalendar:
			m.State = constants.StateHolidays
		case constants.StateHolidays:
			m.State = constants.StateCalendar
		}
		return true, nil
	case key.Matches(msg, m.Keys.Reload):
		m.Engine.Reload()
		m.Refresh()
		m.Status = "Reloaded"
		return true, nil
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	}
	return false, nil
}

// CycleGroup steps the calendar filter through every class group and back to
// showing all of them.
func CycleGroup(m *state.Model) {
	groups := m.Engine.Groups()
	current := m.Engine.GroupFilter()

	next := ""
	if current == "" && len(groups) > 0 {
		next = groups[0].ID
	} else {
		for i, g := range groups {
			if g.ID == current && i+1 < len(groups) {
				next = groups[i+1].ID
				break
			}
		}
	}

	m.Engine.SetGroupFilter(next)
	if g, ok := m.Engine.Group(next); ok {
		m.Status = fmt.Sprintf("Showing %s", g.Name)
	} else {
		m.Status = "Showing all groups"
	}
}
