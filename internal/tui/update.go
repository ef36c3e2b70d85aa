package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/tui/components/calendar"
	"github.com/julianstephens/cronograma/internal/tui/components/holidays"
	"github.com/julianstephens/cronograma/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Calendar.SetSize(msg.Width-4, msg.Height-6)
		m.Holidays.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	case calendar.ScheduleMsg:
		return m, handlers.OpenScheduleForm(&m.Model)
	case calendar.EditSessionMsg:
		return m, handlers.OpenEditForm(&m.Model, msg.Session)
	case calendar.DeleteSessionMsg:
		handlers.ConfirmDeleteSession(&m.Model, msg.Session)
		return m, nil
	case calendar.AddHolidayMsg:
		return m, handlers.OpenHolidayForm(&m.Model, msg.Date)
	case calendar.CycleGroupMsg:
		handlers.CycleGroup(&m.Model)
		return m, nil
	case holidays.AddHolidayMsg:
		return m, handlers.OpenHolidayForm(&m.Model, m.Calendar.Cursor())
	case holidays.DeleteHolidayMsg:
		handlers.ConfirmDeleteHoliday(&m.Model, msg.Holiday)
		return m, nil
	}
	if handlers.HandleResult(&m.Model, msg) {
		return m, nil
	}

	switch m.State {
	case constants.StateScheduling:
		return m, handlers.HandleSchedulingState(&m.Model, msg)
	case constants.StateEditSession:
		return m, handlers.HandleEditSessionState(&m.Model, msg)
	case constants.StateAddHoliday:
		return m, handlers.HandleAddHolidayState(&m.Model, msg)
	case constants.StateConfirmDelete:
		return m, handlers.HandleConfirmDeleteState(&m.Model, msg)
	case constants.StateError:
		return m, handlers.HandleErrorState(&m.Model, msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		m.Status = ""
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, keyMsg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case constants.StateCalendar:
		year, month := m.Calendar.Month()
		m.Calendar, cmd = m.Calendar.Update(msg)
		if y, mo := m.Calendar.Month(); y != year || mo != month {
			m.RefreshConflicts()
		}
	case constants.StateHolidays:
		m.Holidays, cmd = m.Holidays.Update(msg)
	}
	return m, cmd
}
