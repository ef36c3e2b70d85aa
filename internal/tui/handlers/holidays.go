package handlers

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/tui/state"
)

// OpenHolidayForm starts the municipal holiday form with day prefilled.
func OpenHolidayForm(m *state.Model, day time.Time) tea.Cmd {
	m.HolidayForm = &state.HolidayFormModel{Date: day.Format(constants.DateFormat)}
	m.Form = NewHolidayForm(m.HolidayForm)
	openSubState(m, constants.StateAddHoliday)
	return m.Form.Init()
}

func NewHolidayForm(f *state.HolidayFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&f.Date).
				Validate(func(s string) error {
					if _, err := calendar.ParseDay(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("invalid date, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
		),
	).WithShowHelp(true)
}

// HandleAddHolidayState drives the holiday form.
func HandleAddHolidayState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.HolidayForm = nil
		closeSubState(m)
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	switch m.Form.State {
	case huh.StateCompleted:
		date := strings.TrimSpace(m.HolidayForm.Date)
		if err := m.Engine.AddMunicipalHoliday(date, m.HolidayForm.Name); err != nil {
			m.FormError = err.Error()
			m.Form.State = huh.StateNormal
			return cmd
		}
		m.HolidayForm = nil
		closeSubState(m)
		m.Status = fmt.Sprintf("✓ Holiday added on %s", date)
		m.Refresh()
	case huh.StateAborted:
		m.HolidayForm = nil
		closeSubState(m)
	}
	return cmd
}

// ConfirmDeleteHoliday asks before removing a municipal holiday.
func ConfirmDeleteHoliday(m *state.Model, h models.MunicipalHoliday) {
	engine := m.Engine
	m.PendingAction = &constants.ConfirmationMsg{
		Message: fmt.Sprintf("Delete holiday %q on %s?", h.Name, h.Date),
		Action: func() tea.Cmd {
			return result("delete holiday", engine.DeleteMunicipalHoliday(h.Date, h.Name), "✓ Holiday deleted")
		},
	}
	openSubState(m, constants.StateConfirmDelete)
}
