package handlers

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/scheduling"
	"github.com/julianstephens/cronograma/internal/tui/state"
)

// OpenScheduleForm starts the scheduling form for the current selection.
func OpenScheduleForm(m *state.Model) tea.Cmd {
	days := m.Engine.Selection().Days()
	if len(days) == 0 {
		m.Status = "Select at least one day first (enter or space)"
		return nil
	}
	if len(m.Engine.Groups()) == 0 {
		m.Status = "No class groups yet. Add one with 'group add'"
		return nil
	}

	req := m.Engine.NewRequest()
	f := &state.ScheduleFormModel{
		Period: req.Period,
		Hours:  strconv.Itoa(req.Hours),
		Days:   days,
	}
	if filter := m.Engine.GroupFilter(); filter != "" {
		f.GroupID = filter
	}
	m.ScheduleForm = f
	m.Form = NewScheduleForm(m.Engine, f)
	openSubState(m, constants.StateScheduling)
	return m.Form.Init()
}

// NewScheduleForm builds the huh form bound to f. The hours field runs the
// engine's request validation so the form cannot be submitted while the
// request is invalid.
func NewScheduleForm(engine *scheduling.Engine, f *state.ScheduleFormModel) *huh.Form {
	groupOpts := make([]huh.Option[string], 0, len(engine.Groups()))
	for _, g := range engine.Groups() {
		groupOpts = append(groupOpts, huh.NewOption(g.Name, g.ID))
	}

	periodOpts := make([]huh.Option[scheduling.Period], 0, 3)
	for _, p := range scheduling.Periods() {
		periodOpts = append(periodOpts, huh.NewOption(fmt.Sprintf("%s (%s)", p, p.Window()), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Class group").
				Options(groupOpts...).
				Value(&f.GroupID),
			huh.NewSelect[string]().
				Title("Curricular unit").
				OptionsFunc(func() []huh.Option[string] {
					units := engine.UnitsForGroup(f.GroupID)
					opts := make([]huh.Option[string], 0, len(units))
					for _, u := range units {
						label := fmt.Sprintf("%s (%dh)", u.Name, u.TotalHours)
						opts = append(opts, huh.NewOption(label, u.ID))
					}
					return opts
				}, &f.GroupID).
				Value(&f.UnitID),
			huh.NewSelect[scheduling.Period]().
				Title("Period").
				Options(periodOpts...).
				Value(&f.Period),
			huh.NewInput().
				Title("Hours per session").
				Value(&f.Hours).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("hours must be a number")
					}
					typed := *f
					typed.Hours = s
					return engine.Validate(typed.Request())
				}),
		),
	).WithShowHelp(true)
}

// HandleSchedulingState drives the scheduling form. A failed submission keeps
// the form open with its values and shows the error.
func HandleSchedulingState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.ScheduleForm = nil
		closeSubState(m)
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	// A period switch may leave hours above the new ceiling
	m.ScheduleForm.ClampHours()

	switch m.Form.State {
	case huh.StateCompleted:
		req := m.ScheduleForm.Request()
		created, err := m.Engine.Submit(req)
		if err != nil {
			m.FormError = err.Error()
			m.Form.State = huh.StateNormal
			return cmd
		}
		unit, _ := m.Engine.Unit(req.UnitID)
		remaining := scheduling.Remaining(unit, req.Hours, len(created))
		m.ScheduleForm = nil
		closeSubState(m)
		m.Status = fmt.Sprintf("✓ Scheduled %d session(s) of %s, %dh left", len(created), unit.Name, remaining)
		m.Refresh()
	case huh.StateAborted:
		m.ScheduleForm = nil
		closeSubState(m)
	}
	return cmd
}

// OpenEditForm starts the edit form for one session.
func OpenEditForm(m *state.Model, s models.ClassSession) tea.Cmd {
	m.EditingSession = &s
	m.EditForm = &state.EditFormModel{
		Window: s.TimeWindow,
		Hours:  strconv.Itoa(s.Hours),
		Status: s.Status,
	}
	m.Form = NewEditForm(s, m.EditForm)
	openSubState(m, constants.StateEditSession)
	return m.Form.Init()
}

// NewEditForm offers the three period windows plus the session's current
// window when it is a custom one.
func NewEditForm(s models.ClassSession, f *state.EditFormModel) *huh.Form {
	var windowOpts []huh.Option[string]
	if _, ok := scheduling.PeriodForWindow(s.TimeWindow); !ok && s.TimeWindow != "" {
		windowOpts = append(windowOpts, huh.NewOption(s.TimeWindow+" (current)", s.TimeWindow))
	}
	for _, p := range scheduling.Periods() {
		windowOpts = append(windowOpts, huh.NewOption(fmt.Sprintf("%s (%s)", p.Window(), p), p.Window()))
	}

	statusOpts := make([]huh.Option[models.SessionStatus], 0, 3)
	for _, st := range models.SessionStatuses() {
		statusOpts = append(statusOpts, huh.NewOption(string(st), st))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Time window").
				Options(windowOpts...).
				Value(&f.Window),
			huh.NewInput().
				Title("Hours").
				Value(&f.Hours).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < constants.MinSessionHours || n > constants.MaxSessionHours {
						return fmt.Errorf("hours must be between %d and %d", constants.MinSessionHours, constants.MaxSessionHours)
					}
					return nil
				}),
			huh.NewSelect[models.SessionStatus]().
				Title("Status").
				Options(statusOpts...).
				Value(&f.Status),
		),
	).WithShowHelp(true)
}

// HandleEditSessionState drives the edit form.
func HandleEditSessionState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.EditingSession = nil
		closeSubState(m)
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	switch m.Form.State {
	case huh.StateCompleted:
		if err := m.Engine.EditSession(m.EditingSession.ID, m.EditForm.Patch()); err != nil {
			m.FormError = err.Error()
			m.Form.State = huh.StateNormal
			return cmd
		}
		m.EditingSession = nil
		closeSubState(m)
		m.Status = "✓ Session updated"
		m.Refresh()
	case huh.StateAborted:
		m.EditingSession = nil
		closeSubState(m)
	}
	return cmd
}

// ConfirmDeleteSession asks before removing a session.
func ConfirmDeleteSession(m *state.Model, s models.ClassSession) {
	engine := m.Engine
	m.PendingAction = &constants.ConfirmationMsg{
		Message: fmt.Sprintf("Delete %s (%s) on %s %s?", s.UnitName, s.GroupName, s.Date, s.TimeWindow),
		Action: func() tea.Cmd {
			return result("delete session", engine.DeleteSession(s.ID), "✓ Session deleted")
		},
	}
	openSubState(m, constants.StateConfirmDelete)
}
