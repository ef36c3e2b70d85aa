package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/cronograma/internal/constants"
	apperrors "github.com/julianstephens/cronograma/internal/errors"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string
	switch m.State {
	case constants.StateCalendar:
		content = docStyle.Render(m.Calendar.View())
	case constants.StateHolidays:
		content = docStyle.Render(m.Holidays.View())
	case constants.StateScheduling:
		content = docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.viewScheduleSummary(), "", m.Form.View()))
	case constants.StateEditSession:
		content = docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.viewEditHeader(), "", m.Form.View()))
	case constants.StateAddHoliday:
		content = docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("New municipal holiday"), "", m.Form.View()))
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateError:
		content = m.viewError()
	}

	var banner string
	if len(m.Conflicts) > 0 && m.State == constants.StateCalendar {
		banner = m.viewConflictBanner()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.viewStatus(),
		m.Help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, tab := range []struct {
		title string
		state constants.SessionState
	}{
		{"Calendar", constants.StateCalendar},
		{"Holidays", constants.StateHolidays},
	} {
		active := m.State == tab.state || (m.State >= constants.StateScheduling && m.PreviousState == tab.state)
		if active {
			tabs = append(tabs, activeTabStyle.Render(tab.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tab.title))
		}
	}

	filter := "all groups"
	if g, ok := m.Engine.Group(m.Engine.GroupFilter()); ok {
		filter = g.Name
	}
	tabs = append(tabs, inactiveTabStyle.Render("· "+filter))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConflictBanner() string {
	desc := m.Conflicts[0].Description
	if n := len(m.Conflicts); n > 1 {
		desc = fmt.Sprintf("%s (+%d more, run 'validate' for the full report)", desc, n-1)
	}
	return warningStyle.Render("⚠ " + desc)
}

func (m Model) viewScheduleSummary() string {
	f := m.ScheduleForm
	if f == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Schedule sessions"))
	b.WriteString("\n")

	dates := make([]string, 0, len(f.Days))
	for _, d := range f.Days {
		dates = append(dates, d.Format("02/01"))
	}
	fmt.Fprintf(&b, "Days: %d (%s)\n", len(f.Days), strings.Join(dates, ", "))

	req := f.Request()
	if remaining, ok := m.Engine.Remaining(req); ok {
		unit, _ := m.Engine.Unit(req.UnitID)
		line := fmt.Sprintf("Remaining after this request: %dh of %dh", remaining, unit.TotalHours)
		if remaining < 0 {
			line = dangerStyle.Render(line)
		}
		b.WriteString(line)
	} else {
		b.WriteString(mutedStyle.Render("Choose a curricular unit to see the remaining hours"))
	}
	return b.String()
}

func (m Model) viewEditHeader() string {
	s := m.EditingSession
	if s == nil {
		return ""
	}
	return titleStyle.Render(fmt.Sprintf("Edit %s (%s) on %s", s.UnitName, s.GroupName, s.Date))
}

func (m Model) viewConfirmDelete() string {
	msg := "Are you sure?"
	if m.PendingAction != nil {
		msg = m.PendingAction.Message
	}
	return lipgloss.Place(m.Width, max(m.Height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(msg),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewError() string {
	msg := "unknown error"
	switch {
	case m.Err != nil && m.ErrOp != "":
		msg = apperrors.FormatWrite(m.ErrOp, m.Err)
	case m.Err != nil:
		msg = apperrors.Format(m.Err)
	}
	return lipgloss.Place(m.Width, max(m.Height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("❌ "+msg),
			"",
			mutedStyle.Render("press any key to continue"),
		),
	)
}

func (m Model) viewStatus() string {
	if m.FormError != "" {
		return dangerStyle.Render("❌ " + m.FormError)
	}
	if m.Status != "" {
		return statusStyle.Render(m.Status)
	}
	return ""
}
