// Package calendar is the month grid view of the cronograma TUI.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cal "github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/scheduling"
)

// Source is what the grid reads to render a month.
type Source interface {
	Classify(day time.Time) cal.Classification
	EventsForDay(day time.Time) []models.ClassSession
	Selection() *scheduling.Selection
}

type ScheduleMsg struct{}

type EditSessionMsg struct {
	Session models.ClassSession
}

type DeleteSessionMsg struct {
	Session models.ClassSession
}

type AddHolidayMsg struct {
	Date time.Time
}

type CycleGroupMsg struct{}

type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	PrevMonth   key.Binding
	NextMonth   key.Binding
	Today       key.Binding
	Select      key.Binding
	Toggle      key.Binding
	Clear       key.Binding
	NextSession key.Binding
	Schedule    key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Holiday     key.Binding
	Group       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevMonth:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Today:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select day")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "add/remove day")),
		Clear:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		NextSession: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next session")),
		Schedule:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "schedule")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit session")),
		Delete:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete session")),
		Holiday:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "add holiday")),
		Group:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "filter group")),
	}
}

type Model struct {
	src     Source
	keys    KeyMap
	year    int
	month   time.Month
	cursor  time.Time
	focused int
	width   int
	height  int
}

// New opens the grid on the month of today with the cursor on today.
func New(src Source, today time.Time) Model {
	today = cal.Midnight(today)
	return Model{
		src:    src,
		keys:   DefaultKeyMap(),
		year:   today.Year(),
		month:  today.Month(),
		cursor: today,
	}
}

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Cursor() time.Time { return m.cursor }

func (m Model) Month() (int, time.Month) { return m.year, m.month }

// SetMonth shows another month and moves the cursor to its first day.
func (m *Model) SetMonth(year int, month time.Month) {
	m.year, m.month = year, month
	m.cursor = time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	m.focused = 0
}

// Focused returns the highlighted session of the cursor day.
func (m Model) Focused() (models.ClassSession, bool) {
	events := m.src.EventsForDay(m.cursor)
	if len(events) == 0 {
		return models.ClassSession{}, false
	}
	return events[m.focused%len(events)], true
}

func (m *Model) moveTo(day time.Time) {
	m.cursor = cal.Midnight(day)
	m.year, m.month = m.cursor.Year(), m.cursor.Month()
	m.focused = 0
}

func (m *Model) shiftMonth(delta int) {
	y, mo := cal.ShiftMonth(m.year, m.month, delta)
	day := min(m.cursor.Day(), cal.DaysInMonth(y, mo))
	m.moveTo(time.Date(y, mo, day, 0, 0, 0, 0, time.Local))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveTo(m.cursor.AddDate(0, 0, -7))
	case key.Matches(keyMsg, m.keys.Down):
		m.moveTo(m.cursor.AddDate(0, 0, 7))
	case key.Matches(keyMsg, m.keys.Left):
		m.moveTo(m.cursor.AddDate(0, 0, -1))
	case key.Matches(keyMsg, m.keys.Right):
		m.moveTo(m.cursor.AddDate(0, 0, 1))
	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.shiftMonth(-1)
	case key.Matches(keyMsg, m.keys.NextMonth):
		m.shiftMonth(1)
	case key.Matches(keyMsg, m.keys.Today):
		m.moveTo(time.Now())
	case key.Matches(keyMsg, m.keys.Select):
		m.src.Selection().Click(m.cursor, false)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.src.Selection().Click(m.cursor, true)
	case key.Matches(keyMsg, m.keys.Clear):
		m.src.Selection().Clear()
	case key.Matches(keyMsg, m.keys.NextSession):
		if n := len(m.src.EventsForDay(m.cursor)); n > 0 {
			m.focused = (m.focused + 1) % n
		}
	case key.Matches(keyMsg, m.keys.Schedule):
		return m, func() tea.Msg { return ScheduleMsg{} }
	case key.Matches(keyMsg, m.keys.Edit):
		if s, ok := m.Focused(); ok {
			return m, func() tea.Msg { return EditSessionMsg{Session: s} }
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if s, ok := m.Focused(); ok {
			return m, func() tea.Msg { return DeleteSessionMsg{Session: s} }
		}
	case key.Matches(keyMsg, m.keys.Holiday):
		day := m.cursor
		return m, func() tea.Msg { return AddHolidayMsg{Date: day} }
	case key.Matches(keyMsg, m.keys.Group):
		return m, func() tea.Msg { return CycleGroupMsg{} }
	}
	return m, nil
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	cursor := m.cursor
	grid := RenderMonth(m.src, m.year, m.month, &cursor)
	return lipgloss.JoinVertical(lipgloss.Left, grid, "", m.viewDay(), m.viewSelection())
}

func (m Model) viewDay() string {
	var b strings.Builder
	c := m.src.Classify(m.cursor)
	b.WriteString(titleStyle.Render(m.cursor.Format("Monday, 02 Jan 2006")))
	if c.IsHoliday {
		b.WriteString("  " + holidayStyle.Render(c.HolidayLabel))
	}
	b.WriteString("\n")

	events := m.src.EventsForDay(m.cursor)
	if len(events) == 0 {
		b.WriteString(mutedStyle.Render("  No sessions"))
		return b.String()
	}
	for i, s := range events {
		line := fmt.Sprintf("%s  %s (%s)  %dh  %s", s.TimeWindow, s.UnitName, s.GroupName, s.Hours, s.Status)
		if i == m.focused%len(events) {
			b.WriteString(focusStyle.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(events)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewSelection() string {
	sel := m.src.Selection()
	switch n := sel.Count(); {
	case n == 0:
		return ""
	case n == 1:
		day := sel.Days()[0]
		return "\n" + selectedStyle.Render(" selected ") + " " + day.Format("02/01/2006")
	default:
		return "\n" + multiStyle.Render(" selected ") + fmt.Sprintf(" %d days", n)
	}
}

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderMonth draws the month grid with weekday headers. Weekends are dimmed,
// holidays are red, selected days are highlighted and the session count of
// each day follows its number. cursor may be nil.
func RenderMonth(src Source, year int, month time.Month, cursor *time.Time) string {
	var rows []string
	title := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
	rows = append(rows, titleStyle.Width(7*cellWidth).Align(lipgloss.Center).Render(title))

	header := make([]string, len(weekdayHeader))
	for i, d := range weekdayHeader {
		header[i] = headerStyle.Render(d)
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	sel := src.Selection()
	for _, week := range cal.Weeks(cal.Grid(year, month)) {
		cells := make([]string, len(week))
		for i, c := range week {
			if c.Blank {
				cells[i] = cellStyle.Render("")
				continue
			}
			cells[i] = renderCell(src, sel, c.Day, cursor != nil && cal.Midnight(*cursor).Equal(c.Day))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(src Source, sel *scheduling.Selection, day time.Time, isCursor bool) string {
	text := fmt.Sprintf("%2d", day.Day())
	if n := len(src.EventsForDay(day)); n > 0 {
		text += fmt.Sprintf("·%d", n)
	}

	style := cellStyle
	c := src.Classify(day)
	switch {
	case c.IsHoliday:
		style = style.Foreground(holidayColor)
	case c.IsWeekend:
		style = style.Foreground(weekendColor)
	}
	switch {
	case sel.IsSelected(day):
		style = style.Background(selectedColor)
	case sel.IsMultiSelected(day):
		style = style.Background(multiColor)
	}
	if isCursor {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(text)
}
