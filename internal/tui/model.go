// Package tui is the interactive cronograma: a month calendar to select days
// and schedule sessions on them, plus the municipal holiday list.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/scheduling"
	"github.com/julianstephens/cronograma/internal/tui/state"
)

// Options picks what the TUI shows first.
type Options struct {
	GroupID string
	Year    int
	Month   time.Month
	Today   time.Time
}

type Model struct {
	state.Model
}

// NewModel wraps a loaded engine. A zero Options opens today's month with
// every group visible.
func NewModel(engine *scheduling.Engine, opts Options) Model {
	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	if opts.GroupID != "" {
		engine.SetGroupFilter(opts.GroupID)
	}

	m := Model{Model: state.New(engine, today)}
	if opts.Year != 0 && opts.Month != 0 && (opts.Year != today.Year() || opts.Month != today.Month()) {
		m.Calendar.SetMonth(opts.Year, opts.Month)
		m.RefreshConflicts()
	}
	return m
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(engine *scheduling.Engine, opts Options) error {
	_, err := tea.NewProgram(NewModel(engine, opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.Keys.Tab, m.Keys.Quit, m.Keys.Help}
	if m.State == constants.StateCalendar {
		ck := m.Calendar.Keys()
		keys = append(keys, ck.Select, ck.Toggle, ck.Schedule, ck.Edit, ck.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.Reload, m.Keys.Help, m.Keys.Quit}
	if m.State != constants.StateCalendar {
		return [][]key.Binding{global}
	}
	ck := m.Calendar.Keys()
	navigation := []key.Binding{ck.Up, ck.Down, ck.Left, ck.Right, ck.PrevMonth, ck.NextMonth, ck.Today}
	selection := []key.Binding{ck.Select, ck.Toggle, ck.Clear}
	actions := []key.Binding{ck.Schedule, ck.NextSession, ck.Edit, ck.Delete, ck.Holiday, ck.Group}
	return [][]key.Binding{global, navigation, selection, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
