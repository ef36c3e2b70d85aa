package holidays

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cronograma/internal/calendar"
	hol "github.com/julianstephens/cronograma/internal/holidays"
	"github.com/julianstephens/cronograma/internal/models"
)

type AddHolidayMsg struct{}

type DeleteHolidayMsg struct {
	Holiday models.MunicipalHoliday
}

type Item struct {
	Holiday  models.MunicipalHoliday
	National string
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s", i.Holiday.Date, i.Holiday.Name)
}

func (i Item) Description() string {
	day, err := calendar.ParseDay(i.Holiday.Date)
	if err != nil {
		return "invalid date"
	}
	desc := day.Weekday().String()
	if i.National != "" {
		desc += fmt.Sprintf(" · also national: %s", i.National)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Holiday.Name }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.MunicipalHoliday, national hol.Map, width, height int) Model {
	l := list.New(items(entries, national), list.NewDefaultDelegate(), width, height)
	l.Title = "Municipal holidays"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func items(entries []models.MunicipalHoliday, national hol.Map) []list.Item {
	out := make([]list.Item, len(entries))
	for i, h := range entries {
		item := Item{Holiday: h}
		if day, err := calendar.ParseDay(h.Date); err == nil {
			item.National, _ = national.Lookup(day)
		}
		out[i] = item
	}
	return out
}

func (m *Model) SetHolidays(entries []models.MunicipalHoliday, national hol.Map) {
	m.list.SetItems(items(entries, national))
}

func (m Model) Len() int { return len(m.list.Items()) }

// Filtering reports whether the list is capturing keys for its filter.
func (m Model) Filtering() bool { return m.list.FilterState() == list.Filtering }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHolidayMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return DeleteHolidayMsg{Holiday: item.Holiday}
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No municipal holidays. Press a to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
