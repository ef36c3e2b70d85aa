package holidays

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	hol "github.com/julianstephens/cronograma/internal/holidays"
	"github.com/julianstephens/cronograma/internal/models"
)

func TestItemDescription(t *testing.T) {
	national := hol.BuildHolidayMap(2025, 1)
	m := New([]models.MunicipalHoliday{
		{Date: "2025-01-25", Name: "Aniversário da cidade"},
		{Date: "2025-11-15", Name: "Feriado local"},
	}, national, 80, 20)

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}

	local := m.list.Items()[0].(Item)
	if local.National != "" {
		t.Errorf("unexpected national overlap %q", local.National)
	}
	if got := local.Description(); got != "Saturday" {
		t.Errorf("Description() = %q, want Saturday", got)
	}

	overlap := m.list.Items()[1].(Item)
	if overlap.National == "" {
		t.Error("2025-11-15 should overlap a national holiday")
	}
}

func TestDeleteEmitsSelectedHoliday(t *testing.T) {
	h := models.MunicipalHoliday{Date: "2025-01-25", Name: "Aniversário da cidade"}
	m := New([]models.MunicipalHoliday{h}, hol.Map{}, 80, 20)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil {
		t.Fatal("delete key returned no command")
	}
	msg, ok := cmd().(DeleteHolidayMsg)
	if !ok || msg.Holiday != h {
		t.Errorf("message = %#v, want DeleteHolidayMsg for %v", msg, h)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if _, ok := cmd().(AddHolidayMsg); !ok {
		t.Error("add key should emit AddHolidayMsg")
	}
}
