package state

import (
	"strconv"
	"strings"

	hol "github.com/julianstephens/cronograma/internal/holidays"
	"github.com/julianstephens/cronograma/internal/validation"
)

// RefreshConflicts audits the cached schedule for the month on screen.
func (m *Model) RefreshConflicts() {
	year, month := m.Calendar.Month()
	result := validation.New().ValidateForMonth(validation.Input{
		Groups:    m.Engine.Groups(),
		Units:     m.Engine.Units(),
		Sessions:  m.Engine.Sessions(),
		National:  m.Engine.National(),
		Municipal: hol.Municipal(m.Engine.MunicipalHolidays()),
	}, year, month)
	m.Conflicts = result.Conflicts
}

func parseHours(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
