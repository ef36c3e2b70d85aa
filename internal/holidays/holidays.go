// Package holidays computes Brazilian national holidays and indexes municipal ones
// under the same date key the calendar grid uses.
package holidays

import (
	"fmt"
	"time"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/models"
)

// Map associates a date key with a display label.
type Map map[string]string

// Lookup returns the label for a calendar day, if any.
func (m Map) Lookup(day time.Time) (string, bool) {
	label, ok := m[DateKey(day)]
	return label, ok
}

type fixedHoliday struct {
	month time.Month
	day   int
	label string
}

var fixed = []fixedHoliday{
	{time.January, 1, "🎉 Ano Novo"},
	{time.April, 21, "🎖 Tiradentes"},
	{time.May, 1, "👷 Dia do Trabalho"},
	{time.September, 7, "🇧🇷 Independência do Brasil"},
	{time.October, 12, "🙏 Nossa Senhora Aparecida"},
	{time.November, 2, "🕯 Finados"},
	{time.November, 15, "🏛 Proclamação da República"},
	{time.December, 25, "🎄 Natal"},
}

type movableHoliday struct {
	offset int // days relative to Easter Sunday
	label  string
}

var movable = []movableHoliday{
	{0, "🐣 Páscoa"},
	{-2, "✝ Sexta-feira Santa"},
	{-47, "🎭 Carnaval"},
	{60, "🍞 Corpus Christi"},
}

// DateKey formats a day as "<year>-<zero based month>-<day>", e.g. "2025-0-1" for New Year.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month())-1, t.Day())
}

// ComputeEaster returns Easter Sunday of the given Gregorian year at local midnight.
func ComputeEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// BuildHolidayMap returns the national holidays of every year from startYear to
// startYear+yearSpan inclusive. The result depends only on its arguments.
func BuildHolidayMap(startYear, yearSpan int) Map {
	holidays := make(Map, (yearSpan+1)*(len(fixed)+len(movable)))

	for year := startYear; year <= startYear+yearSpan; year++ {
		for _, f := range fixed {
			holidays[DateKey(time.Date(year, f.month, f.day, 0, 0, 0, 0, time.Local))] = f.label
		}

		easter := ComputeEaster(year)
		for _, mv := range movable {
			holidays[DateKey(easter.AddDate(0, 0, mv.offset))] = mv.label
		}
	}

	return holidays
}

// National returns the holiday map for now's year plus yearSpan following years.
// A span below MinYearSpan is raised to it.
func National(now time.Time, yearSpan int) Map {
	if yearSpan < constants.MinYearSpan {
		yearSpan = constants.MinYearSpan
	}
	return BuildHolidayMap(now.Year(), yearSpan)
}

// Municipal indexes stored municipal holidays. Rows with an unparsable date are skipped.
func Municipal(list []models.MunicipalHoliday) Map {
	holidays := make(Map, len(list))
	for _, h := range list {
		day, err := time.ParseInLocation(constants.DateFormat, h.Date, time.Local)
		if err != nil {
			continue
		}
		holidays[DateKey(day)] = h.Name
	}
	return holidays
}
