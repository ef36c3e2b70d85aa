// Package calendar lays out a month as a grid of day cells and classifies each day
// against the holiday partitions and the session projection.
package calendar

import (
	"iter"
	"time"

	"github.com/julianstephens/cronograma/internal/holidays"
	"github.com/julianstephens/cronograma/internal/models"
)

// Cell is one slot of the month grid. Blank cells pad the first week.
type Cell struct {
	Day   time.Time
	Blank bool
}

// Classification describes how a day renders.
type Classification struct {
	IsWeekend    bool
	IsHoliday    bool
	HolidayLabel string
}

// DaysInMonth uses day zero of the following month, which normalizes to the last
// day of the requested one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// MonthGrid yields one blank per weekday before the 1st (Sunday = 0) and then
// every day of the month. Each range over the sequence starts again from the top.
func MonthGrid(year int, month time.Month) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		for range int(first.Weekday()) {
			if !yield(Cell{Blank: true}) {
				return
			}
		}
		for d := 1; d <= DaysInMonth(year, month); d++ {
			if !yield(Cell{Day: time.Date(year, month, d, 0, 0, 0, 0, time.Local)}) {
				return
			}
		}
	}
}

// Grid collects MonthGrid.
func Grid(year int, month time.Month) []Cell {
	var cells []Cell
	for c := range MonthGrid(year, month) {
		cells = append(cells, c)
	}
	return cells
}

// Weeks splits cells into rows of seven, padding the last row with blanks.
func Weeks(cells []Cell) [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(cells); i += 7 {
		end := min(i+7, len(cells))
		row := make([]Cell, 7)
		copy(row, cells[i:end])
		for j := end - i; j < 7; j++ {
			row[j] = Cell{Blank: true}
		}
		rows = append(rows, row)
	}
	return rows
}

// ClassifyDay marks weekends and holidays. When both partitions name the day the
// national label is shown.
func ClassifyDay(day time.Time, national, municipal holidays.Map) Classification {
	wd := day.Weekday()
	c := Classification{IsWeekend: wd == time.Saturday || wd == time.Sunday}

	if label, ok := national.Lookup(day); ok {
		c.IsHoliday = true
		c.HolidayLabel = label
	} else if label, ok := municipal.Lookup(day); ok {
		c.IsHoliday = true
		c.HolidayLabel = label
	}
	return c
}

// IndexSessions builds the date-keyed projection used by EventsForDay.
// Sessions with an unparsable date are dropped.
func IndexSessions(sessions []models.ClassSession) map[string][]models.ClassSession {
	byKey := make(map[string][]models.ClassSession)
	for _, s := range sessions {
		day, err := ParseDay(s.Date)
		if err != nil {
			continue
		}
		key := holidays.DateKey(day)
		byKey[key] = append(byKey[key], s)
	}
	return byKey
}

// EventsForDay returns the sessions held on day, or nil.
func EventsForDay(day time.Time, byKey map[string][]models.ClassSession) []models.ClassSession {
	return byKey[holidays.DateKey(day)]
}
