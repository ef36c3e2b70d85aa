package calendar

import (
	"time"

	"github.com/julianstephens/cronograma/internal/constants"
)

// ParseDay reads a YYYY-MM-DD string as local midnight.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, s, time.Local)
}

// ParseMonth reads a YYYY-MM string. An empty string means the month of now.
func ParseMonth(s string, now time.Time) (int, time.Month, error) {
	if s == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.ParseInLocation(constants.MonthFormat, s, time.Local)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

// Midnight drops the clock part of t in its own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ShiftMonth moves (year, month) by delta months.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.Local)
	return t.Year(), t.Month()
}

// MonthBounds returns the first and last day of a month as YYYY-MM-DD strings.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.Local)
	return first.Format(constants.DateFormat), last.Format(constants.DateFormat)
}
