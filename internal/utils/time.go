package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/cronograma/internal/constants"
)

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseWindow splits a session window label such as "08:00-12:00" into its
// start and end clock times.
func ParseWindow(window string) (start, end time.Time, err error) {
	parts := strings.Split(window, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid time window %q (expected HH:MM-HH:MM)", window)
	}
	start, err = ParseTime(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window start in %q: %w", window, err)
	}
	end, err = ParseTime(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window end in %q: %w", window, err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("time window %q ends before it starts", window)
	}
	return start, end, nil
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and a clock time
// into a single time.Time in the specified timezone.
func CombineDateAndTime(dateStr string, clock time.Time, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		loc,
	), nil
}
