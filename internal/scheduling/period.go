package scheduling

import (
	"fmt"
	"strings"
)

// Period is one of the fixed daily shifts a session can be held in.
type Period string

const (
	Matutino   Period = "Matutino"
	Vespertino Period = "Vespertino"
	Noturno    Period = "Noturno"
)

type periodSpec struct {
	ceiling int
	window  string
}

var periodSpecs = map[Period]periodSpec{
	Matutino:   {ceiling: 4, window: "08:00-12:00"},
	Vespertino: {ceiling: 4, window: "14:00-18:00"},
	Noturno:    {ceiling: 3, window: "19:00-22:00"},
}

// Periods lists the shifts in the order they happen.
func Periods() []Period {
	return []Period{Matutino, Vespertino, Noturno}
}

// ParsePeriod is case-insensitive.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods() {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid period %q (use Matutino, Vespertino or Noturno)", s)
}

// Ceiling is the most hours one session may take in this period.
func (p Period) Ceiling() int {
	return periodSpecs[p].ceiling
}

// Window is the clock range label stored on sessions.
func (p Period) Window() string {
	return periodSpecs[p].window
}

// PeriodForWindow maps a stored window label back to its period.
func PeriodForWindow(window string) (Period, bool) {
	for p, spec := range periodSpecs {
		if spec.window == window {
			return p, true
		}
	}
	return "", false
}

// ClampHours lowers hours to the period ceiling.
func ClampHours(hours int, p Period) int {
	if c := p.Ceiling(); hours > c {
		return c
	}
	return hours
}
