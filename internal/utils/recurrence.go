package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// MaxRuleOccurrences bounds how many days one rule may select.
const MaxRuleOccurrences = 366

// ExpandRule returns the local-midnight days an RFC 5545 recurrence rule
// produces between from and until, both inclusive. The rule starts at from
// unless it carries its own DTSTART.
func ExpandRule(rule string, from, until time.Time) ([]time.Time, error) {
	rule = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:"))
	if rule == "" {
		return nil, errors.New("recurrence rule cannot be empty")
	}
	if until.Before(from) {
		return nil, fmt.Errorf("end date %s is before start date %s", until.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule %q: %w", rule, err)
	}
	if !strings.Contains(strings.ToUpper(rule), "DTSTART") {
		r.DTStart(from)
	}

	// until is a date; include every occurrence on that day
	end := time.Date(until.Year(), until.Month(), until.Day(), 23, 59, 59, 0, until.Location())
	occurrences := r.Between(from, end, true)
	if len(occurrences) > MaxRuleOccurrences {
		return nil, fmt.Errorf("recurrence rule selects %d days, more than %d", len(occurrences), MaxRuleOccurrences)
	}

	days := make([]time.Time, 0, len(occurrences))
	for _, occ := range occurrences {
		occ = occ.In(from.Location())
		days = append(days, time.Date(occ.Year(), occ.Month(), occ.Day(), 0, 0, 0, 0, from.Location()))
	}
	return days, nil
}
