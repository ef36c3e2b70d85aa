package scheduling

import (
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/utils"
)

// Selection holds either one selected day or a set of multi-selected days,
// never both. Days are identified by the epoch milliseconds of their local
// midnight, so two time.Time values for the same date are the same member.
type Selection struct {
	single *time.Time
	multi  map[int64]time.Time
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{multi: make(map[int64]time.Time)}
}

// DayID is the identity used for set membership.
func DayID(day time.Time) int64 {
	return calendar.Midnight(day).UnixMilli()
}

// Click applies one click. Without the modifier the day becomes the only
// selection; with it the day's membership in the multi-selection flips.
// Either way the other mode is discarded.
func (s *Selection) Click(day time.Time, modifier bool) {
	day = calendar.Midnight(day)

	if !modifier {
		s.single = &day
		clear(s.multi)
		return
	}

	s.single = nil
	id := DayID(day)
	if _, ok := s.multi[id]; ok {
		delete(s.multi, id)
		return
	}
	s.multi[id] = day
}

// Clear empties both modes.
func (s *Selection) Clear() {
	s.single = nil
	clear(s.multi)
}

// Single returns the single-selected day, if that mode is active.
func (s *Selection) Single() (time.Time, bool) {
	if s.single == nil {
		return time.Time{}, false
	}
	return *s.single, true
}

// IsSelected reports whether day is the single selection.
func (s *Selection) IsSelected(day time.Time) bool {
	return s.single != nil && DayID(*s.single) == DayID(day)
}

// IsMultiSelected reports whether day is in the multi-selection.
func (s *Selection) IsMultiSelected(day time.Time) bool {
	_, ok := s.multi[DayID(day)]
	return ok
}

// Count is the number of days a submission would cover.
func (s *Selection) Count() int {
	if s.single != nil {
		return 1
	}
	return len(s.multi)
}

// Days returns the selected days in ascending order.
func (s *Selection) Days() []time.Time {
	if s.single != nil {
		return []time.Time{*s.single}
	}

	ids := make([]int64, 0, len(s.multi))
	for id := range s.multi {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	days := make([]time.Time, 0, len(ids))
	for _, id := range ids {
		days = append(days, s.multi[id])
	}
	return days
}

// SelectRule toggles every occurrence of an RRULE between from and until into
// the multi-selection. It returns how many days were toggled.
func (s *Selection) SelectRule(rule string, from, until time.Time) (int, error) {
	days, err := utils.ExpandRule(rule, from, until)
	if err != nil {
		return 0, fmt.Errorf("failed to expand rule: %w", err)
	}
	for _, d := range days {
		s.Click(d, true)
	}
	return len(days), nil
}
