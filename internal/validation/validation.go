// Package validation audits stored schedules for conflicts the scheduling
// form cannot catch on its own.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/holidays"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictOverlappingSessions ConflictType = "overlapping_sessions"
	ConflictOverBudget          ConflictType = "over_budget"
	ConflictHolidaySession      ConflictType = "holiday_session"
	ConflictInvalidDateTime     ConflictType = "invalid_datetime"
	ConflictDuplicateGroupName  ConflictType = "duplicate_group_name"
	ConflictOrphanSession       ConflictType = "orphan_session"
)

// Conflict represents a detected problem in the stored schedule
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	SessionIDs  []string // sessions involved, if any
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns how many conflicts of the given type were found.
func (vr *ValidationResult) Count(t ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Input is the snapshot a validator inspects.
type Input struct {
	Groups    []models.ClassGroup
	Units     []models.CurricularUnit
	Sessions  []models.ClassSession
	National  holidays.Map
	Municipal holidays.Map
}

// Validator checks a schedule snapshot for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// Validate runs every check and returns conflicts ordered by date.
func (v *Validator) Validate(in Input) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	result.Conflicts = append(result.Conflicts, v.checkGroupNames(in.Groups)...)
	result.Conflicts = append(result.Conflicts, v.checkReferences(in)...)

	valid := make([]models.ClassSession, 0, len(in.Sessions))
	for _, s := range in.Sessions {
		if c, ok := checkDateTime(s); !ok {
			result.Conflicts = append(result.Conflicts, c)
			continue
		}
		valid = append(valid, s)
	}

	result.Conflicts = append(result.Conflicts, v.checkOverlaps(valid)...)
	result.Conflicts = append(result.Conflicts, v.checkHolidays(valid, in.National, in.Municipal)...)
	result.Conflicts = append(result.Conflicts, v.checkBudgets(in.Units, in.Sessions)...)

	sort.SliceStable(result.Conflicts, func(i, j int) bool {
		return result.Conflicts[i].Date < result.Conflicts[j].Date
	})
	return result
}

func (v *Validator) checkGroupNames(groups []models.ClassGroup) []Conflict {
	var conflicts []Conflict
	byName := make(map[string][]string)
	var names []string
	for _, g := range groups {
		key := strings.ToLower(strings.TrimSpace(g.Name))
		if key == "" {
			continue
		}
		if _, seen := byName[key]; !seen {
			names = append(names, key)
		}
		byName[key] = append(byName[key], g.ID)
	}
	for _, name := range names {
		if ids := byName[name]; len(ids) > 1 {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateGroupName,
				Description: fmt.Sprintf("Duplicate class group name: %q (IDs: %v)", name, ids),
			})
		}
	}
	return conflicts
}

func (v *Validator) checkReferences(in Input) []Conflict {
	groups := make(map[string]bool, len(in.Groups))
	for _, g := range in.Groups {
		groups[g.ID] = true
	}
	units := make(map[string]bool, len(in.Units))
	for _, u := range in.Units {
		units[u.ID] = true
	}

	var conflicts []Conflict
	for _, s := range in.Sessions {
		if groups[s.GroupID] && units[s.UnitID] {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Type:        ConflictOrphanSession,
			Description: fmt.Sprintf("Session %s on %s references a missing class group or unit", s.ID, s.Date),
			Date:        s.Date,
			SessionIDs:  []string{s.ID},
		})
	}
	return conflicts
}

func checkDateTime(s models.ClassSession) (Conflict, bool) {
	if _, err := calendar.ParseDay(s.Date); err != nil {
		return Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Session %s has invalid date %q", s.ID, s.Date),
			SessionIDs:  []string{s.ID},
		}, false
	}
	if _, _, err := utils.ParseWindow(s.TimeWindow); err != nil {
		return Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Session %s on %s has invalid time window %q", s.ID, s.Date, s.TimeWindow),
			Date:        s.Date,
			SessionIDs:  []string{s.ID},
		}, false
	}
	return Conflict{}, true
}

// checkOverlaps reports sessions of one class group whose windows intersect
// on the same day. Cancelled sessions never conflict.
func (v *Validator) checkOverlaps(sessions []models.ClassSession) []Conflict {
	type key struct{ group, date string }
	buckets := make(map[key][]models.ClassSession)
	var keys []key
	for _, s := range sessions {
		if s.Status == models.SessionCancelled {
			continue
		}
		k := key{s.GroupID, s.Date}
		if _, seen := buckets[k]; !seen {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], s)
	}

	var conflicts []Conflict
	for _, k := range keys {
		list := buckets[k]
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if !windowsOverlap(list[i].TimeWindow, list[j].TimeWindow) {
					continue
				}
				conflicts = append(conflicts, Conflict{
					Type: ConflictOverlappingSessions,
					Description: fmt.Sprintf("Overlapping sessions for %s on %s: %s and %s",
						groupLabel(list[i]), k.date, list[i].TimeWindow, list[j].TimeWindow),
					Date:       k.date,
					SessionIDs: []string{list[i].ID, list[j].ID},
				})
			}
		}
	}
	return conflicts
}

func windowsOverlap(a, b string) bool {
	aStart, aEnd, err := utils.ParseWindow(a)
	if err != nil {
		return false
	}
	bStart, bEnd, err := utils.ParseWindow(b)
	if err != nil {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func (v *Validator) checkHolidays(sessions []models.ClassSession, national, municipal holidays.Map) []Conflict {
	var conflicts []Conflict
	for _, s := range sessions {
		if s.Status == models.SessionCancelled {
			continue
		}
		day, _ := calendar.ParseDay(s.Date)
		cls := calendar.ClassifyDay(day, national, municipal)
		if !cls.IsHoliday {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Type:        ConflictHolidaySession,
			Description: fmt.Sprintf("Session for %s on %s falls on a holiday (%s)", groupLabel(s), s.Date, cls.HolidayLabel),
			Date:        s.Date,
			SessionIDs:  []string{s.ID},
		})
	}
	return conflicts
}

// checkBudgets compares non-cancelled hours against each unit's ceiling.
// Scheduling only checks one request at a time, so this is where cumulative
// overruns surface.
func (v *Validator) checkBudgets(units []models.CurricularUnit, sessions []models.ClassSession) []Conflict {
	consumed := make(map[string]int)
	for _, s := range sessions {
		if s.Status != models.SessionCancelled {
			consumed[s.UnitID] += s.Hours
		}
	}

	var conflicts []Conflict
	for _, u := range units {
		if used := consumed[u.ID]; used > u.TotalHours {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictOverBudget,
				Description: fmt.Sprintf("Curricular unit %q has %dh scheduled for a %dh budget", u.Name, used, u.TotalHours),
			})
		}
	}
	return conflicts
}

func groupLabel(s models.ClassSession) string {
	if s.GroupName != "" {
		return s.GroupName
	}
	return s.GroupID
}

// ValidateForMonth restricts sessions to one month before validating.
func (v *Validator) ValidateForMonth(in Input, year int, month time.Month) ValidationResult {
	from, until := calendar.MonthBounds(year, month)
	scoped := in
	scoped.Sessions = nil
	for _, s := range in.Sessions {
		if s.Date >= from && s.Date <= until {
			scoped.Sessions = append(scoped.Sessions, s)
		}
	}
	return v.Validate(scoped)
}
