package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/cronograma/internal/holidays"
	"github.com/julianstephens/cronograma/internal/models"
)

func baseInput() Input {
	return Input{
		Groups: []models.ClassGroup{
			{ID: "g1", Name: "INF-A", CourseID: "c1"},
			{ID: "g2", Name: "INF-B", CourseID: "c1"},
		},
		Units: []models.CurricularUnit{
			{ID: "u1", Name: "Redes", TotalHours: 8, CourseID: "c1"},
		},
		National:  holidays.BuildHolidayMap(2025, 1),
		Municipal: holidays.Map{},
	}
}

func session(id, group, date, window string, hours int) models.ClassSession {
	return models.ClassSession{
		ID: id, GroupID: group, UnitID: "u1", Date: date,
		TimeWindow: window, Hours: hours, Status: models.SessionScheduled,
	}
}

func TestValidate_CleanSchedule(t *testing.T) {
	in := baseInput()
	in.Sessions = []models.ClassSession{
		session("a", "g1", "2025-03-10", "08:00-12:00", 4),
		session("b", "g1", "2025-03-10", "14:00-18:00", 2),
		session("c", "g2", "2025-03-10", "08:00-12:00", 2),
	}

	result := New().Validate(in)
	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got: %s", result.FormatReport())
	}
	if got := result.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", got)
	}
}

func TestValidate_DetectsOverlap(t *testing.T) {
	in := baseInput()
	in.Sessions = []models.ClassSession{
		session("a", "g1", "2025-03-10", "08:00-12:00", 2),
		session("b", "g1", "2025-03-10", "10:00-11:00", 1),
	}

	result := New().Validate(in)
	if result.Count(ConflictOverlappingSessions) != 1 {
		t.Fatalf("Expected one overlap, got: %s", result.FormatReport())
	}
	if ids := result.Conflicts[0].SessionIDs; len(ids) != 2 {
		t.Errorf("SessionIDs = %v, want both sessions", ids)
	}
}

func TestValidate_CancelledNeverConflicts(t *testing.T) {
	in := baseInput()
	cancelled := session("b", "g1", "2025-03-10", "08:00-12:00", 4)
	cancelled.Status = models.SessionCancelled
	holiday := session("c", "g1", "2025-04-21", "08:00-12:00", 4)
	holiday.Status = models.SessionCancelled
	in.Sessions = []models.ClassSession{
		session("a", "g1", "2025-03-10", "08:00-12:00", 4),
		cancelled,
		holiday,
	}

	result := New().Validate(in)
	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidate_HolidaySessions(t *testing.T) {
	in := baseInput()
	in.Municipal = holidays.Municipal([]models.MunicipalHoliday{{Date: "2025-01-25", Name: "Aniversário"}})
	in.Sessions = []models.ClassSession{
		session("a", "g1", "2025-04-21", "08:00-12:00", 2), // Tiradentes
		session("b", "g2", "2025-01-25", "08:00-12:00", 2),
	}

	result := New().Validate(in)
	if got := result.Count(ConflictHolidaySession); got != 2 {
		t.Fatalf("holiday conflicts = %d, want 2: %s", got, result.FormatReport())
	}
	if !strings.Contains(result.FormatReport(), "Aniversário") {
		t.Errorf("report should name the municipal holiday:\n%s", result.FormatReport())
	}
}

func TestValidate_OverBudget(t *testing.T) {
	in := baseInput()
	in.Sessions = []models.ClassSession{
		session("a", "g1", "2025-03-10", "08:00-12:00", 4),
		session("b", "g1", "2025-03-11", "08:00-12:00", 4),
		session("c", "g2", "2025-03-12", "08:00-12:00", 2),
	}

	result := New().Validate(in)
	if result.Count(ConflictOverBudget) != 1 {
		t.Fatalf("Expected budget conflict, got: %s", result.FormatReport())
	}
	if !strings.Contains(result.Conflicts[0].Description, "10h scheduled for a 8h budget") {
		t.Errorf("Description = %q", result.Conflicts[0].Description)
	}
}

func TestValidate_InvalidAndOrphans(t *testing.T) {
	in := baseInput()
	in.Sessions = []models.ClassSession{
		session("a", "g1", "2025-13-40", "08:00-12:00", 2),
		session("b", "g1", "2025-03-10", "12:00-08:00", 2),
		session("c", "gone", "2025-03-11", "08:00-12:00", 2),
	}

	result := New().Validate(in)
	if got := result.Count(ConflictInvalidDateTime); got != 2 {
		t.Errorf("invalid datetime conflicts = %d, want 2", got)
	}
	if got := result.Count(ConflictOrphanSession); got != 1 {
		t.Errorf("orphan conflicts = %d, want 1", got)
	}
}

func TestValidate_DuplicateGroupNames(t *testing.T) {
	in := baseInput()
	in.Groups = append(in.Groups, models.ClassGroup{ID: "g3", Name: " inf-a ", CourseID: "c1"})

	result := New().Validate(in)
	if result.Count(ConflictDuplicateGroupName) != 1 {
		t.Errorf("Expected duplicate name conflict, got: %s", result.FormatReport())
	}
}

func TestValidateForMonth(t *testing.T) {
	in := baseInput()
	in.Sessions = []models.ClassSession{
		session("a", "g1", "2025-03-10", "08:00-12:00", 2),
		session("b", "g1", "2025-03-10", "09:00-10:00", 1),
		session("c", "g1", "2025-04-21", "08:00-12:00", 2),
	}

	result := New().ValidateForMonth(in, 2025, time.April)
	if result.Count(ConflictOverlappingSessions) != 0 {
		t.Errorf("March overlap leaked into April: %s", result.FormatReport())
	}
	if result.Count(ConflictHolidaySession) != 1 {
		t.Errorf("Expected the Tiradentes session, got: %s", result.FormatReport())
	}
}
