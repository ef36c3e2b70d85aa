package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/cronograma/internal/models"
)

func daysFrom(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := range n {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func TestSetPeriodClampsHours(t *testing.T) {
	r := NewRequest(nil)
	r.Hours = 5
	r.SetPeriod(Noturno)
	if r.Hours != 3 {
		t.Errorf("Hours after SetPeriod(Noturno) = %d, want 3", r.Hours)
	}

	r.SetPeriod(Matutino)
	if r.Hours != 3 {
		t.Errorf("switching to a larger ceiling must not raise hours, got %d", r.Hours)
	}
}

func TestRemainingScenario(t *testing.T) {
	unit := models.CurricularUnit{ID: "u1", Name: "Redes", TotalHours: 80, CourseID: "c1"}
	group := models.ClassGroup{ID: "g1", CourseID: "c1"}

	r := Request{GroupID: "g1", UnitID: "u1", Period: Matutino, Hours: 4, Days: daysFrom(day(2025, time.March, 3), 20)}
	if got := Remaining(unit, r.Hours, len(r.Days)); got != 0 {
		t.Errorf("Remaining with 20 days = %d, want 0", got)
	}
	if err := r.Validate(&group, &unit); err != nil {
		t.Errorf("20 days should be submittable, got %v", err)
	}

	r.Days = daysFrom(day(2025, time.March, 3), 21)
	if got := Remaining(unit, r.Hours, len(r.Days)); got != -4 {
		t.Errorf("Remaining with 21 days = %d, want -4", got)
	}
	if err := r.Validate(&group, &unit); !errors.Is(err, ErrBudgetExceeded) {
		t.Errorf("21 days should exceed the budget, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	unit := models.CurricularUnit{ID: "u1", TotalHours: 40, CourseID: "c1"}
	other := models.CurricularUnit{ID: "u2", TotalHours: 40, CourseID: "c2"}
	group := models.ClassGroup{ID: "g1", CourseID: "c1"}
	valid := Request{GroupID: "g1", UnitID: "u1", Period: Vespertino, Hours: 2, Days: daysFrom(day(2025, time.May, 5), 3)}

	tests := []struct {
		name  string
		req   func() Request
		group *models.ClassGroup
		unit  *models.CurricularUnit
		want  error
	}{
		{"valid", func() Request { return valid }, &group, &unit, nil},
		{"no group", func() Request { r := valid; r.GroupID = ""; return r }, nil, &unit, ErrNoGroup},
		{"no unit", func() Request { r := valid; r.UnitID = ""; return r }, &group, nil, ErrNoUnit},
		{"unit of another course", func() Request { r := valid; r.UnitID = "u2"; return r }, &group, &other, ErrUnitNotInCourse},
		{"no days", func() Request { r := valid; r.Days = nil; return r }, &group, &unit, ErrNoDays},
		{"bad period", func() Request { r := valid; r.Period = "Integral"; return r }, &group, &unit, ErrInvalidPeriod},
		{"zero hours", func() Request { r := valid; r.Hours = 0; return r }, &group, &unit, ErrInvalidHours},
		{"over ceiling", func() Request { r := valid; r.Period = Noturno; r.Hours = 4; return r }, &group, &unit, ErrInvalidHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req().Validate(tt.group, tt.unit)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Validate() = %v should wrap ErrInvalidRequest", err)
			}
		})
	}
}

// The budget check only looks at the unit's static total. Hours already
// scheduled in earlier submissions are not subtracted, so a unit can be
// booked past its load across several submissions.
func TestValidateIgnoresPreviouslyScheduledHours(t *testing.T) {
	unit := models.CurricularUnit{ID: "u1", TotalHours: 8, CourseID: "c1"}
	group := models.ClassGroup{ID: "g1", CourseID: "c1"}

	first := Request{GroupID: "g1", UnitID: "u1", Period: Matutino, Hours: 4, Days: daysFrom(day(2025, time.March, 3), 2)}
	second := Request{GroupID: "g1", UnitID: "u1", Period: Matutino, Hours: 4, Days: daysFrom(day(2025, time.March, 10), 2)}

	if err := first.Validate(&group, &unit); err != nil {
		t.Fatalf("first submission: %v", err)
	}
	if err := second.Validate(&group, &unit); err != nil {
		t.Errorf("second submission is accepted even though 8h are already booked: %v", err)
	}
}

func TestBuildSessions(t *testing.T) {
	days := []time.Time{day(2025, time.March, 3), day(2025, time.March, 5), day(2025, time.March, 7)}
	r := Request{GroupID: "g1", UnitID: "u1", Period: Vespertino, Hours: 3, Days: days}

	sessions := BuildSessions(r)
	if len(sessions) != 3 {
		t.Fatalf("len(BuildSessions) = %d, want 3", len(sessions))
	}

	seen := map[string]bool{}
	for i, s := range sessions {
		if s.GroupID != "g1" || s.UnitID != "u1" || s.Hours != 3 {
			t.Errorf("session %d = %+v", i, s)
		}
		if s.TimeWindow != "14:00-18:00" {
			t.Errorf("session %d window = %q", i, s.TimeWindow)
		}
		if s.Status != models.SessionScheduled {
			t.Errorf("session %d status = %q, want Agendada", i, s.Status)
		}
		if s.ID != "" {
			t.Errorf("session %d should leave the id to the store", i)
		}
		if want := days[i].Format("2006-01-02"); s.Date != want {
			t.Errorf("session %d date = %s, want %s", i, s.Date, want)
		}
		seen[s.Date] = true
	}
	if len(seen) != 3 {
		t.Errorf("dates are not distinct: %v", seen)
	}
}

func TestUnitsForGroup(t *testing.T) {
	groups := []models.ClassGroup{{ID: "g1", CourseID: "c1"}, {ID: "g2", CourseID: "c2"}}
	units := []models.CurricularUnit{
		{ID: "u1", CourseID: "c1"},
		{ID: "u2", CourseID: "c2"},
		{ID: "u3", CourseID: "c1"},
	}

	got := UnitsForGroup(groups, units, "g1")
	if len(got) != 2 || got[0].ID != "u1" || got[1].ID != "u3" {
		t.Errorf("UnitsForGroup(g1) = %+v", got)
	}
	if got := UnitsForGroup(groups, units, "missing"); got != nil {
		t.Errorf("UnitsForGroup(missing) = %+v, want nil", got)
	}
}
