package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/models"
)

var (
	ErrInvalidRequest  = errors.New("invalid scheduling request")
	ErrNoGroup         = fmt.Errorf("%w: choose a class group", ErrInvalidRequest)
	ErrNoUnit          = fmt.Errorf("%w: choose a curricular unit", ErrInvalidRequest)
	ErrUnitNotInCourse = fmt.Errorf("%w: curricular unit does not belong to the group's course", ErrInvalidRequest)
	ErrNoDays          = fmt.Errorf("%w: select at least one day", ErrInvalidRequest)
	ErrInvalidPeriod   = fmt.Errorf("%w: unknown period", ErrInvalidRequest)
	ErrInvalidHours    = fmt.Errorf("%w: hours per session out of range", ErrInvalidRequest)
	ErrBudgetExceeded  = fmt.Errorf("%w: not enough hours left in the curricular unit", ErrInvalidRequest)
)

// Request is the scheduling form at submit time.
type Request struct {
	GroupID string
	UnitID  string
	Period  Period
	Hours   int
	Days    []time.Time
}

// NewRequest starts a form for the given days with one hour in the morning shift.
func NewRequest(days []time.Time) Request {
	return Request{Period: Matutino, Hours: 1, Days: days}
}

// SetPeriod switches the shift and clamps hours to its ceiling.
func (r *Request) SetPeriod(p Period) {
	r.Period = p
	r.Hours = ClampHours(r.Hours, p)
}

// TotalHours is hours per session times the number of days.
func (r Request) TotalHours() int {
	return r.Hours * len(r.Days)
}

// Remaining is the unit's total load minus what this request schedules.
// Hours booked by earlier sessions are not subtracted.
func Remaining(unit models.CurricularUnit, hours, days int) int {
	return unit.TotalHours - hours*days
}

// Validate checks the request against the chosen group and unit. Either may be
// nil when nothing was chosen.
func (r Request) Validate(group *models.ClassGroup, unit *models.CurricularUnit) error {
	if r.GroupID == "" || group == nil {
		return ErrNoGroup
	}
	if r.UnitID == "" || unit == nil {
		return ErrNoUnit
	}
	if unit.CourseID != group.CourseID {
		return ErrUnitNotInCourse
	}
	if len(r.Days) == 0 {
		return ErrNoDays
	}
	if _, ok := periodSpecs[r.Period]; !ok {
		return ErrInvalidPeriod
	}
	if r.Hours < constants.MinSessionHours || r.Hours > r.Period.Ceiling() {
		return fmt.Errorf("%w: %d (1 to %d for %s)", ErrInvalidHours, r.Hours, r.Period.Ceiling(), r.Period)
	}
	if rem := Remaining(*unit, r.Hours, len(r.Days)); rem < 0 {
		return fmt.Errorf("%w: %d hours over %s's %dh", ErrBudgetExceeded, -rem, unit.Name, unit.TotalHours)
	}
	return nil
}

// BuildSessions materializes one scheduled session per day. All records are
// built from the same snapshot of the request.
func BuildSessions(r Request) []models.ClassSession {
	sessions := make([]models.ClassSession, 0, len(r.Days))
	for _, day := range r.Days {
		sessions = append(sessions, models.ClassSession{
			GroupID:    r.GroupID,
			UnitID:     r.UnitID,
			Date:       day.Format(constants.DateFormat),
			TimeWindow: r.Period.Window(),
			Hours:      r.Hours,
			Status:     models.SessionScheduled,
		})
	}
	return sessions
}

// UnitsForGroup keeps the units of the group's course.
func UnitsForGroup(groups []models.ClassGroup, units []models.CurricularUnit, groupID string) []models.CurricularUnit {
	var courseID string
	found := false
	for _, g := range groups {
		if g.ID == groupID {
			courseID = g.CourseID
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	var out []models.CurricularUnit
	for _, u := range units {
		if u.CourseID == courseID {
			out = append(out, u)
		}
	}
	return out
}
