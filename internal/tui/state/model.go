package state

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/scheduling"
	"github.com/julianstephens/cronograma/internal/tui/components/calendar"
	"github.com/julianstephens/cronograma/internal/tui/components/holidays"
	"github.com/julianstephens/cronograma/internal/validation"
)

// ScheduleFormModel binds the scheduling form. Days come from the selection
// at the moment the form opens.
type ScheduleFormModel struct {
	GroupID string
	UnitID  string
	Period  scheduling.Period
	Hours   string
	Days    []time.Time
}

// Request converts the form into an engine request with hours clamped to the
// period's ceiling. Unparsable hours become 0 so validation reports them.
func (f *ScheduleFormModel) Request() scheduling.Request {
	req := scheduling.NewRequest(f.Days)
	req.GroupID = f.GroupID
	req.UnitID = f.UnitID
	req.Hours = parseHours(f.Hours)
	req.SetPeriod(f.Period)
	return req
}

// ClampHours lowers the hours field to the chosen period's ceiling. It
// reports whether the field changed.
func (f *ScheduleFormModel) ClampHours() bool {
	hours := parseHours(f.Hours)
	clamped := scheduling.ClampHours(hours, f.Period)
	if clamped == hours {
		return false
	}
	f.Hours = strconv.Itoa(clamped)
	return true
}

type EditFormModel struct {
	Window string
	Hours  string
	Status models.SessionStatus
}

// Patch converts the form into a session patch.
func (f *EditFormModel) Patch() models.SessionPatch {
	return models.SessionPatch{
		TimeWindow: f.Window,
		Hours:      parseHours(f.Hours),
		Status:     f.Status,
	}
}

type HolidayFormModel struct {
	Date string
	Name string
}

type Model struct {
	Engine         *scheduling.Engine
	State          constants.SessionState
	PreviousState  constants.SessionState
	Keys           KeyMap
	Help           help.Model
	Calendar       calendar.Model
	Holidays       holidays.Model
	Form           *huh.Form
	ScheduleForm   *ScheduleFormModel
	EditForm       *EditFormModel
	HolidayForm    *HolidayFormModel
	EditingSession *models.ClassSession
	PendingAction  *constants.ConfirmationMsg
	Conflicts      []validation.Conflict
	Status         string
	Err            error
	ErrOp          string
	FormError      string // Error message to display for form operations
	Quitting       bool
	Width          int
	Height         int
}

// New creates a new state Model on the month of today. The engine must
// already be loaded.
func New(engine *scheduling.Engine, today time.Time) Model {
	m := Model{
		Engine:   engine,
		State:    constants.StateCalendar,
		Keys:     DefaultKeyMap(),
		Help:     help.New(),
		Calendar: calendar.New(engine, today),
		Holidays: holidays.New(engine.MunicipalHolidays(), engine.National(), 0, 0),
	}
	m.RefreshConflicts()
	return m
}

// Refresh pushes the engine caches into the components after a write.
func (m *Model) Refresh() {
	m.Holidays.SetHolidays(m.Engine.MunicipalHolidays(), m.Engine.National())
	m.RefreshConflicts()
}
