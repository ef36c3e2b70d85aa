// Package scheduling owns the cronograma's day selection and turns scheduling
// requests into class sessions, checking curricular-unit hour budgets.
package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/holidays"
	"github.com/julianstephens/cronograma/internal/logger"
	"github.com/julianstephens/cronograma/internal/models"
)

// Store is the part of the storage provider the engine reads and writes.
type Store interface {
	GetClassGroups() ([]models.ClassGroup, error)
	GetUnits() ([]models.CurricularUnit, error)
	GetSessions(filter models.SessionFilter) ([]models.ClassSession, error)
	GetMunicipalHolidays() ([]models.MunicipalHoliday, error)

	AddSessions(sessions []models.ClassSession) ([]models.ClassSession, error)
	UpdateSession(id string, patch models.SessionPatch) error
	DeleteSession(id string) error
	AddMunicipalHoliday(h models.MunicipalHoliday) error
	DeleteMunicipalHoliday(date, name string) error
}

// Engine caches the lookup lists and the date-keyed session projection.
// Nothing is refreshed implicitly: writes reload on success and callers
// call Reload when they want fresh data.
type Engine struct {
	store     Store
	selection *Selection

	national  holidays.Map
	municipal holidays.Map
	holidays  []models.MunicipalHoliday

	groups   []models.ClassGroup
	units    []models.CurricularUnit
	sessions []models.ClassSession
	byKey    map[string][]models.ClassSession

	groupFilter string
}

// New returns an engine with empty caches. national is usually holidays.National.
func New(store Store, national holidays.Map) *Engine {
	return &Engine{
		store:     store,
		selection: NewSelection(),
		national:  national,
		municipal: holidays.Map{},
		byKey:     map[string][]models.ClassSession{},
	}
}

// Reload fetches every list again. A failed read is logged and leaves that
// list empty; the other lists still load.
func (e *Engine) Reload() {
	groups, err := e.store.GetClassGroups()
	if err != nil {
		logger.Error("failed to load class groups", "error", err)
		groups = nil
	}
	e.groups = groups

	units, err := e.store.GetUnits()
	if err != nil {
		logger.Error("failed to load curricular units", "error", err)
		units = nil
	}
	e.units = units

	sessions, err := e.store.GetSessions(models.SessionFilter{})
	if err != nil {
		logger.Error("failed to load sessions", "error", err)
		sessions = nil
	}
	e.sessions = sessions
	e.reindex()

	list, err := e.store.GetMunicipalHolidays()
	if err != nil {
		logger.Error("failed to load municipal holidays", "error", err)
		list = nil
	}
	e.holidays = list
	e.municipal = holidays.Municipal(list)

	logger.Debug("cronograma reloaded",
		"groups", len(e.groups), "units", len(e.units),
		"sessions", len(e.sessions), "municipal_holidays", len(e.holidays))
}

func (e *Engine) reindex() {
	if e.groupFilter == "" {
		e.byKey = calendar.IndexSessions(e.sessions)
		return
	}
	var filtered []models.ClassSession
	for _, s := range e.sessions {
		if s.GroupID == e.groupFilter {
			filtered = append(filtered, s)
		}
	}
	e.byKey = calendar.IndexSessions(filtered)
}

// SetGroupFilter restricts the projection to one class group. An empty id
// shows every group.
func (e *Engine) SetGroupFilter(groupID string) {
	e.groupFilter = groupID
	e.reindex()
}

// GroupFilter returns the active class group filter.
func (e *Engine) GroupFilter() string { return e.groupFilter }

// Selection returns the day selection shared with the calendar.
func (e *Engine) Selection() *Selection { return e.selection }

// Groups returns the cached class groups.
func (e *Engine) Groups() []models.ClassGroup { return e.groups }

// Units returns the cached curricular units.
func (e *Engine) Units() []models.CurricularUnit { return e.units }

// Sessions returns every cached session. The group filter applies only to
// EventsForDay.
func (e *Engine) Sessions() []models.ClassSession { return e.sessions }

// MunicipalHolidays returns the cached municipal holidays.
func (e *Engine) MunicipalHolidays() []models.MunicipalHoliday { return e.holidays }

// National returns the computed national holiday map.
func (e *Engine) National() holidays.Map { return e.national }

// Group looks up a cached class group.
func (e *Engine) Group(id string) (models.ClassGroup, bool) {
	for _, g := range e.groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.ClassGroup{}, false
}

// Unit looks up a cached curricular unit.
func (e *Engine) Unit(id string) (models.CurricularUnit, bool) {
	for _, u := range e.units {
		if u.ID == id {
			return u, true
		}
	}
	return models.CurricularUnit{}, false
}

// UnitsForGroup lists the units a group may be scheduled for.
func (e *Engine) UnitsForGroup(groupID string) []models.CurricularUnit {
	return UnitsForGroup(e.groups, e.units, groupID)
}

// Classify reports weekend and holiday status for day.
func (e *Engine) Classify(day time.Time) calendar.Classification {
	return calendar.ClassifyDay(day, e.national, e.municipal)
}

// EventsForDay returns the projected sessions of day.
func (e *Engine) EventsForDay(day time.Time) []models.ClassSession {
	return calendar.EventsForDay(day, e.byKey)
}

// NewRequest starts a scheduling form from the current selection.
func (e *Engine) NewRequest() Request {
	return NewRequest(e.selection.Days())
}

// Remaining is the budget left for req's unit. ok is false when no unit is chosen.
func (e *Engine) Remaining(req Request) (int, bool) {
	unit, ok := e.Unit(req.UnitID)
	if !ok {
		return 0, false
	}
	return Remaining(unit, req.Hours, len(req.Days)), true
}

// Validate checks req against the cached group and unit.
func (e *Engine) Validate(req Request) error {
	var group *models.ClassGroup
	if g, ok := e.Group(req.GroupID); ok {
		group = &g
	}
	var unit *models.CurricularUnit
	if u, ok := e.Unit(req.UnitID); ok {
		unit = &u
	}
	return req.Validate(group, unit)
}

// Submit persists one session per requested day as a single batch. The
// selection is cleared and the caches reloaded only when the store accepts
// the batch; on failure everything is left as it was.
func (e *Engine) Submit(req Request) ([]models.ClassSession, error) {
	if err := e.Validate(req); err != nil {
		return nil, err
	}

	batch := BuildSessions(req)
	created, err := e.store.AddSessions(batch)
	if err != nil {
		logger.Error("failed to schedule sessions", "group", req.GroupID, "unit", req.UnitID, "days", len(batch), "error", err)
		return nil, fmt.Errorf("failed to schedule sessions: %w", err)
	}

	logger.Info("sessions scheduled", "group", req.GroupID, "unit", req.UnitID, "days", len(created), "hours", req.Hours)
	e.selection.Clear()
	e.Reload()
	return created, nil
}

// EditSession changes the time window, hours and status of a session.
func (e *Engine) EditSession(id string, patch models.SessionPatch) error {
	patch.TimeWindow = strings.TrimSpace(patch.TimeWindow)
	if patch.TimeWindow == "" {
		return fmt.Errorf("time window cannot be empty")
	}
	if patch.Hours < constants.MinSessionHours || patch.Hours > constants.MaxSessionHours {
		return fmt.Errorf("hours must be between %d and %d", constants.MinSessionHours, constants.MaxSessionHours)
	}
	if _, err := models.ParseSessionStatus(string(patch.Status)); err != nil {
		return err
	}

	if err := e.store.UpdateSession(id, patch); err != nil {
		logger.Error("failed to update session", "id", id, "error", err)
		return fmt.Errorf("failed to update session: %w", err)
	}
	e.Reload()
	return nil
}

// DeleteSession removes one session.
func (e *Engine) DeleteSession(id string) error {
	if err := e.store.DeleteSession(id); err != nil {
		logger.Error("failed to delete session", "id", id, "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	e.Reload()
	return nil
}

// AddMunicipalHoliday stores a municipal holiday and reloads.
func (e *Engine) AddMunicipalHoliday(date, name string) error {
	h := models.MunicipalHoliday{Date: date, Name: strings.TrimSpace(name)}
	if err := h.Validate(); err != nil {
		return err
	}
	if err := e.store.AddMunicipalHoliday(h); err != nil {
		logger.Error("failed to add municipal holiday", "date", date, "error", err)
		return fmt.Errorf("failed to add municipal holiday: %w", err)
	}
	e.Reload()
	return nil
}

// DeleteMunicipalHoliday removes the holiday matching both date and name.
func (e *Engine) DeleteMunicipalHoliday(date, name string) error {
	if err := e.store.DeleteMunicipalHoliday(date, name); err != nil {
		logger.Error("failed to delete municipal holiday", "date", date, "error", err)
		return fmt.Errorf("failed to delete municipal holiday: %w", err)
	}
	e.Reload()
	return nil
}

// ConsumedHours sums the hours of every non-cancelled session of a unit,
// across all groups. It is informational; Validate does not use it.
func (e *Engine) ConsumedHours(unitID string) int {
	total := 0
	for _, s := range e.sessions {
		if s.UnitID == unitID && s.Status != models.SessionCancelled {
			total += s.Hours
		}
	}
	return total
}
