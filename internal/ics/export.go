// Package ics renders class sessions as an iCalendar feed.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/logger"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/utils"
)

const productID = "-//cronograma//class schedule//PT"

// Options controls calendar metadata.
type Options struct {
	Name     string
	Location *time.Location
	// Now stamps DTSTAMP; zero means time.Now
	Now time.Time
}

// Build creates one VEVENT per session. Sessions whose window cannot be
// parsed are skipped and counted.
func Build(sessions []models.ClassSession, opts Options) (*ical.Calendar, int) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	skipped := 0
	for _, s := range sessions {
		start, end, err := sessionBounds(s, loc)
		if err != nil {
			logger.Warn("skipping session in export", "id", s.ID, "date", s.Date, "error", err)
			skipped++
			continue
		}

		event := cal.AddEvent(s.ID + "@" + constants.AppName)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(summary(s))
		event.SetDescription(fmt.Sprintf("Turma: %s\nUC: %s\nHoras: %d\nStatus: %s",
			nameOr(s.GroupName, s.GroupID), nameOr(s.UnitName, s.UnitID), s.Hours, s.Status))
		event.SetProperty(ical.ComponentPropertyStatus, eventStatus(s.Status))
	}

	return cal, skipped
}

// Write serializes the calendar built from sessions to w.
func Write(w io.Writer, sessions []models.ClassSession, opts Options) (int, error) {
	cal, skipped := Build(sessions, opts)
	if err := cal.SerializeTo(w); err != nil {
		return skipped, fmt.Errorf("failed to write calendar: %w", err)
	}
	return skipped, nil
}

// sessionBounds places the window on the session date. The event lasts the
// session's hours from the window start, capped at the window end.
func sessionBounds(s models.ClassSession, loc *time.Location) (time.Time, time.Time, error) {
	startClock, endClock, err := utils.ParseWindow(s.TimeWindow)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, err := utils.CombineDateAndTime(s.Date, startClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	windowEnd, err := utils.CombineDateAndTime(s.Date, endClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end := start.Add(time.Duration(s.Hours) * time.Hour)
	if s.Hours <= 0 || end.After(windowEnd) {
		end = windowEnd
	}
	return start, end, nil
}

func summary(s models.ClassSession) string {
	unit := nameOr(s.UnitName, s.UnitID)
	if s.GroupName == "" {
		return unit
	}
	return fmt.Sprintf("%s (%s)", unit, s.GroupName)
}

func eventStatus(status models.SessionStatus) string {
	if status == models.SessionCancelled {
		return string(ical.ObjectStatusCancelled)
	}
	return string(ical.ObjectStatusConfirmed)
}

func nameOr(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
