// Package cli holds the shared command context. Commands live in the
// sub-packages and are wired into kong by cmd/cronograma.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/holidays"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/scheduling"
	"github.com/julianstephens/cronograma/internal/storage"
	"github.com/julianstephens/cronograma/internal/validation"
)

type Context struct {
	Store    storage.Provider
	YearSpan int
	// Now defaults to time.Now; tests pin it
	Now func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Today returns local midnight of the current day.
func (c *Context) Today() time.Time {
	return calendar.Midnight(c.now())
}

// National computes the national holiday map for the configured span.
func (c *Context) National() holidays.Map {
	span := c.YearSpan
	if span == 0 {
		span = constants.DefaultYearSpan
	}
	return holidays.National(c.now(), span)
}

// Engine builds a scheduling engine over the store with fresh caches.
func (c *Context) Engine() *scheduling.Engine {
	e := scheduling.New(c.Store, c.National())
	e.Reload()
	return e
}

// AuditInput snapshots the store for the validator.
func (c *Context) AuditInput() (validation.Input, error) {
	groups, err := c.Store.GetClassGroups()
	if err != nil {
		return validation.Input{}, fmt.Errorf("failed to get class groups: %w", err)
	}
	units, err := c.Store.GetUnits()
	if err != nil {
		return validation.Input{}, fmt.Errorf("failed to get curricular units: %w", err)
	}
	sessions, err := c.Store.GetSessions(models.SessionFilter{})
	if err != nil {
		return validation.Input{}, fmt.Errorf("failed to get sessions: %w", err)
	}
	list, err := c.Store.GetMunicipalHolidays()
	if err != nil {
		return validation.Input{}, fmt.Errorf("failed to get municipal holidays: %w", err)
	}

	return validation.Input{
		Groups:    groups,
		Units:     units,
		Sessions:  sessions,
		National:  c.National(),
		Municipal: holidays.Municipal(list),
	}, nil
}

// Audit validates the full stored schedule.
func (c *Context) Audit() (validation.ValidationResult, error) {
	in, err := c.AuditInput()
	if err != nil {
		return validation.ValidationResult{}, err
	}
	return validation.New().Validate(in), nil
}

// ParseDays reads YYYY-MM-DD values, accepting comma-separated lists.
func ParseDays(values []string) ([]time.Time, error) {
	var days []time.Time
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			day, err := calendar.ParseDay(part)
			if err != nil {
				return nil, fmt.Errorf("invalid day %q (expected YYYY-MM-DD)", part)
			}
			days = append(days, day)
		}
	}
	return days, nil
}

// ResolveID expands a unique id prefix, as printed by ShortID, to the full id.
func ResolveID(prefix string, ids []string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("id cannot be empty")
	}
	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", fmt.Errorf("id %q is ambiguous", prefix)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", storage.ErrNotFound, prefix)
	}
	return match, nil
}

// ShortID trims a uuid for table output.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatHours renders an hour count with its unit.
func FormatHours(h int) string {
	return fmt.Sprintf("%dh", h)
}
