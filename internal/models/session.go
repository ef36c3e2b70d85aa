package models

import (
	"fmt"
	"strings"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "Agendada"
	SessionCompleted SessionStatus = "Realizada"
	SessionCancelled SessionStatus = "Cancelada"
)

// SessionStatuses lists every status in display order.
func SessionStatuses() []SessionStatus {
	return []SessionStatus{SessionScheduled, SessionCompleted, SessionCancelled}
}

// ParseSessionStatus accepts the stored label or its English name, ignoring case.
func ParseSessionStatus(s string) (SessionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "agendada", "scheduled":
		return SessionScheduled, nil
	case "realizada", "completed":
		return SessionCompleted, nil
	case "cancelada", "cancelled":
		return SessionCancelled, nil
	}
	return "", fmt.Errorf("invalid session status %q (use Agendada, Realizada or Cancelada)", s)
}

// ClassSession is one scheduled class occurrence (aula).
// Group, unit and date are fixed once created.
type ClassSession struct {
	ID         string        `json:"id"`
	GroupID    string        `json:"group_id" validate:"required"`
	GroupName  string        `json:"group_name,omitempty"`
	UnitID     string        `json:"unit_id" validate:"required"`
	UnitName   string        `json:"unit_name,omitempty"`
	Date       string        `json:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD format
	TimeWindow string        `json:"time_window" validate:"required"`
	Hours      int           `json:"hours" validate:"gte=1,lte=8"`
	Status     SessionStatus `json:"status" validate:"oneof=Agendada Realizada Cancelada"`
}

func (s *ClassSession) Validate() error {
	return validateStruct("session", s)
}

// SessionPatch carries the only fields an existing session may change.
type SessionPatch struct {
	TimeWindow string
	Hours      int
	Status     SessionStatus
}

// SessionFilter narrows a session listing. Empty fields match everything.
type SessionFilter struct {
	GroupID string
	UnitID  string
	From    string // YYYY-MM-DD, inclusive
	Until   string // YYYY-MM-DD, inclusive
}
