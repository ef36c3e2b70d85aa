package sqlstore

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/cronograma/internal/models"
)

const selectSessions = `
	SELECT a.idaula, a.idturma, COALESCE(t.turmanome, ''), a.iduc, COALESCE(u.nomeuc, ''),
	       a.data, a.horario, a.horas, a.status
	FROM aulas a
	LEFT JOIN turma t ON t.idturma = a.idturma
	LEFT JOIN unidades_curriculares u ON u.iduc = a.iduc`

func scanSession(s scanner) (models.ClassSession, error) {
	var cs models.ClassSession
	var status string
	err := s.Scan(&cs.ID, &cs.GroupID, &cs.GroupName, &cs.UnitID, &cs.UnitName,
		&cs.Date, &cs.TimeWindow, &cs.Hours, &status)
	cs.Status = models.SessionStatus(status)
	return cs, err
}

// AddSessions writes the whole batch or nothing.
func (q *Queries) AddSessions(sessions []models.ClassSession) ([]models.ClassSession, error) {
	if len(sessions) == 0 {
		return nil, nil
	}

	tx, err := q.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.Prepare(q.rebind(`
		INSERT INTO aulas (idaula, iduc, idturma, data, horario, horas, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare session insert: %w", err)
	}
	defer stmt.Close()

	created := make([]models.ClassSession, 0, len(sessions))
	for _, s := range sessions {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.Status == "" {
			s.Status = models.SessionScheduled
		}
		if _, err := stmt.Exec(s.ID, s.UnitID, s.GroupID, s.Date, s.TimeWindow, s.Hours, string(s.Status)); err != nil {
			return nil, fmt.Errorf("failed to insert session for %s: %w", s.Date, err)
		}
		created = append(created, s)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sessions: %w", err)
	}
	return created, nil
}

func (q *Queries) GetSession(id string) (models.ClassSession, error) {
	s, err := scanSession(q.queryRow(selectSessions+` WHERE a.idaula = ?`, id))
	if err != nil {
		return models.ClassSession{}, notFound(err)
	}
	return s, nil
}

// GetSessions lists sessions matching the filter ordered by date and window.
func (q *Queries) GetSessions(filter models.SessionFilter) ([]models.ClassSession, error) {
	var where []string
	var args []interface{}
	if filter.GroupID != "" {
		where = append(where, "a.idturma = ?")
		args = append(args, filter.GroupID)
	}
	if filter.UnitID != "" {
		where = append(where, "a.iduc = ?")
		args = append(args, filter.UnitID)
	}
	if filter.From != "" {
		where = append(where, "a.data >= ?")
		args = append(args, filter.From)
	}
	if filter.Until != "" {
		where = append(where, "a.data <= ?")
		args = append(args, filter.Until)
	}

	query := selectSessions
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY a.data, a.horario"

	rows, err := q.query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.ClassSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (q *Queries) UpdateSession(id string, patch models.SessionPatch) error {
	return q.execOne(`UPDATE aulas SET horario = ?, horas = ?, status = ? WHERE idaula = ?`,
		patch.TimeWindow, patch.Hours, string(patch.Status), id)
}

func (q *Queries) DeleteSession(id string) error {
	return q.execOne(`DELETE FROM aulas WHERE idaula = ?`, id)
}
