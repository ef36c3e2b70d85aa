package sqlstore

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/cronograma/internal/models"
)

const selectGroups = `
	SELECT t.idturma, t.turmanome, t.idcurso, COALESCE(c.nomecurso, ''),
	       COALESCE(t.idinstrutor, ''), COALESCE(i.nomeinstrutor, ''),
	       COALESCE(t.idturno, ''), COALESCE(tn.turno, '')
	FROM turma t
	LEFT JOIN cursos c ON c.idcurso = t.idcurso
	LEFT JOIN instrutores i ON i.idinstrutor = t.idinstrutor
	LEFT JOIN turno tn ON tn.idturno = t.idturno`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanGroup(s scanner) (models.ClassGroup, error) {
	var g models.ClassGroup
	err := s.Scan(&g.ID, &g.Name, &g.CourseID, &g.CourseName,
		&g.InstructorID, &g.InstructorName, &g.ShiftID, &g.ShiftName)
	return g, err
}

func (q *Queries) AddClassGroup(g models.ClassGroup) (models.ClassGroup, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	_, err := q.exec(`
		INSERT INTO turma (idturma, turmanome, idcurso, idinstrutor, idturno)
		VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.CourseID, nullable(g.InstructorID), nullable(g.ShiftID))
	if err != nil {
		return models.ClassGroup{}, fmt.Errorf("failed to insert class group: %w", err)
	}
	return g, nil
}

func (q *Queries) GetClassGroup(id string) (models.ClassGroup, error) {
	g, err := scanGroup(q.queryRow(selectGroups+` WHERE t.idturma = ?`, id))
	if err != nil {
		return models.ClassGroup{}, notFound(err)
	}
	return g, nil
}

func (q *Queries) GetClassGroups() ([]models.ClassGroup, error) {
	rows, err := q.query(selectGroups + ` ORDER BY t.turmanome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.ClassGroup
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (q *Queries) UpdateClassGroup(g models.ClassGroup) error {
	return q.execOne(`
		UPDATE turma SET turmanome = ?, idcurso = ?, idinstrutor = ?, idturno = ?
		WHERE idturma = ?`,
		g.Name, g.CourseID, nullable(g.InstructorID), nullable(g.ShiftID), g.ID)
}

func (q *Queries) DeleteClassGroup(id string) error {
	return q.execOne(`DELETE FROM turma WHERE idturma = ?`, id)
}
