package sqlstore

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/cronograma/internal/models"
)

const selectUnits = `
	SELECT u.iduc, u.nomeuc, u.cargahoraria, u.idcurso, COALESCE(c.nomecurso, '')
	FROM unidades_curriculares u
	LEFT JOIN cursos c ON c.idcurso = u.idcurso`

func scanUnit(s scanner) (models.CurricularUnit, error) {
	var u models.CurricularUnit
	err := s.Scan(&u.ID, &u.Name, &u.TotalHours, &u.CourseID, &u.CourseName)
	return u, err
}

func (q *Queries) AddUnit(u models.CurricularUnit) (models.CurricularUnit, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := q.exec(`INSERT INTO unidades_curriculares (iduc, nomeuc, cargahoraria, idcurso) VALUES (?, ?, ?, ?)`,
		u.ID, u.Name, u.TotalHours, u.CourseID)
	if err != nil {
		return models.CurricularUnit{}, fmt.Errorf("failed to insert curricular unit: %w", err)
	}
	return u, nil
}

func (q *Queries) GetUnit(id string) (models.CurricularUnit, error) {
	u, err := scanUnit(q.queryRow(selectUnits+` WHERE u.iduc = ?`, id))
	if err != nil {
		return models.CurricularUnit{}, notFound(err)
	}
	return u, nil
}

func (q *Queries) GetUnits() ([]models.CurricularUnit, error) {
	rows, err := q.query(selectUnits + ` ORDER BY u.nomeuc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []models.CurricularUnit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (q *Queries) UpdateUnit(u models.CurricularUnit) error {
	return q.execOne(`UPDATE unidades_curriculares SET nomeuc = ?, cargahoraria = ?, idcurso = ? WHERE iduc = ?`,
		u.Name, u.TotalHours, u.CourseID, u.ID)
}

func (q *Queries) DeleteUnit(id string) error {
	return q.execOne(`DELETE FROM unidades_curriculares WHERE iduc = ?`, id)
}
