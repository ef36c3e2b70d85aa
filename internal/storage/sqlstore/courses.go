package sqlstore

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/cronograma/internal/models"
)

func (q *Queries) AddCourse(c models.Course) (models.Course, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := q.exec(`INSERT INTO cursos (idcurso, nomecurso, cargahoraria) VALUES (?, ?, ?)`,
		c.ID, c.Name, c.TotalHours)
	if err != nil {
		return models.Course{}, fmt.Errorf("failed to insert course: %w", err)
	}
	return c, nil
}

func (q *Queries) GetCourse(id string) (models.Course, error) {
	var c models.Course
	err := q.queryRow(`SELECT idcurso, nomecurso, cargahoraria FROM cursos WHERE idcurso = ?`, id).
		Scan(&c.ID, &c.Name, &c.TotalHours)
	if err != nil {
		return models.Course{}, notFound(err)
	}
	return c, nil
}

func (q *Queries) GetCourses() ([]models.Course, error) {
	rows, err := q.query(`SELECT idcurso, nomecurso, cargahoraria FROM cursos ORDER BY nomecurso`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.TotalHours); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (q *Queries) UpdateCourse(c models.Course) error {
	return q.execOne(`UPDATE cursos SET nomecurso = ?, cargahoraria = ? WHERE idcurso = ?`,
		c.Name, c.TotalHours, c.ID)
}

func (q *Queries) DeleteCourse(id string) error {
	return q.execOne(`DELETE FROM cursos WHERE idcurso = ?`, id)
}
