package sqlstore

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/cronograma/internal/models"
)

func (q *Queries) AddInstructor(i models.Instructor) (models.Instructor, error) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	_, err := q.exec(`
		INSERT INTO instrutores (idinstrutor, nomeinstrutor, especializacao, email, telefone)
		VALUES (?, ?, ?, ?, ?)`,
		i.ID, i.Name, i.Specialization, i.Email, i.Phone)
	if err != nil {
		return models.Instructor{}, fmt.Errorf("failed to insert instructor: %w", err)
	}
	return i, nil
}

func (q *Queries) GetInstructors() ([]models.Instructor, error) {
	rows, err := q.query(`
		SELECT idinstrutor, nomeinstrutor, especializacao, email, telefone
		FROM instrutores ORDER BY nomeinstrutor`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []models.Instructor
	for rows.Next() {
		var i models.Instructor
		if err := rows.Scan(&i.ID, &i.Name, &i.Specialization, &i.Email, &i.Phone); err != nil {
			return nil, err
		}
		instructors = append(instructors, i)
	}
	return instructors, rows.Err()
}

func (q *Queries) UpdateInstructor(i models.Instructor) error {
	return q.execOne(`
		UPDATE instrutores SET nomeinstrutor = ?, especializacao = ?, email = ?, telefone = ?
		WHERE idinstrutor = ?`,
		i.Name, i.Specialization, i.Email, i.Phone, i.ID)
}

func (q *Queries) DeleteInstructor(id string) error {
	return q.execOne(`DELETE FROM instrutores WHERE idinstrutor = ?`, id)
}

func (q *Queries) GetShifts() ([]models.Shift, error) {
	rows, err := q.query(`SELECT idturno, turno FROM turno ORDER BY turno`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		var s models.Shift
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}
