package sqlstore

import (
	"fmt"

	"github.com/julianstephens/cronograma/internal/models"
)

func (q *Queries) AddMunicipalHoliday(h models.MunicipalHoliday) error {
	if _, err := q.exec(`INSERT INTO feriadosmunicipais (data, nome) VALUES (?, ?)`, h.Date, h.Name); err != nil {
		return fmt.Errorf("failed to insert holiday: %w", err)
	}
	return nil
}

func (q *Queries) GetMunicipalHolidays() ([]models.MunicipalHoliday, error) {
	rows, err := q.query(`SELECT data, nome FROM feriadosmunicipais ORDER BY data, nome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []models.MunicipalHoliday
	for rows.Next() {
		var h models.MunicipalHoliday
		if err := rows.Scan(&h.Date, &h.Name); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (q *Queries) DeleteMunicipalHoliday(date, name string) error {
	return q.execOne(`DELETE FROM feriadosmunicipais WHERE data = ? AND nome = ?`, date, name)
}
