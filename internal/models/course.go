package models

// Course is an offering that class groups follow and curricular units belong to.
type Course struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required,max=120"`
	TotalHours int    `json:"total_hours" validate:"gte=0"`
}

func (c *Course) Validate() error {
	return validateStruct("course", c)
}
