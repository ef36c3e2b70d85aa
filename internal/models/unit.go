package models

// CurricularUnit is a course module with a fixed instructional-hour budget (UC).
// TotalHours is a ceiling; scheduling never writes it back.
type CurricularUnit struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required,max=160"`
	TotalHours int    `json:"total_hours" validate:"gt=0"`
	CourseID   string `json:"course_id" validate:"required"`
	CourseName string `json:"course_name,omitempty"`
}

func (u *CurricularUnit) Validate() error {
	return validateStruct("curricular unit", u)
}
