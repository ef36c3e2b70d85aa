package models

// Shift is a named part of the day a class group attends (turno).
type Shift struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ClassGroup is a cohort of students following one course (turma).
// CourseName, InstructorName and ShiftName are filled from joins on read.
type ClassGroup struct {
	ID             string `json:"id"`
	Name           string `json:"name" validate:"required,max=120"`
	CourseID       string `json:"course_id" validate:"required"`
	CourseName     string `json:"course_name,omitempty"`
	InstructorID   string `json:"instructor_id,omitempty"`
	InstructorName string `json:"instructor_name,omitempty"`
	ShiftID        string `json:"shift_id,omitempty"`
	ShiftName      string `json:"shift_name,omitempty"`
}

func (g *ClassGroup) Validate() error {
	return validateStruct("class group", g)
}
