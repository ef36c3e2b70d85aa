package models

type Instructor struct {
	ID             string `json:"id"`
	Name           string `json:"name" validate:"required,max=120"`
	Specialization string `json:"specialization,omitempty" validate:"max=120"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

func (i *Instructor) Validate() error {
	return validateStruct("instructor", i)
}
