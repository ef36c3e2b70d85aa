package models

// MunicipalHoliday is a locally declared holiday kept in the store.
// National holidays are computed and never stored.
type MunicipalHoliday struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD format
	Name string `json:"name" validate:"required,max=120"`
}

func (h *MunicipalHoliday) Validate() error {
	return validateStruct("holiday", h)
}
