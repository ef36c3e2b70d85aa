package models

import (
	"strings"
	"testing"
)

func TestClassSessionValidate(t *testing.T) {
	valid := ClassSession{
		GroupID:    "g1",
		UnitID:     "u1",
		Date:       "2025-03-10",
		TimeWindow: "08:00-12:00",
		Hours:      4,
		Status:     SessionScheduled,
	}

	tests := []struct {
		name    string
		mutate  func(s *ClassSession)
		wantErr string
	}{
		{"valid", func(s *ClassSession) {}, ""},
		{"missing group", func(s *ClassSession) { s.GroupID = "" }, "groupid is required"},
		{"bad date", func(s *ClassSession) { s.Date = "10/03/2025" }, "date must use the format 2006-01-02"},
		{"zero hours", func(s *ClassSession) { s.Hours = 0 }, "hours must be at least 1"},
		{"too many hours", func(s *ClassSession) { s.Hours = 9 }, "hours must be at most 8"},
		{"unknown status", func(s *ClassSession) { s.Status = "Adiada" }, "status must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
			if !strings.HasPrefix(err.Error(), "invalid session:") {
				t.Errorf("Validate() error = %q, want prefix 'invalid session:'", err)
			}
		})
	}
}

func TestCurricularUnitValidate(t *testing.T) {
	u := CurricularUnit{Name: "Lógica de Programação", TotalHours: 80, CourseID: "c1"}
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	u.TotalHours = 0
	err := u.Validate()
	if err == nil || !strings.Contains(err.Error(), "totalhours must be greater than 0") {
		t.Errorf("Validate() error = %v, want total hours error", err)
	}
}

func TestInstructorValidateEmail(t *testing.T) {
	i := Instructor{Name: "Ana", Email: "not-an-email"}
	if err := i.Validate(); err == nil || !strings.Contains(err.Error(), "email must be a valid email") {
		t.Errorf("Validate() error = %v, want email error", err)
	}

	i.Email = ""
	if err := i.Validate(); err != nil {
		t.Errorf("Validate() with empty optional email: %v", err)
	}
}

func TestMunicipalHolidayValidate(t *testing.T) {
	h := MunicipalHoliday{Date: "2025-01-20", Name: "São Sebastião"}
	if err := h.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	h.Name = ""
	if err := h.Validate(); err == nil {
		t.Error("Validate() expected error for empty name")
	}
}

func TestParseSessionStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    SessionStatus
		wantErr bool
	}{
		{"Agendada", SessionScheduled, false},
		{"completed", SessionCompleted, false},
		{"Cancelada", SessionCancelled, false},
		{" realizada ", SessionCompleted, false},
		{"CANCELLED", SessionCancelled, false},
		{"pending", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSessionStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSessionStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSessionStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
