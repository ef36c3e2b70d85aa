package storage

import (
	"errors"

	"github.com/julianstephens/cronograma/internal/models"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("record not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Courses
	AddCourse(models.Course) (models.Course, error)
	GetCourse(id string) (models.Course, error)
	GetCourses() ([]models.Course, error)
	UpdateCourse(models.Course) error
	DeleteCourse(id string) error

	// Instructors
	AddInstructor(models.Instructor) (models.Instructor, error)
	GetInstructors() ([]models.Instructor, error)
	UpdateInstructor(models.Instructor) error
	DeleteInstructor(id string) error

	// Shifts are seeded by the migrations
	GetShifts() ([]models.Shift, error)

	// Class groups, ordered by name with course, instructor and shift names joined
	AddClassGroup(models.ClassGroup) (models.ClassGroup, error)
	GetClassGroup(id string) (models.ClassGroup, error)
	GetClassGroups() ([]models.ClassGroup, error)
	UpdateClassGroup(models.ClassGroup) error
	DeleteClassGroup(id string) error

	// Curricular units
	AddUnit(models.CurricularUnit) (models.CurricularUnit, error)
	GetUnit(id string) (models.CurricularUnit, error)
	GetUnits() ([]models.CurricularUnit, error)
	UpdateUnit(models.CurricularUnit) error
	DeleteUnit(id string) error

	// Sessions
	// AddSessions inserts a scheduling batch in one transaction and returns the
	// records with their new ids.
	AddSessions([]models.ClassSession) ([]models.ClassSession, error)
	GetSession(id string) (models.ClassSession, error)
	GetSessions(filter models.SessionFilter) ([]models.ClassSession, error)
	// UpdateSession only touches time window, hours and status.
	UpdateSession(id string, patch models.SessionPatch) error
	DeleteSession(id string) error

	// Municipal holidays
	AddMunicipalHoliday(models.MunicipalHoliday) error
	GetMunicipalHolidays() ([]models.MunicipalHoliday, error)
	// DeleteMunicipalHoliday removes the row matching both date and name.
	DeleteMunicipalHoliday(date, name string) error

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by providers whose schema is managed by the
// embedded migrations.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	// SchemaStatus reports the applied schema version and how many embedded
	// migrations are still pending.
	SchemaStatus() (current int, pending int, err error)
	Ping() error
}
