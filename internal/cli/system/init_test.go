package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/storage/sqlite"
)

func setupInitContext(t *testing.T) (*cli.Context, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cronograma.db")
	store := sqlite.NewStore(dbPath)
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store}, dbPath
}

func TestInitCmd_CreatesDatabase(t *testing.T) {
	ctx, dbPath := setupInitContext(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init error = %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file was not created at %s: %v", dbPath, err)
	}
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Errorf("second init error = %v, want idempotent", err)
	}
}

func TestInitCmd_ForceResets(t *testing.T) {
	ctx, _ := setupInitContext(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init error = %v", err)
	}
	if _, err := ctx.Store.AddCourse(models.Course{Name: "Técnico em Informática"}); err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init --force error = %v", err)
	}
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("Load() after reset error = %v", err)
	}
	courses, err := ctx.Store.GetCourses()
	if err != nil {
		t.Fatalf("GetCourses() error = %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("after --force found %d courses, want 0", len(courses))
	}
}

func TestInitCmd_ForceRejectsSameSource(t *testing.T) {
	ctx, dbPath := setupInitContext(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init error = %v", err)
	}

	if err := (&InitCmd{Force: true, Source: dbPath}).Run(ctx); err == nil {
		t.Fatal("init --force with the destination as source should fail")
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database was removed: %v", err)
	}
}

func TestInitCmd_CopiesFromSource(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "source.db")
	src := sqlite.NewStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatalf("source Init() error = %v", err)
	}

	course, err := src.AddCourse(models.Course{Name: "Técnico em Informática", TotalHours: 1200})
	if err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}
	instructor, err := src.AddInstructor(models.Instructor{Name: "Ana Souza"})
	if err != nil {
		t.Fatalf("AddInstructor() error = %v", err)
	}
	group, err := src.AddClassGroup(models.ClassGroup{Name: "INF-A", CourseID: course.ID, InstructorID: instructor.ID, ShiftID: "noturno"})
	if err != nil {
		t.Fatalf("AddClassGroup() error = %v", err)
	}
	unit, err := src.AddUnit(models.CurricularUnit{Name: "Redes", TotalHours: 40, CourseID: course.ID})
	if err != nil {
		t.Fatalf("AddUnit() error = %v", err)
	}
	sessions, err := src.AddSessions([]models.ClassSession{
		{GroupID: group.ID, UnitID: unit.ID, Date: "2025-03-10", TimeWindow: "19:00-22:00", Hours: 3},
		{GroupID: group.ID, UnitID: unit.ID, Date: "2025-03-11", TimeWindow: "19:00-22:00", Hours: 3},
	})
	if err != nil {
		t.Fatalf("AddSessions() error = %v", err)
	}
	if err := src.AddMunicipalHoliday(models.MunicipalHoliday{Date: "2025-01-25", Name: "Aniversário da cidade"}); err != nil {
		t.Fatalf("AddMunicipalHoliday() error = %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("source Close() error = %v", err)
	}

	ctx, _ := setupInitContext(t)
	if err := (&InitCmd{Source: srcPath}).Run(ctx); err != nil {
		t.Fatalf("init --source error = %v", err)
	}

	got, err := ctx.Store.GetSessions(models.SessionFilter{})
	if err != nil {
		t.Fatalf("GetSessions() error = %v", err)
	}
	if len(got) != len(sessions) {
		t.Fatalf("copied %d sessions, want %d", len(got), len(sessions))
	}
	for i := range got {
		if got[i].ID != sessions[i].ID {
			t.Errorf("session %d id = %s, want %s", i, got[i].ID, sessions[i].ID)
		}
		if got[i].GroupName != "INF-A" || got[i].UnitName != "Redes" {
			t.Errorf("session %d joins = %q/%q, want INF-A/Redes", i, got[i].GroupName, got[i].UnitName)
		}
	}

	copiedGroup, err := ctx.Store.GetClassGroup(group.ID)
	if err != nil {
		t.Fatalf("GetClassGroup() error = %v", err)
	}
	if copiedGroup.InstructorID != instructor.ID || copiedGroup.ShiftID != "noturno" {
		t.Errorf("copied group = %+v, want instructor %s on noturno", copiedGroup, instructor.ID)
	}

	holidays, err := ctx.Store.GetMunicipalHolidays()
	if err != nil {
		t.Fatalf("GetMunicipalHolidays() error = %v", err)
	}
	if len(holidays) != 1 || holidays[0].Name != "Aniversário da cidade" {
		t.Errorf("copied holidays = %+v", holidays)
	}
}
