package reports

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/storage/sqlite"
)

type fixture struct {
	ctx   *cli.Context
	store *sqlite.Store
	group models.ClassGroup
	unit  models.CurricularUnit
}

func setupTestDB(t *testing.T) fixture {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	course, err := store.AddCourse(models.Course{Name: "Informática"})
	if err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}
	unit, err := store.AddUnit(models.CurricularUnit{Name: "Redes", TotalHours: 8, CourseID: course.ID})
	if err != nil {
		t.Fatalf("AddUnit() error = %v", err)
	}
	group, err := store.AddClassGroup(models.ClassGroup{Name: "INF-A", CourseID: course.ID})
	if err != nil {
		t.Fatalf("AddClassGroup() error = %v", err)
	}

	ctx := &cli.Context{
		Store: store,
		Now:   func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.Local) },
	}
	return fixture{ctx: ctx, store: store, group: group, unit: unit}
}

func (f fixture) addSessions(t *testing.T, dates ...string) {
	t.Helper()
	var batch []models.ClassSession
	for _, d := range dates {
		batch = append(batch, models.ClassSession{
			GroupID: f.group.ID, UnitID: f.unit.ID, Date: d, TimeWindow: "08:00-12:00", Hours: 4,
		})
	}
	if _, err := f.store.AddSessions(batch); err != nil {
		t.Fatalf("AddSessions() error = %v", err)
	}
}

func TestCalendarCmd(t *testing.T) {
	f := setupTestDB(t)
	f.addSessions(t, "2025-04-22")

	tests := []struct {
		name    string
		cmd     CalendarCmd
		wantErr bool
	}{
		{"current month", CalendarCmd{}, false},
		{"explicit month and group", CalendarCmd{Month: "2025-04", Group: "INF-A"}, false},
		{"bad month", CalendarCmd{Month: "04/2025"}, true},
		{"unknown group", CalendarCmd{Group: "nope"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Run(f.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExportCmd(t *testing.T) {
	f := setupTestDB(t)
	f.addSessions(t, "2025-04-22", "2025-05-06")

	out := filepath.Join(t.TempDir(), "feeds", "inf-a.ics")
	cmd := &ExportCmd{Out: out, Group: "INF-A", Month: "2025-04"}
	if err := cmd.Run(f.ctx); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer file.Close()

	parsed, err := ical.ParseCalendar(file)
	if err != nil {
		t.Fatalf("ParseCalendar() error = %v", err)
	}
	events := parsed.Events()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1 (month filter)", len(events))
	}
	if summary := events[0].GetProperty(ical.ComponentPropertySummary); summary == nil || !strings.Contains(summary.Value, "Redes") {
		t.Errorf("summary = %v, want the unit name", summary)
	}
}

func TestValidateCmd(t *testing.T) {
	f := setupTestDB(t)

	if err := (&ValidateCmd{}).Run(f.ctx); err != nil {
		t.Fatalf("clean schedule should validate, got %v", err)
	}

	// Tiradentes, plus a second session that pushes the 8h unit over budget
	f.addSessions(t, "2025-04-21", "2025-05-05", "2025-05-06")

	err := (&ValidateCmd{}).Run(f.ctx)
	if !errors.Is(err, ErrConflicts) {
		t.Errorf("Run() error = %v, want ErrConflicts", err)
	}

	if err := (&ValidateCmd{Month: "2025-06"}).Run(f.ctx); err != nil {
		t.Errorf("June has no sessions, got %v", err)
	}
	if err := (&ValidateCmd{Month: "2025-13"}).Run(f.ctx); err == nil {
		t.Error("expected an error for an invalid month")
	}
}
