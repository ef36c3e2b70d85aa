package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/logger"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/storage"
	"github.com/julianstephens/cronograma/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing SQLite database before initialization."`
	Source string `help:"Source database path or connection string to copy the schedule from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		source, err := cli.NewStore(c.Source, false)
		if err != nil {
			return fmt.Errorf("invalid source: %w", err)
		}
		if err := source.Load(); err != nil {
			return fmt.Errorf("failed to load source database: %w", err)
		}
		defer source.Close()

		if err := CopyData(source, ctx.Store, func(msg string) { fmt.Println(msg) }); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}
	return nil
}

// reset deletes the SQLite file. Postgres schemas are never dropped.
func (c *InitCmd) reset(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("--force is only supported for SQLite storage")
	}
	dbPath := store.GetConfigPath()

	// Don't delete the database we are about to copy from
	if c.Source != "" {
		absDB, err := filepath.Abs(dbPath)
		if err == nil {
			dbPath = absDB
		}
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		logger.Warn("deleted existing database", "path", dbPath)
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// CopyData copies the whole schedule from src to dst keeping every id, so
// references between records stay valid. Shifts are seeded by both schemas
// and are not copied.
func CopyData(src, dst storage.Provider, logFn func(string)) error {
	logFn("  Copying courses...")
	courses, err := src.GetCourses()
	if err != nil {
		return fmt.Errorf("failed to get courses from source: %w", err)
	}
	for _, course := range courses {
		if _, err := dst.AddCourse(course); err != nil {
			return fmt.Errorf("failed to add course %s: %w", course.ID, err)
		}
	}
	logFn(fmt.Sprintf("    Copied %d courses", len(courses)))

	logFn("  Copying instructors...")
	instructors, err := src.GetInstructors()
	if err != nil {
		return fmt.Errorf("failed to get instructors from source: %w", err)
	}
	for _, instructor := range instructors {
		if _, err := dst.AddInstructor(instructor); err != nil {
			return fmt.Errorf("failed to add instructor %s: %w", instructor.ID, err)
		}
	}
	logFn(fmt.Sprintf("    Copied %d instructors", len(instructors)))

	logFn("  Copying class groups...")
	groups, err := src.GetClassGroups()
	if err != nil {
		return fmt.Errorf("failed to get class groups from source: %w", err)
	}
	for _, group := range groups {
		if _, err := dst.AddClassGroup(group); err != nil {
			return fmt.Errorf("failed to add class group %s: %w", group.ID, err)
		}
	}
	logFn(fmt.Sprintf("    Copied %d class groups", len(groups)))

	logFn("  Copying curricular units...")
	units, err := src.GetUnits()
	if err != nil {
		return fmt.Errorf("failed to get curricular units from source: %w", err)
	}
	for _, unit := range units {
		if _, err := dst.AddUnit(unit); err != nil {
			return fmt.Errorf("failed to add curricular unit %s: %w", unit.ID, err)
		}
	}
	logFn(fmt.Sprintf("    Copied %d curricular units", len(units)))

	logFn("  Copying sessions...")
	sessions, err := src.GetSessions(models.SessionFilter{})
	if err != nil {
		return fmt.Errorf("failed to get sessions from source: %w", err)
	}
	if len(sessions) > 0 {
		if _, err := dst.AddSessions(sessions); err != nil {
			return fmt.Errorf("failed to add sessions: %w", err)
		}
	}
	logFn(fmt.Sprintf("    Copied %d sessions", len(sessions)))

	logFn("  Copying municipal holidays...")
	holidays, err := src.GetMunicipalHolidays()
	if err != nil {
		return fmt.Errorf("failed to get municipal holidays from source: %w", err)
	}
	for _, h := range holidays {
		if err := dst.AddMunicipalHoliday(h); err != nil {
			return fmt.Errorf("failed to add municipal holiday %s: %w", h.Date, err)
		}
	}
	logFn(fmt.Sprintf("    Copied %d municipal holidays", len(holidays)))

	return nil
}
