package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/storage"
	"github.com/julianstephens/cronograma/internal/validation"
)

// errWarning marks a check that reports a problem without failing doctor.
var errWarning = errors.New("warning")

type check struct {
	name string
	// needsDB checks are skipped when the database check failed
	needsDB bool
	run     func(ctx *cli.Context) error
}

var dbCheck = check{"Database reachable", false, checkDBReachable}

var checks = []check{
	{"Schema version", true, checkSchemaVersion},
	{"Migrations complete", true, checkMigrationsComplete},
	{"Catalog", true, checkCatalog},
	{"Schedule validation", true, checkValidation},
	{"Holiday calendar", false, checkHolidayCalendar},
	{"Clock/timezone", false, func(*cli.Context) error { return checkClockTimezone(time.Now()) }},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	dbReachable := report(dbCheck, ctx)
	hasError := !dbReachable
	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		if !report(c, ctx) {
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

// report runs one check and prints its outcome. Warnings count as passing.
func report(c check, ctx *cli.Context) bool {
	err := c.run(ctx)
	switch {
	case err == nil:
		fmt.Printf("✓ %s: OK\n", c.name)
	case errors.Is(err, errWarning):
		fmt.Printf("⚠ %s: WARNING\n", c.name)
		fmt.Printf("   %v\n", err)
	default:
		fmt.Printf("❌ %s: FAIL\n", c.name)
		fmt.Printf("   Error: %v\n", err)
		return false
	}
	return true
}

func migrator(ctx *cli.Context) (storage.Migrator, error) {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return nil, fmt.Errorf("storage %s does not report its schema", ctx.Store.GetConfigPath())
	}
	return m, nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	m, err := migrator(ctx)
	if err != nil {
		return err
	}
	return m.Ping()
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, err := migrator(ctx)
	if err != nil {
		return err
	}
	current, _, err := m.SchemaStatus()
	if err != nil {
		return err
	}
	if current == 0 {
		return fmt.Errorf("no schema version recorded, run '%s init'", constants.AppName)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	m, err := migrator(ctx)
	if err != nil {
		return err
	}
	current, pending, err := m.SchemaStatus()
	if err != nil {
		return err
	}
	if pending > 0 {
		return fmt.Errorf("migrations incomplete: current version %d, %d pending (run '%s migrate')", current, pending, constants.AppName)
	}
	return nil
}

func checkCatalog(ctx *cli.Context) error {
	shifts, err := ctx.Store.GetShifts()
	if err != nil {
		return fmt.Errorf("failed to get shifts: %w", err)
	}
	if len(shifts) == 0 {
		return fmt.Errorf("shift table is empty; the migrations seed matutino, vespertino and noturno")
	}

	groups, err := ctx.Store.GetClassGroups()
	if err != nil {
		return fmt.Errorf("failed to get class groups: %w", err)
	}
	units, err := ctx.Store.GetUnits()
	if err != nil {
		return fmt.Errorf("failed to get curricular units: %w", err)
	}
	if len(groups) == 0 || len(units) == 0 {
		return fmt.Errorf("%w: %d class groups and %d curricular units; nothing can be scheduled yet", errWarning, len(groups), len(units))
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	result, err := ctx.Audit()
	if err != nil {
		return err
	}
	if !result.HasConflicts() {
		return nil
	}

	// Budget overruns alone only warn
	if len(result.Conflicts) == result.Count(validation.ConflictOverBudget) {
		return fmt.Errorf("%w: %d curricular unit(s) over budget (run '%s validate')", errWarning, len(result.Conflicts), constants.AppName)
	}
	return fmt.Errorf("%d conflict(s) found (run '%s validate')", len(result.Conflicts), constants.AppName)
}

func checkHolidayCalendar(ctx *cli.Context) error {
	national := ctx.National()
	today := ctx.Today()
	for _, year := range []int{today.Year(), today.Year() + constants.MinYearSpan - 1} {
		newYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		if _, ok := national.Lookup(newYear); !ok {
			return fmt.Errorf("national holidays missing for %d", year)
		}
	}
	return nil
}

func checkClockTimezone(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if zone, _ := now.Zone(); zone == "UTC" {
		return fmt.Errorf("%w: local timezone is UTC; session dates use the local calendar day (set TZ if this is wrong)", errWarning)
	}
	return nil
}
