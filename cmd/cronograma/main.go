package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/cli/catalog"
	"github.com/julianstephens/cronograma/internal/cli/holidays"
	"github.com/julianstephens/cronograma/internal/cli/reports"
	"github.com/julianstephens/cronograma/internal/cli/sessions"
	"github.com/julianstephens/cronograma/internal/cli/system"
	"github.com/julianstephens/cronograma/internal/constants"
	apperrors "github.com/julianstephens/cronograma/internal/errors"
	"github.com/julianstephens/cronograma/internal/keyring"
	"github.com/julianstephens/cronograma/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. Connection strings with a password must be stored with 'keyring set'." env:"CRONOGRAMA_CONFIG" default:"${default_config}"`
	Debug   bool   `help:"Log debug output to stderr." env:"CRONOGRAMA_DEBUG"`
	Years   int    `help:"Years after the current one to compute national holidays for (minimum ${min_years})." env:"CRONOGRAMA_YEARS" default:"${default_years}"`

	Init     system.InitCmd      `cmd:"" help:"Initialize cronograma storage."`
	Migrate  system.MigrateCmd   `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Calendar reports.CalendarCmd `cmd:"" help:"Print a month calendar with holidays and sessions."`
	Export   reports.ExportCmd   `cmd:"" help:"Export sessions to an iCalendar file."`
	Validate reports.ValidateCmd `cmd:"" help:"Check the schedule for conflicts."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report keyring availability." default:"1"`
	} `cmd:"" help:"Manage the database connection stored in the OS keyring."`
	Holidays struct {
		National holidays.NationalCmd `cmd:"" help:"List computed national holidays."`
		List     holidays.ListCmd     `cmd:"" help:"List municipal holidays." default:"1"`
		Add      holidays.AddCmd      `cmd:"" help:"Add a municipal holiday."`
		Delete   holidays.DeleteCmd   `cmd:"" help:"Delete a municipal holiday."`
	} `cmd:"" help:"Manage holidays."`
	Courses struct {
		Add    catalog.CourseAddCmd    `cmd:"" help:"Add a course."`
		List   catalog.CourseListCmd   `cmd:"" help:"List courses." default:"1"`
		Edit   catalog.CourseEditCmd   `cmd:"" help:"Edit a course."`
		Delete catalog.CourseDeleteCmd `cmd:"" help:"Delete a course."`
	} `cmd:"" help:"Manage courses."`
	Instructors struct {
		Add    catalog.InstructorAddCmd    `cmd:"" help:"Add an instructor."`
		List   catalog.InstructorListCmd   `cmd:"" help:"List instructors." default:"1"`
		Edit   catalog.InstructorEditCmd   `cmd:"" help:"Edit an instructor."`
		Delete catalog.InstructorDeleteCmd `cmd:"" help:"Delete an instructor."`
	} `cmd:"" help:"Manage instructors."`
	Groups struct {
		Add    catalog.GroupAddCmd    `cmd:"" help:"Add a class group."`
		List   catalog.GroupListCmd   `cmd:"" help:"List class groups." default:"1"`
		Edit   catalog.GroupEditCmd   `cmd:"" help:"Edit a class group."`
		Delete catalog.GroupDeleteCmd `cmd:"" help:"Delete a class group."`
	} `cmd:"" help:"Manage class groups."`
	Units struct {
		Add    catalog.UnitAddCmd    `cmd:"" help:"Add a curricular unit."`
		List   catalog.UnitListCmd   `cmd:"" help:"List curricular units with remaining hours." default:"1"`
		Edit   catalog.UnitEditCmd   `cmd:"" help:"Edit a curricular unit."`
		Delete catalog.UnitDeleteCmd `cmd:"" help:"Delete a curricular unit."`
	} `cmd:"" help:"Manage curricular units."`
	Sessions struct {
		Schedule sessions.ScheduleCmd `cmd:"" help:"Schedule sessions on one or more days."`
		List     sessions.ListCmd     `cmd:"" help:"List sessions." default:"1"`
		Edit     sessions.EditCmd     `cmd:"" help:"Edit a session's window, hours or status."`
		Delete   sessions.DeleteCmd   `cmd:"" help:"Delete a session."`
	} `cmd:"" help:"Manage class sessions."`
}

func main() {
	loadEnv()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Class schedule planner for course coordinators"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"default_years":  strconv.Itoa(constants.DefaultYearSpan),
			"min_years":      strconv.Itoa(constants.MinYearSpan),
		},
	)

	config, source := keyring.Resolve(CLI.Config, constants.DefaultConfigPath)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(config)}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}
	logger.Debug("resolved storage", "source", source, "config", keyring.Mask(config))

	store, err := cli.NewStore(config, source == keyring.SourceKeyring)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	// init opens the store itself
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Store:    store,
		YearSpan: max(CLI.Years, constants.MinYearSpan),
	}
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// loadEnv reads CRONOGRAMA_ENV_FILE, or .env in the working directory, so its
// values can feed the env-backed flags. A missing file is not an error.
func loadEnv() {
	path := os.Getenv(constants.EnvPrefix + "ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		apperrors.Fatalf("failed to load %s: %v", path, err)
	}
}

// logDir places the rotating log next to a SQLite database, and under the
// default config directory for PostgreSQL.
func logDir(config string) string {
	if cli.IsPostgres(config) {
		config = constants.DefaultConfigPath
	}
	path, err := cli.ExpandPath(config)
	if err != nil {
		return os.TempDir()
	}
	return filepath.Dir(path)
}
