package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/logger"
	"github.com/julianstephens/cronograma/internal/migration"
	"github.com/julianstephens/cronograma/internal/storage/sqlstore"
	"github.com/julianstephens/cronograma/migrations"
)

// Store keeps the schedule in a single SQLite file. Entity queries come from
// the embedded sqlstore.Queries once the database is opened.
type Store struct {
	*sqlstore.Queries

	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) open() error {
	// Foreign keys are off by default in SQLite and must be enabled per connection
	db, err := sql.Open("sqlite", s.path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	s.Queries = sqlstore.New(db, sqlstore.SQLite)
	return nil
}

func (s *Store) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	if _, err := s.Migrate(func(msg string) { logger.Info(msg) }); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	if err := s.open(); err != nil {
		return err
	}

	// Validate schema version using embedded migrations
	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		s.Queries = nil
		return err
	}
	return nil
}

// Migrate applies pending embedded migrations and reports how many ran.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	runner, err := s.runner()
	if err != nil {
		return 0, err
	}
	return runner.ApplyMigrations(logFn)
}

// SchemaStatus reports the applied version and the number of pending migrations.
func (s *Store) SchemaStatus() (int, int, error) {
	runner, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	current, pending, err := runner.Pending()
	if err != nil {
		return 0, 0, err
	}
	return current, len(pending), nil
}

// Ping checks the connection with a trivial query.
func (s *Store) Ping() error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	var one int
	if err := s.db.QueryRow("SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DriverSQLite), nil
}

// tableExists checks if a table exists in the SQLite database.
// The check is case-insensitive to match SQLite's behavior.
func (s *Store) tableExists(tableName string) (bool, error) {
	var count int
	row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", tableName)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, or nil before Init or Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
