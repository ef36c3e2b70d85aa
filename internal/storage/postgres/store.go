package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/logger"
	"github.com/julianstephens/cronograma/internal/migration"
	"github.com/julianstephens/cronograma/internal/storage/sqlstore"
	"github.com/julianstephens/cronograma/migrations"
)

// Store keeps the schedule in the cronograma schema of a PostgreSQL database.
type Store struct {
	*sqlstore.Queries

	connStr string
	db      *sql.DB
}

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

func New(connStr string) *Store {
	s := &Store{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

func (s *Store) ensureSearchPath() {
	// Ensure search_path points at the application schema
	if strings.HasPrefix(s.connStr, "postgres://") || strings.HasPrefix(s.connStr, "postgresql://") {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "connStr", s.connStr, "error", err)
			return
		}
		q := u.Query()
		// Only set search_path if it's not already present
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
	} else {
		// Assume DSN format - only append if search_path is not already present
		if !hasSearchPathParam(s.connStr) {
			s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
		}
	}
}

// hasSearchPathParam returns true if the given DSN-style connection string
// contains a search_path parameter key (case-insensitive).
func hasSearchPathParam(connStr string) bool {
	// DSN format is typically space-separated key=value pairs.
	parts := strings.Fields(connStr)
	for _, part := range parts {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		if strings.EqualFold(kv[0], "search_path") {
			return true
		}
	}
	return false
}

// hasSSLMode checks if the connection string contains an sslmode parameter key (case-insensitive).
// It supports both URL-style and DSN-style connection strings.
func hasSSLMode(connStr string) bool {
	// First, try to interpret the connection string as a URL (e.g. postgres://...?sslmode=disable).
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		q := u.Query()
		for key := range q {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}

	// Fallback: treat the connection string as DSN-style space-separated key=value pairs.
	parts := strings.Fields(connStr)
	for _, part := range parts {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		if strings.EqualFold(kv[0], "sslmode") {
			return true
		}
	}

	return false
}

// ValidateConnString checks if a connection string is a valid
// PostgreSQL connection string (URI or DSN) and ensures it does not
// contain a password.
//
// It returns true if the connection string is valid and contains no password.
// Otherwise, it returns false and an error describing the issue.
func ValidateConnString(connStr string) (bool, error) {
	if strings.TrimSpace(connStr) == "" {
		return false, fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	_, err := pq.NewConnector(connStr)
	if err != nil {
		return false, fmt.Errorf("%w: invalid connection string format: %v", ErrInvalidConnectionString, err)
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		parsedURL, err := url.Parse(connStr)
		if err != nil {
			return false, fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}

		if _, isSet := parsedURL.User.Password(); isSet {
			return false, ErrEmbeddedCredentials
		}

		if parsedURL.Host == "" && parsedURL.User == nil && (parsedURL.Path == "" || parsedURL.Path == "/") {
			return false, fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
	} else {
		pairs := strings.Fields(connStr)
		for _, pair := range pairs {
			parts := strings.SplitN(pair, "=", 2)
			if len(parts) == 2 && strings.ToLower(strings.TrimSpace(parts[0])) == "password" {
				return false, ErrEmbeddedCredentials
			}
		}
	}

	return true, nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool parameters to avoid connection exhaustion
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

func (s *Store) ping() error {
	if err := s.db.Ping(); err != nil {
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

func (s *Store) Init() error {
	db, err := s.open()
	if err != nil {
		return err
	}

	// Create schema if it doesn't exist (before assigning to s.db to maintain consistency)
	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	s.Queries = sqlstore.New(db, sqlstore.Postgres)

	if err := s.ping(); err != nil {
		return err
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

	db, err := s.open()
	if err != nil {
		return err
	}
	s.db = db
	s.Queries = sqlstore.New(db, sqlstore.Postgres)

	if err := s.ping(); err != nil {
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
	return s.ping()
}

// GetDB returns the underlying connection pool, or nil before Init or Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DriverPostgres), nil
}

func (s *Store) GetConfigPath() string {
	// Return a non-sensitive identifier instead of the full connection string
	return "postgresql"
}
