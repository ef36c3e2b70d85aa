package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/storage"
	"github.com/julianstephens/cronograma/internal/storage/postgres"
	"github.com/julianstephens/cronograma/internal/storage/sqlite"
)

// IsPostgres reports whether config is a PostgreSQL URL or key=value DSN
// rather than a SQLite file path.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") ||
		strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=")
}

// NewStore picks the provider for a config value without opening it.
// Postgres connection strings may only carry a password when they come from
// a trusted source such as the OS keyring.
func NewStore(config string, trusted bool) (storage.Provider, error) {
	config = strings.TrimSpace(config)
	if config == "" {
		return nil, errors.New("no database configured")
	}

	if IsPostgres(config) {
		if ok, err := postgres.ValidateConnString(config); !ok {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) && trusted {
				return postgres.New(config), nil
			}
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: store it with '%s keyring set' or use .pgpass instead", err, constants.AppName)
			}
			return nil, err
		}
		return postgres.New(config), nil
	}

	path, err := ExpandPath(config)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
