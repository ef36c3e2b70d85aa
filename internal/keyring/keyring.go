// Package keyring keeps the PostgreSQL connection string in the OS keyring so it
// never has to appear on the command line.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/cronograma/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Source names where the storage location came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceKeyring Source = "keyring"
	SourceDefault Source = "default"
)

// GetConnectionString retrieves the database connection string from the OS keyring.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString stores the database connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the database connection string from the OS keyring.
func DeleteConnectionString() error {
	if err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort probe: a miss still proves the keyring answers.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// Resolve picks the storage location. An explicit --config wins, then a
// connection string held in the keyring, then the default SQLite path.
func Resolve(config, defaultPath string) (string, Source) {
	if config != "" && config != defaultPath {
		return config, SourceFlag
	}
	if connStr, err := GetConnectionString(); err == nil {
		return connStr, SourceKeyring
	}
	return defaultPath, SourceDefault
}

// Mask hides the password of a URL or DSN connection string for display.
func Mask(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		idx := strings.Index(connStr, "://")
		remaining := connStr[idx+3:]
		// The last @ separates user info from host
		if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
			userInfo := remaining[:atIdx]
			if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
				return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + remaining[atIdx:]
			}
		}
		return connStr
	}

	parts := strings.Fields(connStr)
	for i, part := range parts {
		if strings.HasPrefix(strings.ToLower(part), "password=") {
			parts[i] = "password=****"
		}
	}
	return strings.Join(parts, " ")
}
