package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/keyring"
	"github.com/julianstephens/cronograma/internal/storage/postgres"
)

var errNoStoredConnection = fmt.Errorf("no connection string in the keyring, store one with '%s keyring set'", constants.AppName)

// KeyringSetCmd saves the PostgreSQL connection string for the shared schedule.
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string for the shared schedule."`
	Check            bool   `help:"Connect and verify the schema before saving."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !cli.IsPostgres(cmd.ConnectionString) {
		return errors.New("only PostgreSQL connection strings go in the keyring; pass a SQLite path with --config")
	}

	ok, err := postgres.ValidateConnString(cmd.ConnectionString)
	switch {
	case !ok && errors.Is(err, postgres.ErrEmbeddedCredentials):
		fmt.Println("⚠️  The connection string carries a password; it is kept only in the OS keyring.")
	case !ok:
		return fmt.Errorf("invalid connection string: %w", err)
	}

	if cmd.Check {
		if err := checkConnection(cmd.ConnectionString); err != nil {
			return err
		}
		fmt.Println("✓ Database reachable and schema up to date")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	fmt.Printf("✓ Saved %s\n", keyring.Mask(cmd.ConnectionString))
	fmt.Printf("  %s now uses it whenever --config is not given\n", constants.AppName)
	return nil
}

// checkConnection opens the store the same way the CLI would.
func checkConnection(connStr string) error {
	store := postgres.New(connStr)
	defer store.Close()
	if err := store.Load(); err != nil {
		return fmt.Errorf("could not use %s: %w", keyring.Mask(connStr), err)
	}
	return store.Ping()
}

// KeyringGetCmd prints the stored connection string with the password masked.
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := storedConnection()
	if err != nil {
		return err
	}
	fmt.Println(keyring.Mask(connStr))
	return nil
}

// KeyringDeleteCmd forgets the stored connection string. The next run falls
// back to the local SQLite database.
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errNoStoredConnection
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	fmt.Printf("✓ Removed; %s falls back to %s\n", constants.AppName, constants.DefaultConfigPath)
	return nil
}

// KeyringStatusCmd reports whether the keyring works and which database the
// next command would open.
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}
	fmt.Println("✓ OS keyring is available")

	connStr, err := storedConnection()
	switch {
	case err == nil:
		fmt.Printf("✓ Shared schedule: %s\n", keyring.Mask(connStr))
	case errors.Is(err, errNoStoredConnection):
		fmt.Printf("ℹ Nothing stored; using the local database at %s\n", constants.DefaultConfigPath)
	default:
		return err
	}
	return nil
}

func storedConnection() (string, error) {
	connStr, err := keyring.GetConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		return "", errNoStoredConnection
	}
	if err != nil {
		return "", fmt.Errorf("failed to read keyring: %w", err)
	}
	return connStr, nil
}
