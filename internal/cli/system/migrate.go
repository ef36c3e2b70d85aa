package system

import (
	"fmt"

	"github.com/julianstephens/cronograma/internal/cli"
)

type MigrateCmd struct {
	Status bool `help:"Only report the schema version and pending migrations."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, err := migrator(ctx)
	if err != nil {
		return err
	}

	current, pending, err := m.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if c.Status || pending == 0 {
		fmt.Printf("Schema version %d at %s, %d migration(s) pending.\n", current, ctx.Store.GetConfigPath(), pending)
		return nil
	}

	applied, err := m.Migrate(func(msg string) { fmt.Println("  " + msg) })
	if err != nil {
		return fmt.Errorf("migration stopped after %d of %d: %w", applied, pending, err)
	}
	if current, _, err = m.SchemaStatus(); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	fmt.Printf("Applied %d migration(s); schema is now at version %d.\n", applied, current)
	return nil
}
