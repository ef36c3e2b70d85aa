package reports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/cli/catalog"
	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/ics"
	"github.com/julianstephens/cronograma/internal/logger"
	"github.com/julianstephens/cronograma/internal/models"
)

type ExportCmd struct {
	Out   string `short:"o" required:"" type:"path" help:"File to write the iCalendar feed to."`
	Group string `short:"g" help:"Only sessions of this class group."`
	Month string `short:"m" help:"Only sessions in this month (YYYY-MM)."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	var filter models.SessionFilter
	name := constants.AppName
	if c.Group != "" {
		group, err := catalog.FindGroup(ctx, c.Group)
		if err != nil {
			return err
		}
		filter.GroupID = group.ID
		name = fmt.Sprintf("%s %s", constants.AppName, group.Name)
	}
	if c.Month != "" {
		year, month, err := calendar.ParseMonth(c.Month, ctx.Today())
		if err != nil {
			return fmt.Errorf("invalid --month (expected YYYY-MM): %w", err)
		}
		filter.From, filter.Until = calendar.MonthBounds(year, month)
	}

	sessions, err := ctx.Store.GetSessions(filter)
	if err != nil {
		return fmt.Errorf("failed to get sessions: %w", err)
	}

	if dir := filepath.Dir(c.Out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Out, err)
	}
	defer f.Close()

	skipped, err := ics.Write(f, sessions, ics.Options{Name: name})
	if err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", c.Out, err)
	}

	logger.Info("calendar exported", "path", c.Out, "sessions", len(sessions)-skipped, "skipped", skipped)
	fmt.Printf("✓ Exported %d session(s) to %s\n", len(sessions)-skipped, c.Out)
	if skipped > 0 {
		fmt.Printf("⚠ Skipped %d session(s) with an unreadable date or time window\n", skipped)
	}
	return nil
}
