package system

import (
	"fmt"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/cli/catalog"
	"github.com/julianstephens/cronograma/internal/tui"
)

type TuiCmd struct {
	Group string `short:"g" help:"Start with the calendar filtered to this class group."`
	Month string `short:"m" help:"Start on this month (YYYY-MM)."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	opts := tui.Options{Today: ctx.Today()}

	if c.Month != "" {
		year, month, err := calendar.ParseMonth(c.Month, ctx.Today())
		if err != nil {
			return fmt.Errorf("invalid --month (expected YYYY-MM): %w", err)
		}
		opts.Year, opts.Month = year, month
	}
	if c.Group != "" {
		group, err := catalog.FindGroup(ctx, c.Group)
		if err != nil {
			return err
		}
		opts.GroupID = group.ID
	}

	if err := tui.Run(ctx.Engine(), opts); err != nil {
		return fmt.Errorf("tui exited with an error: %w", err)
	}
	return nil
}
