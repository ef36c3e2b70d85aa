package sessions

import (
	"fmt"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/cli/catalog"
	"github.com/julianstephens/cronograma/internal/models"
)

type ListCmd struct {
	Group  string `short:"g" help:"Only sessions of this class group."`
	Unit   string `short:"u" help:"Only sessions of this curricular unit."`
	Month  string `short:"m" help:"Only sessions in this month (YYYY-MM)."`
	Status string `short:"s" help:"Only sessions with this status."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var filter models.SessionFilter
	if c.Group != "" {
		group, err := catalog.FindGroup(ctx, c.Group)
		if err != nil {
			return err
		}
		filter.GroupID = group.ID
	}
	if c.Unit != "" {
		unit, err := catalog.FindUnit(ctx, c.Unit)
		if err != nil {
			return err
		}
		filter.UnitID = unit.ID
	}
	if c.Month != "" {
		year, month, err := calendar.ParseMonth(c.Month, ctx.Today())
		if err != nil {
			return fmt.Errorf("invalid --month (expected YYYY-MM): %w", err)
		}
		filter.From, filter.Until = calendar.MonthBounds(year, month)
	}
	var status models.SessionStatus
	if c.Status != "" {
		var err error
		if status, err = models.ParseSessionStatus(c.Status); err != nil {
			return err
		}
	}

	sessions, err := ctx.Store.GetSessions(filter)
	if err != nil {
		return fmt.Errorf("failed to get sessions: %w", err)
	}

	engine := ctx.Engine()
	shown := 0
	for _, s := range sessions {
		if status != "" && s.Status != status {
			continue
		}
		if shown == 0 {
			fmt.Println("Sessions:")
		}
		shown++

		label := ""
		if day, err := calendar.ParseDay(s.Date); err == nil {
			if cls := engine.Classify(day); cls.IsHoliday {
				label = "  ⚠ " + cls.HolidayLabel
			}
		}
		fmt.Printf("  %s  %s %s  %-9s %-9s %s / %s%s\n",
			cli.ShortID(s.ID), s.Date, s.TimeWindow, cli.FormatHours(s.Hours), s.Status,
			s.GroupName, s.UnitName, label)
	}
	if shown == 0 {
		fmt.Println("No sessions found")
	}
	return nil
}
