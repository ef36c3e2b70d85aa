// Package reports prints and exports the session projection.
package reports

import (
	"fmt"
	"time"

	cal "github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/cli/catalog"
	"github.com/julianstephens/cronograma/internal/tui/components/calendar"
)

type CalendarCmd struct {
	Month string `short:"m" help:"Month to print (YYYY-MM). Defaults to the current month."`
	Group string `short:"g" help:"Only sessions of this class group."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	year, month, err := cal.ParseMonth(c.Month, ctx.Today())
	if err != nil {
		return fmt.Errorf("invalid --month (expected YYYY-MM): %w", err)
	}

	engine := ctx.Engine()
	if c.Group != "" {
		group, err := catalog.FindGroup(ctx, c.Group)
		if err != nil {
			return err
		}
		engine.SetGroupFilter(group.ID)
	}

	fmt.Println(calendar.RenderMonth(engine, year, month, nil))
	fmt.Println()

	days := 0
	for cell := range cal.MonthGrid(year, month) {
		if cell.Blank {
			continue
		}
		cls := engine.Classify(cell.Day)
		events := engine.EventsForDay(cell.Day)
		if !cls.IsHoliday && len(events) == 0 {
			continue
		}
		days++

		fmt.Printf("%s %s", cell.Day.Format("02"), weekday(cell.Day))
		if cls.IsHoliday {
			fmt.Printf("  ⚠ %s", cls.HolidayLabel)
		}
		fmt.Println()
		for _, s := range events {
			fmt.Printf("    %s  %-9s %-9s %s / %s\n",
				s.TimeWindow, cli.FormatHours(s.Hours), s.Status, s.GroupName, s.UnitName)
		}
	}
	if days == 0 {
		fmt.Println("No sessions or holidays this month")
	}
	return nil
}

func weekday(d time.Time) string {
	return d.Weekday().String()[:3]
}
