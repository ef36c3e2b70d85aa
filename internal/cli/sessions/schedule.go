package sessions

import (
	"fmt"
	"time"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/cli/catalog"
	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/scheduling"
)

type ScheduleCmd struct {
	Group        string   `short:"g" help:"Class group ID or unique prefix." required:""`
	Unit         string   `short:"u" help:"Curricular unit ID or unique prefix." required:""`
	Period       string   `short:"p" help:"Period (matutino|vespertino|noturno)." default:"matutino"`
	Hours        int      `short:"H" help:"Hours per session." default:"1"`
	Day          []string `short:"d" help:"Day to schedule (YYYY-MM-DD). Repeatable or comma-separated."`
	Rrule        string   `help:"Recurrence rule selecting days, e.g. FREQ=WEEKLY;BYDAY=MO,WE."`
	From         string   `help:"First day for --rrule (YYYY-MM-DD). Defaults to today."`
	Until        string   `help:"Last day for --rrule (YYYY-MM-DD)."`
	SkipHolidays bool     `help:"Leave weekends and holidays out of the selection." name:"skip-holidays"`
	DryRun       bool     `help:"Show what would be scheduled without saving." name:"dry-run"`
}

func (c *ScheduleCmd) Validate() error {
	if len(c.Day) == 0 && c.Rrule == "" {
		return fmt.Errorf("choose days with --day or --rrule")
	}
	if c.Rrule != "" && c.Until == "" {
		return fmt.Errorf("--until is required with --rrule")
	}
	if _, err := scheduling.ParsePeriod(c.Period); err != nil {
		return err
	}
	return nil
}

func (c *ScheduleCmd) Run(ctx *cli.Context) error {
	group, err := catalog.FindGroup(ctx, c.Group)
	if err != nil {
		return err
	}
	unit, err := catalog.FindUnit(ctx, c.Unit)
	if err != nil {
		return err
	}
	period, err := scheduling.ParsePeriod(c.Period)
	if err != nil {
		return err
	}

	engine := ctx.Engine()
	sel := engine.Selection()

	if c.Rrule != "" {
		from := ctx.Today()
		if c.From != "" {
			if from, err = calendar.ParseDay(c.From); err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
		}
		until, err := calendar.ParseDay(c.Until)
		if err != nil {
			return fmt.Errorf("invalid --until: %w", err)
		}
		if _, err := sel.SelectRule(c.Rrule, from, until); err != nil {
			return err
		}
	}

	// Explicit days are added after the rule so the rule cannot toggle them off
	days, err := cli.ParseDays(c.Day)
	if err != nil {
		return err
	}
	for _, d := range days {
		if !sel.IsMultiSelected(d) {
			sel.Click(d, true)
		}
	}

	if c.SkipHolidays {
		for _, d := range sel.Days() {
			cls := engine.Classify(d)
			if cls.IsWeekend || cls.IsHoliday {
				sel.Click(d, true)
			}
		}
	}

	req := engine.NewRequest()
	req.GroupID = group.ID
	req.UnitID = unit.ID
	req.Hours = c.Hours
	req.SetPeriod(period)
	if req.Hours != c.Hours {
		fmt.Printf("ℹ %s allows at most %s per session; using %s\n", period, cli.FormatHours(period.Ceiling()), cli.FormatHours(req.Hours))
	}

	if c.DryRun {
		if err := engine.Validate(req); err != nil {
			return err
		}
		printPlan(req, engine)
		return nil
	}

	created, err := engine.Submit(req)
	if err != nil {
		return err
	}

	remaining, _ := engine.Remaining(req)
	fmt.Printf("✓ Scheduled %d session(s) of %s for %s (%s, %s each)\n",
		len(created), unit.Name, group.Name, period.Window(), cli.FormatHours(req.Hours))
	fmt.Printf("  %s of %s budget left after this request\n",
		cli.FormatHours(remaining), cli.FormatHours(unit.TotalHours))
	return nil
}

func printPlan(req scheduling.Request, engine *scheduling.Engine) {
	remaining, _ := engine.Remaining(req)
	fmt.Printf("Would schedule %d session(s), %s total, %s left:\n",
		len(req.Days), cli.FormatHours(req.TotalHours()), cli.FormatHours(remaining))
	for _, d := range req.Days {
		label := ""
		if cls := engine.Classify(d); cls.IsHoliday {
			label = "  (" + cls.HolidayLabel + ")"
		}
		fmt.Printf("  %s %s %s%s\n", d.Format(constants.DateFormat), weekdayShort(d), req.Period.Window(), label)
	}
}

func weekdayShort(d time.Time) string {
	return d.Weekday().String()[:3]
}
