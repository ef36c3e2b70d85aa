package holidays

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/constants"
	"github.com/julianstephens/cronograma/internal/holidays"
)

type NationalCmd struct {
	Year int `short:"y" help:"Year to list. Defaults to the current year."`
}

func (c *NationalCmd) Run(ctx *cli.Context) error {
	year := c.Year
	if year == 0 {
		year = ctx.Today().Year()
	}

	m := holidays.BuildHolidayMap(year, 0)
	type entry struct {
		day   time.Time
		label string
	}
	var entries []entry
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local); d.Year() == year; d = d.AddDate(0, 0, 1) {
		if label, ok := m.Lookup(d); ok {
			entries = append(entries, entry{d, label})
		}
	}

	fmt.Printf("National holidays %d (Easter: %s):\n", year, holidays.ComputeEaster(year).Format(constants.DateFormat))
	for _, e := range entries {
		fmt.Printf("  %s %s  %s\n", e.day.Format(constants.DateFormat), e.day.Weekday().String()[:3], e.label)
	}
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Store.GetMunicipalHolidays()
	if err != nil {
		return fmt.Errorf("failed to get municipal holidays: %w", err)
	}
	if len(list) == 0 {
		fmt.Println("No municipal holidays found")
		return nil
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date < list[j].Date })

	fmt.Println("Municipal holidays:")
	for _, h := range list {
		fmt.Printf("  %s  %s\n", h.Date, h.Name)
	}
	return nil
}

type AddCmd struct {
	Date string `arg:"" help:"Holiday date (YYYY-MM-DD)."`
	Name string `arg:"" help:"Holiday name."`
}

func (c *AddCmd) Validate() error {
	if _, err := calendar.ParseDay(c.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	engine := ctx.Engine()
	if err := engine.AddMunicipalHoliday(c.Date, c.Name); err != nil {
		return err
	}
	day, _ := calendar.ParseDay(c.Date)
	if label, ok := engine.National().Lookup(day); ok {
		fmt.Printf("ℹ %s is also a national holiday (%s), which takes precedence in the calendar\n", c.Date, label)
	}
	fmt.Printf("✓ Added municipal holiday %s %q\n", c.Date, c.Name)
	return nil
}

type DeleteCmd struct {
	Date string `arg:"" help:"Holiday date (YYYY-MM-DD)."`
	Name string `arg:"" help:"Holiday name."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine().DeleteMunicipalHoliday(c.Date, c.Name); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted municipal holiday %s %q\n", c.Date, c.Name)
	return nil
}
