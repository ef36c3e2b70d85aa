package catalog

import (
	"fmt"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/scheduling"
)

type UnitAddCmd struct {
	Name   string `arg:"" help:"Curricular unit name."`
	Course string `short:"c" help:"Course ID or unique prefix." required:""`
	Hours  int    `short:"H" help:"Hour budget for the unit." required:""`
}

func (c *UnitAddCmd) Run(ctx *cli.Context) error {
	course, err := findCourse(ctx, c.Course)
	if err != nil {
		return err
	}
	unit := models.CurricularUnit{Name: c.Name, TotalHours: c.Hours, CourseID: course.ID}
	if err := unit.Validate(); err != nil {
		return err
	}
	created, err := ctx.Store.AddUnit(unit)
	if err != nil {
		return fmt.Errorf("failed to add curricular unit: %w", err)
	}
	fmt.Printf("✓ Added curricular unit %q to %s (ID: %s)\n", created.Name, course.Name, cli.ShortID(created.ID))
	return nil
}

type UnitListCmd struct {
	Group string `short:"g" help:"Only units of this class group's course."`
}

func (c *UnitListCmd) Run(ctx *cli.Context) error {
	units, err := ctx.Store.GetUnits()
	if err != nil {
		return fmt.Errorf("failed to get curricular units: %w", err)
	}

	if c.Group != "" {
		group, err := findGroup(ctx, c.Group)
		if err != nil {
			return err
		}
		units = scheduling.UnitsForGroup([]models.ClassGroup{group}, units, group.ID)
	}

	if len(units) == 0 {
		fmt.Println("No curricular units found")
		return nil
	}

	engine := ctx.Engine()
	fmt.Println("Curricular units:")
	for _, u := range units {
		fmt.Printf("  %s  %s - %s, %s budget, %s scheduled\n",
			cli.ShortID(u.ID), u.Name, u.CourseName,
			cli.FormatHours(u.TotalHours), cli.FormatHours(engine.ConsumedHours(u.ID)))
	}
	return nil
}

type UnitEditCmd struct {
	ID     string  `arg:"" help:"Curricular unit ID or unique prefix."`
	Name   *string `help:"New name."`
	Hours  *int    `short:"H" help:"New hour budget."`
	Course *string `short:"c" help:"New course ID or prefix."`
}

func (c *UnitEditCmd) Run(ctx *cli.Context) error {
	unit, err := findUnit(ctx, c.ID)
	if err != nil {
		return err
	}
	if c.Name != nil {
		unit.Name = *c.Name
	}
	if c.Hours != nil {
		unit.TotalHours = *c.Hours
	}
	if c.Course != nil {
		course, err := findCourse(ctx, *c.Course)
		if err != nil {
			return err
		}
		unit.CourseID = course.ID
	}
	if err := unit.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateUnit(unit); err != nil {
		return fmt.Errorf("failed to update curricular unit: %w", err)
	}
	fmt.Printf("✓ Updated curricular unit %q\n", unit.Name)
	return nil
}

type UnitDeleteCmd struct {
	ID string `arg:"" help:"Curricular unit ID or unique prefix."`
}

func (c *UnitDeleteCmd) Run(ctx *cli.Context) error {
	unit, err := findUnit(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteUnit(unit.ID); err != nil {
		return fmt.Errorf("failed to delete curricular unit (does it still have sessions?): %w", err)
	}
	fmt.Printf("✓ Deleted curricular unit %q\n", unit.Name)
	return nil
}

// FindUnit resolves a curricular unit id prefix.
func FindUnit(ctx *cli.Context, prefix string) (models.CurricularUnit, error) {
	return findUnit(ctx, prefix)
}

func findUnit(ctx *cli.Context, prefix string) (models.CurricularUnit, error) {
	units, err := ctx.Store.GetUnits()
	if err != nil {
		return models.CurricularUnit{}, fmt.Errorf("failed to get curricular units: %w", err)
	}
	ids := make([]string, len(units))
	for i, u := range units {
		ids[i] = u.ID
	}
	id, err := cli.ResolveID(prefix, ids)
	if err != nil {
		return models.CurricularUnit{}, fmt.Errorf("curricular unit: %w", err)
	}
	return ctx.Store.GetUnit(id)
}
