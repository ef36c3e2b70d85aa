package catalog

import (
	"fmt"
	"strings"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/models"
)

type GroupAddCmd struct {
	Name       string `arg:"" help:"Class group name."`
	Course     string `short:"c" help:"Course ID or unique prefix." required:""`
	Instructor string `short:"i" help:"Instructor ID or unique prefix."`
	Shift      string `short:"s" help:"Shift (matutino|vespertino|noturno)."`
}

func (c *GroupAddCmd) Run(ctx *cli.Context) error {
	group := models.ClassGroup{Name: c.Name}
	if err := resolveGroupRefs(ctx, &group, c.Course, c.Instructor, c.Shift); err != nil {
		return err
	}
	if err := group.Validate(); err != nil {
		return err
	}
	created, err := ctx.Store.AddClassGroup(group)
	if err != nil {
		return fmt.Errorf("failed to add class group: %w", err)
	}
	fmt.Printf("✓ Added class group %q (ID: %s)\n", created.Name, cli.ShortID(created.ID))
	return nil
}

type GroupListCmd struct{}

func (c *GroupListCmd) Run(ctx *cli.Context) error {
	groups, err := ctx.Store.GetClassGroups()
	if err != nil {
		return fmt.Errorf("failed to get class groups: %w", err)
	}
	if len(groups) == 0 {
		fmt.Println("No class groups found")
		return nil
	}

	fmt.Println("Class groups:")
	for _, g := range groups {
		fmt.Printf("  %s  %s - %s", cli.ShortID(g.ID), g.Name, g.CourseName)
		if g.ShiftName != "" {
			fmt.Printf(" (%s)", g.ShiftName)
		}
		if g.InstructorName != "" {
			fmt.Printf(", %s", g.InstructorName)
		}
		fmt.Println()
	}
	return nil
}

type GroupEditCmd struct {
	ID         string  `arg:"" help:"Class group ID or unique prefix."`
	Name       *string `help:"New name."`
	Course     *string `short:"c" help:"New course ID or prefix."`
	Instructor *string `short:"i" help:"New instructor ID or prefix; empty clears it."`
	Shift      *string `short:"s" help:"New shift; empty clears it."`
}

func (c *GroupEditCmd) Run(ctx *cli.Context) error {
	group, err := findGroup(ctx, c.ID)
	if err != nil {
		return err
	}
	if c.Name != nil {
		group.Name = *c.Name
	}

	course, instructor, shift := group.CourseID, group.InstructorID, group.ShiftID
	if c.Course != nil {
		course = *c.Course
	}
	if c.Instructor != nil {
		instructor = *c.Instructor
	}
	if c.Shift != nil {
		shift = *c.Shift
	}
	if err := resolveGroupRefs(ctx, &group, course, instructor, shift); err != nil {
		return err
	}

	if err := group.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateClassGroup(group); err != nil {
		return fmt.Errorf("failed to update class group: %w", err)
	}
	fmt.Printf("✓ Updated class group %q\n", group.Name)
	return nil
}

type GroupDeleteCmd struct {
	ID string `arg:"" help:"Class group ID or unique prefix."`
}

func (c *GroupDeleteCmd) Run(ctx *cli.Context) error {
	group, err := findGroup(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteClassGroup(group.ID); err != nil {
		return fmt.Errorf("failed to delete class group (does it still have sessions?): %w", err)
	}
	fmt.Printf("✓ Deleted class group %q\n", group.Name)
	return nil
}

// FindGroup resolves a class group id prefix. Other command packages use it
// for their --group flags.
func FindGroup(ctx *cli.Context, prefix string) (models.ClassGroup, error) {
	return findGroup(ctx, prefix)
}

// findGroup accepts an id prefix or the group's exact name, ignoring case.
func findGroup(ctx *cli.Context, prefix string) (models.ClassGroup, error) {
	groups, err := ctx.Store.GetClassGroups()
	if err != nil {
		return models.ClassGroup{}, fmt.Errorf("failed to get class groups: %w", err)
	}
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	var byName []models.ClassGroup
	for _, g := range groups {
		if strings.EqualFold(g.Name, strings.TrimSpace(prefix)) {
			byName = append(byName, g)
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}
	id, err := cli.ResolveID(prefix, ids)
	if err != nil {
		return models.ClassGroup{}, fmt.Errorf("class group: %w", err)
	}
	return ctx.Store.GetClassGroup(id)
}

// resolveGroupRefs expands the course, instructor and shift references onto group.
func resolveGroupRefs(ctx *cli.Context, group *models.ClassGroup, course, instructor, shift string) error {
	if course != "" {
		found, err := findCourse(ctx, course)
		if err != nil {
			return err
		}
		group.CourseID = found.ID
	}

	group.InstructorID = ""
	if instructor != "" {
		found, err := findInstructor(ctx, instructor)
		if err != nil {
			return err
		}
		group.InstructorID = found.ID
	}

	group.ShiftID = ""
	if shift != "" {
		shifts, err := ctx.Store.GetShifts()
		if err != nil {
			return fmt.Errorf("failed to get shifts: %w", err)
		}
		for _, s := range shifts {
			if strings.EqualFold(s.ID, shift) || strings.EqualFold(s.Name, shift) {
				group.ShiftID = s.ID
				break
			}
		}
		if group.ShiftID == "" {
			return fmt.Errorf("unknown shift %q", shift)
		}
	}
	return nil
}
