package catalog

import (
	"fmt"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/models"
)

type CourseAddCmd struct {
	Name  string `arg:"" help:"Course name."`
	Hours int    `short:"H" help:"Total course hours." default:"0"`
}

func (c *CourseAddCmd) Run(ctx *cli.Context) error {
	course := models.Course{Name: c.Name, TotalHours: c.Hours}
	if err := course.Validate(); err != nil {
		return err
	}
	created, err := ctx.Store.AddCourse(course)
	if err != nil {
		return fmt.Errorf("failed to add course: %w", err)
	}
	fmt.Printf("✓ Added course %q (ID: %s)\n", created.Name, cli.ShortID(created.ID))
	return nil
}

type CourseListCmd struct{}

func (c *CourseListCmd) Run(ctx *cli.Context) error {
	courses, err := ctx.Store.GetCourses()
	if err != nil {
		return fmt.Errorf("failed to get courses: %w", err)
	}
	if len(courses) == 0 {
		fmt.Println("No courses found")
		return nil
	}

	fmt.Println("Courses:")
	for _, course := range courses {
		fmt.Printf("  %s  %s (%s)\n", cli.ShortID(course.ID), course.Name, cli.FormatHours(course.TotalHours))
	}
	return nil
}

type CourseEditCmd struct {
	ID    string  `arg:"" help:"Course ID or unique prefix."`
	Name  *string `help:"New name."`
	Hours *int    `short:"H" help:"New total hours."`
}

func (c *CourseEditCmd) Run(ctx *cli.Context) error {
	course, err := findCourse(ctx, c.ID)
	if err != nil {
		return err
	}
	if c.Name != nil {
		course.Name = *c.Name
	}
	if c.Hours != nil {
		course.TotalHours = *c.Hours
	}
	if err := course.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateCourse(course); err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	fmt.Printf("✓ Updated course %q\n", course.Name)
	return nil
}

type CourseDeleteCmd struct {
	ID string `arg:"" help:"Course ID or unique prefix."`
}

func (c *CourseDeleteCmd) Run(ctx *cli.Context) error {
	course, err := findCourse(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteCourse(course.ID); err != nil {
		return fmt.Errorf("failed to delete course (is it still referenced by groups or units?): %w", err)
	}
	fmt.Printf("✓ Deleted course %q\n", course.Name)
	return nil
}

func findCourse(ctx *cli.Context, prefix string) (models.Course, error) {
	courses, err := ctx.Store.GetCourses()
	if err != nil {
		return models.Course{}, fmt.Errorf("failed to get courses: %w", err)
	}
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	id, err := cli.ResolveID(prefix, ids)
	if err != nil {
		return models.Course{}, fmt.Errorf("course: %w", err)
	}
	return ctx.Store.GetCourse(id)
}
