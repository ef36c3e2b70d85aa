package catalog

import (
	"fmt"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/models"
)

type InstructorAddCmd struct {
	Name           string `arg:"" help:"Instructor name."`
	Specialization string `short:"s" help:"Area of specialization."`
	Email          string `short:"e" help:"Contact email."`
	Phone          string `short:"p" help:"Contact phone."`
}

func (c *InstructorAddCmd) Run(ctx *cli.Context) error {
	instructor := models.Instructor{
		Name:           c.Name,
		Specialization: c.Specialization,
		Email:          c.Email,
		Phone:          c.Phone,
	}
	if err := instructor.Validate(); err != nil {
		return err
	}
	created, err := ctx.Store.AddInstructor(instructor)
	if err != nil {
		return fmt.Errorf("failed to add instructor: %w", err)
	}
	fmt.Printf("✓ Added instructor %q (ID: %s)\n", created.Name, cli.ShortID(created.ID))
	return nil
}

type InstructorListCmd struct{}

func (c *InstructorListCmd) Run(ctx *cli.Context) error {
	instructors, err := ctx.Store.GetInstructors()
	if err != nil {
		return fmt.Errorf("failed to get instructors: %w", err)
	}
	if len(instructors) == 0 {
		fmt.Println("No instructors found")
		return nil
	}

	fmt.Println("Instructors:")
	for _, i := range instructors {
		fmt.Printf("  %s  %s", cli.ShortID(i.ID), i.Name)
		if i.Specialization != "" {
			fmt.Printf(" [%s]", i.Specialization)
		}
		if i.Email != "" {
			fmt.Printf(" <%s>", i.Email)
		}
		if i.Phone != "" {
			fmt.Printf(" %s", i.Phone)
		}
		fmt.Println()
	}
	return nil
}

type InstructorEditCmd struct {
	ID             string  `arg:"" help:"Instructor ID or unique prefix."`
	Name           *string `help:"New name."`
	Specialization *string `short:"s" help:"New specialization."`
	Email          *string `short:"e" help:"New email."`
	Phone          *string `short:"p" help:"New phone."`
}

func (c *InstructorEditCmd) Run(ctx *cli.Context) error {
	instructor, err := findInstructor(ctx, c.ID)
	if err != nil {
		return err
	}
	if c.Name != nil {
		instructor.Name = *c.Name
	}
	if c.Specialization != nil {
		instructor.Specialization = *c.Specialization
	}
	if c.Email != nil {
		instructor.Email = *c.Email
	}
	if c.Phone != nil {
		instructor.Phone = *c.Phone
	}
	if err := instructor.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateInstructor(instructor); err != nil {
		return fmt.Errorf("failed to update instructor: %w", err)
	}
	fmt.Printf("✓ Updated instructor %q\n", instructor.Name)
	return nil
}

type InstructorDeleteCmd struct {
	ID string `arg:"" help:"Instructor ID or unique prefix."`
}

func (c *InstructorDeleteCmd) Run(ctx *cli.Context) error {
	instructor, err := findInstructor(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteInstructor(instructor.ID); err != nil {
		return fmt.Errorf("failed to delete instructor (is a class group still assigned?): %w", err)
	}
	fmt.Printf("✓ Deleted instructor %q\n", instructor.Name)
	return nil
}

func findInstructor(ctx *cli.Context, prefix string) (models.Instructor, error) {
	instructors, err := ctx.Store.GetInstructors()
	if err != nil {
		return models.Instructor{}, fmt.Errorf("failed to get instructors: %w", err)
	}
	ids := make([]string, len(instructors))
	for i, in := range instructors {
		ids[i] = in.ID
	}
	id, err := cli.ResolveID(prefix, ids)
	if err != nil {
		return models.Instructor{}, fmt.Errorf("instructor: %w", err)
	}
	for _, in := range instructors {
		if in.ID == id {
			return in, nil
		}
	}
	return models.Instructor{}, fmt.Errorf("instructor: not found: %s", prefix)
}
