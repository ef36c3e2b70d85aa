package reports

import (
	"errors"
	"fmt"

	"github.com/julianstephens/cronograma/internal/calendar"
	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/validation"
)

// ErrConflicts is returned when the audit finds problems.
var ErrConflicts = errors.New("schedule has conflicts")

// ValidateCmd audits the stored schedule. It exits non-zero when conflicts
// are found so it can gate scripts.
type ValidateCmd struct {
	Month string `short:"m" help:"Only audit sessions in this month (YYYY-MM)."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	in, err := ctx.AuditInput()
	if err != nil {
		return err
	}

	var result validation.ValidationResult
	if c.Month != "" {
		year, month, err := calendar.ParseMonth(c.Month, ctx.Today())
		if err != nil {
			return fmt.Errorf("invalid --month (expected YYYY-MM): %w", err)
		}
		result = validation.New().ValidateForMonth(in, year, month)
	} else {
		result = validation.New().Validate(in)
	}

	fmt.Println(result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("%w: %d found", ErrConflicts, len(result.Conflicts))
	}
	return nil
}
