package sessions

import (
	"fmt"

	"github.com/julianstephens/cronograma/internal/cli"
	"github.com/julianstephens/cronograma/internal/models"
	"github.com/julianstephens/cronograma/internal/scheduling"
	"github.com/julianstephens/cronograma/internal/utils"
)

type EditCmd struct {
	ID     string  `arg:"" help:"Session ID or unique prefix."`
	Period *string `short:"p" help:"Move to a period's window (matutino|vespertino|noturno)."`
	Window *string `short:"w" help:"Explicit time window (HH:MM-HH:MM)."`
	Hours  *int    `short:"H" help:"Hours (1-8)."`
	Status *string `short:"s" help:"Status (Agendada|Realizada|Cancelada)."`
}

func (c *EditCmd) Validate() error {
	if c.Period != nil && c.Window != nil {
		return fmt.Errorf("use either --period or --window, not both")
	}
	if c.Window != nil {
		if _, _, err := utils.ParseWindow(*c.Window); err != nil {
			return err
		}
	}
	return nil
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	session, err := findSession(ctx, c.ID)
	if err != nil {
		return err
	}

	patch := models.SessionPatch{
		TimeWindow: session.TimeWindow,
		Hours:      session.Hours,
		Status:     session.Status,
	}
	if c.Period != nil {
		p, err := scheduling.ParsePeriod(*c.Period)
		if err != nil {
			return err
		}
		patch.TimeWindow = p.Window()
	}
	if c.Window != nil {
		patch.TimeWindow = *c.Window
	}
	if c.Hours != nil {
		patch.Hours = *c.Hours
	}
	if c.Status != nil {
		if patch.Status, err = models.ParseSessionStatus(*c.Status); err != nil {
			return err
		}
	}

	if err := ctx.Engine().EditSession(session.ID, patch); err != nil {
		return err
	}
	fmt.Printf("✓ Updated session %s on %s: %s, %s, %s\n",
		cli.ShortID(session.ID), session.Date, patch.TimeWindow, cli.FormatHours(patch.Hours), patch.Status)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Session ID or unique prefix."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	session, err := findSession(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Engine().DeleteSession(session.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted session %s on %s (%s / %s)\n",
		cli.ShortID(session.ID), session.Date, session.GroupName, session.UnitName)
	return nil
}

func findSession(ctx *cli.Context, prefix string) (models.ClassSession, error) {
	all, err := ctx.Store.GetSessions(models.SessionFilter{})
	if err != nil {
		return models.ClassSession{}, fmt.Errorf("failed to get sessions: %w", err)
	}
	ids := make([]string, len(all))
	for i, s := range all {
		ids[i] = s.ID
	}
	id, err := cli.ResolveID(prefix, ids)
	if err != nil {
		return models.ClassSession{}, fmt.Errorf("session: %w", err)
	}
	return ctx.Store.GetSession(id)
}
