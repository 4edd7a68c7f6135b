package cli

import (
	"fmt"

	"github.com/julianstephens/tripcraft/internal/validation"
)

type ValidateCmd struct {
	ID string `arg:"" optional:"" help:"Itinerary ID to validate (defaults to the most recent)."`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	saved, err := ctx.LatestItinerary(c.ID)
	if err != nil {
		return err
	}

	validator := validation.New(ctx.Config.DayStartMin, ctx.Config.DayEndMin)
	result := validator.ValidateItinerary(saved.Itinerary)

	fmt.Println(result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflicts found in itinerary %s", len(result.Conflicts), saved.ID)
	}
	return nil
}
