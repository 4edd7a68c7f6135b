package cli

import "fmt"

type DeleteCmd struct {
	ID string `arg:"" help:"Itinerary ID to delete."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteItinerary(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted itinerary %s\n", c.ID)
	return nil
}
