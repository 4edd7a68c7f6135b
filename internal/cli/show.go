package cli

import (
	"encoding/json"
	"fmt"
)

type ShowCmd struct {
	ID   string `arg:"" optional:"" help:"Itinerary ID (defaults to the most recent)."`
	JSON bool   `help:"Emit the itinerary as JSON instead of the rendered view."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	saved, err := ctx.LatestItinerary(c.ID)
	if err != nil {
		return err
	}

	if c.JSON {
		out, err := json.MarshalIndent(saved, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Itinerary %s (created %s)\n\n", saved.ID, saved.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Print(RenderItinerary(saved.Itinerary))
	return nil
}
