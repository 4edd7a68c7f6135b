package cli

import "fmt"

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	itineraries, err := ctx.Store.GetAllItineraries()
	if err != nil {
		return err
	}

	if len(itineraries) == 0 {
		fmt.Println("No saved itineraries.")
		return nil
	}

	for _, saved := range itineraries {
		fmt.Printf("%s  %s  %d days from %s  (%d activities, %d meals)\n",
			saved.ID,
			saved.CreatedAt.Format("2006-01-02 15:04"),
			saved.Itinerary.Duration,
			saved.Itinerary.StartDate,
			saved.Itinerary.TotalActivities,
			saved.Itinerary.TotalMeals,
		)
	}
	return nil
}
