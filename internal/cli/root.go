package cli

import (
	"fmt"

	"github.com/julianstephens/tripcraft/internal/models"
	"github.com/julianstephens/tripcraft/internal/scheduler"
	"github.com/julianstephens/tripcraft/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config scheduler.Config
}

// FormatTime renders minutes-from-midnight as HH:MM
func FormatTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// LatestItinerary returns the stored itinerary with the given ID, or the
// most recently created one when id is empty.
func (c *Context) LatestItinerary(id string) (models.SavedItinerary, error) {
	if id != "" {
		return c.Store.GetItinerary(id)
	}

	itineraries, err := c.Store.GetAllItineraries()
	if err != nil {
		return models.SavedItinerary{}, err
	}
	if len(itineraries) == 0 {
		return models.SavedItinerary{}, fmt.Errorf("no saved itineraries, generate one with 'tripcraft plan --save'")
	}
	return itineraries[0], nil
}
