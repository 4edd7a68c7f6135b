package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tripcraft/internal/logger"
	"github.com/julianstephens/tripcraft/internal/models"
	"github.com/julianstephens/tripcraft/internal/scheduler"
)

type PlanCmd struct {
	File string `arg:"" help:"Trip request JSON file." type:"existingfile"`
	Seed int64  `help:"Fix the random seed for reproducible restaurant picks."`
	Save bool   `help:"Persist the generated itinerary."`
	JSON bool   `help:"Emit the itinerary as JSON instead of the rendered view."`
}

func (c *PlanCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read trip request: %w", err)
	}

	var req models.TripRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse trip request: %w", err)
	}

	var sched *scheduler.Scheduler
	if c.Seed != 0 {
		sched = scheduler.NewSeeded(ctx.Config, c.Seed)
	} else {
		sched = scheduler.New(ctx.Config)
	}

	itinerary, err := sched.GenerateItinerary(req)
	if err != nil {
		return err
	}
	logger.Debug("Itinerary generated", "days", itinerary.Duration, "activities", itinerary.TotalActivities, "meals", itinerary.TotalMeals)

	if c.Save {
		if err := ctx.Store.Load(); err != nil {
			return err
		}
		saved := models.SavedItinerary{
			ID:        uuid.New().String(),
			CreatedAt: time.Now().UTC(),
			Itinerary: itinerary,
		}
		if err := ctx.Store.SaveItinerary(saved); err != nil {
			return fmt.Errorf("failed to save itinerary: %w", err)
		}
		fmt.Printf("Saved itinerary %s\n\n", saved.ID)
	}

	if c.JSON {
		out, err := json.MarshalIndent(itinerary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(RenderItinerary(itinerary))
	return nil
}
