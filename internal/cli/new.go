package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tripcraft/internal/constants"
	"github.com/julianstephens/tripcraft/internal/models"
)

type NewCmd struct {
	Output string `help:"Where to write the trip request file." default:"trip.json"`
}

type tripFormModel struct {
	Destination string
	StartDate   string
	Duration    string
	Tags        string
	HotelName   string
	HotelLat    string
	HotelLon    string
}

// Run walks the user through a trip request skeleton. Candidate POI
// pools are supplied by an upstream place provider, so the written file
// has empty activities/food lists to be filled before planning.
func (c *NewCmd) Run(ctx *Context) error {
	fm := tripFormModel{
		StartDate: time.Now().AddDate(0, 0, 7).Format(constants.DateFormat),
		Duration:  "3",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination").
				Value(&fm.Destination).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("destination cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(&fm.StartDate).
				Validate(func(s string) error {
					_, err := time.Parse(constants.DateFormat, s)
					return err
				}),
			huh.NewInput().
				Title("Duration (days)").
				Value(&fm.Duration).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("duration must be a positive number of days")
					}
					return nil
				}),
			huh.NewInput().
				Title("Interest tags").
				Description("Comma-separated key=value pairs, e.g. amenity=museum,leisure=park").
				Value(&fm.Tags),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hotel name").
				Value(&fm.HotelName),
			huh.NewInput().
				Title("Hotel latitude").
				Value(&fm.HotelLat).
				Validate(validateFloat),
			huh.NewInput().
				Title("Hotel longitude").
				Value(&fm.HotelLon).
				Validate(validateFloat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	duration, _ := strconv.Atoi(fm.Duration)
	lat, _ := strconv.ParseFloat(fm.HotelLat, 64)
	lon, _ := strconv.ParseFloat(fm.HotelLon, 64)

	tags, err := ParseTags(fm.Tags)
	if err != nil {
		return err
	}

	req := models.TripRequest{
		Destination: fm.Destination,
		Duration:    duration,
		StartDate:   fm.StartDate,
		Activities:  []models.POI{},
		Food:        []models.POI{},
		Hotel: models.Hotel{
			Name:     fm.HotelName,
			Location: models.Coordinates{Lat: lat, Lon: lon},
		},
		UserTags: tags,
	}

	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write trip request: %w", err)
	}

	fmt.Printf("Wrote trip request skeleton to %s\n", c.Output)
	fmt.Println("Fill in the activities and food candidate pools, then run 'tripcraft plan'.")
	return nil
}

func validateFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	_, err := strconv.ParseFloat(s, 64)
	return err
}

// ParseTags parses a comma-separated list of key=value tag pairs
func ParseTags(s string) ([]models.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var tags []models.Tag
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid tag %q, expected key=value", part)
		}
		tags = append(tags, models.Tag{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	return tags, nil
}
