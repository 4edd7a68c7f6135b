package scheduler

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/julianstephens/tripcraft/internal/constants"
	"github.com/julianstephens/tripcraft/internal/models"
)

// Config holds the scheduling tunables. All times are minutes from
// midnight, all durations minutes.
type Config struct {
	DayStartMin          int `json:"day_start_min"`
	DayEndMin            int `json:"day_end_min"`
	BufferMin            int `json:"buffer_min"`
	MaxActivitiesPerDay  int `json:"max_activities_per_day"`
	SlotWindowMin        int `json:"slot_window_min"`
	BreakfastStartMin    int `json:"breakfast_start_min"`
	BreakfastDurationMin int `json:"breakfast_duration_min"`
	BrunchTargetMin      int `json:"brunch_target_min"`
	BrunchDurationMin    int `json:"brunch_duration_min"`
	LunchTargetMin       int `json:"lunch_target_min"`
	DinnerTargetMin      int `json:"dinner_target_min"`
	MealDurationMin      int `json:"meal_duration_min"`
}

// DefaultConfig returns the standard 9:00-21:00 day with a 30 minute
// transition buffer and at most 4 activities per day.
func DefaultConfig() Config {
	return Config{
		DayStartMin:          9 * 60,
		DayEndMin:            21 * 60,
		BufferMin:            30,
		MaxActivitiesPerDay:  4,
		SlotWindowMin:        90,
		BreakfastStartMin:    8 * 60,
		BreakfastDurationMin: 60,
		BrunchTargetMin:      11 * 60,
		BrunchDurationMin:    90,
		LunchTargetMin:       13 * 60,
		DinnerTargetMin:      19 * 60,
		MealDurationMin:      60,
	}
}

// LoadConfigFromFile loads scheduling tunables from a JSON file, starting
// from the defaults so partial files work.
func LoadConfigFromFile(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Scheduler assigns activity and restaurant POIs to daily time windows.
// Each GenerateItinerary call operates on freshly allocated per-day
// state, so a single Scheduler may be reused across requests. Restaurant
// selection is the only source of randomness; seed it for reproducible
// output.
type Scheduler struct {
	cfg Config
	rng *rand.Rand
}

// New returns a Scheduler seeded from the current time.
func New(cfg Config) *Scheduler {
	return NewSeeded(cfg, time.Now().UnixNano())
}

// NewSeeded returns a Scheduler with a fixed random seed, producing
// identical itineraries for identical inputs.
func NewSeeded(cfg Config, seed int64) *Scheduler {
	return &Scheduler{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GenerateItinerary is the sole entry point: it validates the request,
// schedules activities then meals against shared per-day interval
// registries, and assembles the dated itinerary. Individual placement
// failures are absorbed as skip-and-continue; only structural input
// problems surface as errors.
func (s *Scheduler) GenerateItinerary(req models.TripRequest) (models.Itinerary, error) {
	if req.Duration <= 0 {
		return models.Itinerary{}, fmt.Errorf("trip duration must be at least 1 day, got %d", req.Duration)
	}
	if req.Hotel.Location.IsZero() {
		return models.Itinerary{}, fmt.Errorf("hotel location is required")
	}
	start, err := time.Parse(constants.DateFormat, req.StartDate)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("invalid start date %q: %w", req.StartDate, err)
	}

	booked := make([]*IntervalRegistry, req.Duration)
	for i := range booked {
		booked[i] = &IntervalRegistry{}
	}

	activities := s.scheduleActivities(req.Activities, req.Duration, req.UserTags, booked)
	meals := s.scheduleMeals(req.Food, req.Duration, booked)

	return assemble(req, start, activities, meals), nil
}

// assemble merges the per-day activity and meal schedules into the final
// dated itinerary with daily and trip-level summaries. Empty days are
// kept; they are valid output.
func assemble(req models.TripRequest, start time.Time, activities, meals [][]models.ScheduledItem) models.Itinerary {
	itinerary := models.Itinerary{
		StartDate: req.StartDate,
		Duration:  req.Duration,
		Days:      make([]models.DayItinerary, 0, req.Duration),
	}

	for day := 0; day < req.Duration; day++ {
		summary := models.DailySummary{
			TotalActivities: len(activities[day]),
			TotalMeals:      len(meals[day]),
		}
		for _, item := range activities[day] {
			summary.TotalActivityTime += item.DurationMin
		}
		for _, item := range meals[day] {
			summary.TotalMealTime += item.DurationMin
		}

		itinerary.Days = append(itinerary.Days, models.DayItinerary{
			Day:        day + 1,
			Date:       start.AddDate(0, 0, day).Format(constants.DateFormat),
			Hotel:      req.Hotel,
			Activities: activities[day],
			Meals:      meals[day],
			Summary:    summary,
		})

		itinerary.TotalActivities += summary.TotalActivities
		itinerary.TotalMeals += summary.TotalMeals
		itinerary.TotalActivityTime += summary.TotalActivityTime
		itinerary.TotalMealTime += summary.TotalMealTime
	}

	itinerary.Summary = fmt.Sprintf("Your %d-day itinerary has been generated with well-distributed timing.", req.Duration)
	return itinerary
}

// newScheduledItem copies the POI's fields and attaches timing. Start
// and end hours are minute-of-day divided by 60, truncating.
func newScheduledItem(poi models.POI, start, end int, slot models.MealSlot) models.ScheduledItem {
	return models.ScheduledItem{
		POI:         poi,
		StartMinute: start,
		EndMinute:   end,
		StartHour:   start / 60,
		EndHour:     end / 60,
		DurationMin: end - start,
		MealSlot:    slot,
	}
}
