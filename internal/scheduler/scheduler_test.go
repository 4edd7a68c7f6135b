package scheduler

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/julianstephens/tripcraft/internal/models"
)

func activityPOI(name, category string, relevance float64, tags ...models.Tag) models.POI {
	return models.POI{
		Name:           name,
		Description:    name + " description",
		Location:       models.Coordinates{Lat: 48.85, Lon: 2.35},
		Category:       category,
		Tags:           tags,
		RelevanceScore: relevance,
		ThemeScore:     0.5,
	}
}

func restaurantPOI(name, description string, tags ...models.Tag) models.POI {
	return models.POI{
		Name:        name,
		Description: description,
		Location:    models.Coordinates{Lat: 48.86, Lon: 2.34},
		Category:    "restaurant",
		Tags:        tags,
	}
}

func testRequest() models.TripRequest {
	return models.TripRequest{
		Duration:  2,
		StartDate: "2026-09-01",
		Activities: []models.POI{
			activityPOI("Louvre", "museum", 0.95, models.Tag{Key: "amenity", Value: "museum"}),
			activityPOI("Eiffel Tower", "attraction", 0.9),
			activityPOI("Tuileries Garden", "park", 0.85),
			activityPOI("Le Marais", "shopping", 0.8),
			activityPOI("Notre-Dame", "architecture", 0.75),
		},
		Food: []models.POI{
			restaurantPOI("Cafe Lumiere", "Cozy cafe known for its breakfast pastries"),
			restaurantPOI("Bistro Rive", "Classic bistro fare"),
			restaurantPOI("Chez Anna", "Seasonal plates"),
		},
		Hotel: models.Hotel{
			Name:     "Hotel du Centre",
			Location: models.Coordinates{Lat: 48.857, Lon: 2.352},
		},
	}
}

// collectIntervals gathers every committed activity and meal interval
// for one day of an itinerary.
func collectIntervals(day models.DayItinerary) [][2]int {
	var out [][2]int
	for _, a := range day.Activities {
		out = append(out, [2]int{a.StartMinute, a.EndMinute})
	}
	for _, m := range day.Meals {
		out = append(out, [2]int{m.StartMinute, m.EndMinute})
	}
	return out
}

func TestGenerateItinerary_RejectsInvalidInput(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 1)

	req := testRequest()
	req.Duration = 0
	if _, err := s.GenerateItinerary(req); err == nil {
		t.Error("expected error for zero duration")
	}

	req = testRequest()
	req.Hotel = models.Hotel{Name: "Nowhere Inn"}
	if _, err := s.GenerateItinerary(req); err == nil {
		t.Error("expected error for missing hotel location")
	}

	req = testRequest()
	req.StartDate = "01/09/2026"
	if _, err := s.GenerateItinerary(req); err == nil {
		t.Error("expected error for malformed start date")
	}
}

func TestGenerateItinerary_EndToEnd(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 42)
	itinerary, err := s.GenerateItinerary(testRequest())
	if err != nil {
		t.Fatalf("GenerateItinerary failed: %v", err)
	}

	if len(itinerary.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(itinerary.Days))
	}
	if itinerary.Days[0].Date != "2026-09-01" || itinerary.Days[1].Date != "2026-09-02" {
		t.Errorf("unexpected dates: %s, %s", itinerary.Days[0].Date, itinerary.Days[1].Date)
	}

	totalActivities := 0
	seen := make(map[string]int)

	for _, day := range itinerary.Days {
		if len(day.Activities) > 4 {
			t.Errorf("day %d has %d activities, cap is 4", day.Day, len(day.Activities))
		}
		totalActivities += len(day.Activities)

		// Exactly one breakfast at 8:00-9:00, and it comes first
		if len(day.Meals) == 0 {
			t.Fatalf("day %d has no meals", day.Day)
		}
		breakfast := day.Meals[0]
		if breakfast.MealSlot != models.MealBreakfast {
			t.Errorf("day %d first meal is %q, want breakfast", day.Day, breakfast.MealSlot)
		}
		if breakfast.StartMinute != 8*60 || breakfast.EndMinute != 9*60 {
			t.Errorf("day %d breakfast at %d-%d, want 480-540", day.Day, breakfast.StartMinute, breakfast.EndMinute)
		}
		if breakfast.StartHour != 8 || breakfast.EndHour != 9 {
			t.Errorf("day %d breakfast hours %d-%d, want 8-9", day.Day, breakfast.StartHour, breakfast.EndHour)
		}
		for _, meal := range day.Meals[1:] {
			if meal.MealSlot == models.MealBreakfast {
				t.Errorf("day %d has more than one breakfast", day.Day)
			}
		}

		// Activities stay inside the day window
		for _, a := range day.Activities {
			if a.StartMinute < 9*60 || a.EndMinute > 21*60 {
				t.Errorf("activity %q at %d-%d is outside the day window", a.Name, a.StartMinute, a.EndMinute)
			}
			seen[a.Name]++
		}

		// No two committed intervals on one day share a minute
		intervals := collectIntervals(day)
		for i := 0; i < len(intervals); i++ {
			for j := i + 1; j < len(intervals); j++ {
				if max(intervals[i][0], intervals[j][0]) < min(intervals[i][1], intervals[j][1]) {
					t.Errorf("day %d intervals %v and %v overlap", day.Day, intervals[i], intervals[j])
				}
			}
		}

		// Daily summary matches the day's contents
		wantActivityTime := 0
		for _, a := range day.Activities {
			wantActivityTime += a.DurationMin
		}
		if day.Summary.TotalActivities != len(day.Activities) || day.Summary.TotalActivityTime != wantActivityTime {
			t.Errorf("day %d summary %+v does not match contents", day.Day, day.Summary)
		}
	}

	if totalActivities > 5 {
		t.Errorf("scheduled %d activities from a pool of 5", totalActivities)
	}
	for name, count := range seen {
		if count > 1 {
			t.Errorf("activity %q appears on %d days", name, count)
		}
	}
	if itinerary.TotalActivities != totalActivities {
		t.Errorf("trip total %d, want %d", itinerary.TotalActivities, totalActivities)
	}
}

func TestGenerateItinerary_DeterministicWithFixedSeed(t *testing.T) {
	first, err := NewSeeded(DefaultConfig(), 7).GenerateItinerary(testRequest())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := NewSeeded(DefaultConfig(), 7).GenerateItinerary(testRequest())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Error("identical inputs and seed produced different itineraries")
	}
}

func TestGenerateItinerary_EmptyPoolsProduceEmptyDays(t *testing.T) {
	req := testRequest()
	req.Activities = nil
	req.Food = nil

	itinerary, err := NewSeeded(DefaultConfig(), 1).GenerateItinerary(req)
	if err != nil {
		t.Fatalf("GenerateItinerary failed: %v", err)
	}

	if len(itinerary.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(itinerary.Days))
	}
	for _, day := range itinerary.Days {
		if len(day.Activities) != 0 || len(day.Meals) != 0 {
			t.Errorf("day %d should be empty, got %d activities and %d meals", day.Day, len(day.Activities), len(day.Meals))
		}
	}
	if itinerary.TotalActivityTime != 0 || itinerary.TotalMealTime != 0 {
		t.Error("empty trip should have zero aggregate time")
	}
}

func TestScheduleActivities_TagFilterAndFallback(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 1)
	museumTag := models.Tag{Key: "amenity", Value: "museum"}
	pois := []models.POI{
		activityPOI("Museum A", "museum", 0.5, museumTag),
		activityPOI("Park B", "park", 0.9),
	}

	// Matching tags keep only the intersecting POIs despite lower relevance
	booked := []*IntervalRegistry{{}}
	daily := s.scheduleActivities(pois, 1, []models.Tag{museumTag}, booked)
	if len(daily[0]) != 1 || daily[0][0].Name != "Museum A" {
		t.Errorf("expected only the tag-matched POI, got %+v", daily[0])
	}

	// Tags matching nothing fall back to the full pool
	booked = []*IntervalRegistry{{}}
	daily = s.scheduleActivities(pois, 1, []models.Tag{{Key: "sport", Value: "climbing"}}, booked)
	if len(daily[0]) != 2 {
		t.Errorf("expected fallback to full pool, got %d activities", len(daily[0]))
	}
}

func TestScheduleActivities_SortsByRelevance(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 1)
	pois := []models.POI{
		activityPOI("Low", "museum", 0.1),
		activityPOI("High", "museum", 0.9),
		activityPOI("Mid", "museum", 0.5),
	}

	booked := []*IntervalRegistry{{}}
	daily := s.scheduleActivities(pois, 1, nil, booked)
	if len(daily[0]) != 3 {
		t.Fatalf("expected 3 scheduled activities, got %d", len(daily[0]))
	}
	if daily[0][0].Name != "High" || daily[0][1].Name != "Mid" || daily[0][2].Name != "Low" {
		t.Errorf("activities not in relevance order: %s, %s, %s", daily[0][0].Name, daily[0][1].Name, daily[0][2].Name)
	}
}

func TestScheduleActivities_SkipsItemsThatOverrunDayEnd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DayEndMin = 11 * 60 // a short day: 9:00-11:00
	s := NewSeeded(cfg, 1)

	pois := []models.POI{
		activityPOI("Long Museum", "museum", 0.9),   // 120 min, would end 11:30
		activityPOI("Quick Gallery", "attraction", 0.5), // 90 min, ends 11:00 exactly
	}

	booked := []*IntervalRegistry{{}}
	daily := s.scheduleActivities(pois, 1, nil, booked)
	if len(daily[0]) != 1 {
		t.Fatalf("expected exactly 1 activity, got %d", len(daily[0]))
	}
	if daily[0][0].Name != "Quick Gallery" {
		t.Errorf("expected the shorter candidate, got %q", daily[0][0].Name)
	}
	if daily[0][0].EndMinute > cfg.DayEndMin {
		t.Errorf("activity ends at %d, past day end %d", daily[0][0].EndMinute, cfg.DayEndMin)
	}
}

func TestScheduleMeals_SkipsWhenNoSlotFits(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 1)
	restaurants := []models.POI{
		restaurantPOI("Brunch Spot", "Weekend favorite", models.Tag{Key: "meal", Value: "brunch"}),
		restaurantPOI("Bistro", "Classic fare"),
	}

	// Day already fully booked: only the unconditional breakfast lands.
	reg := &IntervalRegistry{}
	reg.Commit(9*60, 21*60)
	daily := s.scheduleMeals(restaurants, 1, []*IntervalRegistry{reg})

	if len(daily[0]) != 1 {
		t.Fatalf("expected only breakfast, got %d meals", len(daily[0]))
	}
	if daily[0][0].MealSlot != models.MealBreakfast {
		t.Errorf("expected breakfast, got %q", daily[0][0].MealSlot)
	}
}

func TestScheduleMeals_NoRestaurantReuseWithinDay(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 3)
	restaurants := []models.POI{
		restaurantPOI("Bistro Rive", "Classic bistro fare"),
		restaurantPOI("Chez Anna", "Seasonal plates"),
	}

	daily := s.scheduleMeals(restaurants, 1, []*IntervalRegistry{{}})

	var lunch, dinner *models.ScheduledItem
	for i := range daily[0] {
		switch daily[0][i].MealSlot {
		case models.MealLunch:
			lunch = &daily[0][i]
		case models.MealDinner:
			dinner = &daily[0][i]
		}
	}
	if lunch == nil || dinner == nil {
		t.Fatalf("expected lunch and dinner on an open day, got %+v", daily[0])
	}
	if lunch.Name == dinner.Name {
		t.Errorf("restaurant %q reused for lunch and dinner on the same day", lunch.Name)
	}
}

func TestScheduleMeals_EmptyPool(t *testing.T) {
	s := NewSeeded(DefaultConfig(), 1)
	daily := s.scheduleMeals(nil, 3, []*IntervalRegistry{{}, {}, {}})
	if len(daily) != 3 {
		t.Fatalf("expected 3 days, got %d", len(daily))
	}
	for day, meals := range daily {
		if len(meals) != 0 {
			t.Errorf("day %d should have no meals, got %d", day, len(meals))
		}
	}
}
