package models

type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealBrunch    MealSlot = "brunch"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
)

// ScheduledItem is a POI that has been placed into a day. Timing is kept
// in minutes from midnight; StartHour/EndHour are the truncated
// hour-of-day values exposed for display and serialization.
type ScheduledItem struct {
	POI
	StartMinute int      `json:"start_minute"`
	EndMinute   int      `json:"end_minute"`
	StartHour   int      `json:"start_time"`
	EndHour     int      `json:"end_time"`
	DurationMin int      `json:"duration"`
	MealSlot    MealSlot `json:"meal_slot,omitempty"` // empty for activities
}

// DailySummary aggregates one day's scheduled items
type DailySummary struct {
	TotalActivities   int `json:"total_activities"`
	TotalMeals        int `json:"total_meals"`
	TotalActivityTime int `json:"total_activity_time"`
	TotalMealTime     int `json:"total_meal_time"`
}

// DayItinerary is one dated day of the trip. A day with no activities or
// meals is valid output, not an error.
type DayItinerary struct {
	Day        int             `json:"day"`  // 1-based
	Date       string          `json:"date"` // YYYY-MM-DD
	Hotel      Hotel           `json:"hotel"`
	Activities []ScheduledItem `json:"activities"`
	Meals      []ScheduledItem `json:"meals"`
	Summary    DailySummary    `json:"daily_summary"`
}

// Itinerary is the full scheduled trip
type Itinerary struct {
	StartDate         string         `json:"start_date"` // YYYY-MM-DD
	Duration          int            `json:"duration"`   // days
	Days              []DayItinerary `json:"itinerary"`
	Summary           string         `json:"summary"`
	TotalActivities   int            `json:"total_activities"`
	TotalMeals        int            `json:"total_meals"`
	TotalActivityTime int            `json:"total_activity_time"`
	TotalMealTime     int            `json:"total_meal_time"`
}
