package validation

import (
	"fmt"
	"time"

	"github.com/julianstephens/tripcraft/internal/constants"
	"github.com/julianstephens/tripcraft/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictOverlappingItems  ConflictType = "overlapping_items"
	ConflictOutsideDayWindow  ConflictType = "outside_day_window"
	ConflictRepeatedActivity  ConflictType = "repeated_activity"
	ConflictInvalidDate       ConflictType = "invalid_date"
	ConflictInvalidInterval   ConflictType = "invalid_interval"
	ConflictSummaryMismatch   ConflictType = "summary_mismatch"
)

// Conflict represents a detected conflict in a generated itinerary
type Conflict struct {
	Type        ConflictType
	Description string
	Day         int      // 1-based day number (if applicable)
	Items       []string // names of the items involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks generated itineraries against the invariants the
// scheduler promises: non-overlapping intervals per day, activities
// inside the day window, and no activity repeated across days. The
// scheduler should never produce a conflicting itinerary; the validator
// exists to prove that for stored or hand-edited data.
type Validator struct {
	DayStartMin int
	DayEndMin   int
}

// New creates a Validator for the given day window (minutes from midnight)
func New(dayStartMin, dayEndMin int) *Validator {
	return &Validator{DayStartMin: dayStartMin, DayEndMin: dayEndMin}
}

// ValidateItinerary checks every day of the itinerary for conflicts
func (v *Validator) ValidateItinerary(itinerary models.Itinerary) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	activityDays := make(map[string][]int)

	for _, day := range itinerary.Days {
		if _, err := time.Parse(constants.DateFormat, day.Date); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Day %d has invalid date %q", day.Day, day.Date),
				Day:         day.Day,
			})
		}

		type placed struct {
			name       string
			start, end int
		}
		var intervals []placed

		for _, item := range day.Activities {
			intervals = append(intervals, placed{item.Name, item.StartMinute, item.EndMinute})
			activityDays[item.Name] = append(activityDays[item.Name], day.Day)

			if item.StartMinute < v.DayStartMin || item.EndMinute > v.DayEndMin {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictOutsideDayWindow,
					Description: fmt.Sprintf("Day %d: activity %q (%d-%d) is outside the %d-%d day window", day.Day, item.Name, item.StartMinute, item.EndMinute, v.DayStartMin, v.DayEndMin),
					Day:         day.Day,
					Items:       []string{item.Name},
				})
			}
		}

		for _, item := range day.Meals {
			intervals = append(intervals, placed{item.Name, item.StartMinute, item.EndMinute})
			// Breakfast sits before the day window on purpose; only
			// searched meals must respect it.
			if item.MealSlot != models.MealBreakfast && (item.StartMinute < v.DayStartMin || item.EndMinute > v.DayEndMin) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictOutsideDayWindow,
					Description: fmt.Sprintf("Day %d: %s at %q (%d-%d) is outside the %d-%d day window", day.Day, item.MealSlot, item.Name, item.StartMinute, item.EndMinute, v.DayStartMin, v.DayEndMin),
					Day:         day.Day,
					Items:       []string{item.Name},
				})
			}
		}

		for _, p := range intervals {
			if p.start >= p.end {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidInterval,
					Description: fmt.Sprintf("Day %d: %q has an empty or inverted interval (%d-%d)", day.Day, p.name, p.start, p.end),
					Day:         day.Day,
					Items:       []string{p.name},
				})
			}
		}

		for i := 0; i < len(intervals); i++ {
			for j := i + 1; j < len(intervals); j++ {
				if max(intervals[i].start, intervals[j].start) < min(intervals[i].end, intervals[j].end) {
					result.Conflicts = append(result.Conflicts, Conflict{
						Type:        ConflictOverlappingItems,
						Description: fmt.Sprintf("Day %d: %q (%d-%d) overlaps %q (%d-%d)", day.Day, intervals[i].name, intervals[i].start, intervals[i].end, intervals[j].name, intervals[j].start, intervals[j].end),
						Day:         day.Day,
						Items:       []string{intervals[i].name, intervals[j].name},
					})
				}
			}
		}

		wantSummary := models.DailySummary{
			TotalActivities: len(day.Activities),
			TotalMeals:      len(day.Meals),
		}
		for _, item := range day.Activities {
			wantSummary.TotalActivityTime += item.DurationMin
		}
		for _, item := range day.Meals {
			wantSummary.TotalMealTime += item.DurationMin
		}
		if day.Summary != wantSummary {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictSummaryMismatch,
				Description: fmt.Sprintf("Day %d: summary %+v does not match scheduled items", day.Day, day.Summary),
				Day:         day.Day,
			})
		}
	}

	for name, days := range activityDays {
		if len(days) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictRepeatedActivity,
				Description: fmt.Sprintf("Activity %q appears on days %v", name, days),
				Items:       []string{name},
			})
		}
	}

	return result
}
