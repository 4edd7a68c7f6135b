package scheduler

import (
	"strings"

	"github.com/julianstephens/tripcraft/internal/models"
)

// scheduleMeals fills the fixed meal windows for every day of the trip
// from the restaurant pool. Breakfast is committed unconditionally;
// brunch, lunch, and dinner slide around existing bookings via the
// nearest-slot search and are skipped when nothing fits. Restaurants may
// repeat across days but not within one day.
func (s *Scheduler) scheduleMeals(restaurants []models.POI, days int, booked []*IntervalRegistry) [][]models.ScheduledItem {
	daily := make([][]models.ScheduledItem, days)
	for day := range daily {
		daily[day] = []models.ScheduledItem{}
	}
	if len(restaurants) == 0 {
		return daily
	}

	for day := 0; day < days; day++ {
		meals := []models.ScheduledItem{}
		reg := booked[day]

		// Breakfast runs before anything else can claim the early
		// morning, so it always wins its slot.
		breakfast := s.pickBreakfast(restaurants)
		bStart := s.cfg.BreakfastStartMin
		bEnd := bStart + s.cfg.BreakfastDurationMin
		reg.Commit(bStart, bEnd)
		meals = append(meals, newScheduledItem(breakfast, bStart, bEnd, models.MealBreakfast))

		brunchable, others := splitBrunch(restaurants)

		if len(brunchable) > 0 {
			r := brunchable[s.rng.Intn(len(brunchable))]
			if start, ok := s.findNearestSlot(s.cfg.BrunchTargetMin, s.cfg.BrunchDurationMin, reg); ok {
				end := start + s.cfg.BrunchDurationMin
				reg.Commit(start, end)
				meals = append(meals, newScheduledItem(r, start, end, models.MealBrunch))
			}
		}

		for _, meal := range []struct {
			slot   models.MealSlot
			target int
		}{
			{models.MealLunch, s.cfg.LunchTargetMin},
			{models.MealDinner, s.cfg.DinnerTargetMin},
		} {
			if len(others) == 0 {
				break
			}
			start, ok := s.findNearestSlot(meal.target, s.cfg.MealDurationMin, reg)
			if !ok {
				continue
			}
			idx := s.rng.Intn(len(others))
			r := others[idx]
			others = append(others[:idx], others[idx+1:]...)
			end := start + s.cfg.MealDurationMin
			reg.Commit(start, end)
			meals = append(meals, newScheduledItem(r, start, end, meal.slot))
		}

		daily[day] = meals
	}

	return daily
}

// pickBreakfast prefers restaurants whose description mentions
// breakfast, falling back to the full pool.
func (s *Scheduler) pickBreakfast(restaurants []models.POI) models.POI {
	var morning []models.POI
	for _, r := range restaurants {
		if strings.Contains(strings.ToLower(r.Description), "breakfast") {
			morning = append(morning, r)
		}
	}
	if len(morning) == 0 {
		morning = restaurants
	}
	return morning[s.rng.Intn(len(morning))]
}

// splitBrunch separates brunch-capable restaurants (tagged "brunch")
// from the rest. The second pool feeds lunch and dinner.
func splitBrunch(restaurants []models.POI) (brunch, others []models.POI) {
	for _, r := range restaurants {
		if r.HasTag("brunch") {
			brunch = append(brunch, r)
		} else {
			others = append(others, r)
		}
	}
	return brunch, others
}
