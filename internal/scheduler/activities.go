package scheduler

import (
	"sort"

	"github.com/julianstephens/tripcraft/internal/models"
)

// scheduleActivities places candidate POIs into non-overlapping slots
// across the whole trip. Ranking and the used-POI set are shared across
// days: each POI appears in the itinerary at most once.
func (s *Scheduler) scheduleActivities(pois []models.POI, days int, userTags []models.Tag, booked []*IntervalRegistry) [][]models.ScheduledItem {
	candidates := filterByTags(pois, userTags)

	// Stable sort so candidates with equal relevance keep input order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RelevanceScore > candidates[j].RelevanceScore
	})

	used := make(map[string]bool)
	daily := make([][]models.ScheduledItem, days)

	for day := 0; day < days; day++ {
		schedule := []models.ScheduledItem{}
		current := s.cfg.DayStartMin
		count := 0

		for _, poi := range candidates {
			if used[poi.Name] {
				continue
			}

			duration := visitDuration(poi.Category, poi.ThemeScore)
			start := current + s.cfg.BufferMin
			end := start + duration

			if end > s.cfg.DayEndMin {
				continue
			}
			if booked[day].Overlaps(start, end) {
				continue
			}

			booked[day].Commit(start, end)
			schedule = append(schedule, newScheduledItem(poi, start, end, ""))
			current = end + s.cfg.BufferMin
			used[poi.Name] = true
			count++

			if count >= s.cfg.MaxActivitiesPerDay {
				break
			}
		}

		daily[day] = schedule
	}

	return daily
}

// filterByTags keeps POIs whose tag set intersects the user's requested
// tags. When no candidate matches (or no tags were given), the full
// pool is used instead so a populated candidate list never produces an
// empty activity pool.
func filterByTags(pois []models.POI, userTags []models.Tag) []models.POI {
	want := make(map[models.Tag]struct{}, len(userTags))
	for _, tag := range userTags {
		want[tag] = struct{}{}
	}

	var relevant []models.POI
	for _, poi := range pois {
		for _, tag := range poi.Tags {
			if _, ok := want[tag]; ok {
				relevant = append(relevant, poi)
				break
			}
		}
	}

	if len(relevant) == 0 {
		relevant = append([]models.POI(nil), pois...)
	}
	return relevant
}
