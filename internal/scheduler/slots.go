package scheduler

// findNearestSlot scans outward from the desired start minute in both
// directions, up to SlotWindowMin minutes away, and returns the first
// start at which a duration-long slot fits inside the day window
// without clashing with a booked interval. At each offset magnitude the
// earlier candidate is tried first, so ties break toward the earlier
// slot. Returns ok=false when the whole window is exhausted.
func (s *Scheduler) findNearestSlot(desired, duration int, booked *IntervalRegistry) (int, bool) {
	for offset := 0; offset <= s.cfg.SlotWindowMin; offset++ {
		for _, dir := range []int{-1, 1} {
			start := desired + dir*offset
			end := start + duration
			if start < s.cfg.DayStartMin || end > s.cfg.DayEndMin {
				continue
			}
			if booked.Overlaps(start, end) {
				continue
			}
			return start, true
		}
	}
	return 0, false
}
