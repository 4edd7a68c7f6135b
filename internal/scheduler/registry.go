package scheduler

// IntervalRegistry holds the committed (start, end) minute intervals for
// a single day. It is append-only for the lifetime of one scheduling
// pass; a fresh registry is allocated per day per call.
type IntervalRegistry struct {
	booked []interval
}

type interval struct {
	start int // minutes from midnight
	end   int // minutes from midnight
}

// Overlaps reports whether [start, end) intersects any committed
// interval. Intervals are half-open, so [540, 600) and [600, 660) do
// not overlap.
func (r *IntervalRegistry) Overlaps(start, end int) bool {
	for _, b := range r.booked {
		if max(start, b.start) < min(end, b.end) {
			return true
		}
	}
	return false
}

// Commit records the interval. The caller must have already checked
// non-overlap; the registry does not re-validate.
func (r *IntervalRegistry) Commit(start, end int) {
	r.booked = append(r.booked, interval{start: start, end: end})
}

// Booked returns a copy of the committed intervals as (start, end) pairs.
func (r *IntervalRegistry) Booked() [][2]int {
	out := make([][2]int, 0, len(r.booked))
	for _, b := range r.booked {
		out = append(out, [2]int{b.start, b.end})
	}
	return out
}
