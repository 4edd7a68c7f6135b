package scheduler

import "testing"

func TestIntervalRegistry_OverlapsHalfOpen(t *testing.T) {
	reg := &IntervalRegistry{}
	reg.Commit(540, 600)

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"identical interval", 540, 600, true},
		{"contained", 550, 590, true},
		{"straddles start", 500, 541, true},
		{"straddles end", 599, 660, true},
		{"touches end exactly", 600, 660, false},
		{"touches start exactly", 480, 540, false},
		{"fully before", 400, 500, false},
		{"fully after", 700, 800, false},
	}

	for _, tc := range cases {
		if got := reg.Overlaps(tc.start, tc.end); got != tc.want {
			t.Errorf("%s: Overlaps(%d, %d) = %v, want %v", tc.name, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestIntervalRegistry_EmptyNeverOverlaps(t *testing.T) {
	reg := &IntervalRegistry{}
	if reg.Overlaps(0, 1440) {
		t.Error("empty registry reported an overlap")
	}
}

func TestIntervalRegistry_CommitAccumulates(t *testing.T) {
	reg := &IntervalRegistry{}
	reg.Commit(540, 600)
	reg.Commit(660, 720)

	booked := reg.Booked()
	if len(booked) != 2 {
		t.Fatalf("expected 2 booked intervals, got %d", len(booked))
	}
	if booked[0] != [2]int{540, 600} || booked[1] != [2]int{660, 720} {
		t.Errorf("unexpected booked intervals: %v", booked)
	}

	if !reg.Overlaps(580, 680) {
		t.Error("interval spanning both bookings should overlap")
	}
}
