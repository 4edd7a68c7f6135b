package scheduler

import "testing"

func testScheduler(t *testing.T) *Scheduler {
	t.Helper()
	return NewSeeded(DefaultConfig(), 1)
}

func TestFindNearestSlot_ReturnsDesiredWhenFree(t *testing.T) {
	s := testScheduler(t)
	reg := &IntervalRegistry{}

	start, ok := s.findNearestSlot(13*60, 60, reg)
	if !ok {
		t.Fatal("expected a slot to be found")
	}
	if start != 13*60 {
		t.Errorf("expected desired start %d, got %d", 13*60, start)
	}
}

func TestFindNearestSlot_PrefersEarlierAtEqualOffset(t *testing.T) {
	s := testScheduler(t)
	reg := &IntervalRegistry{}
	reg.Commit(13*60, 14*60)

	// The first free trial is at offset 60: 12:00 (negative direction is
	// checked before 14:00 at the same magnitude).
	start, ok := s.findNearestSlot(13*60, 60, reg)
	if !ok {
		t.Fatal("expected a slot to be found")
	}
	if start != 12*60 {
		t.Errorf("expected earlier slot at %d, got %d", 12*60, start)
	}
}

func TestFindNearestSlot_SlidesLaterWhenMorningBlocked(t *testing.T) {
	s := testScheduler(t)
	reg := &IntervalRegistry{}
	reg.Commit(9*60, 13*60+30)

	start, ok := s.findNearestSlot(13*60, 60, reg)
	if !ok {
		t.Fatal("expected a slot to be found")
	}
	if start != 13*60+30 {
		t.Errorf("expected slot at %d, got %d", 13*60+30, start)
	}
}

func TestFindNearestSlot_NoneWhenWindowFullyBooked(t *testing.T) {
	s := testScheduler(t)
	reg := &IntervalRegistry{}
	reg.Commit(9*60, 21*60)

	if _, ok := s.findNearestSlot(13*60, 60, reg); ok {
		t.Error("expected no slot in a fully booked day")
	}
}

func TestFindNearestSlot_RespectsDayBounds(t *testing.T) {
	s := testScheduler(t)
	reg := &IntervalRegistry{}
	reg.Commit(9*60, 10*60)

	// Negative offsets from 9:00 fall before day start and must be
	// rejected, so the search can only move forward.
	start, ok := s.findNearestSlot(9*60, 60, reg)
	if !ok {
		t.Fatal("expected a slot to be found")
	}
	if start != 10*60 {
		t.Errorf("expected slot at %d, got %d", 10*60, start)
	}

	// A slot ending past day end must also be rejected.
	reg2 := &IntervalRegistry{}
	if start, ok := s.findNearestSlot(21*60, 60, reg2); ok && start+60 > 21*60 {
		t.Errorf("slot %d ends past day end", start)
	}
}
