package scheduler

import "testing"

func TestVisitDuration_BaseAtMidPopularity(t *testing.T) {
	if got := visitDuration("museum", 0.5); got != 120 {
		t.Errorf("visitDuration(museum, 0.5) = %d, want 120", got)
	}
	if got := visitDuration("attraction", 0.5); got != 90 {
		t.Errorf("visitDuration(attraction, 0.5) = %d, want 90", got)
	}
}

func TestVisitDuration_UnknownCategoryDefaults(t *testing.T) {
	if got := visitDuration("unknown_type", 0.5); got != 90 {
		t.Errorf("visitDuration(unknown_type, 0.5) = %d, want 90", got)
	}
}

func TestVisitDuration_CaseInsensitive(t *testing.T) {
	if got := visitDuration("Museum", 0.5); got != 120 {
		t.Errorf("visitDuration(Museum, 0.5) = %d, want 120", got)
	}
}

func TestVisitDuration_PopularityScaling(t *testing.T) {
	if got := visitDuration("museum", 1.0); got != 132 {
		t.Errorf("visitDuration(museum, 1.0) = %d, want 132", got)
	}
	if got := visitDuration("museum", 0.0); got != 108 {
		t.Errorf("visitDuration(museum, 0.0) = %d, want 108", got)
	}
}

func TestVisitDuration_MonotonicInPopularity(t *testing.T) {
	for category := range baseDurations {
		prev := 0
		for p := 0.0; p <= 1.0; p += 0.05 {
			d := visitDuration(category, p)
			if d <= 0 {
				t.Fatalf("visitDuration(%s, %.2f) = %d, want positive", category, p, d)
			}
			if d < prev {
				t.Errorf("visitDuration(%s) decreased from %d to %d at popularity %.2f", category, prev, d, p)
			}
			prev = d
		}
	}
}
