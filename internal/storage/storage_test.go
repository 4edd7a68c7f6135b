package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/tripcraft/internal/models"
)

func testSavedRequest(id string) models.SavedRequest {
	return models.SavedRequest{
		ID:        id,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Request: models.TripRequest{
			Destination: "Paris",
			Duration:    2,
			StartDate:   "2026-09-01",
			Hotel:       models.Hotel{Name: "Hotel du Centre", Location: models.Coordinates{Lat: 48.857, Lon: 2.352}},
		},
	}
}

func testSavedItinerary(id string) models.SavedItinerary {
	return models.SavedItinerary{
		ID:        id,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Itinerary: models.Itinerary{
			StartDate: "2026-09-01",
			Duration:  1,
			Days: []models.DayItinerary{
				{Day: 1, Date: "2026-09-01", Activities: []models.ScheduledItem{}, Meals: []models.ScheduledItem{}},
			},
		},
	}
}

// exerciseProvider runs the full request and itinerary roundtrip against
// any backend.
func exerciseProvider(t *testing.T, store Provider) {
	t.Helper()

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	req := testSavedRequest("req-1")
	if err := store.SaveRequest(req); err != nil {
		t.Fatalf("SaveRequest failed: %v", err)
	}

	got, err := store.GetRequest("req-1")
	if err != nil {
		t.Fatalf("GetRequest failed: %v", err)
	}
	if got.Request.Destination != "Paris" || got.Request.Duration != 2 {
		t.Errorf("roundtripped request does not match: %+v", got.Request)
	}

	if _, err := store.GetRequest("missing"); err == nil {
		t.Error("expected error for missing request")
	}

	itinerary := testSavedItinerary("itin-1")
	itinerary.RequestID = "req-1"
	if err := store.SaveItinerary(itinerary); err != nil {
		t.Fatalf("SaveItinerary failed: %v", err)
	}

	gotItin, err := store.GetItinerary("itin-1")
	if err != nil {
		t.Fatalf("GetItinerary failed: %v", err)
	}
	if gotItin.RequestID != "req-1" || len(gotItin.Itinerary.Days) != 1 {
		t.Errorf("roundtripped itinerary does not match: %+v", gotItin)
	}

	all, err := store.GetAllItineraries()
	if err != nil {
		t.Fatalf("GetAllItineraries failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 itinerary, got %d", len(all))
	}

	if err := store.DeleteItinerary("itin-1"); err != nil {
		t.Fatalf("DeleteItinerary failed: %v", err)
	}
	if _, err := store.GetItinerary("itin-1"); err == nil {
		t.Error("expected error after deleting itinerary")
	}
	if err := store.DeleteItinerary("itin-1"); err == nil {
		t.Error("expected error deleting a missing itinerary")
	}

	if err := store.DeleteRequest("req-1"); err != nil {
		t.Fatalf("DeleteRequest failed: %v", err)
	}
	requests, err := store.GetAllRequests()
	if err != nil {
		t.Fatalf("GetAllRequests failed: %v", err)
	}
	if len(requests) != 0 {
		t.Errorf("expected no requests, got %d", len(requests))
	}
}

func TestJSONStorage_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripcraft.json")
	exerciseProvider(t, New(path))
}

func TestSQLiteStorage_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripcraft.db")
	exerciseProvider(t, NewSQLiteStore(path))
}

func TestJSONStorage_LoadAfterSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripcraft.json")

	first := New(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := first.SaveRequest(testSavedRequest("req-persist")); err != nil {
		t.Fatalf("SaveRequest failed: %v", err)
	}

	second := New(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := second.GetRequest("req-persist"); err != nil {
		t.Errorf("request did not survive reload: %v", err)
	}
}

func TestJSONStorage_InitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripcraft.json")

	store := New(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("expected second Init to fail")
	}
}

func TestSQLiteStorage_LoadRequiresInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripcraft.db")

	store := NewSQLiteStore(path)
	if err := store.Load(); err == nil {
		t.Error("expected Load to fail before Init")
	}
}
