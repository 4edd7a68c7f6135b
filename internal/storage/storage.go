package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/tripcraft/internal/models"
)

type Store struct {
	Version     int                              `json:"version"`
	Requests    map[string]models.SavedRequest   `json:"requests"`
	Itineraries map[string]models.SavedItinerary `json:"itineraries"`
}

// Storage is the JSON file backend. It keeps the whole store in memory
// and rewrites the file on every mutation; fine for a single-user CLI,
// not safe for concurrent processes sharing one config path.
type Storage struct {
	path  string
	store *Store
}

func New(configPath string) *Storage {
	return &Storage{
		path: configPath,
	}
}

func (s *Storage) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:     1,
		Requests:    make(map[string]models.SavedRequest),
		Itineraries: make(map[string]models.SavedItinerary),
	}

	return s.save()
}

func (s *Storage) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tripcraft init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Requests == nil {
		s.store.Requests = make(map[string]models.SavedRequest)
	}
	if s.store.Itineraries == nil {
		s.store.Itineraries = make(map[string]models.SavedItinerary)
	}

	return nil
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *Storage) SaveRequest(req models.SavedRequest) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Requests[req.ID] = req
	return s.save()
}

func (s *Storage) GetRequest(id string) (models.SavedRequest, error) {
	if s.store == nil {
		return models.SavedRequest{}, fmt.Errorf("storage not loaded")
	}

	req, ok := s.store.Requests[id]
	if !ok {
		return models.SavedRequest{}, fmt.Errorf("trip request not found: %s", id)
	}

	return req, nil
}

func (s *Storage) GetAllRequests() ([]models.SavedRequest, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	requests := make([]models.SavedRequest, 0, len(s.store.Requests))
	for _, req := range s.store.Requests {
		requests = append(requests, req)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	return requests, nil
}

func (s *Storage) DeleteRequest(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Requests[id]; !ok {
		return fmt.Errorf("trip request not found: %s", id)
	}

	delete(s.store.Requests, id)
	return s.save()
}

func (s *Storage) SaveItinerary(itinerary models.SavedItinerary) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Itineraries[itinerary.ID] = itinerary
	return s.save()
}

func (s *Storage) GetItinerary(id string) (models.SavedItinerary, error) {
	if s.store == nil {
		return models.SavedItinerary{}, fmt.Errorf("storage not loaded")
	}

	itinerary, ok := s.store.Itineraries[id]
	if !ok {
		return models.SavedItinerary{}, fmt.Errorf("itinerary not found: %s", id)
	}

	return itinerary, nil
}

func (s *Storage) GetAllItineraries() ([]models.SavedItinerary, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	itineraries := make([]models.SavedItinerary, 0, len(s.store.Itineraries))
	for _, itinerary := range s.store.Itineraries {
		itineraries = append(itineraries, itinerary)
	}
	sort.Slice(itineraries, func(i, j int) bool {
		return itineraries[i].CreatedAt.After(itineraries[j].CreatedAt)
	})

	return itineraries, nil
}

func (s *Storage) DeleteItinerary(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Itineraries[id]; !ok {
		return fmt.Errorf("itinerary not found: %s", id)
	}

	delete(s.store.Itineraries, id)
	return s.save()
}

func (s *Storage) GetConfigPath() string {
	return s.path
}
