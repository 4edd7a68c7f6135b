package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/tripcraft/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createTables(); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'tripcraft init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.createTables()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Both tables hold the record as a JSON payload column; the id and
// created_at columns exist for lookup and ordering only.
func (s *SQLiteStore) createTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS trip_requests (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			data TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS itineraries (
			id TEXT PRIMARY KEY,
			request_id TEXT,
			created_at TEXT NOT NULL,
			data TEXT NOT NULL
		);
	`)
	return err
}

func (s *SQLiteStore) SaveRequest(req models.SavedRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to serialize trip request: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO trip_requests (id, created_at, data) VALUES (?, ?, ?)",
		req.ID, req.CreatedAt.Format(time.RFC3339), string(data),
	)
	return err
}

func (s *SQLiteStore) GetRequest(id string) (models.SavedRequest, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM trip_requests WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return models.SavedRequest{}, fmt.Errorf("trip request not found: %s", id)
	}
	if err != nil {
		return models.SavedRequest{}, err
	}

	var req models.SavedRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return models.SavedRequest{}, fmt.Errorf("failed to parse trip request: %w", err)
	}
	return req, nil
}

func (s *SQLiteStore) GetAllRequests() ([]models.SavedRequest, error) {
	rows, err := s.db.Query("SELECT data FROM trip_requests ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.SavedRequest{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var req models.SavedRequest
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return nil, fmt.Errorf("failed to parse trip request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *SQLiteStore) DeleteRequest(id string) error {
	res, err := s.db.Exec("DELETE FROM trip_requests WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("trip request not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) SaveItinerary(itinerary models.SavedItinerary) error {
	data, err := json.Marshal(itinerary)
	if err != nil {
		return fmt.Errorf("failed to serialize itinerary: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO itineraries (id, request_id, created_at, data) VALUES (?, ?, ?, ?)",
		itinerary.ID, itinerary.RequestID, itinerary.CreatedAt.Format(time.RFC3339), string(data),
	)
	return err
}

func (s *SQLiteStore) GetItinerary(id string) (models.SavedItinerary, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM itineraries WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return models.SavedItinerary{}, fmt.Errorf("itinerary not found: %s", id)
	}
	if err != nil {
		return models.SavedItinerary{}, err
	}

	var itinerary models.SavedItinerary
	if err := json.Unmarshal([]byte(data), &itinerary); err != nil {
		return models.SavedItinerary{}, fmt.Errorf("failed to parse itinerary: %w", err)
	}
	return itinerary, nil
}

func (s *SQLiteStore) GetAllItineraries() ([]models.SavedItinerary, error) {
	rows, err := s.db.Query("SELECT data FROM itineraries ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itineraries := []models.SavedItinerary{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var itinerary models.SavedItinerary
		if err := json.Unmarshal([]byte(data), &itinerary); err != nil {
			return nil, fmt.Errorf("failed to parse itinerary: %w", err)
		}
		itineraries = append(itineraries, itinerary)
	}
	return itineraries, rows.Err()
}

func (s *SQLiteStore) DeleteItinerary(id string) error {
	res, err := s.db.Exec("DELETE FROM itineraries WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("itinerary not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
