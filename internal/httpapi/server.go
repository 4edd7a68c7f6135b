package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/julianstephens/tripcraft/internal/logger"
	"github.com/julianstephens/tripcraft/internal/models"
	"github.com/julianstephens/tripcraft/internal/scheduler"
	"github.com/julianstephens/tripcraft/internal/storage"
)

// Server exposes trip requests and itinerary generation over HTTP.
// Candidate pools arrive fully resolved in the request body; the server
// never fetches places itself.
type Server struct {
	store  storage.Provider
	cfg    scheduler.Config
	router *mux.Router
}

func NewServer(store storage.Provider, cfg scheduler.Config) *Server {
	s := &Server{
		store:  store,
		cfg:    cfg,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

// Router returns the configured handler
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/trips", s.handleCreateTrip).Methods(http.MethodPost)
	s.router.HandleFunc("/trips", s.handleListTrips).Methods(http.MethodGet)
	s.router.HandleFunc("/trips/{id}", s.handleGetTrip).Methods(http.MethodGet)
	s.router.HandleFunc("/trips/{id}/itinerary", s.handleGenerateItinerary).Methods(http.MethodPost)
	s.router.HandleFunc("/itineraries", s.handleListItineraries).Methods(http.MethodGet)
	s.router.HandleFunc("/itineraries/{id}", s.handleGetItinerary).Methods(http.MethodGet)
	s.router.HandleFunc("/itineraries/{id}", s.handleDeleteItinerary).Methods(http.MethodDelete)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	saved := models.SavedRequest{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Request:   req,
	}
	if err := s.store.SaveRequest(saved); err != nil {
		logger.Error("Failed to save trip request", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save trip request")
		return
	}

	logger.Info("Trip request stored", "id", saved.ID, "destination", req.Destination)
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	requests, err := s.store.GetAllRequests()
	if err != nil {
		logger.Error("Failed to list trip requests", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list trip requests")
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	saved, err := s.store.GetRequest(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// handleGenerateItinerary runs the scheduler for a stored trip request
// and persists the result. An optional ?seed= query fixes the random
// source for reproducible output. Individual placement failures never
// surface here; only structural input problems are client errors.
func (s *Server) handleGenerateItinerary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	saved, err := s.store.GetRequest(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var sched *scheduler.Scheduler
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid seed")
			return
		}
		sched = scheduler.NewSeeded(s.cfg, seed)
	} else {
		sched = scheduler.New(s.cfg)
	}

	itinerary, err := sched.GenerateItinerary(saved.Request)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result := models.SavedItinerary{
		ID:        uuid.New().String(),
		RequestID: saved.ID,
		CreatedAt: time.Now().UTC(),
		Itinerary: itinerary,
	}
	if err := s.store.SaveItinerary(result); err != nil {
		logger.Error("Failed to save itinerary", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save itinerary")
		return
	}

	logger.Info("Itinerary generated", "id", result.ID, "request_id", saved.ID, "days", itinerary.Duration)
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleListItineraries(w http.ResponseWriter, r *http.Request) {
	itineraries, err := s.store.GetAllItineraries()
	if err != nil {
		logger.Error("Failed to list itineraries", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list itineraries")
		return
	}
	writeJSON(w, http.StatusOK, itineraries)
}

func (s *Server) handleGetItinerary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	itinerary, err := s.store.GetItinerary(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, itinerary)
}

func (s *Server) handleDeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteItinerary(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
