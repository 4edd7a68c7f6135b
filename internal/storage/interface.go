package storage

import "github.com/julianstephens/tripcraft/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Trip requests
	SaveRequest(models.SavedRequest) error
	GetRequest(id string) (models.SavedRequest, error)
	GetAllRequests() ([]models.SavedRequest, error)
	DeleteRequest(id string) error

	// Itineraries
	SaveItinerary(models.SavedItinerary) error
	GetItinerary(id string) (models.SavedItinerary, error)
	GetAllItineraries() ([]models.SavedItinerary, error)
	DeleteItinerary(id string) error

	// Utils
	GetConfigPath() string
}
