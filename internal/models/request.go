package models

import "time"

// TripRequest is the scheduler's sole input: already-resolved candidate
// pools, a hotel anchor, and the user's preference tags. Fetching and
// scoring the raw places is an upstream concern.
type TripRequest struct {
	Destination string `json:"destination,omitempty"`
	Duration    int    `json:"duration"`   // days
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	Activities  []POI  `json:"activities"`
	Food        []POI  `json:"food"`
	Hotel       Hotel  `json:"hotel"`
	UserTags    []Tag  `json:"user_tags,omitempty"`
}

// SavedRequest is a stored trip request
type SavedRequest struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Request   TripRequest `json:"request"`
}

// SavedItinerary is a stored generated itinerary
type SavedItinerary struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Itinerary Itinerary `json:"itinerary"`
}
