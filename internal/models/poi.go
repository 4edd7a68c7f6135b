package models

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsZero reports whether the coordinates are unset
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0
}

// Tag is a key/value pair describing a POI trait (e.g. amenity=museum)
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// POI is a candidate point of interest (activity or eatery). It is
// immutable once created; scheduling copies its fields into a
// ScheduledItem rather than mutating it in place.
type POI struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Location       Coordinates `json:"location"`
	Category       string      `json:"type"`
	Tags           []Tag       `json:"tags,omitempty"`
	RelevanceScore float64     `json:"relevance_score"`
	ThemeScore     float64     `json:"theme_score"`
	TagScore       float64     `json:"tag_score"`
	MatchedTheme   string      `json:"matched_theme,omitempty"`
	Price          *float64    `json:"price,omitempty"`
	LuxuryLevel    string      `json:"luxury_level,omitempty"` // basic, standard, luxury, premium
	Rating         *float64    `json:"rating,omitempty"`       // 1-5
	Amenities      []string    `json:"amenities,omitempty"`
}

// HasTag reports whether the POI carries a tag with the given value
func (p POI) HasTag(value string) bool {
	for _, tag := range p.Tags {
		if tag.Value == value {
			return true
		}
	}
	return false
}

// Hotel is the trip's anchor accommodation, read-only for the scheduler
type Hotel struct {
	Name          string      `json:"name"`
	Location      Coordinates `json:"location"`
	Address       string      `json:"address,omitempty"`
	Rating        *float64    `json:"rating,omitempty"`
	PricePerNight *float64    `json:"price_per_night,omitempty"`
}
