package models

// Coordinates is a WGS84 point used for map markers.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Service represents a marketplace listing. Listings are sourced from the
// static catalog and never mutated.
type Service struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Duration    string      `json:"duration"`
	Provider    string      `json:"provider"`
	Rating      float64     `json:"rating"`
	Image       string      `json:"image"`
	HSAEligible bool        `json:"hsaEligible"`
	Conditions  []string    `json:"conditions"`
	Location    string      `json:"location"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// ServiceMarker is the map payload for a single listing: the listing
// identity plus its resolved map position.
type ServiceMarker struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Price    float64     `json:"price"`
	Address  string      `json:"address"`
	Position Coordinates `json:"position"`
}
