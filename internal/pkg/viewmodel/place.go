package viewmodel

import (
	"github.com/wakapath/wakapath/app/models"
)

// PlaceRef is the compact place representation embedded in route views.
type PlaceRef struct {
	ID            uint   `json:"id"`
	CanonicalName string `json:"canonical_name"`
}

// PlaceSuggestion is a search/autocomplete result.
type PlaceSuggestion struct {
	ID            uint   `json:"id"`
	CanonicalName string `json:"canonical_name"`
	Area          string `json:"area"`
}

// NewPlaceRef builds a PlaceRef from a place model
func NewPlaceRef(place *models.Place) PlaceRef {
	return PlaceRef{ID: place.ID, CanonicalName: place.CanonicalName}
}

// NewPlaceSuggestions builds search results from place models
func NewPlaceSuggestions(places []models.Place) []PlaceSuggestion {
	out := make([]PlaceSuggestion, len(places))
	for i, p := range places {
		out[i] = PlaceSuggestion{ID: p.ID, CanonicalName: p.CanonicalName, Area: p.Area}
	}
	return out
}
