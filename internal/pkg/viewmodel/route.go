package viewmodel

import (
	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/internal/pkg/fares"
)

// RouteStep is a single step of a route view, with its fare estimate
// recomputed from recent observations.
type RouteStep struct {
	ID            uint            `json:"id"`
	Order         uint            `json:"order"`
	Mode          string          `json:"mode"`
	Instruction   string          `json:"instruction"`
	DropName      string          `json:"drop_name"`
	Landmark      string          `json:"landmark"`
	EstimatedFare *fares.Estimate `json:"estimated_fare"`
}

// Route is the user-facing route representation.
type Route struct {
	ID             uint        `json:"id"`
	Destination    PlaceRef    `json:"destination"`
	StartingPlaces []PlaceRef  `json:"starting_places"`
	Recommended    bool        `json:"recommended"`
	EstimatedTime  string      `json:"estimated_time"`
	Difficulty     string      `json:"difficulty"`
	Notes          string      `json:"notes"`
	Steps          []RouteStep `json:"steps"`
}

// NewRoute builds a route view. estimates maps step ids to their fare
// estimate band; steps without an entry report no estimate.
func NewRoute(route *models.Route, estimates map[uint]*fares.Estimate) Route {
	view := Route{
		ID:             route.ID,
		Recommended:    route.Recommended,
		EstimatedTime:  route.EstimatedTime,
		Difficulty:     route.Difficulty,
		Notes:          route.Notes,
		StartingPlaces: make([]PlaceRef, len(route.StartingPlaces)),
		Steps:          make([]RouteStep, len(route.Steps)),
	}
	if route.Destination != nil {
		view.Destination = NewPlaceRef(route.Destination)
	}
	for i := range route.StartingPlaces {
		view.StartingPlaces[i] = NewPlaceRef(&route.StartingPlaces[i])
	}
	for i, step := range route.Steps {
		view.Steps[i] = RouteStep{
			ID:            step.ID,
			Order:         step.Order,
			Mode:          step.Mode,
			Instruction:   step.Instruction,
			DropName:      step.DropName,
			Landmark:      step.Landmark,
			EstimatedFare: estimates[step.ID],
		}
	}
	return view
}
