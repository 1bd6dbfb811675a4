package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/internal/pkg/fares"
)

func TestNewRouteAttachesEstimates(t *testing.T) {
	route := &models.Route{
		ID:          5,
		Destination: &models.Place{ID: 2, CanonicalName: "Banex Plaza"},
		StartingPlaces: []models.Place{
			{ID: 9, CanonicalName: "Kubwa Gate"},
		},
		Difficulty: models.DifficultyEasy,
		Steps: []models.RouteStep{
			{ID: 11, Order: 1, Mode: models.StepModeBus, Instruction: "Take a bus"},
			{ID: 12, Order: 2, Mode: models.StepModeWalk, Instruction: "Walk in"},
		},
	}
	estimates := map[uint]*fares.Estimate{
		11: {Currency: fares.Currency, Min: 200, Max: 500, SampleSize: 5},
	}

	view := NewRoute(route, estimates)

	assert.Equal(t, uint(5), view.ID)
	assert.Equal(t, "Banex Plaza", view.Destination.CanonicalName)
	assert.Equal(t, []PlaceRef{{ID: 9, CanonicalName: "Kubwa Gate"}}, view.StartingPlaces)
	assert.NotNil(t, view.Steps[0].EstimatedFare)
	assert.Equal(t, uint(200), view.Steps[0].EstimatedFare.Min)
	assert.Nil(t, view.Steps[1].EstimatedFare)
}

func TestNewSubmissionCopiesRelations(t *testing.T) {
	routeID := uint(4)
	sub := &models.RouteSubmission{
		ID:              3,
		Destination:     "Wuse Market",
		CityID:          1,
		Status:          models.SubmissionStatusApproved,
		SubmittedBy:     &models.User{Name: "ade"},
		ReviewedBy:      &models.User{Name: "chi"},
		StartingPoint:   &models.Place{ID: 8, CanonicalName: "Berger Junction"},
		ApprovedRouteID: &routeID,
		Steps: []models.RouteStepSubmission{
			{ID: 1, Order: 1, Mode: models.StepModeCab, Instruction: "Take a cab"},
		},
	}

	view := NewSubmission(sub)

	assert.Equal(t, "ade", view.SubmittedBy)
	assert.Equal(t, "chi", view.ReviewedBy)
	assert.Equal(t, &PlaceRef{ID: 8, CanonicalName: "Berger Junction"}, view.StartingPoint)
	assert.Equal(t, &routeID, view.ApprovedRoute)
	assert.Len(t, view.Steps, 1)
	assert.Equal(t, models.StepModeCab, view.Steps[0].Mode)
}

func TestNewSubmissionAnonymous(t *testing.T) {
	view := NewSubmission(&models.RouteSubmission{ID: 1, Destination: "Area 1"})

	assert.Empty(t, view.SubmittedBy)
	assert.Nil(t, view.StartingPoint)
	assert.Empty(t, view.Steps)
}
