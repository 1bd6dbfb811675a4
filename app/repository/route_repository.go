package repository

import (
	"github.com/wakapath/wakapath/app/models"
	"gorm.io/gorm"
)

// routeRepository implements the RouteRepository interface
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository creates a new route repository instance
func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

// GetByID retrieves a route with destination, starting places and ordered steps
func (r *routeRepository) GetByID(id uint) (*models.Route, error) {
	var route models.Route
	err := r.db.
		Preload("Destination").Preload("StartingPlaces").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("`order` ASC") }).
		First(&route, id).Error
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// Lookup retrieves all routes from a starting place to a destination
func (r *routeRepository) Lookup(destinationID, startingPlaceID uint) ([]models.Route, error) {
	var routes []models.Route
	err := r.db.
		Preload("Destination").Preload("StartingPlaces").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("`order` ASC") }).
		Joins("JOIN route_starting_places rsp ON rsp.route_id = routes.id").
		Where("routes.destination_id = ? AND rsp.place_id = ?", destinationID, startingPlaceID).
		Find(&routes).Error
	return routes, err
}

// Count returns the total number of routes
func (r *routeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Route{}).Count(&count).Error
	return count, err
}

// GetStep retrieves a single route step by its ID
func (r *routeRepository) GetStep(id uint) (*models.RouteStep, error) {
	var step models.RouteStep
	err := r.db.First(&step, id).Error
	if err != nil {
		return nil, err
	}
	return &step, nil
}

// RecentFares retrieves the most recent fare observations for a step
func (r *routeRepository) RecentFares(stepID uint, limit int) ([]models.StepFare, error) {
	var fares []models.StepFare
	err := r.db.Where("route_step_id = ?", stepID).
		Order("created_at DESC").Limit(limit).
		Find(&fares).Error
	return fares, err
}

// CreateFare appends a fare observation to a step
func (r *routeRepository) CreateFare(fare *models.StepFare) error {
	return r.db.Create(fare).Error
}
