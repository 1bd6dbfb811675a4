package repository

import (
	"github.com/wakapath/wakapath/app/models"
	"gorm.io/gorm"
)

// placeRepository implements the PlaceRepository interface
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository creates a new place repository instance
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// GetByID retrieves a place by its ID
func (r *placeRepository) GetByID(id uint) (*models.Place, error) {
	var place models.Place
	err := r.db.Preload("City").First(&place, id).Error
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// SearchInCity finds places in a city whose canonical name or alias contains
// the query, case-insensitively
func (r *placeRepository) SearchInCity(cityID uint, query string) ([]models.Place, error) {
	like := "%" + query + "%"
	var places []models.Place
	err := r.db.Distinct("places.*").
		Joins("LEFT JOIN place_aliases ON place_aliases.place_id = places.id").
		Where("places.city_id = ?", cityID).
		Where("places.canonical_name LIKE ? OR place_aliases.name LIKE ?", like, like).
		Find(&places).Error
	return places, err
}

// SearchStartingPlaces finds places that start at least one route to the
// destination, optionally filtered by name or alias
func (r *placeRepository) SearchStartingPlaces(destinationID uint, query string) ([]models.Place, error) {
	tx := r.db.Distinct("places.*").
		Joins("JOIN route_starting_places rsp ON rsp.place_id = places.id").
		Joins("JOIN routes ON routes.id = rsp.route_id").
		Where("routes.destination_id = ?", destinationID)

	if query != "" {
		like := "%" + query + "%"
		tx = tx.Joins("LEFT JOIN place_aliases ON place_aliases.place_id = places.id").
			Where("places.canonical_name LIKE ? OR place_aliases.name LIKE ?", like, like)
	}

	var places []models.Place
	err := tx.Find(&places).Error
	return places, err
}

// Count returns the total number of places
func (r *placeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Place{}).Count(&count).Error
	return count, err
}
