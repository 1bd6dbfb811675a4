package repository

import (
	"github.com/wakapath/wakapath/app/models"
	"gorm.io/gorm"
)

// cityRepository implements the CityRepository interface
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository creates a new city repository instance
func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

// Create creates a new city in the database
func (r *cityRepository) Create(city *models.City) error {
	return r.db.Create(city).Error
}

// GetByID retrieves a city by its ID
func (r *cityRepository) GetByID(id uint) (*models.City, error) {
	var city models.City
	err := r.db.First(&city, id).Error
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// GetByName retrieves a city by its unique name
func (r *cityRepository) GetByName(name string) (*models.City, error) {
	var city models.City
	err := r.db.Where("name = ?", name).First(&city).Error
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// ListActive retrieves all active cities ordered by name
func (r *cityRepository) ListActive() ([]models.City, error) {
	var cities []models.City
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&cities).Error
	return cities, err
}
