package places

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wakapath/wakapath/app/models"
)

// Repository provides the DB operations used by the resolver. Create must
// report unique-constraint violations on (city_id, canonical_name) as
// gorm.ErrDuplicatedKey so resolution races can be recovered locally.
type Repository interface {
	GetByID(id uint) (*models.Place, error)
	FindByCanonicalName(cityID uint, name string) (*models.Place, error)
	FindAliasOwner(cityID uint, name string) (*models.Place, error)
	Create(place *models.Place) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a place repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetByID(id uint) (*models.Place, error) {
	var place models.Place
	err := r.db.First(&place, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *gormRepository) FindByCanonicalName(cityID uint, name string) (*models.Place, error) {
	var place models.Place
	err := r.db.Where("city_id = ? AND LOWER(canonical_name) = LOWER(?)", cityID, name).
		First(&place).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *gormRepository) FindAliasOwner(cityID uint, name string) (*models.Place, error) {
	var alias models.PlaceAlias
	err := r.db.
		Joins("JOIN places ON places.id = place_aliases.place_id").
		Where("places.city_id = ? AND LOWER(place_aliases.name) = LOWER(?)", cityID, name).
		First(&alias).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(alias.PlaceID)
}

func (r *gormRepository) Create(place *models.Place) error {
	return r.db.Create(place).Error
}
