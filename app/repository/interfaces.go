package repository

import (
	"github.com/wakapath/wakapath/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByAPIKeyHash(hash string) (*models.User, error)
	TouchAPIKeyUsage(id uint) error
	Update(user *models.User) error
}

// CityRepository defines the interface for city-related database operations
type CityRepository interface {
	Create(city *models.City) error
	GetByID(id uint) (*models.City, error)
	GetByName(name string) (*models.City, error)
	ListActive() ([]models.City, error)
}

// SubmissionRepository defines the interface for route submission operations
type SubmissionRepository interface {
	Create(sub *models.RouteSubmission) error
	GetByID(id uint) (*models.RouteSubmission, error)
	List(offset, limit int) ([]models.RouteSubmission, error)
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

// RouteRepository defines the interface for route catalog operations
type RouteRepository interface {
	GetByID(id uint) (*models.Route, error)
	Lookup(destinationID, startingPlaceID uint) ([]models.Route, error)
	Count() (int64, error)
	GetStep(id uint) (*models.RouteStep, error)
	RecentFares(stepID uint, limit int) ([]models.StepFare, error)
	CreateFare(fare *models.StepFare) error
}

// PlaceRepository defines the interface for read-side place lookups. Place
// resolution and creation live in the places package; this repository only
// serves search and detail views.
type PlaceRepository interface {
	GetByID(id uint) (*models.Place, error)
	SearchInCity(cityID uint, query string) ([]models.Place, error)
	SearchStartingPlaces(destinationID uint, query string) ([]models.Place, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User       UserRepository
	City       CityRepository
	Submission SubmissionRepository
	Route      RouteRepository
	Place      PlaceRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		City:       NewCityRepository(db),
		Submission: NewSubmissionRepository(db),
		Route:      NewRouteRepository(db),
		Place:      NewPlaceRepository(db),
	}
}
