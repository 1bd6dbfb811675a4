package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetCityRepository returns the city repository instance
func (f *Factory) GetCityRepository() CityRepository {
	return f.GetRepositories().City
}

// GetSubmissionRepository returns the submission repository instance
func (f *Factory) GetSubmissionRepository() SubmissionRepository {
	return f.GetRepositories().Submission
}

// GetRouteRepository returns the route repository instance
func (f *Factory) GetRouteRepository() RouteRepository {
	return f.GetRepositories().Route
}

// GetPlaceRepository returns the place repository instance
func (f *Factory) GetPlaceRepository() PlaceRepository {
	return f.GetRepositories().Place
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
