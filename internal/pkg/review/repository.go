package review

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wakapath/wakapath/app/models"
	"github.com/wakapath/wakapath/internal/pkg/places"
)

// Tx exposes the storage operations available while a submission row is held
// under an exclusive lock. All writes commit or abort together with the
// surrounding review transaction.
type Tx interface {
	Steps(submissionID uint) ([]models.RouteStepSubmission, error)
	CreateRoute(route *models.Route) error
	CreateStep(step *models.RouteStep) error
	LinkStartingPlace(route *models.Route, placeID uint) error
	SaveSubmission(sub *models.RouteSubmission) error
	Places() *places.Resolver
}

// Repository provides the locking transaction boundary of the review engine.
type Repository interface {
	// ReviewSubmission loads the submission under an exclusive row lock and
	// runs fn inside the same transaction. The lock is held until fn's
	// effects commit or abort as one unit. A missing submission yields
	// ErrNotFound.
	ReviewSubmission(id uint, fn func(tx Tx, sub *models.RouteSubmission) error) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a review repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ReviewSubmission(id uint, fn func(tx Tx, sub *models.RouteSubmission) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var sub models.RouteSubmission
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sub, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return fn(&gormTx{db: tx}, &sub)
	})
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) Steps(submissionID uint) ([]models.RouteStepSubmission, error) {
	var steps []models.RouteStepSubmission
	err := t.db.Where("route_submission_id = ?", submissionID).
		Order("`order` ASC").Find(&steps).Error
	return steps, err
}

func (t *gormTx) CreateRoute(route *models.Route) error {
	return t.db.Create(route).Error
}

func (t *gormTx) CreateStep(step *models.RouteStep) error {
	return t.db.Create(step).Error
}

func (t *gormTx) LinkStartingPlace(route *models.Route, placeID uint) error {
	return t.db.Model(route).Association("StartingPlaces").Append(&models.Place{ID: placeID})
}

func (t *gormTx) SaveSubmission(sub *models.RouteSubmission) error {
	return t.db.Save(sub).Error
}

func (t *gormTx) Places() *places.Resolver {
	return places.NewResolverFromDB(t.db)
}
