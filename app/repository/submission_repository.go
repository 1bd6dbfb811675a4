package repository

import (
	"github.com/wakapath/wakapath/app/models"
	"gorm.io/gorm"
)

// submissionRepository implements the SubmissionRepository interface
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository instance
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create persists a new submission together with its steps
func (r *submissionRepository) Create(sub *models.RouteSubmission) error {
	return r.db.Create(sub).Error
}

// GetByID retrieves a submission with its steps in ascending order
func (r *submissionRepository) GetByID(id uint) (*models.RouteSubmission, error) {
	var sub models.RouteSubmission
	err := r.db.
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("`order` ASC") }).
		Preload("City").Preload("StartingPoint").
		Preload("SubmittedBy").Preload("ReviewedBy").
		First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// List retrieves submissions newest first with pagination
func (r *submissionRepository) List(offset, limit int) ([]models.RouteSubmission, error) {
	var subs []models.RouteSubmission
	err := r.db.
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("`order` ASC") }).
		Preload("City").
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&subs).Error
	return subs, err
}

// Count returns the total number of submissions
func (r *submissionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.RouteSubmission{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of submissions in a given status
func (r *submissionRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.RouteSubmission{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
