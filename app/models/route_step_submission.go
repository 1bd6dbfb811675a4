package models

import (
	"time"
)

const (
	StepModeWalk = "walk"
	StepModeCab  = "cab"
	StepModeBus  = "bus"
)

// RouteStepSubmission is one ordered travel step of a submission. Order is
// unique within its submission and steps are always read in ascending order.
type RouteStepSubmission struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	RouteSubmissionID uint             `gorm:"uniqueIndex:idx_submission_step_order;not null" json:"route_submission_id"`
	RouteSubmission   *RouteSubmission `gorm:"foreignKey:RouteSubmissionID" json:"-"`
	Order             uint             `gorm:"column:order;uniqueIndex:idx_submission_step_order;not null" json:"order" validate:"required"`
	Mode              string           `gorm:"type:varchar(10);not null" json:"mode" validate:"required,oneof=walk cab bus"`
	Instruction       string           `gorm:"type:text;not null" json:"instruction" validate:"required"`
	DropName          string           `gorm:"type:varchar(200)" json:"drop_name" validate:"max=200"`
	Landmark          string           `gorm:"type:varchar(200)" json:"landmark" validate:"max=200"`
	CreatedAt         time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the RouteStepSubmission model
func (RouteStepSubmission) TableName() string {
	return "route_step_submissions"
}
