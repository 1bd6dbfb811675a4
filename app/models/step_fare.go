package models

import (
	"time"
)

// StepFare is a single immutable fare observation for a route step. Fares are
// append-only; estimates are recomputed from recent samples on every read.
type StepFare struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	RouteStepID uint       `gorm:"index;not null" json:"route_step_id"`
	RouteStep   *RouteStep `gorm:"foreignKey:RouteStepID" json:"-"`
	Amount      uint       `gorm:"not null" json:"amount" validate:"required,gt=0"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the StepFare model
func (StepFare) TableName() string {
	return "step_fares"
}
