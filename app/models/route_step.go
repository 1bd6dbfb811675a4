package models

import (
	"time"
)

// RouteStep is one ordered travel step of an approved route. It mirrors the
// shape of RouteStepSubmission minus the submission linkage.
type RouteStep struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	RouteID     uint       `gorm:"uniqueIndex:idx_route_step_order;not null" json:"route_id"`
	Route       *Route     `gorm:"foreignKey:RouteID" json:"-"`
	Order       uint       `gorm:"column:order;uniqueIndex:idx_route_step_order;not null" json:"order"`
	Mode        string     `gorm:"type:varchar(10);not null" json:"mode" validate:"oneof=walk cab bus"`
	Instruction string     `gorm:"type:text;not null" json:"instruction"`
	DropName    string     `gorm:"type:varchar(200)" json:"drop_name"`
	Landmark    string     `gorm:"type:varchar(200)" json:"landmark"`
	Fares       []StepFare `gorm:"foreignKey:RouteStepID" json:"fares,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the RouteStep model
func (RouteStep) TableName() string {
	return "route_steps"
}
