package models

import (
	"time"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Route is an approved, reusable commute path from one or more starting
// places to a destination place. Routes are created once at approval time and
// are otherwise append-only.
type Route struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	DestinationID  uint        `gorm:"index;not null" json:"destination_id"`
	Destination    *Place      `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
	StartingPlaces []Place     `gorm:"many2many:route_starting_places;" json:"starting_places,omitempty"`
	Recommended    bool        `gorm:"type:tinyint(1);default:0" json:"recommended"`
	EstimatedTime  string      `gorm:"type:varchar(50)" json:"estimated_time"`
	Difficulty     string      `gorm:"type:varchar(20);default:'easy'" json:"difficulty" validate:"oneof=easy medium hard"`
	Notes          string      `gorm:"type:text" json:"notes"`
	ViewCount      int64       `gorm:"default:0" json:"view_count"`
	Steps          []RouteStep `gorm:"foreignKey:RouteID" json:"steps,omitempty"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Route model
func (Route) TableName() string {
	return "routes"
}
