package models

import (
	"time"
)

// City scopes all places and submissions. Routes never cross cities.
type City struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;type:varchar(100)" json:"name" validate:"required,min=2,max=100"`
	IsActive  bool      `gorm:"type:tinyint(1);default:1" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the City model
func (City) TableName() string {
	return "cities"
}
