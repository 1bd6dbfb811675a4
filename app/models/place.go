package models

import (
	"time"
)

// Place is a canonical location within a city. Uniqueness is enforced per
// (city, canonical_name); lookups are case-insensitive, so the resolver must
// never create a second row that only differs in case.
type Place struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	CityID        uint         `gorm:"uniqueIndex:idx_place_city_name;not null" json:"city_id"`
	City          *City        `gorm:"foreignKey:CityID" json:"city,omitempty"`
	CanonicalName string       `gorm:"uniqueIndex:idx_place_city_name;type:varchar(200)" json:"canonical_name" validate:"required,min=1,max=200"`
	Area          string       `gorm:"type:varchar(100)" json:"area" validate:"max=100"`
	Description   string       `gorm:"type:text" json:"description"`
	Aliases       []PlaceAlias `gorm:"foreignKey:PlaceID" json:"aliases,omitempty"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Place model
func (Place) TableName() string {
	return "places"
}
