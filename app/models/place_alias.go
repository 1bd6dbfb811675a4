package models

import (
	"time"
)

// PlaceAlias is an alternate name resolving to an existing Place. Aliases are
// lookup-only; they never act as a destination themselves.
type PlaceAlias struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlaceID   uint      `gorm:"uniqueIndex:idx_alias_place_name;not null" json:"place_id"`
	Place     *Place    `gorm:"foreignKey:PlaceID" json:"place,omitempty"`
	Name      string    `gorm:"uniqueIndex:idx_alias_place_name;type:varchar(200)" json:"name" validate:"required,min=1,max=200"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the PlaceAlias model
func (PlaceAlias) TableName() string {
	return "place_aliases"
}
