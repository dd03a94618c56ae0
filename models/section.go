package models

import (
	"time"
)

type Section struct {
	ID           uint        `gorm:"column:section_id;primaryKey" json:"section_id"`
	RestaurantID *uint       `gorm:"column:restaurant_id;index" json:"restaurantId"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID;references:ID" json:"-"`

	Name        string `gorm:"type:varchar(30);not null" json:"name"`
	Description string `gorm:"type:varchar(200);not null" json:"description"`
	IsActive    bool   `gorm:"column:isActive;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`
}

// OwnerID returns the owning restaurant id, or 0 for a detached section.
func (s *Section) OwnerID() uint {
	if s.RestaurantID == nil {
		return 0
	}
	return *s.RestaurantID
}
