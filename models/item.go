package models

import (
	"time"
)

type Item struct {
	ID        uint     `gorm:"column:item_id;primaryKey" json:"item_id"`
	SectionID uint     `gorm:"column:section_id;index;not null" json:"section_id"`
	Section   *Section `gorm:"foreignKey:SectionID;references:ID" json:"-"`

	Name        string  `gorm:"type:varchar(30);not null" json:"name"`
	Description string  `gorm:"type:varchar(200);not null" json:"description"`
	Price       float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	IsActive    bool    `gorm:"column:isActive;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`
}
