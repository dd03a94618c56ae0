package models

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(20);not null" json:"name"`
	KitchenType string `gorm:"column:kitchen_type;type:varchar(50);not null" json:"kitchenType"`
	City        string `gorm:"type:varchar(30);not null" json:"city"`
	UF          string `gorm:"column:uf;type:varchar(2);not null" json:"uf"`
	Contact     string `gorm:"type:varchar(11);not null" json:"contact"`
	IsActive    bool   `gorm:"column:isActive;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`

	OpeningHours []OpeningHour `gorm:"foreignKey:RestaurantID" json:"opening"`
}

// OpeningHour is keyed by (restaurant_id, day_of_week); a restaurant has at most one row per weekday.
type OpeningHour struct {
	RestaurantID uint      `gorm:"column:restaurant_id;primaryKey;autoIncrement:false" json:"-"`
	DayOfWeek    DayOfWeek `gorm:"column:day_of_week;primaryKey;type:varchar(10)" json:"day"`
	OpensAt      string    `gorm:"column:opensAt;type:time;not null" json:"opensAt"`
	ClosesAt     string    `gorm:"column:closesAt;type:time;not null" json:"closesAt"`
	IsActive     bool      `gorm:"column:isActive;default:true" json:"-"`

	CreatedAt time.Time `gorm:"column:createdAt" json:"-"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"-"`
}

func (OpeningHour) TableName() string {
	return "restaurant_opening_hours"
}

// AfterFind drops the seconds Postgres returns for time columns
func (h *OpeningHour) AfterFind(tx *gorm.DB) error {
	h.OpensAt = ClockHHMM(h.OpensAt)
	h.ClosesAt = ClockHHMM(h.ClosesAt)
	return nil
}
