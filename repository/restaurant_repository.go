package repository

import (
	"context"

	"menuapi-backend/models"

	"gorm.io/gorm/clause"
)

func (r *Repository) ListActiveRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.db(ctx).
		Preload("OpeningHours", active).
		Where(`"isActive" = ?`, true).
		Order("id ASC").
		Find(&restaurants).Error
	if err != nil {
		return nil, mapError(err)
	}
	for i := range restaurants {
		models.SortOpeningHours(restaurants[i].OpeningHours)
	}
	return restaurants, nil
}

func (r *Repository) FindActiveRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db(ctx).
		Preload("OpeningHours", active).
		Where(`id = ? AND "isActive" = ?`, id, true).
		First(&restaurant).Error
	if err != nil {
		return nil, mapError(err)
	}
	models.SortOpeningHours(restaurant.OpeningHours)
	return &restaurant, nil
}

func (r *Repository) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	return mapError(r.db(ctx).Omit(clause.Associations).Create(restaurant).Error)
}

func (r *Repository) SaveRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	return mapError(r.db(ctx).Omit(clause.Associations).Save(restaurant).Error)
}

func (r *Repository) DeactivateRestaurantChildren(ctx context.Context, restaurantID uint) error {
	sectionIDs := r.db(ctx).Model(&models.Section{}).
		Select("section_id").
		Where("restaurant_id = ?", restaurantID)

	if err := r.db(ctx).Model(&models.Item{}).
		Where(`section_id IN (?) AND "isActive" = ?`, sectionIDs, true).
		Update("isActive", false).Error; err != nil {
		return mapError(err)
	}

	return mapError(r.db(ctx).Model(&models.Section{}).
		Where(`restaurant_id = ? AND "isActive" = ?`, restaurantID, true).
		Update("isActive", false).Error)
}

func (r *Repository) ListOpeningHours(ctx context.Context, restaurantID uint) ([]models.OpeningHour, error) {
	var hours []models.OpeningHour
	if err := r.db(ctx).Where("restaurant_id = ?", restaurantID).Find(&hours).Error; err != nil {
		return nil, mapError(err)
	}
	models.SortOpeningHours(hours)
	return hours, nil
}

func (r *Repository) FindOpeningHour(ctx context.Context, restaurantID uint, day models.DayOfWeek) (*models.OpeningHour, error) {
	var hour models.OpeningHour
	err := r.db(ctx).
		Where("restaurant_id = ? AND day_of_week = ?", restaurantID, day).
		First(&hour).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &hour, nil
}

func (r *Repository) CreateOpeningHours(ctx context.Context, hours []models.OpeningHour) error {
	if len(hours) == 0 {
		return nil
	}
	return mapError(r.db(ctx).Create(&hours).Error)
}

func (r *Repository) SaveOpeningHour(ctx context.Context, hour *models.OpeningHour) error {
	return mapError(r.db(ctx).Save(hour).Error)
}
