// Package repository is the persistence port of the API and its GORM adapter.
// Every Find/List method returns only active rows whose whole ownership chain
// (restaurant -> section -> item) is active.
package repository

import (
	"context"

	"menuapi-backend/models"
)

type RestaurantStore interface {
	ListActiveRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// FindActiveRestaurant loads the restaurant with its active opening hours.
	FindActiveRestaurant(ctx context.Context, id uint) (*models.Restaurant, error)
	CreateRestaurant(ctx context.Context, r *models.Restaurant) error
	SaveRestaurant(ctx context.Context, r *models.Restaurant) error
	// DeactivateRestaurantChildren soft deletes every section of the restaurant and their items.
	DeactivateRestaurantChildren(ctx context.Context, restaurantID uint) error

	// ListOpeningHours returns every opening row of the restaurant, active or not.
	ListOpeningHours(ctx context.Context, restaurantID uint) ([]models.OpeningHour, error)
	FindOpeningHour(ctx context.Context, restaurantID uint, day models.DayOfWeek) (*models.OpeningHour, error)
	CreateOpeningHours(ctx context.Context, hours []models.OpeningHour) error
	SaveOpeningHour(ctx context.Context, h *models.OpeningHour) error
}

type SectionStore interface {
	ListActiveSections(ctx context.Context, restaurantID uint) ([]models.Section, error)
	FindActiveSection(ctx context.Context, id uint) (*models.Section, error)
	CreateSection(ctx context.Context, s *models.Section) error
	SaveSection(ctx context.Context, s *models.Section) error
	DeactivateSectionItems(ctx context.Context, sectionID uint) error
}

type ItemStore interface {
	ListActiveItems(ctx context.Context, sectionID uint) ([]models.Item, error)
	FindActiveItem(ctx context.Context, id uint) (*models.Item, error)
	CreateItem(ctx context.Context, i *models.Item) error
	SaveItem(ctx context.Context, i *models.Item) error
}

type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
}

// Store is everything the services need from persistence.
type Store interface {
	RestaurantStore
	SectionStore
	ItemStore
	UserStore

	// Transaction runs fn against a Store bound to one database transaction.
	// A non-nil error from fn rolls back every write made through tx.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
