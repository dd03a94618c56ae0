package services

import (
	"context"
	"errors"
	"fmt"

	"menuapi-backend/events"
	"menuapi-backend/models"
	"menuapi-backend/repository"
	"menuapi-backend/validation"
)

type RestaurantService struct {
	store     repository.Store
	publisher events.Publisher
}

func NewRestaurantService(store repository.Store, publisher events.Publisher) *RestaurantService {
	return &RestaurantService{store: store, publisher: publisher}
}

// List returns every active restaurant with its active opening hours, by id.
// An empty result is ErrNotFound.
func (s *RestaurantService) List(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := s.store.ListActiveRestaurants(ctx)
	if err != nil {
		return nil, storeError(err, "list restaurants")
	}
	if len(restaurants) == 0 {
		return nil, fmt.Errorf("%w: no active restaurants", ErrNotFound)
	}
	for i := range restaurants {
		withOpening(&restaurants[i])
	}
	return restaurants, nil
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (*models.Restaurant, error) {
	restaurant, err := s.store.FindActiveRestaurant(ctx, id)
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("get restaurant %d", id))
	}
	withOpening(restaurant)
	return restaurant, nil
}

// Create inserts the restaurant and all of its opening hours in one transaction.
func (s *RestaurantService) Create(ctx context.Context, payload map[string]any) (*models.Restaurant, error) {
	in, err := validation.Restaurant(validation.ModeCreate, payload)
	if err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{IsActive: true}
	in.Apply(restaurant)

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.CreateRestaurant(ctx, restaurant); err != nil {
			return err
		}
		hours := make([]models.OpeningHour, 0, len(in.Opening))
		for _, o := range in.Opening {
			hours = append(hours, models.OpeningHour{
				RestaurantID: restaurant.ID,
				DayOfWeek:    o.Day,
				OpensAt:      o.OpensAt,
				ClosesAt:     o.ClosesAt,
				IsActive:     true,
			})
		}
		return tx.CreateOpeningHours(ctx, hours)
	})
	if err != nil {
		return nil, storeError(err, "create restaurant")
	}

	created, err := s.Get(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, events.EntityRestaurant, events.ActionCreated, created.ID, created)
	return created, nil
}

// Update applies a PUT (validation.ModeReplace) or PATCH (validation.ModePatch).
// isActive=false soft deletes the restaurant and its menu; the returned value is then inactive.
func (s *RestaurantService) Update(ctx context.Context, id uint, mode validation.Mode, payload map[string]any) (*models.Restaurant, error) {
	in, err := validation.Restaurant(mode, payload)
	if err != nil {
		return nil, err
	}
	deactivate := in.IsActive != nil && !*in.IsActive

	var saved *models.Restaurant
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		restaurant, err := tx.FindActiveRestaurant(ctx, id)
		if err != nil {
			return err
		}
		in.Apply(restaurant)
		restaurant.OpeningHours = nil
		if deactivate {
			restaurant.IsActive = false
		}
		if err := tx.SaveRestaurant(ctx, restaurant); err != nil {
			return err
		}
		saved = restaurant

		if deactivate {
			return tx.DeactivateRestaurantChildren(ctx, id)
		}
		if in.HasOpening {
			return upsertOpening(ctx, tx, id, in.Opening, mode == validation.ModeReplace)
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("update restaurant %d", id))
	}

	if deactivate {
		withOpening(saved)
		publish(ctx, s.publisher, events.EntityRestaurant, events.ActionDeleted, id, nil)
		return saved, nil
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, events.EntityRestaurant, events.ActionUpdated, id, updated)
	return updated, nil
}

// Delete soft deletes the restaurant, its sections and their items together.
func (s *RestaurantService) Delete(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		restaurant, err := tx.FindActiveRestaurant(ctx, id)
		if err != nil {
			return err
		}
		restaurant.OpeningHours = nil
		restaurant.IsActive = false
		if err := tx.SaveRestaurant(ctx, restaurant); err != nil {
			return err
		}
		return tx.DeactivateRestaurantChildren(ctx, id)
	})
	if err != nil {
		return storeError(err, fmt.Sprintf("delete restaurant %d", id))
	}
	publish(ctx, s.publisher, events.EntityRestaurant, events.ActionDeleted, id, nil)
	return nil
}

// upsertOpening writes one row per supplied weekday: an existing row takes the new
// times and is re-activated, a missing one is inserted. With prune, active rows
// whose weekday was not supplied are deactivated.
func upsertOpening(ctx context.Context, tx repository.Store, restaurantID uint, entries []validation.OpeningInput, prune bool) error {
	supplied := make(map[models.DayOfWeek]bool, len(entries))
	var fresh []models.OpeningHour

	for _, e := range entries {
		supplied[e.Day] = true

		hour, err := tx.FindOpeningHour(ctx, restaurantID, e.Day)
		if errors.Is(err, repository.ErrNotFound) {
			fresh = append(fresh, models.OpeningHour{
				RestaurantID: restaurantID,
				DayOfWeek:    e.Day,
				OpensAt:      e.OpensAt,
				ClosesAt:     e.ClosesAt,
				IsActive:     true,
			})
			continue
		}
		if err != nil {
			return err
		}

		hour.OpensAt = e.OpensAt
		hour.ClosesAt = e.ClosesAt
		hour.IsActive = true
		if err := tx.SaveOpeningHour(ctx, hour); err != nil {
			return err
		}
	}

	if err := tx.CreateOpeningHours(ctx, fresh); err != nil {
		return err
	}
	if !prune {
		return nil
	}

	existing, err := tx.ListOpeningHours(ctx, restaurantID)
	if err != nil {
		return err
	}
	for i := range existing {
		if supplied[existing[i].DayOfWeek] || !existing[i].IsActive {
			continue
		}
		existing[i].IsActive = false
		if err := tx.SaveOpeningHour(ctx, &existing[i]); err != nil {
			return err
		}
	}
	return nil
}

func withOpening(r *models.Restaurant) {
	if r.OpeningHours == nil {
		r.OpeningHours = []models.OpeningHour{}
	}
}
