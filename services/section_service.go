package services

import (
	"context"
	"fmt"

	"menuapi-backend/events"
	"menuapi-backend/models"
	"menuapi-backend/repository"
	"menuapi-backend/validation"
)

type SectionService struct {
	store     repository.Store
	publisher events.Publisher
}

func NewSectionService(store repository.Store, publisher events.Publisher) *SectionService {
	return &SectionService{store: store, publisher: publisher}
}

// List returns the active sections of an active restaurant. An empty result is ErrNotFound.
func (s *SectionService) List(ctx context.Context, restaurantID uint) ([]models.Section, error) {
	sections, err := s.store.ListActiveSections(ctx, restaurantID)
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("list sections of restaurant %d", restaurantID))
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no active sections for restaurant %d", ErrNotFound, restaurantID)
	}
	return sections, nil
}

func (s *SectionService) Get(ctx context.Context, id uint) (*models.Section, error) {
	section, err := s.store.FindActiveSection(ctx, id)
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("get section %d", id))
	}
	return section, nil
}

func (s *SectionService) Create(ctx context.Context, restaurantID uint, payload map[string]any) (*models.Section, error) {
	in, err := validation.Section(validation.ModeCreate, payload)
	if err != nil {
		return nil, err
	}

	section := &models.Section{RestaurantID: &restaurantID, IsActive: true}
	in.Apply(section)

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.FindActiveRestaurant(ctx, restaurantID); err != nil {
			return err
		}
		return tx.CreateSection(ctx, section)
	})
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("create section in restaurant %d", restaurantID))
	}

	publish(ctx, s.publisher, events.EntitySection, events.ActionCreated, section.ID, section)
	return section, nil
}

func (s *SectionService) Update(ctx context.Context, id uint, mode validation.Mode, payload map[string]any) (*models.Section, error) {
	in, err := validation.Section(mode, payload)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		section, err := tx.FindActiveSection(ctx, id)
		if err != nil {
			return err
		}
		in.Apply(section)
		return tx.SaveSection(ctx, section)
	})
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("update section %d", id))
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, events.EntitySection, events.ActionUpdated, id, updated)
	return updated, nil
}

// Delete soft deletes the section and its items.
func (s *SectionService) Delete(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		section, err := tx.FindActiveSection(ctx, id)
		if err != nil {
			return err
		}
		section.IsActive = false
		if err := tx.SaveSection(ctx, section); err != nil {
			return err
		}
		return tx.DeactivateSectionItems(ctx, id)
	})
	if err != nil {
		return storeError(err, fmt.Sprintf("delete section %d", id))
	}
	publish(ctx, s.publisher, events.EntitySection, events.ActionDeleted, id, nil)
	return nil
}
