package services

import (
	"context"
	"fmt"

	"menuapi-backend/events"
	"menuapi-backend/models"
	"menuapi-backend/repository"
	"menuapi-backend/validation"
)

type ItemService struct {
	store     repository.Store
	publisher events.Publisher
}

func NewItemService(store repository.Store, publisher events.Publisher) *ItemService {
	return &ItemService{store: store, publisher: publisher}
}

// List returns the active items of a section whose restaurant is active. An empty result is ErrNotFound.
func (s *ItemService) List(ctx context.Context, sectionID uint) ([]models.Item, error) {
	items, err := s.store.ListActiveItems(ctx, sectionID)
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("list items of section %d", sectionID))
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no active items for section %d", ErrNotFound, sectionID)
	}
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.store.FindActiveItem(ctx, id)
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("get item %d", id))
	}
	return item, nil
}

func (s *ItemService) Create(ctx context.Context, sectionID uint, payload map[string]any) (*models.Item, error) {
	in, err := validation.Item(validation.ModeCreate, payload)
	if err != nil {
		return nil, err
	}

	item := &models.Item{SectionID: sectionID, IsActive: true}
	in.Apply(item)

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.FindActiveSection(ctx, sectionID); err != nil {
			return err
		}
		return tx.CreateItem(ctx, item)
	})
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("create item in section %d", sectionID))
	}

	publish(ctx, s.publisher, events.EntityItem, events.ActionCreated, item.ID, item)
	return item, nil
}

// Update applies a PUT or PATCH. A PUT carrying only a price clears name and description.
func (s *ItemService) Update(ctx context.Context, id uint, mode validation.Mode, payload map[string]any) (*models.Item, error) {
	in, err := validation.Item(mode, payload)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		item, err := tx.FindActiveItem(ctx, id)
		if err != nil {
			return err
		}
		in.Apply(item)
		return tx.SaveItem(ctx, item)
	})
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("update item %d", id))
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, events.EntityItem, events.ActionUpdated, id, updated)
	return updated, nil
}

func (s *ItemService) Delete(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		item, err := tx.FindActiveItem(ctx, id)
		if err != nil {
			return err
		}
		item.IsActive = false
		return tx.SaveItem(ctx, item)
	})
	if err != nil {
		return storeError(err, fmt.Sprintf("delete item %d", id))
	}
	publish(ctx, s.publisher, events.EntityItem, events.ActionDeleted, id, nil)
	return nil
}
