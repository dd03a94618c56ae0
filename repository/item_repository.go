package repository

import (
	"context"

	"menuapi-backend/models"

	"gorm.io/gorm/clause"
)

const itemChainJoin = `JOIN sections ON sections.section_id = items.section_id AND sections."isActive" = ? ` +
	`JOIN restaurants ON restaurants.id = sections.restaurant_id AND restaurants."isActive" = ?`

func (r *Repository) ListActiveItems(ctx context.Context, sectionID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db(ctx).
		Joins(itemChainJoin, true, true).
		Where(`items.section_id = ? AND items."isActive" = ?`, sectionID, true).
		Order("items.item_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (r *Repository) FindActiveItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := r.db(ctx).
		Joins(itemChainJoin, true, true).
		Where(`items.item_id = ? AND items."isActive" = ?`, id, true).
		First(&item).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

func (r *Repository) CreateItem(ctx context.Context, item *models.Item) error {
	return mapError(r.db(ctx).Omit(clause.Associations).Create(item).Error)
}

func (r *Repository) SaveItem(ctx context.Context, item *models.Item) error {
	return mapError(r.db(ctx).Omit(clause.Associations).Save(item).Error)
}
