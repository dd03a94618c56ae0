package repository

import (
	"context"

	"menuapi-backend/models"

	"gorm.io/gorm/clause"
)

const sectionChainJoin = `JOIN restaurants ON restaurants.id = sections.restaurant_id AND restaurants."isActive" = ?`

func (r *Repository) ListActiveSections(ctx context.Context, restaurantID uint) ([]models.Section, error) {
	var sections []models.Section
	err := r.db(ctx).
		Joins(sectionChainJoin, true).
		Where(`sections.restaurant_id = ? AND sections."isActive" = ?`, restaurantID, true).
		Order("sections.section_id ASC").
		Find(&sections).Error
	if err != nil {
		return nil, mapError(err)
	}
	return sections, nil
}

func (r *Repository) FindActiveSection(ctx context.Context, id uint) (*models.Section, error) {
	var section models.Section
	err := r.db(ctx).
		Joins(sectionChainJoin, true).
		Where(`sections.section_id = ? AND sections."isActive" = ?`, id, true).
		First(&section).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &section, nil
}

func (r *Repository) CreateSection(ctx context.Context, section *models.Section) error {
	return mapError(r.db(ctx).Omit(clause.Associations).Create(section).Error)
}

func (r *Repository) SaveSection(ctx context.Context, section *models.Section) error {
	return mapError(r.db(ctx).Omit(clause.Associations).Save(section).Error)
}

func (r *Repository) DeactivateSectionItems(ctx context.Context, sectionID uint) error {
	return mapError(r.db(ctx).Model(&models.Item{}).
		Where(`section_id = ? AND "isActive" = ?`, sectionID, true).
		Update("isActive", false).Error)
}
