package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the GORM implementation of Store.
type Repository struct {
	DB *gorm.DB
}

var _ Store = (*Repository)(nil)

func New(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{DB: tx})
	})
}

func (r *Repository) db(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}

func active(db *gorm.DB) *gorm.DB {
	return db.Where(`"isActive" = ?`, true)
}
