package repositories

import (
	"context"

	"github.com/uptrace/bun"

	"algotrading-site/models"
)

type CategoryRepository struct {
	db *bun.DB
}

func NewCategoryRepository(db *bun.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindActive returns active categories ordered alphabetically by name.
func (r *CategoryRepository) FindActive(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.NewSelect().
		Model(&categories).
		Where("c.active = ?", true).
		Order("c.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return categories, nil
}
