package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
)

// ListCategories returns every category ordered by name
func (r *LocationRepo) ListCategories(ctx context.Context) ([]models.LocationCategory, error) {
	categories := []models.LocationCategory{}
	if err := r.db.SelectContext(ctx, &categories, `SELECT id, name, slug FROM location_categories ORDER BY name, id`); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByID returns a category or locations.ErrCategoryNotFound
func (r *LocationRepo) GetCategoryByID(ctx context.Context, id int64) (*models.LocationCategory, error) {
	var category models.LocationCategory
	err := r.db.GetContext(ctx, &category, `SELECT id, name, slug FROM location_categories WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, locations.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// CreateCategory inserts a category; a taken slug yields locations.ErrDuplicateCategory
func (r *LocationRepo) CreateCategory(ctx context.Context, category *models.LocationCategory) error {
	query := `
		INSERT INTO location_categories (name, slug)
		VALUES ($1, $2)
		ON CONFLICT (slug) DO NOTHING
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, category.Name, category.Slug).Scan(&category.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return locations.ErrDuplicateCategory
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
