package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/internal/utils"
	"github.com/piresc/locations/services/locations"
)

// ToggleActive flips the visibility of the given locations
func (uc *locationUC) ToggleActive(ctx context.Context, ids []int64) (*models.ToggleActiveResult, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return &models.ToggleActiveResult{}, nil
	}

	result, err := uc.locationRepo.ToggleActive(ctx, ids)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Toggled location visibility",
		logger.Int64s("location_ids", ids),
		logger.Int("activated", result.Activated),
		logger.Int("deactivated", result.Deactivated))

	return result, nil
}

func (uc *locationUC) ListCategories(ctx context.Context) ([]models.LocationCategory, error) {
	return uc.locationRepo.ListCategories(ctx)
}

// CreateCategory creates a category, deriving the slug from the name when empty
func (uc *locationUC) CreateCategory(ctx context.Context, name, slug string) (*models.LocationCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", locations.ErrInvalidCategory)
	}

	slug = utils.Slugify(slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: name %q has no usable slug", locations.ErrInvalidCategory, name)
	}

	category := &models.LocationCategory{Name: name, Slug: slug}
	if err := uc.locationRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
