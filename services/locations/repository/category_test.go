package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
)

func TestListCategories(t *testing.T) {
	repo, mock := setupLocationRepoTest(t)

	mock.ExpectQuery(`SELECT id, name, slug FROM location_categories ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(2, "Bars", "bars").
			AddRow(1, "Cafes", "cafes"))

	categories, err := repo.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.LocationCategory{
		{ID: 2, Name: "Bars", Slug: "bars"},
		{ID: 1, Name: "Cafes", Slug: "cafes"},
	}, categories)
}

func TestGetCategoryByID_NotFound(t *testing.T) {
	repo, mock := setupLocationRepoTest(t)

	mock.ExpectQuery(`FROM location_categories WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}))

	_, err := repo.GetCategoryByID(context.Background(), 9)

	assert.ErrorIs(t, err, locations.ErrCategoryNotFound)
}

func TestCreateCategory(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo, mock := setupLocationRepoTest(t)

		mock.ExpectQuery(`INSERT INTO location_categories`).
			WithArgs("Coffee Shops", "coffee-shops").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

		category := &models.LocationCategory{Name: "Coffee Shops", Slug: "coffee-shops"}
		require.NoError(t, repo.CreateCategory(context.Background(), category))
		assert.Equal(t, int64(12), category.ID)
	})

	t.Run("slug taken", func(t *testing.T) {
		repo, mock := setupLocationRepoTest(t)

		mock.ExpectQuery(`INSERT INTO location_categories`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := repo.CreateCategory(context.Background(), &models.LocationCategory{Name: "Bars", Slug: "bars"})
		assert.ErrorIs(t, err, locations.ErrDuplicateCategory)
	})
}
