package locations

import (
	"context"

	"github.com/piresc/locations/internal/pkg/models"
)

// LocationRepo defines the interface for location data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/locations/services/locations LocationRepo,ImportStore,PostalCodeRepo,GeocodeCache
type LocationRepo interface {
	// Search
	FindLocations(ctx context.Context, filter models.LocationFilter) ([]*models.Location, error)
	GetLocationByID(ctx context.Context, id int64) (*models.Location, error)
	GetLocationsByIDs(ctx context.Context, ids []int64) ([]*models.Location, error)
	ListActiveStates(ctx context.Context) ([]string, error)

	// Admin
	UpdateGeolocation(ctx context.Context, id int64, point models.GeoPoint, geohash string) error
	ToggleActive(ctx context.Context, ids []int64) (*models.ToggleActiveResult, error)

	// Categories
	ListCategories(ctx context.Context) ([]models.LocationCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.LocationCategory, error)
	CreateCategory(ctx context.Context, category *models.LocationCategory) error

	// RunImport runs fn inside a single transaction holding the import lock.
	// Returning an error from fn rolls everything back.
	RunImport(ctx context.Context, fn func(store ImportStore) error) error
}

// ImportStore is the transactional view of the store used by a bulk import
type ImportStore interface {
	NextUploadCount(ctx context.Context) (int, error)
	FindByField(ctx context.Context, field, value string) ([]*models.Location, error)
	CreateLocation(ctx context.Context, location *models.Location, categoryID int64) error
	Reactivate(ctx context.Context, id int64) error
}

// PostalCodeRepo resolves postal codes to their centroid
type PostalCodeRepo interface {
	// GetPostalCode returns ErrPostalCodeNotFound for unknown codes
	GetPostalCode(ctx context.Context, code string) (*models.PostalCode, error)
}

// GeocodeCache stores geocoding answers by address
type GeocodeCache interface {
	// Get returns nil, nil on a miss
	Get(ctx context.Context, address string) (*models.GeoPoint, error)
	Set(ctx context.Context, address string, point models.GeoPoint) error
}
