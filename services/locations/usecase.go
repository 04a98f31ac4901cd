package locations

import (
	"context"
	"io"

	"github.com/piresc/locations/internal/pkg/models"
)

// LocationUC defines the interface for location business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/locations/services/locations LocationUC
type LocationUC interface {
	SearchLocations(ctx context.Context, query models.SearchQuery) ([]*models.LocationResult, error)
	GetLocation(ctx context.Context, id int64) (*models.Location, error)
	StateChoices(ctx context.Context) ([]models.StateChoice, error)

	ImportLocations(ctx context.Context, r io.Reader, opts models.ImportOptions) (*models.ImportReport, error)
	GeocodeLocations(ctx context.Context, ids []int64) (*models.GeocodeReport, error)
	ToggleActive(ctx context.Context, ids []int64) (*models.ToggleActiveResult, error)

	ListCategories(ctx context.Context) ([]models.LocationCategory, error)
	CreateCategory(ctx context.Context, name, slug string) (*models.LocationCategory, error)
}
