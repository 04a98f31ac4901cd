package locations

import (
	"context"

	"github.com/piresc/locations/internal/pkg/models"
)

// LocationGW publishes location domain events
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/locations/services/locations LocationGW,Geocoder
type LocationGW interface {
	PublishLocationsImported(ctx context.Context, event models.ImportEvent) error
	PublishLocationGeocoded(ctx context.Context, event models.GeocodeEvent) error
}

// Geocoder resolves a free text address to coordinates.
// Every failure is returned as a *LocationEncodingError.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.GeoPoint, error)
}
