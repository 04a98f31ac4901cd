package usecase

import (
	"errors"

	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
)

// defaultGeocodeBatchLimit bounds the blocking geocoding calls of one request
const defaultGeocodeBatchLimit = 10

// locationUC implements locations.LocationUC
type locationUC struct {
	cfg          *models.Config
	locationRepo locations.LocationRepo
	postalRepo   locations.PostalCodeRepo
	locationGW   locations.LocationGW
	geocoder     locations.Geocoder
	geocodeCache locations.GeocodeCache
}

// NewLocationUC creates a new location use case. geocodeCache may be nil.
func NewLocationUC(
	cfg *models.Config,
	locationRepo locations.LocationRepo,
	postalRepo locations.PostalCodeRepo,
	locationGW locations.LocationGW,
	geocoder locations.Geocoder,
	geocodeCache locations.GeocodeCache,
) (locations.LocationUC, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if locationRepo == nil || postalRepo == nil {
		return nil, errors.New("location and postal code repositories are required")
	}

	return &locationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		postalRepo:   postalRepo,
		locationGW:   locationGW,
		geocoder:     geocoder,
		geocodeCache: geocodeCache,
	}, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
