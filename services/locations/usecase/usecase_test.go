package usecase

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
	"github.com/piresc/locations/services/locations/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	repo     *mocks.MockLocationRepo
	store    *mocks.MockImportStore
	postal   *mocks.MockPostalCodeRepo
	gw       *mocks.MockLocationGW
	geocoder *mocks.MockGeocoder
	cache    *mocks.MockGeocodeCache
}

func newTestUC(t *testing.T) (locations.LocationUC, *testDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := &testDeps{
		repo:     mocks.NewMockLocationRepo(ctrl),
		store:    mocks.NewMockImportStore(ctrl),
		postal:   mocks.NewMockPostalCodeRepo(ctrl),
		gw:       mocks.NewMockLocationGW(ctrl),
		geocoder: mocks.NewMockGeocoder(ctrl),
		cache:    mocks.NewMockGeocodeCache(ctrl),
	}

	cfg := &models.Config{
		Geocoder: models.GeocoderConfig{BatchLimit: 10},
		Import:   models.ImportConfig{DuplicatesField: models.DuplicatesFieldOriginalName, SampleSize: 1024},
	}

	uc, err := NewLocationUC(cfg, deps.repo, deps.postal, deps.gw, deps.geocoder, deps.cache)
	require.NoError(t, err)
	return uc, deps
}

func TestNewLocationUC_RequiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewLocationUC(nil, mocks.NewMockLocationRepo(ctrl), mocks.NewMockPostalCodeRepo(ctrl), nil, nil, nil)
	assert.Error(t, err)

	_, err = NewLocationUC(&models.Config{}, nil, mocks.NewMockPostalCodeRepo(ctrl), nil, nil, nil)
	assert.Error(t, err)

	uc, err := NewLocationUC(&models.Config{}, mocks.NewMockLocationRepo(ctrl), mocks.NewMockPostalCodeRepo(ctrl), nil, nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, uniqueIDs([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, uniqueIDs(nil))
}

func geocoded(id int64, name string, lat, lng float64) *models.Location {
	l := &models.Location{ID: id, Name: name, City: "Chicago", State: "IL", IsActive: true}
	l.SetPoint(models.GeoPoint{Latitude: lat, Longitude: lng})
	return l
}

func ungeocoded(id int64, name string) *models.Location {
	return &models.Location{ID: id, Name: name, City: "Chicago", State: "IL", IsActive: true}
}

func resultIDs(results []*models.LocationResult) []int64 {
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}
