package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/internal/utils"
	"github.com/piresc/locations/services/locations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressed(id int64, name string) *models.Location {
	street, postal := "233 S Wacker Dr", "60606"
	return &models.Location{
		ID:            id,
		Name:          name,
		StreetAddress: &street,
		City:          "Chicago",
		State:         "IL",
		PostalCode:    &postal,
		IsActive:      true,
	}
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "233 S Wacker Dr, Chicago, IL 60606", FormatAddress(addressed(1, "Tower")))
	assert.Equal(t, ", Chicago, IL", FormatAddress(ungeocoded(1, "Nowhere")))
}

func TestGeocodeLocations_Success(t *testing.T) {
	uc, deps := newTestUC(t)

	tower := addressed(1, "Tower")
	address := "233 S Wacker Dr, Chicago, IL 60606"
	point := models.GeoPoint{Latitude: 41.8789, Longitude: -87.6359}
	hash := utils.EncodeGeohash(point)

	deps.repo.EXPECT().GetLocationsByIDs(gomock.Any(), []int64{1}).Return([]*models.Location{tower}, nil)
	deps.cache.EXPECT().Get(gomock.Any(), address).Return(nil, nil)
	deps.geocoder.EXPECT().Geocode(gomock.Any(), address).Return(&point, nil)
	deps.cache.EXPECT().Set(gomock.Any(), address, point).Return(nil)
	deps.repo.EXPECT().UpdateGeolocation(gomock.Any(), int64(1), point, hash).Return(nil)
	deps.gw.EXPECT().
		PublishLocationGeocoded(gomock.Any(), models.GeocodeEvent{
			LocationID: 1,
			Latitude:   point.Latitude,
			Longitude:  point.Longitude,
			Geohash:    hash,
		}).
		Return(nil)

	report, err := uc.GeocodeLocations(context.Background(), []int64{1, 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"Tower"}, report.Geocoded)
	assert.Empty(t, report.Failed)
	assert.False(t, report.Truncated)
	assert.Equal(t, "Successfully geocoded 1 location(s).", report.Message)
}

func TestGeocodeLocations_UsesCache(t *testing.T) {
	uc, deps := newTestUC(t)

	point := models.GeoPoint{Latitude: 41.8789, Longitude: -87.6359}

	deps.repo.EXPECT().GetLocationsByIDs(gomock.Any(), []int64{1}).Return([]*models.Location{addressed(1, "Tower")}, nil)
	deps.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&point, nil)
	deps.repo.EXPECT().UpdateGeolocation(gomock.Any(), int64(1), point, gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishLocationGeocoded(gomock.Any(), gomock.Any()).Return(errors.New("nsqd unavailable"))

	report, err := uc.GeocodeLocations(context.Background(), []int64{1})

	require.NoError(t, err)
	assert.Equal(t, []string{"Tower"}, report.Geocoded)
}

func TestGeocodeLocations_CollectsFailures(t *testing.T) {
	uc, deps := newTestUC(t)

	deps.repo.EXPECT().
		GetLocationsByIDs(gomock.Any(), []int64{1, 2, 3}).
		Return([]*models.Location{addressed(1, "Tower"), addressed(3, "Other Tower")}, nil)
	deps.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down")).Times(2)
	deps.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(nil, errors.New("ZERO_RESULTS"))
	deps.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(&models.GeoPoint{Latitude: 200, Longitude: 0}, nil)

	report, err := uc.GeocodeLocations(context.Background(), []int64{1, 2, 3})

	require.NoError(t, err)
	assert.Empty(t, report.Geocoded)
	require.Len(t, report.Failed, 3)
	assert.Equal(t, int64(1), report.Failed[0].LocationID)
	assert.Contains(t, report.Failed[0].Error, "ZERO_RESULTS")
	assert.Equal(t, int64(2), report.Failed[1].LocationID)
	assert.Equal(t, locations.ErrLocationNotFound.Error(), report.Failed[1].Error)
	assert.Equal(t, "Other Tower", report.Failed[2].Name)
}

func TestGeocodeLocations_CapsBatch(t *testing.T) {
	uc, deps := newTestUC(t)

	ids := make([]int64, 0, 12)
	for i := int64(1); i <= 12; i++ {
		ids = append(ids, i)
	}

	deps.repo.EXPECT().GetLocationsByIDs(gomock.Any(), ids[:10]).Return(nil, nil)

	report, err := uc.GeocodeLocations(context.Background(), ids)

	require.NoError(t, err)
	assert.True(t, report.Truncated)
	assert.Len(t, report.Failed, 10)
	assert.Equal(t, "Only 10 locations can be geocoded at a time. Successfully geocoded 0 location(s).", report.Message)
}

func TestGeocodeLocations_EncodingErrorIsTyped(t *testing.T) {
	uc, deps := newTestUC(t)

	deps.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	impl := uc.(*locationUC)
	_, err := impl.lookupAddress(context.Background(), "nowhere")

	var encodingErr *locations.LocationEncodingError
	require.True(t, errors.As(err, &encodingErr))
	assert.Equal(t, "nowhere", encodingErr.Address)
}
