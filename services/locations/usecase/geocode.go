package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/internal/utils"
	"github.com/piresc/locations/services/locations"
)

// GeocodeLocations geocodes up to the batch limit of the given locations.
// Failures are collected per location and never abort the batch.
func (uc *locationUC) GeocodeLocations(ctx context.Context, ids []int64) (*models.GeocodeReport, error) {
	if uc.geocoder == nil {
		return nil, errors.New("geocoding is not configured")
	}

	limit := uc.cfg.Geocoder.BatchLimit
	if limit <= 0 {
		limit = defaultGeocodeBatchLimit
	}

	report := &models.GeocodeReport{
		Geocoded: []string{},
		Failed:   []models.GeocodeFailure{},
	}

	ids = uniqueIDs(ids)
	if len(ids) > limit {
		ids = ids[:limit]
		report.Truncated = true
	}

	found, err := uc.locationRepo.GetLocationsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*models.Location, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}

	for _, id := range ids {
		location, ok := byID[id]
		if !ok {
			report.Failed = append(report.Failed, models.GeocodeFailure{
				LocationID: id,
				Error:      locations.ErrLocationNotFound.Error(),
			})
			continue
		}

		if err := uc.geocodeLocation(ctx, location); err != nil {
			logger.WarnCtx(ctx, "Failed to geocode location",
				logger.Int64("location_id", location.ID),
				logger.ErrorField(err))

			report.Failed = append(report.Failed, models.GeocodeFailure{
				LocationID: location.ID,
				Name:       location.Name,
				Error:      err.Error(),
			})
			continue
		}
		report.Geocoded = append(report.Geocoded, location.Name)
	}

	report.Message = fmt.Sprintf("Successfully geocoded %d location(s).", len(report.Geocoded))
	if report.Truncated {
		report.Message = fmt.Sprintf("Only %d locations can be geocoded at a time. %s", limit, report.Message)
	}

	return report, nil
}

func (uc *locationUC) geocodeLocation(ctx context.Context, location *models.Location) error {
	address := FormatAddress(location)

	point, err := uc.lookupAddress(ctx, address)
	if err != nil {
		return err
	}

	geohash := utils.EncodeGeohash(*point)
	if err := uc.locationRepo.UpdateGeolocation(ctx, location.ID, *point, geohash); err != nil {
		return err
	}
	location.SetPoint(*point)
	location.Geohash = &geohash

	if uc.locationGW != nil {
		event := models.GeocodeEvent{
			LocationID: location.ID,
			Latitude:   point.Latitude,
			Longitude:  point.Longitude,
			Geohash:    geohash,
		}
		if err := uc.locationGW.PublishLocationGeocoded(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish geocode event", logger.ErrorField(err))
		}
	}
	return nil
}

// lookupAddress asks the cache first and the geocoding service second
func (uc *locationUC) lookupAddress(ctx context.Context, address string) (*models.GeoPoint, error) {
	if uc.geocodeCache != nil {
		cached, err := uc.geocodeCache.Get(ctx, address)
		if err != nil {
			logger.WarnCtx(ctx, "Geocode cache read failed", logger.ErrorField(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	point, err := uc.geocoder.Geocode(ctx, address)
	if err != nil {
		var encodingErr *locations.LocationEncodingError
		if !errors.As(err, &encodingErr) {
			err = &locations.LocationEncodingError{Address: address, Err: err}
		}
		return nil, err
	}
	if !utils.ValidCoordinates(point.Latitude, point.Longitude) {
		return nil, &locations.LocationEncodingError{
			Address: address,
			Err:     fmt.Errorf("coordinates %v,%v out of range", point.Latitude, point.Longitude),
		}
	}

	if uc.geocodeCache != nil {
		if err := uc.geocodeCache.Set(ctx, address, *point); err != nil {
			logger.WarnCtx(ctx, "Geocode cache write failed", logger.ErrorField(err))
		}
	}
	return point, nil
}

// FormatAddress renders "<street>, <city>, <state> <postal>" for the geocoder
func FormatAddress(l *models.Location) string {
	var street, postal string
	if l.StreetAddress != nil {
		street = *l.StreetAddress
	}
	if l.PostalCode != nil {
		postal = *l.PostalCode
	}
	return strings.TrimSpace(fmt.Sprintf("%s, %s, %s %s", street, l.City, l.State, postal))
}
