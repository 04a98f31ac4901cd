package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
	nrpkg "github.com/piresc/locations/internal/pkg/newrelic"
	"github.com/piresc/locations/internal/utils"
	"github.com/piresc/locations/services/locations"
)

const postalCodeLength = 5

// SearchLocations filters active locations and orders them by distance from
// the query point when one resolves, or by a persisted field otherwise.
func (uc *locationUC) SearchLocations(ctx context.Context, query models.SearchQuery) ([]*models.LocationResult, error) {
	if seg := nrpkg.StartSegment(ctx, "LocationUC.SearchLocations"); seg != nil {
		defer seg.End()
	}

	if query.Direction != "" && query.Direction != locations.SortDescending {
		return nil, locations.InvalidQueryf("unknown direction %q", query.Direction)
	}
	if query.Sort != "" && query.Sort != locations.SortDistance && !locations.IsSortField(query.Sort) {
		return nil, locations.InvalidQueryf("unknown sort field %q", query.Sort)
	}

	point, err := uc.resolveQueryPoint(ctx, query.GeoQuery)
	if err != nil {
		return nil, err
	}

	filter := models.LocationFilter{
		ActiveOnly:  true,
		City:        query.City,
		States:      query.States,
		PostalCodes: query.PostalCodes,
		CategoryIDs: query.Categories,
		Search:      strings.TrimSpace(query.Search),
	}

	byDistance := point != nil && (query.Sort == "" || query.Sort == locations.SortDistance)
	if !byDistance {
		filter.OrderBy = query.Sort
		if filter.OrderBy == "" || filter.OrderBy == locations.SortDistance {
			filter.OrderBy = locations.DefaultSort
		}
		filter.Descending = query.Direction == locations.SortDescending
	}

	found, err := uc.locationRepo.FindLocations(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]*models.LocationResult, 0, len(found))
	seen := make(map[int64]bool, len(found))
	for _, l := range found {
		if seen[l.ID] {
			continue
		}
		seen[l.ID] = true

		var distance *float64
		if point != nil {
			if p := l.Point(); p != nil {
				d := utils.CalculateDistance(*point, *p)
				distance = &d
			}
		}
		results = append(results, models.NewLocationResult(l, distance))
	}

	if byDistance {
		sortByDistance(results, query.Sort == locations.SortDistance && query.Direction == locations.SortDescending)
	}

	if query.Limit > 0 && len(results) > query.Limit {
		results = results[:query.Limit]
	}

	return results, nil
}

// sortByDistance keeps store order for ties and puts ungeocoded results last
func sortByDistance(results []*models.LocationResult, descending bool) {
	sort.SliceStable(results, func(i, j int) bool {
		di, dj := results[i].Distance, results[j].Distance
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		case descending:
			return *di > *dj
		default:
			return *di < *dj
		}
	})
}

// postalCodePrefix keeps the first postalCodeLength characters, not bytes
func postalCodePrefix(s string) string {
	runes := []rune(s)
	if len(runes) > postalCodeLength {
		return string(runes[:postalCodeLength])
	}
	return s
}

// resolveQueryPoint parses "lat,lng" or looks up the leading postal code.
// An unknown postal code yields no point rather than an error.
func (uc *locationUC) resolveQueryPoint(ctx context.Context, geoQuery string) (*models.GeoPoint, error) {
	geoQuery = strings.TrimSpace(geoQuery)
	if geoQuery == "" {
		return nil, nil
	}

	if strings.Contains(geoQuery, ",") {
		return parseLatLng(geoQuery)
	}

	if !utf8.ValidString(geoQuery) {
		logger.InfoCtx(ctx, "Malformed postal code, searching without distance")
		return nil, nil
	}
	code := postalCodePrefix(geoQuery)

	postalCode, err := uc.postalRepo.GetPostalCode(ctx, code)
	if err != nil {
		if errors.Is(err, locations.ErrPostalCodeNotFound) {
			logger.InfoCtx(ctx, "Unknown postal code, searching without distance",
				logger.String("postal_code", code))
			return nil, nil
		}
		return nil, err
	}

	p := postalCode.Point()
	return &p, nil
}

func parseLatLng(geoQuery string) (*models.GeoPoint, error) {
	parts := strings.Split(geoQuery, ",")
	if len(parts) != 2 {
		return nil, locations.InvalidQueryf("geo_query %q must be \"lat,lng\"", geoQuery)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, locations.InvalidQueryf("latitude %q is not a number", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, locations.InvalidQueryf("longitude %q is not a number", parts[1])
	}
	if !utils.ValidCoordinates(lat, lng) {
		return nil, locations.InvalidQueryf("coordinates %v,%v out of range", lat, lng)
	}

	return &models.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

// GetLocation returns an active location by id
func (uc *locationUC) GetLocation(ctx context.Context, id int64) (*models.Location, error) {
	location, err := uc.locationRepo.GetLocationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !location.IsActive {
		return nil, locations.ErrLocationNotFound
	}
	return location, nil
}

// StateChoices lists the states that have active locations, with display names
func (uc *locationUC) StateChoices(ctx context.Context) ([]models.StateChoice, error) {
	states, err := uc.locationRepo.ListActiveStates(ctx)
	if err != nil {
		return nil, err
	}

	choices := make([]models.StateChoice, 0, len(states))
	for _, code := range states {
		choices = append(choices, models.StateChoice{Code: code, Name: utils.StateName(code)})
	}
	return choices, nil
}
