package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/piresc/locations/internal/pkg/http"
	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
)

var errNoResults = errors.New("no results for address")

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type googleGeocoder struct {
	client *httpclient.Client
	apiKey string
}

// NewGoogleGeocoder creates a geocoder backed by the Google Geocoding API
func NewGoogleGeocoder(cfg models.GeocoderConfig, l *logger.ZapLogger) locations.Geocoder {
	return &googleGeocoder{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL:    cfg.BaseURL,
			Timeout:    time.Duration(cfg.Timeout) * time.Second,
			MaxRetries: cfg.MaxRetries,
			Name:       "geocoder",
		}, l),
		apiKey: cfg.APIKey,
	}
}

// Geocode returns the first match for address
func (g *googleGeocoder) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	query := url.Values{"address": {address}}
	if g.apiKey != "" {
		query.Set("key", g.apiKey)
	}

	var resp geocodeResponse
	if err := g.client.GetJSON(ctx, "", query, &resp); err != nil {
		return nil, &locations.LocationEncodingError{Address: address, Err: err}
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, &locations.LocationEncodingError{Address: address, Err: errNoResults}
	default:
		return nil, &locations.LocationEncodingError{
			Address: address,
			Err:     fmt.Errorf("geocoding service returned %s: %s", resp.Status, resp.ErrorMessage),
		}
	}

	if len(resp.Results) == 0 {
		return nil, &locations.LocationEncodingError{Address: address, Err: errNoResults}
	}

	loc := resp.Results[0].Geometry.Location
	return &models.GeoPoint{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
