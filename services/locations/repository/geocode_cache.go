package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/locations/internal/pkg/database"
	"github.com/piresc/locations/internal/pkg/models"
)

const geocodeKeyPrefix = "geocode:"

// GeocodeCache keeps geocoding answers in Redis hashes keyed by normalised address
type GeocodeCache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewGeocodeCache creates a new geocode cache
func NewGeocodeCache(redisClient *database.RedisClient, ttl time.Duration) *GeocodeCache {
	return &GeocodeCache{
		redis: redisClient,
		ttl:   ttl,
	}
}

func geocodeKey(address string) string {
	return geocodeKeyPrefix + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

// Get returns the cached point for address, or nil on a miss
func (c *GeocodeCache) Get(ctx context.Context, address string) (*models.GeoPoint, error) {
	values, err := c.redis.HGetAll(ctx, geocodeKey(address))
	if err != nil {
		return nil, fmt.Errorf("failed to read geocode cache: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values["lat"], 64)
	if err != nil {
		return nil, nil
	}
	lng, err := strconv.ParseFloat(values["lng"], 64)
	if err != nil {
		return nil, nil
	}
	return &models.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

// Set stores point for address
func (c *GeocodeCache) Set(ctx context.Context, address string, point models.GeoPoint) error {
	key := geocodeKey(address)

	err := c.redis.HMSet(ctx, key, map[string]interface{}{
		"lat": strconv.FormatFloat(point.Latitude, 'f', -1, 64),
		"lng": strconv.FormatFloat(point.Longitude, 'f', -1, 64),
	})
	if err != nil {
		return fmt.Errorf("failed to write geocode cache: %w", err)
	}

	if c.ttl > 0 {
		if err := c.redis.Expire(ctx, key, c.ttl); err != nil {
			return fmt.Errorf("failed to set geocode cache ttl: %w", err)
		}
	}
	return nil
}
