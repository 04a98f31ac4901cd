package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/piresc/locations/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    models.GeoPoint
		point2    models.GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    models.GeoPoint{Latitude: 41.8781, Longitude: -87.6298},
			point2:    models.GeoPoint{Latitude: 41.8781, Longitude: -87.6298},
			expected:  0,
			tolerance: 0.0001,
		},
		{
			name:      "Chicago to Milwaukee",
			point1:    models.GeoPoint{Latitude: 41.8781, Longitude: -87.6298},
			point2:    models.GeoPoint{Latitude: 43.0389, Longitude: -87.9065},
			expected:  81.4,
			tolerance: 1,
		},
		{
			name:      "One degree of longitude on the equator",
			point1:    models.GeoPoint{Latitude: 0, Longitude: 0},
			point2:    models.GeoPoint{Latitude: 0, Longitude: 1},
			expected:  EarthRadiusMiles * math.Pi / 180,
			tolerance: 0.0001,
		},
		{
			name:      "Antipodal points",
			point1:    models.GeoPoint{Latitude: 0, Longitude: 0},
			point2:    models.GeoPoint{Latitude: 0, Longitude: 180},
			expected:  EarthRadiusMiles * math.Pi,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateDistance(tt.point1, tt.point2), tt.tolerance)
			assert.InDelta(t, tt.expected, CalculateDistance(tt.point2, tt.point1), tt.tolerance)
		})
	}
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(41.88, -87.63))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(91, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
}

func TestEncodeGeohash(t *testing.T) {
	point := models.GeoPoint{Latitude: 41.8781, Longitude: -87.6298}

	hash := EncodeGeohash(point)
	assert.Len(t, hash, GeohashPrecision)
	assert.True(t, strings.HasPrefix(hash, "dp3"))

	// neighbouring points share the cell prefix
	near := EncodeGeohash(models.GeoPoint{Latitude: 41.8782, Longitude: -87.6297})
	assert.Equal(t, hash[:6], near[:6])
}
