package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/locations/internal/pkg/models"
)

// EarthRadiusMiles is the mean Earth radius in statute miles
const EarthRadiusMiles = 3959.0

// GeohashPrecision is the precision stored with geocoded locations (~5m cells)
const GeohashPrecision = 9

// CalculateDistance returns the great-circle distance between two points in miles using the Haversine formula
func CalculateDistance(point1, point2 models.GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// ValidCoordinates reports whether lat/lng are inside the WGS84 ranges
func ValidCoordinates(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return false
	}
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

// EncodeGeohash converts a point to a geohash string
func EncodeGeohash(point models.GeoPoint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, GeohashPrecision)
}
