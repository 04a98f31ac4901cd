package models

import "time"

// GeoPoint is a latitude/longitude pair in decimal degrees
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationCategory groups locations, e.g. "Restaurant" or "Store"
type LocationCategory struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

// Location represents an address that can be searched by proximity.
// Latitude and Longitude are either both set or both nil.
type Location struct {
	ID            int64              `json:"id" db:"id"`
	Name          string             `json:"name" db:"name"`
	OriginalName  *string            `json:"original_name,omitempty" db:"original_name"`
	StreetAddress *string            `json:"street_address" db:"street_address"`
	City          string             `json:"city" db:"city"`
	State         string             `json:"state" db:"state"`
	PostalCode    *string            `json:"postal_code" db:"postal_code"`
	Latitude      *float64           `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64           `json:"longitude,omitempty" db:"longitude"`
	Geohash       *string            `json:"geohash,omitempty" db:"geohash"`
	URL           string             `json:"url" db:"url"`
	Description   string             `json:"description" db:"description"`
	IsActive      bool               `json:"is_active" db:"is_active"`
	UploadCount   int                `json:"upload_count" db:"upload_count"`
	CreatedAt     time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" db:"updated_at"`
	Categories    []LocationCategory `json:"categories" db:"-"`
}

// Point returns the location coordinates, or nil when the location is not geocoded
func (l *Location) Point() *GeoPoint {
	if l.Latitude == nil || l.Longitude == nil {
		return nil
	}
	return &GeoPoint{Latitude: *l.Latitude, Longitude: *l.Longitude}
}

// SetPoint sets both coordinates at once
func (l *Location) SetPoint(p GeoPoint) {
	lat, lng := p.Latitude, p.Longitude
	l.Latitude = &lat
	l.Longitude = &lng
}

// PostalCode is a postal code centroid from the reference lookup table
type PostalCode struct {
	Code      string  `json:"code" db:"code"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Point returns the centroid of the postal code area
func (p *PostalCode) Point() GeoPoint {
	return GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}

// StateChoice is a distinct state code with its display name
type StateChoice struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ToggleActiveResult reports how many locations changed visibility
type ToggleActiveResult struct {
	Activated   int `json:"activated"`
	Deactivated int `json:"deactivated"`
}
