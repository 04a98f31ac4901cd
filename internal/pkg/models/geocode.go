package models

// GeocodeFailure records a location that could not be geocoded
type GeocodeFailure struct {
	LocationID int64  `json:"location_id"`
	Name       string `json:"name"`
	Error      string `json:"error"`
}

// GeocodeReport summarises a batch geocode request
type GeocodeReport struct {
	Geocoded  []string         `json:"geocoded"`
	Failed    []GeocodeFailure `json:"failed"`
	Truncated bool             `json:"truncated"`
	Message   string           `json:"message"`
}

// GeocodeEvent is published for every location that received coordinates
type GeocodeEvent struct {
	LocationID int64   `json:"location_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Geohash    string  `json:"geohash"`
}
