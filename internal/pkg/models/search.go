package models

// SearchQuery holds the validated proximity search parameters.
// Zero values mean "not supplied".
type SearchQuery struct {
	// GeoQuery is either a "lat,lng" pair or a postal code (first 5 characters are used)
	GeoQuery    string   `json:"geo_query,omitempty"`
	Search      string   `json:"search,omitempty"`
	City        string   `json:"city,omitempty"`
	States      []string `json:"state,omitempty"`
	PostalCodes []string `json:"postal_code,omitempty"`
	Categories  []int64  `json:"category,omitempty"`
	Sort        string   `json:"sort,omitempty"`
	// Direction is "" for ascending or "-" for descending
	Direction string `json:"direction,omitempty"`
	// Limit truncates the result when positive
	Limit int `json:"limit,omitempty"`
}

// LocationFilter is the store-level filter derived from a SearchQuery
type LocationFilter struct {
	ActiveOnly  bool
	City        string
	States      []string
	PostalCodes []string
	CategoryIDs []int64
	Search      string
	// OrderBy is a whitelisted column name; empty means natural (id) order
	OrderBy    string
	Descending bool
}

// LocationResult is a single search hit as exposed over JSON
type LocationResult struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	StreetAddress *string            `json:"street_address"`
	City          string             `json:"city"`
	PostalCode    *string            `json:"postal_code"`
	Categories    []LocationCategory `json:"categories"`
	Distance      *float64           `json:"distance"`
	LatLng        *[2]float64        `json:"latlng"`
}

// NewLocationResult builds a result item; distance is nil when no query point applies
func NewLocationResult(l *Location, distance *float64) *LocationResult {
	categories := l.Categories
	if categories == nil {
		categories = []LocationCategory{}
	}
	result := &LocationResult{
		ID:            l.ID,
		Name:          l.Name,
		StreetAddress: l.StreetAddress,
		City:          l.City,
		PostalCode:    l.PostalCode,
		Categories:    categories,
		Distance:      distance,
	}
	if p := l.Point(); p != nil {
		result.LatLng = &[2]float64{p.Latitude, p.Longitude}
	}
	return result
}
