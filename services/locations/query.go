package locations

import "github.com/piresc/locations/internal/pkg/models"

// SortDistance orders results by distance from the query point
const SortDistance = "distance"

// DefaultSort is used when no query point applies and no sort was requested
const DefaultSort = "name"

// SortDescending is the only accepted non-empty direction
const SortDescending = "-"

// sortFields lists the persisted fields a search may be ordered by
var sortFields = map[string]bool{
	"id":             true,
	"name":           true,
	"city":           true,
	"state":          true,
	"postal_code":    true,
	"street_address": true,
	"upload_count":   true,
}

// IsSortField reports whether field is a sortable persisted column
func IsSortField(field string) bool {
	return sortFields[field]
}

// IsDuplicatesField reports whether field can key duplicate detection on import
func IsDuplicatesField(field string) bool {
	return field == models.DuplicatesFieldOriginalName || field == models.DuplicatesFieldName
}
