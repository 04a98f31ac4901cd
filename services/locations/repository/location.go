package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/piresc/locations/internal/pkg/database"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
)

// importLockKey serialises bulk imports through pg_advisory_xact_lock
const importLockKey = 7305418207

const locationColumns = `l.id, l.name, l.original_name, l.street_address, l.city, l.state, l.postal_code,
	l.latitude::float8 AS latitude, l.longitude::float8 AS longitude, l.geohash, l.url, l.description,
	l.is_active, l.upload_count, l.created_at, l.updated_at`

// LocationRepo implements locations.LocationRepo on PostgreSQL
type LocationRepo struct {
	pg *database.PostgresClient
	db *sqlx.DB
}

// NewLocationRepo creates a new location repository
func NewLocationRepo(pg *database.PostgresClient) *LocationRepo {
	return &LocationRepo{
		pg: pg,
		db: pg.GetDB(),
	}
}

// FindLocations returns locations matching every filter, with their categories loaded
func (r *LocationRepo) FindLocations(ctx context.Context, filter models.LocationFilter) ([]*models.Location, error) {
	query, args, err := buildFindQuery(filter)
	if err != nil {
		return nil, err
	}

	var result []*models.Location
	if err := r.db.SelectContext(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find locations: %w", err)
	}

	if err := r.attachCategories(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func buildFindQuery(filter models.LocationFilter) (string, []interface{}, error) {
	var (
		conditions []string
		args       []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ActiveOnly {
		conditions = append(conditions, "l.is_active = TRUE")
	}
	if filter.City != "" {
		conditions = append(conditions, "l.city = "+arg(filter.City))
	}
	if len(filter.States) > 0 {
		conditions = append(conditions, "l.state = ANY("+arg(pq.Array(filter.States))+")")
	}
	if len(filter.PostalCodes) > 0 {
		conditions = append(conditions, "l.postal_code = ANY("+arg(pq.Array(filter.PostalCodes))+")")
	}
	if len(filter.CategoryIDs) > 0 {
		// EXISTS keeps one row per location however many categories match
		conditions = append(conditions, `EXISTS (SELECT 1 FROM location_categories_map m
			WHERE m.location_id = l.id AND m.category_id = ANY(`+arg(pq.Array(filter.CategoryIDs))+`))`)
	}
	if filter.Search != "" {
		p := arg("%" + escapeLike(filter.Search) + "%")
		conditions = append(conditions, fmt.Sprintf("(l.name ILIKE %s OR l.street_address ILIKE %s OR l.city ILIKE %s)", p, p, p))
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(locationColumns)
	b.WriteString(" FROM locations l")
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}

	switch {
	case filter.OrderBy == "":
		b.WriteString(" ORDER BY l.id")
	case locations.IsSortField(filter.OrderBy):
		b.WriteString(" ORDER BY l.")
		b.WriteString(filter.OrderBy)
		if filter.Descending {
			b.WriteString(" DESC")
		}
		if filter.OrderBy != "id" {
			b.WriteString(", l.id")
		}
	default:
		return "", nil, locations.InvalidQueryf("unknown sort field %q", filter.OrderBy)
	}

	return b.String(), args, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// GetLocationByID returns a single location with its categories
func (r *LocationRepo) GetLocationByID(ctx context.Context, id int64) (*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations l WHERE l.id = $1`

	var location models.Location
	if err := r.db.GetContext(ctx, &location, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, locations.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	if err := r.attachCategories(ctx, []*models.Location{&location}); err != nil {
		return nil, err
	}
	return &location, nil
}

// GetLocationsByIDs returns the existing locations among ids in id order
func (r *LocationRepo) GetLocationsByIDs(ctx context.Context, ids []int64) ([]*models.Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + locationColumns + ` FROM locations l WHERE l.id = ANY($1) ORDER BY l.id`

	var result []*models.Location
	if err := r.db.SelectContext(ctx, &result, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}
	return result, nil
}

// ListActiveStates returns the distinct upper-cased states of active locations
func (r *LocationRepo) ListActiveStates(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT UPPER(state) FROM locations WHERE is_active = TRUE ORDER BY 1`

	var states []string
	if err := r.db.SelectContext(ctx, &states, query); err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return states, nil
}

// UpdateGeolocation sets both coordinates and the geohash in one statement
func (r *LocationRepo) UpdateGeolocation(ctx context.Context, id int64, point models.GeoPoint, geohash string) error {
	query := `
		UPDATE locations
		SET latitude = $2, longitude = $3, geohash = $4, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, point.Latitude, point.Longitude, geohash)
	if err != nil {
		return fmt.Errorf("failed to update geolocation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return locations.ErrLocationNotFound
	}
	return nil
}

// ToggleActive flips is_active of every given location
func (r *LocationRepo) ToggleActive(ctx context.Context, ids []int64) (*models.ToggleActiveResult, error) {
	result := &models.ToggleActiveResult{}
	if len(ids) == 0 {
		return result, nil
	}

	query := `
		UPDATE locations
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = ANY($1)
		RETURNING is_active
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to toggle locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var active bool
		if err := rows.Scan(&active); err != nil {
			return nil, fmt.Errorf("failed to scan toggled location: %w", err)
		}
		if active {
			result.Activated++
		} else {
			result.Deactivated++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to toggle locations: %w", err)
	}

	return result, nil
}

type locationCategoryRow struct {
	LocationID int64 `db:"location_id"`
	models.LocationCategory
}

func (r *LocationRepo) attachCategories(ctx context.Context, list []*models.Location) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(list))
	byID := make(map[int64]*models.Location, len(list))
	for _, l := range list {
		l.Categories = []models.LocationCategory{}
		ids = append(ids, l.ID)
		byID[l.ID] = l
	}

	query := `
		SELECT m.location_id, c.id, c.name, c.slug
		FROM location_categories_map m
		JOIN location_categories c ON c.id = m.category_id
		WHERE m.location_id = ANY($1)
		ORDER BY c.name, c.id
	`

	var rows []locationCategoryRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	for _, row := range rows {
		if l, ok := byID[row.LocationID]; ok {
			l.Categories = append(l.Categories, row.LocationCategory)
		}
	}
	return nil
}

// RunImport runs fn in one transaction holding a transaction-scoped advisory
// lock, so concurrent imports cannot compute the same upload batch number.
func (r *LocationRepo) RunImport(ctx context.Context, fn func(store locations.ImportStore) error) error {
	return r.pg.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(importLockKey)); err != nil {
			return fmt.Errorf("failed to acquire import lock: %w", err)
		}
		return fn(&importStore{tx: tx})
	})
}
