package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
)

// importStore is the transactional store handed to an import run
type importStore struct {
	tx *sqlx.Tx
}

// NextUploadCount is one more than the highest batch number, or 0 for an empty table
func (s *importStore) NextUploadCount(ctx context.Context) (int, error) {
	var next int
	if err := s.tx.GetContext(ctx, &next, `SELECT COALESCE(MAX(upload_count) + 1, 0) FROM locations`); err != nil {
		return 0, fmt.Errorf("failed to compute upload count: %w", err)
	}
	return next, nil
}

// FindByField returns every location whose duplicates field equals value
func (s *importStore) FindByField(ctx context.Context, field, value string) ([]*models.Location, error) {
	if !locations.IsDuplicatesField(field) {
		return nil, fmt.Errorf("%w: %q", locations.ErrInvalidDuplicatesField, field)
	}

	query := fmt.Sprintf(`SELECT %s FROM locations l WHERE l.%s = $1 ORDER BY l.id`, locationColumns, field)

	var result []*models.Location
	if err := s.tx.SelectContext(ctx, &result, query, value); err != nil {
		return nil, fmt.Errorf("failed to look up duplicates: %w", err)
	}
	return result, nil
}

// CreateLocation inserts the location and attaches it to the category when one is given
func (s *importStore) CreateLocation(ctx context.Context, location *models.Location, categoryID int64) error {
	query := `
		INSERT INTO locations (name, original_name, street_address, city, state, postal_code,
			url, description, is_active, upload_count)
		VALUES (:name, :original_name, :street_address, :city, :state, :postal_code,
			:url, :description, :is_active, :upload_count)
		RETURNING id, created_at, updated_at
	`

	rows, err := sqlx.NamedQueryContext(ctx, s.tx, query, location)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}
	if !rows.Next() {
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to insert location: %w", err)
		}
		return fmt.Errorf("failed to insert location: no id returned")
	}
	if err := rows.Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt); err != nil {
		rows.Close()
		return fmt.Errorf("failed to scan location id: %w", err)
	}
	rows.Close()

	if categoryID == 0 {
		return nil
	}

	_, err = s.tx.ExecContext(ctx,
		`INSERT INTO location_categories_map (location_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		location.ID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to attach category: %w", err)
	}
	return nil
}

// Reactivate forces a location visible again
func (s *importStore) Reactivate(ctx context.Context, id int64) error {
	_, err := s.tx.ExecContext(ctx, `UPDATE locations SET is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to reactivate location: %w", err)
	}
	return nil
}
