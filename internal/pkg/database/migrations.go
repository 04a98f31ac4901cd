package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migration is a named, ordered schema change
type Migration struct {
	Name string
	SQL  string
}

// Migrations holds the schema of the locations store, applied in order
var Migrations = []Migration{
	{
		Name: "0001_location_categories",
		SQL: `
CREATE TABLE IF NOT EXISTS location_categories (
  id   BIGSERIAL PRIMARY KEY,
  name VARCHAR(100) NOT NULL,
  slug VARCHAR(100) NOT NULL UNIQUE
);`,
	},
	{
		Name: "0002_locations",
		SQL: `
CREATE TABLE IF NOT EXISTS locations (
  id             BIGSERIAL PRIMARY KEY,
  name           VARCHAR(100) NOT NULL,
  original_name  VARCHAR(100),
  street_address VARCHAR(200),
  city           VARCHAR(100) NOT NULL,
  state          CHAR(2) NOT NULL,
  postal_code    VARCHAR(10),
  latitude       NUMERIC(18, 15),
  longitude      NUMERIC(18, 15),
  geohash        VARCHAR(12),
  url            TEXT NOT NULL DEFAULT '',
  description    TEXT NOT NULL DEFAULT '',
  is_active      BOOLEAN NOT NULL DEFAULT TRUE,
  upload_count   INTEGER NOT NULL DEFAULT 0,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  CONSTRAINT locations_point_complete CHECK ((latitude IS NULL) = (longitude IS NULL))
);
CREATE INDEX IF NOT EXISTS idx_locations_original_name ON locations (original_name);
CREATE INDEX IF NOT EXISTS idx_locations_state ON locations (state);
CREATE INDEX IF NOT EXISTS idx_locations_postal_code ON locations (postal_code);
CREATE INDEX IF NOT EXISTS idx_locations_upload_count ON locations (upload_count);`,
	},
	{
		Name: "0003_location_categories_map",
		SQL: `
CREATE TABLE IF NOT EXISTS location_categories_map (
  location_id BIGINT NOT NULL REFERENCES locations (id),
  category_id BIGINT NOT NULL REFERENCES location_categories (id),
  PRIMARY KEY (location_id, category_id)
);`,
	},
	{
		Name: "0004_postal_codes",
		SQL: `
CREATE TABLE IF NOT EXISTS postal_codes (
  code      CHAR(5) PRIMARY KEY,
  latitude  NUMERIC(18, 15) NOT NULL,
  longitude NUMERIC(18, 15) NOT NULL
);`,
	},
}

// RunMigrations applies every migration that is not yet recorded in schema_migrations
func RunMigrations(ctx context.Context, db *sqlx.DB, migrations []Migration) error {
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
  name       TEXT PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM schema_migrations WHERE name = $1`, m.Name).Scan(&exists)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %s: %w", m.Name, err)
		}
		if exists == 1 {
			continue
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, m.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %s: %w", m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", m.Name, err)
		}
	}
	return nil
}
