package database

import (
	"context"
	"fmt"
	"time"

	// registers the "pgx" database/sql driver
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/locations/internal/pkg/models"
)

// PostgresClient represents a PostgreSQL database client
type PostgresClient struct {
	db *sqlx.DB
}

// BuildDSN builds a postgres connection URL from the configuration
func BuildDSN(config models.DatabaseConfig) string {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		sslMode,
	)
}

// NewPostgresClient creates a new PostgreSQL client
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	driver := config.Driver
	if driver == "" {
		driver = "pgx"
	}

	db, err := sqlx.Open(driver, BuildDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	// Set max connections
	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}

	// Set idle connections
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresClient{db: db}, nil
}

// NewPostgresClientFromDB wraps an existing connection, mostly for tests
func NewPostgresClientFromDB(db *sqlx.DB) *PostgresClient {
	return &PostgresClient{db: db}
}

// GetDB returns the underlying sqlx handle
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// WithTx runs fn inside a transaction, committing on success and rolling back otherwise
func (p *PostgresClient) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection pool
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
