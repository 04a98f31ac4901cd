package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/locations/internal/pkg/database"
	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/piresc/locations/services/locations"
)

const postalCodeKeyPrefix = "postal_code:"

// PostalCodeRepo reads the postal code reference table through a Redis cache
type PostalCodeRepo struct {
	db    *sqlx.DB
	redis *database.RedisClient
	ttl   time.Duration
}

// NewPostalCodeRepo creates the repository; a nil redis client disables caching
func NewPostalCodeRepo(db *sqlx.DB, redisClient *database.RedisClient, ttl time.Duration) *PostalCodeRepo {
	return &PostalCodeRepo{
		db:    db,
		redis: redisClient,
		ttl:   ttl,
	}
}

// GetPostalCode returns the centroid of code or locations.ErrPostalCodeNotFound
func (r *PostalCodeRepo) GetPostalCode(ctx context.Context, code string) (*models.PostalCode, error) {
	if cached := r.fromCache(ctx, code); cached != nil {
		return cached, nil
	}

	query := `
		SELECT code, latitude::float8 AS latitude, longitude::float8 AS longitude
		FROM postal_codes
		WHERE code = $1
	`

	var postalCode models.PostalCode
	if err := r.db.GetContext(ctx, &postalCode, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, locations.ErrPostalCodeNotFound
		}
		return nil, fmt.Errorf("failed to get postal code: %w", err)
	}

	r.toCache(ctx, &postalCode)
	return &postalCode, nil
}

func (r *PostalCodeRepo) fromCache(ctx context.Context, code string) *models.PostalCode {
	if r.redis == nil {
		return nil
	}

	raw, err := r.redis.Get(ctx, postalCodeKeyPrefix+code)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Postal code cache read failed",
				logger.String("code", code),
				logger.ErrorField(err))
		}
		return nil
	}

	var postalCode models.PostalCode
	if err := json.Unmarshal([]byte(raw), &postalCode); err != nil {
		logger.Warn("Discarding corrupt postal code cache entry",
			logger.String("code", code),
			logger.ErrorField(err))
		return nil
	}
	return &postalCode
}

func (r *PostalCodeRepo) toCache(ctx context.Context, postalCode *models.PostalCode) {
	if r.redis == nil {
		return
	}

	data, err := json.Marshal(postalCode)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, postalCodeKeyPrefix+postalCode.Code, data, r.ttl); err != nil {
		logger.Warn("Postal code cache write failed",
			logger.String("code", postalCode.Code),
			logger.ErrorField(err))
	}
}
