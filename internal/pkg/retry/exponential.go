package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/locations/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // Maximum number of retry attempts after the first call
	BaseDelay     time.Duration    // Base delay between retries
	MaxDelay      time.Duration    // Maximum delay between retries
	Multiplier    float64          // Exponential backoff multiplier
	Jitter        bool             // Add up to 10% random jitter
	RetryableFunc func(error) bool // Decides whether an error is worth another attempt
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return true
		},
	}
}

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a new retrier with the given configuration
func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.RetryableFunc == nil {
		config.RetryableFunc = DefaultConfig().RetryableFunc
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 1
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Retrier{
		config: config,
		logger: l,
	}
}

// Execute runs fn until it succeeds, returns a non-retryable error, or attempts run out
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Call succeeded after retries",
					logger.Int("attempts", attempt+1))
			}
			return nil
		}

		lastErr = err

		if !r.config.RetryableFunc(err) {
			return err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)

		r.logger.Debug("Call failed, retrying",
			logger.ErrorField(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logger.Warn("Call failed after all retries",
		logger.ErrorField(lastErr),
		logger.Int("total_attempts", r.config.MaxRetries+1))

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

// calculateDelay calculates the backoff delay for the given attempt number
func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))

	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}

	return time.Duration(delay)
}
