package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/locations/internal/pkg/circuitbreaker"
	"github.com/piresc/locations/internal/pkg/logger"
	nrpkg "github.com/piresc/locations/internal/pkg/newrelic"
	"github.com/piresc/locations/internal/pkg/retry"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Config holds the client configuration
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Name       string // used for the circuit breaker and logs
}

// Client is an outbound HTTP client guarded by retries and a circuit breaker
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a new HTTP client
func NewClient(config Config, l *logger.ZapLogger) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Name == "" {
		config.Name = "http"
	}

	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = config.MaxRetries
	retryConfig.RetryableFunc = IsRetryable

	breakerConfig := circuitbreaker.DefaultConfig(config.Name)
	breakerConfig.IsFailure = IsRetryable

	return &Client{
		BaseURL:    strings.TrimRight(config.BaseURL, "/"),
		HTTPClient: &http.Client{Timeout: config.Timeout},
		retrier:    retry.New(retryConfig, l),
		breaker:    circuitbreaker.New(breakerConfig, l),
	}
}

// IsRetryable reports whether err is a transport failure or a 5xx/429 response
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500 || statusErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}

// GetJSON issues a GET to BaseURL+path with the given query and decodes the JSON body into out
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
			if err != nil {
				return fmt.Errorf("failed to build request: %w", err)
			}
			req.Header.Set("Accept", "application/json")

			resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.HTTPClient.Do(req)
			})
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
				return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
			}

			if out == nil {
				return nil
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return nil
		})
	})
}
