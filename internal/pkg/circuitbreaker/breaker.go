package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/locations/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed allows requests to pass through
	StateClosed State = iota
	// StateOpen blocks requests and returns immediately
	StateOpen
	// StateHalfOpen allows a limited number of trial requests
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	MaxRequests      uint32        // Max requests allowed in half-open state
	Interval         time.Duration // Interval to clear counters in closed state
	Timeout          time.Duration // Time spent open before moving to half-open
	FailureThreshold uint32        // Consecutive failures that open the breaker
	SuccessThreshold uint32        // Successes in half-open that close the breaker
	IsFailure        func(err error) bool
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 1,
		IsFailure: func(err error) bool {
			return err != nil
		},
	}
}

// Counts holds the counters for circuit breaker
type Counts struct {
	Requests             uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// CircuitBreaker implements the circuit breaker pattern
type CircuitBreaker struct {
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mutex  sync.Mutex
	state  State
	counts Counts
	expiry time.Time
}

// New creates a new circuit breaker
func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	if config.IsFailure == nil {
		config.IsFailure = DefaultConfig(config.Name).IsFailure
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	cb := &CircuitBreaker{
		config: config,
		logger: l,
		now:    time.Now,
		state:  StateClosed,
	}
	cb.expiry = cb.now().Add(config.Interval)
	return cb
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}

	err := fn(ctx)
	cb.afterRequest(err)
	return err
}

func (cb *CircuitBreaker) beforeRequest() error {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	now := cb.now()

	switch cb.state {
	case StateClosed:
		if cb.config.Interval > 0 && cb.expiry.Before(now) {
			cb.counts = Counts{}
			cb.expiry = now.Add(cb.config.Interval)
		}
	case StateOpen:
		if !cb.expiry.Before(now) {
			return ErrCircuitBreakerOpen
		}
		cb.setState(StateHalfOpen)
		cb.counts = Counts{}
	case StateHalfOpen:
		if cb.counts.Requests >= cb.config.MaxRequests {
			return ErrTooManyRequests
		}
	}

	cb.counts.Requests++
	return nil
}

func (cb *CircuitBreaker) afterRequest(err error) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if cb.config.IsFailure(err) {
		cb.counts.ConsecutiveFailures++
		cb.counts.ConsecutiveSuccesses = 0

		if cb.state == StateHalfOpen ||
			(cb.state == StateClosed && cb.counts.ConsecutiveFailures >= cb.config.FailureThreshold) {
			cb.setState(StateOpen)
			cb.expiry = cb.now().Add(cb.config.Timeout)
		}
		return
	}

	cb.counts.ConsecutiveSuccesses++
	cb.counts.ConsecutiveFailures = 0

	if cb.state == StateHalfOpen && cb.counts.ConsecutiveSuccesses >= cb.config.SuccessThreshold {
		cb.setState(StateClosed)
		cb.counts = Counts{}
		cb.expiry = cb.now().Add(cb.config.Interval)
	}
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	prev := cb.state
	cb.state = state

	cb.logger.Info("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()))
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() State {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.state
}

// Name returns the circuit breaker name
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}
