package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/locations/internal/pkg/logger"
)

// DefaultShutdownTimeout bounds how long in-flight requests get to finish
const DefaultShutdownTimeout = 10 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	address         string
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, address string, shutdownTimeout time.Duration) *GracefulServer {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		address:         address,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *GracefulServer) Start() error {
	// SIGTERM is what Kubernetes and Docker send
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.address))
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("HTTP server stopped unexpectedly", logger.ErrorField(err))
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully", logger.Duration("timeout", s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.ErrorField(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager closes registered components in reverse registration order
type ShutdownManager struct {
	logger     *logger.ZapLogger
	mu         sync.Mutex
	components []component
}

type component struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	if zapLogger == nil {
		zapLogger = logger.NewNopLogger()
	}
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.components = append(sm.components, component{name: name, fn: fn})
}

// Shutdown runs every cleanup function, newest first. A failing component
// does not stop the others; the first error is returned.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	components := make([]component, len(sm.components))
	copy(components, sm.components)
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(components)))

	var firstErr error
	for i := len(components) - 1; i >= 0; i-- {
		c := components[i]
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.ErrorField(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	sm.logger.Info("All components shutdown completed")
	return firstErr
}
