package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/locations/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance, or a production logger if none is set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	current := globalLogger
	mu.RUnlock()
	if current != nil {
		return current
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		defaultLogger, err := zap.NewProduction()
		if err != nil {
			defaultLogger = zap.NewNop()
		}
		globalLogger = &ZapLogger{Logger: defaultLogger, sugar: defaultLogger.Sugar()}
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// withContext attaches the request id, import batch and New Relic trace fields found in ctx
func withContext(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger()
	zl := l.Logger
	if txn := newrelic.FromContext(ctx); txn != nil {
		zl = l.WithNewRelicContext(txn)
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		zl = zl.With(zap.String("request_id", requestID))
	}
	if batch, ok := requestcontext.GetImportBatch(ctx); ok {
		zl = zl.With(zap.Int("upload_count", batch))
	}
	return zl
}

// InfoCtx logs an info message with context using the global logger
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	withContext(ctx).Info(msg, fields...)
}

// WarnCtx logs a warning message with context using the global logger
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	withContext(ctx).Warn(msg, fields...)
}

// ErrorCtx logs an error message with context using the global logger
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	withContext(ctx).Error(msg, fields...)
}
