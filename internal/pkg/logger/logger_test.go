package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/locations/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	l := zap.New(core)
	return &ZapLogger{Logger: l, sugar: l.Sugar()}, logs
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "locations.log")

	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "locations-test"}, nil)
	require.NoError(t, err)

	l.Info("hello", String("component", "test"))
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"hello"`)
	assert.Contains(t, string(content), `"service":"locations-test"`)
	assert.Equal(t, path, l.GetFilePath())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger(ZapConfig{Level: "loud"}, nil)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	l, logs := newObservedLogger()

	l.LogHTTPRequest(nil, http.MethodGet, "/locations", "127.0.0.1", "req-1", http.StatusOK, 0, nil)
	l.LogHTTPRequest(nil, http.MethodGet, "/locations", "127.0.0.1", "req-2", http.StatusBadRequest, 0, nil)
	l.LogHTTPRequest(nil, http.MethodGet, "/locations", "127.0.0.1", "req-3", http.StatusInternalServerError, 0, errors.New("db down"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
	assert.Equal(t, "req-3", entries[2].ContextMap()["request_id"])
}

func TestZapEchoMiddleware(t *testing.T) {
	l, logs := newObservedLogger()

	e := echo.New()
	e.Use(ZapEchoMiddleware(l))
	e.GET("/locations", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/broken", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations?state=VA", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "/locations?state=VA", entries[0].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusNotFound), entries[1].ContextMap()["status"])
}

func TestGlobalLogger(t *testing.T) {
	l, logs := newObservedLogger()
	SetGlobalLogger(l)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	Info("imported", Int("created", 3))
	Warn("skipped")

	require.Len(t, logs.All(), 2)
	assert.Equal(t, int64(3), logs.All()[0].ContextMap()["created"])
}

func TestGlobalCtxHelpers_AttachContextFields(t *testing.T) {
	l, logs := newObservedLogger()
	previous := GetGlobalLogger()
	SetGlobalLogger(l)
	t.Cleanup(func() { SetGlobalLogger(previous) })

	ctx := requestcontext.WithRequestID(context.Background(), "req-9")
	InfoCtx(ctx, "searching")

	ctx = requestcontext.WithImportBatch(ctx, 2)
	WarnCtx(ctx, "row skipped")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-9", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[0].ContextMap(), "upload_count")
	assert.Equal(t, int64(2), entries[1].ContextMap()["upload_count"])
}
