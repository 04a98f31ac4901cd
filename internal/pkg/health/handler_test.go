package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfoDefaults(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")
	t.Setenv("GIT_COMMIT", "")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewPingHandler("locations")(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "locations", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "unknown", info.GitCommit)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "locations", nil)

	for _, path := range []string{"/health", "/healthz", "/ready"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "OK", rec.Body.String())
		})
	}

	t.Run("unknown endpoint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReadyWithDependencies(t *testing.T) {
	tests := []struct {
		name       string
		redisErr   error
		wantStatus int
		wantState  string
	}{
		{name: "all healthy", wantStatus: http.StatusOK, wantState: StatusHealthy},
		{name: "redis down", redisErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable, wantState: StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHealthService()
			svc.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return nil }))
			svc.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return tt.redisErr }))

			e := echo.New()
			RegisterHealthEndpoints(e, "locations", svc)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantState, resp.Status)
			assert.Equal(t, "locations", resp.Service)
			assert.Equal(t, StatusHealthy, resp.Dependencies["postgres"].Status)
			if tt.redisErr != nil {
				assert.Equal(t, "connection refused", resp.Dependencies["redis"].Error)
			}
		})
	}
}
