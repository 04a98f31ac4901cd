package newrelic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/locations/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{NewRelic: models.NewRelicConfig{Enabled: false, LicenseKey: "key"}}
	assert.Nil(t, InitNewRelic(cfg))

	cfg = &models.Config{NewRelic: models.NewRelicConfig{Enabled: true}}
	assert.Nil(t, InitNewRelic(cfg))
}

func TestEchoMiddleware_NilAppPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(EchoMiddleware(nil))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInstrumentHTTPRequest_WithoutTransaction(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)

	called := false
	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: http.StatusOK}, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, StartSegment(context.Background(), "noop"))
}
