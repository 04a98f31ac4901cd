package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "Category created", map[string]interface{}{"id": 1})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Category created", body.Message)
	assert.Empty(t, body.Error)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		respond     func(c echo.Context) error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "bad request",
			respond:     func(c echo.Context) error { return BadRequestResponse(c, "invalid geo_query") },
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid geo_query",
		},
		{
			name:        "not found default message",
			respond:     func(c echo.Context) error { return NotFoundResponse(c, "") },
			wantStatus:  http.StatusNotFound,
			wantMessage: "Resource not found",
		},
		{
			name:        "too large",
			respond:     func(c echo.Context) error { return RequestEntityTooLargeResponse(c, "file too large") },
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "file too large",
		},
		{
			name:        "internal default message",
			respond:     func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, tt.respond(c))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Equal(t, tt.wantStatus, body.Code)
		})
	}
}
