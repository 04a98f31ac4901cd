package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://api.example.com/"}, nil)

	assert.Equal(t, "https://api.example.com", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTPClient.Timeout)
}

func TestGetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "1 Main St", r.URL.Query().Get("address"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, Timeout: time.Second}, nil)

	var out struct {
		Status string `json:"status"`
	}
	err := c.GetJSON(context.Background(), "/geocode/json", url.Values{"address": {"1 Main St"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "OK", out.Status)
}

func TestGetJSON_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, MaxRetries: 2}, nil)

	require.NoError(t, c.GetJSON(context.Background(), "/", nil, nil))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetJSON_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("denied"))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL, MaxRetries: 3}, nil)
	err := c.GetJSON(context.Background(), "/", nil, nil)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, "denied", statusErr.Body)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(&StatusError{StatusCode: 404}))
	assert.True(t, IsRetryable(&StatusError{StatusCode: 503}))
	assert.True(t, IsRetryable(&StatusError{StatusCode: 429}))
	assert.True(t, IsRetryable(errors.New("connection reset")))
}
