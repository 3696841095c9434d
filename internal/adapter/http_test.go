package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = RetryPolicy{
	InitialInterval: 5 * time.Millisecond,
	MaxInterval:     10 * time.Millisecond,
	MaxElapsedTime:  100 * time.Millisecond,
}

func TestGetJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(`{"out":"7"}`))
		}))
		defer server.Close()

		var result struct {
			Out string `json:"out"`
		}
		require.NoError(t, NewHTTPClient(time.Second, fastRetry).GetJSON(ctx, server.URL, &result))
		assert.Equal(t, "7", result.Out)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`no route`))
		}))
		defer server.Close()

		err := NewHTTPClient(time.Second, fastRetry).GetJSON(ctx, server.URL, &struct{}{})
		require.Error(t, err)
		assert.True(t, IsStatus(err, http.StatusBadRequest))
		assert.Contains(t, err.Error(), "no route")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("unavailable upstream is retried until the budget runs out", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		err := NewHTTPClient(time.Second, fastRetry).GetJSON(ctx, server.URL, &struct{}{})
		require.Error(t, err)
		assert.True(t, IsStatus(err, http.StatusServiceUnavailable))
		assert.Greater(t, calls.Load(), int32(1))
	})

	t.Run("invalid body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		err := NewHTTPClient(time.Second, fastRetry).GetJSON(ctx, server.URL, &struct{}{})
		assert.ErrorContains(t, err, "failed to decode response")
	})
}

func TestIsStatus(t *testing.T) {
	assert.False(t, IsStatus(nil, http.StatusOK))
	assert.False(t, IsStatus(assert.AnError, http.StatusOK))
	assert.True(t, IsStatus(&StatusError{StatusCode: http.StatusNotFound}, http.StatusNotFound))
}
