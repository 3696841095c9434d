package jupiter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/price"
)

const bonk = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := adapter.NewHTTPClient(5*time.Second, adapter.RetryPolicy{
		InitialInterval: 5 * time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
		MaxElapsedTime:  200 * time.Millisecond,
	})
	return NewClient(httpClient, nil, Config{BaseURL: server.URL + "/", SlippageBps: 50})
}

func TestClient_GetRoutePrice(t *testing.T) {
	t.Run("returns out amount", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/quote", r.URL.Path)
			assert.Equal(t, bonk, r.URL.Query().Get("inputMint"))
			assert.Equal(t, domain.USDC_MINT, r.URL.Query().Get("outputMint"))
			assert.Equal(t, "100000", r.URL.Query().Get("amount"))
			assert.Equal(t, "50", r.URL.Query().Get("slippageBps"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"inputMint":"` + bonk + `","inAmount":"100000","outAmount":"21","routePlan":[]}`))
		})

		out, err := client.GetRoutePrice(context.Background(), bonk, domain.USDC_MINT, 100000)
		require.NoError(t, err)
		assert.Equal(t, uint64(21), out)
	})

	t.Run("no route", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Could not find any route","errorCode":"COULD_NOT_FIND_ANY_ROUTE"}`))
		})

		_, err := client.GetRoutePrice(context.Background(), bonk, domain.USDC_MINT, 1)
		assert.ErrorIs(t, err, price.ErrNoRoute)
	})

	t.Run("retries when rate limited", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(`{"outAmount":"7"}`))
		})

		out, err := client.GetRoutePrice(context.Background(), bonk, domain.SOL_MINT, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), out)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("server error is not a missing route", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GetRoutePrice(context.Background(), bonk, domain.USDC_MINT, 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, price.ErrNoRoute)
		assert.True(t, adapter.IsStatus(err, http.StatusInternalServerError))
	})

	t.Run("invalid out amount", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"outAmount":"-1"}`))
		})

		_, err := client.GetRoutePrice(context.Background(), bonk, domain.USDC_MINT, 1)
		assert.Error(t, err)
	})
}
