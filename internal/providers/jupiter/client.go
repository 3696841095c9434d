package jupiter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/price"
	"github.com/solforge/fairmint/internal/ratelimit"
)

// limiterKey names the quote API bucket in the shared limiter
const limiterKey = "jupiter"

// Config holds the quote API client configuration
type Config struct {
	BaseURL           string
	SlippageBps       int
	RequestsPerSecond float64
	Burst             int
}

// quoteResponse is the subset of the quote API response used for pricing
type quoteResponse struct {
	InputMint  string `json:"inputMint"`
	InAmount   string `json:"inAmount"`
	OutputMint string `json:"outputMint"`
	OutAmount  string `json:"outAmount"`
}

// Client prices swaps with a Jupiter compatible quote API
type Client struct {
	http        adapter.HTTPClient
	baseURL     string
	slippageBps int
	limiter     ratelimit.Limiter
}

// NewClient creates a quote API client. A nil limiter throttles locally at cfg.RequestsPerSecond.
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.Limiter, cfg Config) *Client {
	if limiter == nil {
		limiter = ratelimit.NewLocal(cfg.RequestsPerSecond, cfg.Burst)
	}
	return &Client{
		http:        httpClient,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		slippageBps: cfg.SlippageBps,
		limiter:     limiter,
	}
}

var _ price.Router = (*Client)(nil)

// GetRoutePrice returns the best route output amount for amount raw units of inputMint
func (c *Client) GetRoutePrice(ctx context.Context, inputMint, outputMint string, amount uint64) (uint64, error) {
	if err := c.limiter.Wait(ctx, limiterKey); err != nil {
		return 0, fmt.Errorf("rate limiter: %w", err)
	}

	q := url.Values{}
	q.Set("inputMint", inputMint)
	q.Set("outputMint", outputMint)
	q.Set("amount", strconv.FormatUint(amount, 10))
	q.Set("slippageBps", strconv.Itoa(c.slippageBps))
	q.Set("swapMode", "ExactIn")

	var resp quoteResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/quote?"+q.Encode(), &resp); err != nil {
		// the API answers 400 when no route exists
		if adapter.IsStatus(err, http.StatusBadRequest) || adapter.IsStatus(err, http.StatusNotFound) {
			return 0, fmt.Errorf("%w: %s to %s", price.ErrNoRoute, inputMint, outputMint)
		}
		return 0, fmt.Errorf("failed to get quote: %w", err)
	}

	out, err := strconv.ParseUint(resp.OutAmount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid outAmount %q: %w", resp.OutAmount, err)
	}
	return out, nil
}
