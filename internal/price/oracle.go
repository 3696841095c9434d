package price

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/logger"
)

const (
	MinCacheTTL     = 15 * time.Second
	MaxCacheTTL     = 30 * time.Second
	DefaultCacheTTL = 20 * time.Second

	usdcDecimals    = 6
	solDecimals     = 9
	maxMintDecimals = 18
)

// ErrNoRoute is returned by a Router when no swap route exists between two mints
var ErrNoRoute = errors.New("no route")

// Router prices swaps between two mints
//
//go:generate mockgen -source=oracle.go -destination=../mocks/price.go -package=mocks -mock_names=Router=MockRouter,DecimalsResolver=MockDecimalsResolver,Oracle=MockOracle
type Router interface {
	// GetRoutePrice returns the raw output amount for a raw input amount
	GetRoutePrice(ctx context.Context, inputMint, outputMint string, amount uint64) (uint64, error)
}

// DecimalsResolver resolves the decimals of a mint
type DecimalsResolver interface {
	MintDecimals(ctx context.Context, mint string) (uint8, error)
}

// Oracle resolves USD unit prices for mints
type Oracle interface {
	QuotePrice(ctx context.Context, mint string) (*domain.PriceQuote, error)
}

// Config holds oracle tuning
type Config struct {
	CacheTTL        time.Duration
	MaxRetryElapsed time.Duration
	InitialInterval time.Duration
	// ResolveTimeout bounds a shared resolution, retries included
	ResolveTimeout time.Duration
}

// ClampCacheTTL bounds a configured cache TTL to the allowed staleness window
func ClampCacheTTL(ttl time.Duration) time.Duration {
	switch {
	case ttl <= 0:
		return DefaultCacheTTL
	case ttl < MinCacheTTL:
		return MinCacheTTL
	case ttl > MaxCacheTTL:
		return MaxCacheTTL
	default:
		return ttl
	}
}

type cacheEntry struct {
	quote     domain.PriceQuote
	expiresAt time.Time
}

type oracle struct {
	router   Router
	decimals DecimalsResolver
	clock    adapter.Clock
	cfg      Config

	mu    sync.RWMutex
	cache map[string]cacheEntry
	group singleflight.Group
}

// NewOracle creates a caching oracle on top of a router
func NewOracle(router Router, decimals DecimalsResolver, clock adapter.Clock, cfg Config) Oracle {
	cfg.CacheTTL = ClampCacheTTL(cfg.CacheTTL)
	if cfg.MaxRetryElapsed <= 0 {
		cfg.MaxRetryElapsed = 5 * time.Second
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 200 * time.Millisecond
	}
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = cfg.MaxRetryElapsed + 10*time.Second
	}
	return &oracle{
		router:   router,
		decimals: decimals,
		clock:    clock,
		cfg:      cfg,
		cache:    make(map[string]cacheEntry),
	}
}

func (o *oracle) QuotePrice(ctx context.Context, mint string) (*domain.PriceQuote, error) {
	if mint == domain.USDC_MINT {
		return &domain.PriceQuote{
			Mint:       mint,
			USDPerUnit: decimal.NewFromInt(1),
			Route:      domain.ROUTE_DIRECT,
			Confidence: domain.CONFIDENCE_DIRECT,
			ObservedAt: o.clock.Now(),
		}, nil
	}

	if q, ok := o.cached(mint); ok {
		return &q, nil
	}

	ch := o.group.DoChan(mint, func() (interface{}, error) {
		if q, ok := o.cached(mint); ok {
			return q, nil
		}
		// detached from the first caller, every coalesced waiter depends on it
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.cfg.ResolveTimeout)
		defer cancel()

		q, err := o.resolveWithRetry(sharedCtx, mint)
		if err != nil {
			return nil, err
		}
		o.mu.Lock()
		o.cache[mint] = cacheEntry{quote: *q, expiresAt: q.ObservedAt.Add(o.cfg.CacheTTL)}
		o.mu.Unlock()
		return *q, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrPriceUnavailable, mint, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		q := res.Val.(domain.PriceQuote)
		return &q, nil
	}
}

func (o *oracle) cached(mint string) (domain.PriceQuote, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	entry, ok := o.cache[mint]
	if !ok || !o.clock.Now().Before(entry.expiresAt) {
		return domain.PriceQuote{}, false
	}
	return entry.quote, true
}

func (o *oracle) resolveWithRetry(ctx context.Context, mint string) (*domain.PriceQuote, error) {
	var quote *domain.PriceQuote
	operation := func() error {
		q, err := o.resolve(ctx, mint)
		if err != nil {
			if errors.Is(err, ErrNoRoute) || errors.Is(err, domain.ErrInvalidRequest) {
				return backoff.Permanent(err)
			}
			return err
		}
		quote = q
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.cfg.InitialInterval
	b.MaxElapsedTime = o.cfg.MaxRetryElapsed

	notify := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "price resolution failed, retrying",
			zap.String("mint", mint),
			zap.Duration("wait", wait),
			zap.Error(err))
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrPriceUnavailable, mint, err)
	}

	return quote, nil
}

// resolve tries the direct USDC route, then the SOL two-hop route
func (o *oracle) resolve(ctx context.Context, mint string) (*domain.PriceQuote, error) {
	decimals, err := o.decimals.MintDecimals(ctx, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve mint decimals: %w", err)
	}
	if decimals > maxMintDecimals {
		return nil, fmt.Errorf("%w: unsupported mint decimals %d", domain.ErrInvalidRequest, decimals)
	}
	unit := pow10(decimals)

	direct, directErr := o.hop(ctx, mint, domain.USDC_MINT, unit, usdcDecimals)
	if directErr == nil {
		return &domain.PriceQuote{
			Mint:       mint,
			USDPerUnit: direct,
			Route:      domain.ROUTE_TOKEN_USDC,
			Confidence: domain.CONFIDENCE_SINGLE_HOP,
			ObservedAt: o.clock.Now(),
		}, nil
	}

	solPerUnit, err := o.hop(ctx, mint, domain.SOL_MINT, unit, solDecimals)
	if err != nil {
		return nil, routeErr(directErr, err)
	}
	usdPerSol, err := o.hop(ctx, domain.SOL_MINT, domain.USDC_MINT, pow10(solDecimals), usdcDecimals)
	if err != nil {
		return nil, routeErr(directErr, err)
	}

	return &domain.PriceQuote{
		Mint:       mint,
		USDPerUnit: solPerUnit.Mul(usdPerSol),
		Route:      domain.ROUTE_TOKEN_SOL_USDC,
		Confidence: domain.CONFIDENCE_TWO_HOP,
		ObservedAt: o.clock.Now(),
	}, nil
}

// hop returns how many output units one input unit buys
func (o *oracle) hop(ctx context.Context, in, out string, rawIn uint64, outDecimals int32) (decimal.Decimal, error) {
	rawOut, err := o.router.GetRoutePrice(ctx, in, out, rawIn)
	if err != nil {
		return decimal.Zero, err
	}
	if rawOut == 0 {
		return decimal.Zero, fmt.Errorf("%w: zero output from %s to %s", ErrNoRoute, in, out)
	}
	return decimal.NewFromBigInt(new(big.Int).SetUint64(rawOut), -outDecimals), nil
}

// routeErr keeps retryable failures retryable; only two definitive no-route answers are permanent
func routeErr(direct, twoHop error) error {
	if errors.Is(direct, ErrNoRoute) && errors.Is(twoHop, ErrNoRoute) {
		return fmt.Errorf("%w: direct: %v, via SOL: %v", ErrNoRoute, direct, twoHop)
	}
	return fmt.Errorf("direct: %v, via SOL: %v", direct, twoHop)
}

func pow10(n uint8) uint64 {
	v := uint64(1)
	for range n {
		v *= 10
	}
	return v
}
