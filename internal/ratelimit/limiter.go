package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/config"
	"github.com/solforge/fairmint/internal/logger"
)

// ErrClosed is returned by Wait once the limiter is closed
var ErrClosed = errors.New("rate limiter is closed")

// Limiter throttles calls to an upstream API
type Limiter interface {
	// Wait blocks until a token for key is acquired or ctx is done
	Wait(ctx context.Context, key string) error

	// Close releases the limiter resources
	Close() error
}

// distributedLimiter shares a token bucket in Redis between every API replica.
// When Redis is unreachable it degrades to a process-local bucket running at a fraction of the rate.
type distributedLimiter struct {
	config         config.RateLimiterConfig
	redis          adapter.RedisClient
	shared         adapter.RedisRateLimiter
	local          *rate.Limiter
	preFilter      *rate.Limiter
	clock          adapter.Clock
	redisAvailable atomic.Bool
	closed         atomic.Bool
	closeOnce      sync.Once
	done           chan struct{}
}

// New creates a Redis backed limiter
func New(cfg config.RateLimiterConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisAvailable := true
	if err := rc.Ping(ctx).Err(); err != nil {
		redisAvailable = false
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}

	localRate := max(float64(cfg.RequestsPerSecond)*cfg.LocalFallbackMultiplier, 1.0)

	l := &distributedLimiter{
		config: cfg,
		redis:  rc,
		shared: rc.NewRateLimiter(),
		local:  rate.NewLimiter(rate.Limit(localRate), cfg.Burst),
		// keeps requests that would be rejected anyway off Redis
		preFilter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		clock:     clock,
		done:      make(chan struct{}),
	}
	l.redisAvailable.Store(redisAvailable)

	go l.monitorRedisHealth()

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Bool("redis_available", redisAvailable),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return l, nil
}

func (l *distributedLimiter) Wait(ctx context.Context, key string) error {
	if l.closed.Load() {
		return ErrClosed
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if l.redisAvailable.Load() {
			allowed, retryAfter, err := l.tryShared(ctx, key)
			switch {
			case err != nil:
				if ctx.Err() != nil {
					return ctx.Err()
				}
				l.redisAvailable.Store(false)
				if !l.config.EnableLocalFallback {
					return fmt.Errorf("redis rate limiter unavailable: %w", err)
				}
				logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local",
					zap.String("key", key),
					zap.Error(err),
				)
			case allowed:
				return nil
			case retryAfter > 0:
				// 50-150% of retryAfter so replicas do not retry in lockstep
				jitter := time.Duration(float64(retryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-l.clock.After(jitter):
				}
				continue
			}
		}

		if !l.redisAvailable.Load() && l.config.EnableLocalFallback {
			return l.local.Wait(ctx)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(100 * time.Millisecond):
		}
	}
}

// tryShared returns whether a token was acquired, or how long to wait before asking again
func (l *distributedLimiter) tryShared(ctx context.Context, key string) (bool, time.Duration, error) {
	if err := l.preFilter.Wait(ctx); err != nil {
		return false, 0, err
	}

	limit := redis_rate.Limit{
		Rate:   l.config.RequestsPerSecond,
		Burst:  l.config.Burst,
		Period: time.Second,
	}
	res, err := l.shared.Allow(ctx, l.config.KeyPrefix+key, limit)
	if err != nil {
		return false, 0, err
	}

	if res.Allowed == 0 {
		logger.DebugCtx(ctx, "Rate limit token unavailable, waiting",
			zap.String("key", key),
			zap.Duration("retry_after", res.RetryAfter),
			zap.Int("remaining", res.Remaining),
		)
		return false, res.RetryAfter, nil
	}
	return true, 0, nil
}

func (l *distributedLimiter) monitorRedisHealth() {
	for {
		select {
		case <-l.done:
			return
		case <-l.clock.After(l.config.HealthCheckInterval):
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx).Err()
		cancel()

		wasAvailable := l.redisAvailable.Load()
		l.redisAvailable.Store(err == nil)

		if !wasAvailable && err == nil {
			logger.Info("Redis connection restored")
		}
	}
}

func (l *distributedLimiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
		if closeErr := l.redis.Close(); closeErr != nil {
			logger.Warn("Error closing Redis connection", zap.Error(closeErr))
			err = closeErr
		}
	})
	return err
}

func validateConfig(cfg *config.RateLimiterConfig) error {
	if cfg.RedisAddr == "" {
		return errors.New("redis_addr is required")
	}
	if cfg.RequestsPerSecond <= 0 {
		return errors.New("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "fairmint:limiter:"
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = 10 * time.Second
	}
	return nil
}

type localLimiter struct {
	limiter *rate.Limiter
}

// NewLocal creates a process-local limiter. A non-positive rate disables throttling.
func NewLocal(requestsPerSecond float64, burst int) Limiter {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	if burst <= 0 {
		burst = 1
	}
	return &localLimiter{limiter: rate.NewLimiter(limit, burst)}
}

func (l *localLimiter) Wait(ctx context.Context, _ string) error {
	return l.limiter.Wait(ctx)
}

func (l *localLimiter) Close() error {
	return nil
}
