package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solforge/fairmint/internal/config"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/mocks"
	"github.com/solforge/fairmint/internal/ratelimit"
)

const healthInterval = time.Hour

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testLimiterMocks struct {
	ctrl        *gomock.Controller
	redisClient *mocks.MockRedisClient
	shared      *mocks.MockRedisRateLimiter
	clock       *mocks.MockClock
}

func setupTestLimiter(t *testing.T) *testLimiterMocks {
	ctrl := gomock.NewController(t)
	tm := &testLimiterMocks{
		ctrl:        ctrl,
		redisClient: mocks.NewMockRedisClient(ctrl),
		shared:      mocks.NewMockRedisRateLimiter(ctrl),
		clock:       mocks.NewMockClock(ctrl),
	}

	// health checks never fire; retry waits elapse immediately
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		if d == healthInterval {
			return make(chan time.Time)
		}
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	}).AnyTimes()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	return tm
}

func testConfig() config.RateLimiterConfig {
	return config.RateLimiterConfig{
		RedisAddr:               "localhost:6379",
		KeyPrefix:               "test:limiter:",
		RequestsPerSecond:       100,
		Burst:                   100,
		EnableLocalFallback:     true,
		LocalFallbackMultiplier: 0.5,
		HealthCheckInterval:     healthInterval,
	}
}

func pingResult(ok bool) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(context.Background())
	if ok {
		cmd.SetVal("PONG")
	} else {
		cmd.SetErr(errors.New("connection refused"))
	}
	return cmd
}

func newLimiter(t *testing.T, tm *testLimiterMocks, cfg config.RateLimiterConfig, redisUp bool) ratelimit.Limiter {
	t.Helper()
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(pingResult(redisUp))
	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.shared)

	l, err := ratelimit.New(cfg, tm.redisClient, tm.clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestNew_InvalidConfig(t *testing.T) {
	tm := setupTestLimiter(t)

	cfg := testConfig()
	cfg.RedisAddr = ""
	_, err := ratelimit.New(cfg, tm.redisClient, tm.clock)
	assert.ErrorContains(t, err, "redis_addr is required")

	cfg = testConfig()
	cfg.RequestsPerSecond = 0
	_, err = ratelimit.New(cfg, tm.redisClient, tm.clock)
	assert.ErrorContains(t, err, "requests_per_second must be positive")
}

func TestNew_RedisUnavailable_FallbackDisabled(t *testing.T) {
	tm := setupTestLimiter(t)
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(pingResult(false))

	cfg := testConfig()
	cfg.EnableLocalFallback = false
	l, err := ratelimit.New(cfg, tm.redisClient, tm.clock)
	assert.Nil(t, l)
	assert.ErrorContains(t, err, "redis unavailable and fallback disabled")
}

func TestWait_SharedTokenAcquired(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, testConfig(), true)

	tm.shared.EXPECT().
		Allow(gomock.Any(), "test:limiter:jupiter", redis_rate.Limit{Rate: 100, Burst: 100, Period: time.Second}).
		Return(&redis_rate.Result{Allowed: 1, Remaining: 99}, nil)

	assert.NoError(t, l.Wait(context.Background(), "jupiter"))
}

func TestWait_RetriesAfterDenial(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, testConfig(), true)

	gomock.InOrder(
		tm.shared.EXPECT().Allow(gomock.Any(), "test:limiter:jupiter", gomock.Any()).
			Return(&redis_rate.Result{Allowed: 0, RetryAfter: 50 * time.Millisecond}, nil),
		tm.shared.EXPECT().Allow(gomock.Any(), "test:limiter:jupiter", gomock.Any()).
			Return(&redis_rate.Result{Allowed: 1}, nil),
	)

	assert.NoError(t, l.Wait(context.Background(), "jupiter"))
}

func TestWait_RedisDownAtStartUsesLocal(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, testConfig(), false)

	tm.shared.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.NoError(t, l.Wait(context.Background(), "jupiter"))
}

func TestWait_RedisErrorFallsBackToLocal(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, testConfig(), true)

	tm.shared.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("i/o timeout")).Times(1)

	assert.NoError(t, l.Wait(context.Background(), "jupiter"))
	// subsequent waits stay local until the health check sees Redis again
	assert.NoError(t, l.Wait(context.Background(), "jupiter"))
}

func TestWait_RedisErrorWithoutFallback(t *testing.T) {
	tm := setupTestLimiter(t)
	cfg := testConfig()
	cfg.EnableLocalFallback = false
	l := newLimiter(t, tm, cfg, true)

	tm.shared.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("i/o timeout"))

	err := l.Wait(context.Background(), "jupiter")
	assert.ErrorContains(t, err, "redis rate limiter unavailable")
}

func TestWait_ContextCanceled(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, testConfig(), true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, l.Wait(ctx, "jupiter"), context.Canceled)
}

func TestClose(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newLimiter(t, tm, testConfig(), true)

	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
	assert.ErrorIs(t, l.Wait(context.Background(), "jupiter"), ratelimit.ErrClosed)
}

func TestNewLocal(t *testing.T) {
	l := ratelimit.NewLocal(0, 0)
	for range 10 {
		require.NoError(t, l.Wait(context.Background(), "any"))
	}
	assert.NoError(t, l.Close())

	l = ratelimit.NewLocal(1, 1)
	require.NoError(t, l.Wait(context.Background(), "any"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx, "any"))
}
