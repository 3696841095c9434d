package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/api/middleware"
	"github.com/solforge/fairmint/internal/api/server"
	"github.com/solforge/fairmint/internal/api/shared/executor"
	"github.com/solforge/fairmint/internal/config"
	"github.com/solforge/fairmint/internal/ledger"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/messaging"
	"github.com/solforge/fairmint/internal/price"
	"github.com/solforge/fairmint/internal/providers/jetstream"
	"github.com/solforge/fairmint/internal/providers/jupiter"
	"github.com/solforge/fairmint/internal/providers/solana"
	temporal "github.com/solforge/fairmint/internal/providers/temporal"
	"github.com/solforge/fairmint/internal/quote"
	"github.com/solforge/fairmint/internal/ratelimit"
	"github.com/solforge/fairmint/internal/settlement"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/vesting"
	"github.com/solforge/fairmint/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Fair Mint API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(10*time.Second, adapter.DefaultRetryPolicy)
	solanaRPC := adapter.NewSolanaRPC(cfg.Solana.RPCURL)

	// Price oracle over the quote API, with mint decimals read from chain
	verifier := solana.NewChainVerifier(solanaRPC, cfg.Solana.Commitment)
	var limiter ratelimit.Limiter
	if cfg.RateLimiter.RedisAddr != "" {
		redisClient := adapter.NewRedisClient(cfg.RateLimiter.RedisAddr, cfg.RateLimiter.RedisPassword, cfg.RateLimiter.RedisDB)
		limiter, err = ratelimit.New(cfg.RateLimiter, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		defer func() { _ = limiter.Close() }()
	}
	router := jupiter.NewClient(httpClient, limiter, jupiter.Config{
		BaseURL:           cfg.Price.JupiterURL,
		SlippageBps:       cfg.Price.SlippageBps,
		RequestsPerSecond: cfg.Price.RequestsPerSecond,
		Burst:             cfg.Price.Burst,
	})
	oracle := price.NewOracle(router, verifier, clock, price.Config{
		CacheTTL:        cfg.Price.CacheTTL,
		MaxRetryElapsed: cfg.Price.MaxRetryElapsed,
	})

	// Notifications are best effort; run without a broker when NATS is unreachable
	var publisher messaging.Publisher
	publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.WarnCtx(ctx, "NATS unavailable, notifications are disabled", zap.Error(err), zap.String("url", cfg.NATS.URL))
		publisher = messaging.NewNopPublisher()
	}
	defer publisher.Close()

	// Connect to Temporal for finalization
	temporalClient, err := temporal.Dial(cfg.Temporal)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	// Settlement core
	ledgers := ledger.NewFactory(clock)
	issuer := quote.NewIssuer(dataStore, oracle, ledgers, clock)
	settlementService := settlement.NewService(dataStore, ledgers, verifier, publisher, clock, settlement.Config{
		VerifyOnchain: cfg.Settlement.VerifyOnchain,
	})
	vestingEngine := vesting.NewEngine(dataStore, publisher, clock)
	trigger := workflows.NewFinalizeTrigger(temporalClient, cfg.Temporal.TaskQueue)

	exec := executor.NewExecutor(dataStore, oracle, issuer, settlementService, vestingEngine, trigger, clock)

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	// Don't use the canceled ctx for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.Info("API server stopped")
}
