// Package pgtest starts the PostgreSQL database used by integration tests.
package pgtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/store/schema"
)

// Well-known valid public keys used as test wallets and mints
const (
	WalletA  = "Vote111111111111111111111111111111111111111"
	WalletB  = "Stake11111111111111111111111111111111111111"
	WalletC  = "ComputeBudget111111111111111111111111111111"
	BonkMint = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
	JupMint  = "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"
)

// DB is a started test database
type DB struct {
	Gorm      *gorm.DB
	container *postgres.PostgresContainer
}

// Start connects to the database configured with TEST_DB_* or starts a PostgreSQL container,
// then applies db/init_pg_db.sql
func Start(ctx context.Context) (*DB, error) {
	dsn, container, err := dsnFromEnvOrContainer(ctx)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		terminate(ctx, container)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applySchema(db); err != nil {
		terminate(ctx, container)
		return nil, err
	}

	return &DB{Gorm: db, container: container}, nil
}

// Close terminates the container, if one was started
func (d *DB) Close(ctx context.Context) {
	terminate(ctx, d.container)
}

// Tx begins a transaction that is rolled back when the test ends
func (d *DB) Tx(t *testing.T) *gorm.DB {
	tx := d.Gorm.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return tx
}

// Truncate empties every table. Tests that need real concurrent transactions use it
// instead of Tx, since rows inserted in an uncommitted transaction are invisible to other connections.
func (d *DB) Truncate(t *testing.T) {
	err := d.Gorm.Exec("TRUNCATE claims, burns, quotes, cap_reservations, allocations, accepted_tokens, events RESTART IDENTITY CASCADE").Error
	require.NoError(t, err)
}

func dsnFromEnvOrContainer(ctx context.Context) (string, *postgres.PostgresContainer, error) {
	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "test_db"))
		return dsn, nil, nil
	}

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate(ctx, container)
		return "", nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return dsn, container, nil
}

func applySchema(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	_, file, _, _ := runtime.Caller(0)
	schemaPath := filepath.Join(filepath.Dir(file), "..", "..", "..", "db", "init_pg_db.sql")
	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

func terminate(ctx context.Context, container *postgres.PostgresContainer) {
	if container == nil {
		return
	}
	if err := container.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// =============================================================================
// Fixtures
// =============================================================================

// NewEvent returns a live event around now with a 1,000,000 SOLF pool,
// 20% TGE and 30 days vesting
func NewEvent(now time.Time) *schema.Event {
	return &schema.Event{
		Name:            "Fair Mint",
		StartTime:       now.Add(-time.Hour),
		EndTime:         now.Add(24 * time.Hour),
		IsActive:        true,
		TGEPercentage:   20,
		VestingDays:     30,
		MaxPerWalletUSD: decimal.NewFromInt(10000),
		MaxPerTxUSD:     decimal.NewFromInt(1000),
		MinTxUSD:        decimal.NewFromInt(1),
		QuoteTTLSeconds: 60,
		TotalUSDBurned:  decimal.Zero,
		SolfPool:        decimal.NewFromInt(1000000),
	}
}

// NewAcceptedToken returns an active accepted token with the given daily cap, reset on now
func NewAcceptedToken(eventID uint64, mint string, dailyCap decimal.Decimal, now time.Time) *schema.AcceptedToken {
	return &schema.AcceptedToken{
		EventID:               eventID,
		Mint:                  mint,
		Symbol:                "TKN",
		Decimals:              6,
		DailyCapUSD:           dailyCap,
		CurrentDailyBurnedUSD: decimal.Zero,
		ReservedDailyUSD:      decimal.Zero,
		LastDailyReset:        domain.UTCDay(now),
		IsActive:              true,
		TotalBurnedUSD:        decimal.Zero,
	}
}

// Seed inserts an event and its accepted tokens
func Seed(t *testing.T, db *gorm.DB, event *schema.Event, tokens ...*schema.AcceptedToken) {
	require.NoError(t, db.Create(event).Error)
	for _, token := range tokens {
		token.EventID = event.ID
		require.NoError(t, db.Create(token).Error)
	}
}
