package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/store/pgtest"
	"github.com/solforge/fairmint/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// gormOf returns the transaction behind a pg store for seeding rows the store does not write
func gormOf(s Store) *gorm.DB {
	return s.(*pgStore).db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedEvent inserts a live event with a BONK accepted token capped at 100 USD per day
func seedEvent(t *testing.T, s Store, now time.Time) *schema.Event {
	event := pgtest.NewEvent(now)
	pgtest.Seed(t, gormOf(s), event, pgtest.NewAcceptedToken(0, pgtest.BonkMint, dec("100"), now))
	return event
}

func buildTestReservation(eventID uint64, token, wallet string, amount string, expiresAt time.Time) *schema.CapReservation {
	return &schema.CapReservation{
		Token:     token,
		EventID:   eventID,
		Mint:      pgtest.BonkMint,
		Wallet:    wallet,
		AmountUSD: dec(amount),
		BudgetDay: domain.UTCDay(expiresAt),
		Status:    domain.ReservationStatusHeld,
		ExpiresAt: expiresAt,
	}
}

func buildTestQuote(eventID uint64, quoteID, reservationToken, wallet string, now time.Time) *schema.Quote {
	return &schema.Quote{
		QuoteID:          quoteID,
		EventID:          eventID,
		Wallet:           wallet,
		Mint:             pgtest.BonkMint,
		TokenAmount:      dec("1000000"),
		USDValue:         dec("20"),
		PriceAtQuote:     dec("0.00002"),
		PriceSource:      domain.ROUTE_TOKEN_USDC,
		PriceConfidence:  domain.CONFIDENCE_SINGLE_HOP,
		EstimatedSolf:    dec("1000000"),
		ReservationToken: reservationToken,
		State:            domain.QuoteStateOpen,
		IssuedAt:         now,
		ExpiresAt:        now.Add(time.Minute),
	}
}

func buildTestBurn(quote *schema.Quote, signature string, now time.Time) *schema.Burn {
	return &schema.Burn{
		EventID:              quote.EventID,
		QuoteID:              quote.QuoteID,
		Mint:                 quote.Mint,
		Wallet:               quote.Wallet,
		TokenAmount:          quote.TokenAmount,
		USDValueAtBurn:       quote.USDValue,
		PriceAtBurn:          quote.PriceAtQuote,
		PriceSource:          quote.PriceSource,
		TransactionSignature: signature,
		BurnTimestamp:        now,
		Evidence:             datatypes.JSON(`{"signature":"` + signature + `"}`),
	}
}

// seedQuote inserts a held reservation and its open quote
func seedQuote(t *testing.T, s Store, eventID uint64, quoteID, wallet string, now time.Time) *schema.Quote {
	ctx := context.Background()
	reservationToken := "res-" + quoteID
	require.NoError(t, s.CreateReservation(ctx, buildTestReservation(eventID, reservationToken, wallet, "20", now.Add(time.Minute))))
	quote := buildTestQuote(eventID, quoteID, reservationToken, wallet, now)
	require.NoError(t, s.CreateQuote(ctx, quote))
	return quote
}

// =============================================================================
// Test: Events
// =============================================================================

func testEvents(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := seedEvent(t, store, now)

	t.Run("get event and active event", func(t *testing.T) {
		got, err := store.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, event.Name, got.Name)
		assert.True(t, got.IsLive(now))
		assert.False(t, got.DistributablePool.Valid)

		active, err := store.GetActiveEvent(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, event.ID, active.ID)
	})

	t.Run("missing event returns nil", func(t *testing.T) {
		got, err := store.GetEvent(ctx, event.ID+1000)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("second active event violates the single active index", func(t *testing.T) {
		err := store.WithTransaction(ctx, func(tx Store) error {
			return gormOf(tx).Create(pgtest.NewEvent(now)).Error
		})
		assert.Error(t, err)
	})

	t.Run("burn total accumulates", func(t *testing.T) {
		require.NoError(t, store.AddEventBurnTotal(ctx, event.ID, dec("10.5")))
		require.NoError(t, store.AddEventBurnTotal(ctx, event.ID, dec("0.25")))

		got, err := store.GetEventForUpdate(ctx, event.ID)
		require.NoError(t, err)
		assert.True(t, dec("10.75").Equal(got.TotalUSDBurned))

		err = store.AddEventBurnTotal(ctx, event.ID+1000, dec("1"))
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("pending finalization and mark finalized", func(t *testing.T) {
		pending, err := store.ListEventsPendingFinalization(ctx, now)
		require.NoError(t, err)
		assert.Empty(t, pending)

		pending, err = store.ListEventsPendingFinalization(ctx, event.EndTime)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, event.ID, pending[0].ID)

		finalizedAt := event.EndTime.Add(time.Minute)
		require.NoError(t, store.MarkEventFinalized(ctx, FinalizeEventInput{
			EventID:           event.ID,
			DistributablePool: dec("950000"),
			SolfPerUSDRate:    dec("1000"),
			FinalizedAt:       finalizedAt,
		}))

		got, err := store.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
		assert.True(t, got.IsFinalized)
		assert.True(t, dec("950000").Equal(got.DistributablePool.Decimal))
		assert.True(t, dec("1000").Equal(got.SolfPerUSDRate.Decimal))
		require.NotNil(t, got.FinalizedAt)
		assert.True(t, finalizedAt.Equal(*got.FinalizedAt))

		// finalized_at is immutable
		err = store.MarkEventFinalized(ctx, FinalizeEventInput{EventID: event.ID, FinalizedAt: time.Now()})
		assert.Error(t, err)

		pending, err = store.ListEventsPendingFinalization(ctx, event.EndTime)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

// =============================================================================
// Test: Accepted tokens
// =============================================================================

func testAcceptedTokens(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := seedEvent(t, store, now)

	token, err := store.GetAcceptedTokenForUpdate(ctx, event.ID, pgtest.BonkMint)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.True(t, dec("100").Equal(token.DailyCapUSD))
	assert.True(t, domain.SameUTCDay(now, token.LastDailyReset))

	missing, err := store.GetAcceptedToken(ctx, event.ID, pgtest.JupMint)
	require.NoError(t, err)
	assert.Nil(t, missing)

	tomorrow := domain.UTCDay(now).Add(24 * time.Hour)
	require.NoError(t, store.UpdateTokenBudget(ctx, UpdateTokenBudgetInput{
		EventID:               event.ID,
		Mint:                  pgtest.BonkMint,
		CurrentDailyBurnedUSD: dec("90"),
		ReservedDailyUSD:      dec("5"),
		LastDailyReset:        tomorrow,
	}))
	require.NoError(t, store.RecordTokenBurn(ctx, event.ID, pgtest.BonkMint, dec("12.5")))

	token, err = store.GetAcceptedToken(ctx, event.ID, pgtest.BonkMint)
	require.NoError(t, err)
	assert.True(t, dec("90").Equal(token.CurrentDailyBurnedUSD))
	assert.True(t, dec("5").Equal(token.ReservedDailyUSD))
	assert.True(t, domain.SameUTCDay(tomorrow, token.LastDailyReset))
	assert.True(t, dec("12.5").Equal(token.TotalBurnedUSD))
	assert.Equal(t, int64(1), token.BurnCount)
}

// =============================================================================
// Test: Allocations
// =============================================================================

func testAllocations(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := seedEvent(t, store, now)

	t.Run("get or create is idempotent", func(t *testing.T) {
		a, err := store.GetOrCreateAllocationForUpdate(ctx, event.ID, pgtest.WalletA)
		require.NoError(t, err)
		require.NotNil(t, a)
		assert.True(t, a.TotalUSDBurned.IsZero())

		require.NoError(t, store.UpdateWalletBudget(ctx, UpdateWalletBudgetInput{
			EventID:        event.ID,
			Wallet:         pgtest.WalletA,
			TotalUSDBurned: dec("600"),
			ReservedUSD:    dec("10"),
		}))

		a, err = store.GetOrCreateAllocationForUpdate(ctx, event.ID, pgtest.WalletA)
		require.NoError(t, err)
		assert.True(t, dec("600").Equal(a.TotalUSDBurned))
		assert.True(t, dec("10").Equal(a.ReservedUSD))
	})

	t.Run("contributions and leaderboard", func(t *testing.T) {
		_, err := store.GetOrCreateAllocationForUpdate(ctx, event.ID, pgtest.WalletB)
		require.NoError(t, err)
		require.NoError(t, store.UpdateWalletBudget(ctx, UpdateWalletBudgetInput{
			EventID:        event.ID,
			Wallet:         pgtest.WalletB,
			TotalUSDBurned: dec("400"),
			ReservedUSD:    decimal.Zero,
		}))
		_, err = store.GetOrCreateAllocationForUpdate(ctx, event.ID, pgtest.WalletC)
		require.NoError(t, err)
		require.NoError(t, store.RecordWalletBurn(ctx, event.ID, pgtest.WalletB, now))

		contributions, err := store.ListContributions(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, contributions, 2)

		allocations, total, err := store.ListAllocations(ctx, event.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, allocations, 2)
		assert.Equal(t, pgtest.WalletA, allocations[0].Wallet)
		assert.Equal(t, pgtest.WalletB, allocations[1].Wallet)
		assert.Equal(t, int64(1), allocations[1].BurnCount)
		require.NotNil(t, allocations[1].LastBurnAt)

		page, total, err := store.ListAllocations(ctx, event.ID, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, page, 1)
		assert.Equal(t, pgtest.WalletB, page[0].Wallet)
	})

	t.Run("tranches and claimed columns", func(t *testing.T) {
		shares := domain.ComputeAllocations([]domain.Contribution{
			{Wallet: pgtest.WalletA, USD: dec("600")},
			{Wallet: pgtest.WalletB, USD: dec("400")},
		}, dec("1000000"), 20)
		require.NoError(t, store.SetAllocationTranches(ctx, event.ID, shares))

		require.NoError(t, store.IncrementClaimed(ctx, event.ID, pgtest.WalletA, domain.ClaimTypeTGE, dec("120000")))
		require.NoError(t, store.IncrementClaimed(ctx, event.ID, pgtest.WalletA, domain.ClaimTypeVesting, dec("1.5")))

		a, err := store.GetAllocation(ctx, event.ID, pgtest.WalletA)
		require.NoError(t, err)
		assert.True(t, dec("600000").Equal(a.TotalSolfAllocated))
		assert.True(t, dec("120000").Equal(a.TGEAmount))
		assert.True(t, dec("480000").Equal(a.VestingAmount))
		assert.True(t, dec("120000").Equal(a.ClaimedTGE))
		assert.True(t, dec("1.5").Equal(a.ClaimedVesting))

		err = store.IncrementClaimed(ctx, event.ID, pgtest.WalletA, domain.ClaimType("bonus"), dec("1"))
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)

		err = store.SetAllocationTranches(ctx, event.ID, []domain.AllocationShare{{Wallet: "unknown", Total: dec("1")}})
		assert.Error(t, err)
	})
}

// =============================================================================
// Test: Reservations and quotes
// =============================================================================

func testReservationsAndQuotes(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := seedEvent(t, store, now)

	quote := seedQuote(t, store, event.ID, "quote-1", pgtest.WalletA, now)

	t.Run("quote lookups", func(t *testing.T) {
		got, err := store.GetQuote(ctx, quote.QuoteID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.QuoteStateOpen, got.State)
		assert.True(t, dec("20").Equal(got.USDValue))

		locked, err := store.GetQuoteByReservationTokenForUpdate(ctx, quote.ReservationToken)
		require.NoError(t, err)
		require.NotNil(t, locked)
		assert.Equal(t, quote.QuoteID, locked.QuoteID)

		missing, err := store.GetQuoteForUpdate(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("quote state update", func(t *testing.T) {
		sig := "sig-quote-1"
		require.NoError(t, store.UpdateQuoteState(ctx, quote.QuoteID, domain.QuoteStateConsumed, &sig))

		got, err := store.GetQuote(ctx, quote.QuoteID)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStateConsumed, got.State)
		require.NotNil(t, got.TransactionSignature)
		assert.Equal(t, sig, *got.TransactionSignature)

		err = store.UpdateQuoteState(ctx, "missing", domain.QuoteStateExpired, nil)
		assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
	})

	t.Run("expired reservations and resolution", func(t *testing.T) {
		expired, err := store.ListStaleReservations(ctx, now.Add(2*time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, expired, 1)
		assert.Equal(t, quote.ReservationToken, expired[0].Token)

		expired, err = store.ListStaleReservations(ctx, now, 10)
		require.NoError(t, err)
		assert.Empty(t, expired)

		require.NoError(t, store.ResolveReservation(ctx, quote.ReservationToken, domain.ReservationStatusHeld, domain.ReservationStatusReleased, now))

		r, err := store.GetReservationForUpdate(ctx, quote.ReservationToken)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusReleased, r.Status)
		require.NotNil(t, r.ResolvedAt)

		// a resolved reservation cannot be resolved again
		err = store.ResolveReservation(ctx, quote.ReservationToken, domain.ReservationStatusHeld, domain.ReservationStatusCommitted, now)
		assert.ErrorIs(t, err, domain.ErrReservationNotFound)

		expired, err = store.ListStaleReservations(ctx, now.Add(2*time.Minute), 10)
		require.NoError(t, err)
		assert.Empty(t, expired)
	})

	t.Run("held reservations of a finalized event", func(t *testing.T) {
		open := seedQuote(t, store, event.ID, "quote-2", pgtest.WalletB, now)

		stale, err := store.ListStaleReservations(ctx, now, 10)
		require.NoError(t, err)
		assert.Empty(t, stale)

		require.NoError(t, store.MarkEventFinalized(ctx, FinalizeEventInput{
			EventID:           event.ID,
			DistributablePool: dec("1000000"),
			SolfPerUSDRate:    dec("1000"),
			FinalizedAt:       now,
		}))

		stale, err = store.ListStaleReservations(ctx, now, 10)
		require.NoError(t, err)
		require.Len(t, stale, 1)
		assert.Equal(t, open.ReservationToken, stale[0].Token)
	})
}

// =============================================================================
// Test: Burns
// =============================================================================

func testBurns(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := seedEvent(t, store, now)

	quote1 := seedQuote(t, store, event.ID, "quote-1", pgtest.WalletA, now)
	quote2 := seedQuote(t, store, event.ID, "quote-2", pgtest.WalletA, now)

	burn := buildTestBurn(quote1, "sig-1", now)
	created, err := store.CreateBurn(ctx, burn)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, burn.ID)

	t.Run("same signature is not inserted twice", func(t *testing.T) {
		dup := buildTestBurn(quote2, "sig-1", now)
		created, err := store.CreateBurn(ctx, dup)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("same quote is not burned twice", func(t *testing.T) {
		dup := buildTestBurn(quote1, "sig-2", now)
		created, err := store.CreateBurn(ctx, dup)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("lookups", func(t *testing.T) {
		got, err := store.GetBurnBySignature(ctx, "sig-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, quote1.QuoteID, got.QuoteID)
		assert.JSONEq(t, `{"signature":"sig-1"}`, string(got.Evidence))

		got, err = store.GetBurnByQuoteID(ctx, quote1.QuoteID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "sig-1", got.TransactionSignature)

		got, err = store.GetBurnByQuoteID(ctx, quote2.QuoteID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: Claims
// =============================================================================

func testClaims(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := seedEvent(t, store, now)

	claim := &schema.Claim{
		EventID:     event.ID,
		Wallet:      pgtest.WalletA,
		ClaimType:   domain.ClaimTypeTGE,
		Amount:      dec("120000"),
		TxSignature: "claim-sig-1",
		ClaimTime:   now,
	}
	created, err := store.CreateClaim(ctx, claim)
	require.NoError(t, err)
	assert.True(t, created)

	dup := *claim
	dup.ID = 0
	dup.Amount = dec("1")
	created, err = store.CreateClaim(ctx, &dup)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := store.GetClaimBySignature(ctx, "claim-sig-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, dec("120000").Equal(got.Amount))

	_, err = store.CreateClaim(ctx, &schema.Claim{
		EventID:     event.ID,
		Wallet:      pgtest.WalletA,
		ClaimType:   domain.ClaimTypeVesting,
		Amount:      dec("5"),
		TxSignature: "claim-sig-2",
		ClaimTime:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	claims, err := store.ListClaims(ctx, event.ID, pgtest.WalletA)
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, domain.ClaimTypeTGE, claims[0].ClaimType)
	assert.Equal(t, domain.ClaimTypeVesting, claims[1].ClaimType)
}

// =============================================================================
// Test: Views
// =============================================================================

func testViews(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := seedEvent(t, store, now)

	for i, wallet := range []string{pgtest.WalletA, pgtest.WalletA, pgtest.WalletB} {
		quoteID := "quote-" + string(rune('a'+i))
		quote := seedQuote(t, store, event.ID, quoteID, wallet, now)
		_, err := store.CreateBurn(ctx, buildTestBurn(quote, "sig-"+quoteID, now))
		require.NoError(t, err)
		_, err = store.GetOrCreateAllocationForUpdate(ctx, event.ID, wallet)
		require.NoError(t, err)
		require.NoError(t, store.RecordWalletBurn(ctx, event.ID, wallet, now))
		require.NoError(t, store.RecordTokenBurn(ctx, event.ID, pgtest.BonkMint, quote.USDValue))
		require.NoError(t, store.AddEventBurnTotal(ctx, event.ID, quote.USDValue))
	}

	stats, err := store.GetEventStats(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.True(t, dec("60").Equal(stats.TotalUSDBurned))
	assert.Equal(t, int64(2), stats.Participants)
	assert.Equal(t, int64(3), stats.BurnCount)

	missing, err := store.GetEventStats(ctx, event.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)

	tokens, err := store.ListTokenStats(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, pgtest.BonkMint, tokens[0].Mint)
	assert.Equal(t, int64(3), tokens[0].BurnCount)
	assert.Equal(t, int64(2), tokens[0].Participants)
	assert.True(t, dec("60").Equal(tokens[0].TotalBurnedUSD))
}

// =============================================================================
// Test: Transactions
// =============================================================================

func testWithTransaction(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := seedEvent(t, store, now)

	errRollback := errors.New("rollback")
	err := store.WithTransaction(ctx, func(tx Store) error {
		if err := tx.AddEventBurnTotal(ctx, event.ID, dec("50")); err != nil {
			return err
		}
		return errRollback
	})
	assert.ErrorIs(t, err, errRollback)

	got, err := store.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalUSDBurned.IsZero())

	err = store.WithTransaction(ctx, func(tx Store) error {
		return tx.AddEventBurnTotal(ctx, event.ID, dec("50"))
	})
	require.NoError(t, err)

	got, err = store.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, dec("50").Equal(got.TotalUSDBurned))
}

// RunStoreTests runs all store tests against the given store factory
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Events", testEvents},
		{"AcceptedTokens", testAcceptedTokens},
		{"Allocations", testAllocations},
		{"ReservationsAndQuotes", testReservationsAndQuotes},
		{"Burns", testBurns},
		{"Claims", testClaims},
		{"Views", testViews},
		{"WithTransaction", testWithTransaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
