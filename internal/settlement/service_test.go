package settlement_test

import (
	"context"
	"sync"
	"testing"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/ledger"
	"github.com/solforge/fairmint/internal/mocks"
	"github.com/solforge/fairmint/internal/providers/solana"
	"github.com/solforge/fairmint/internal/quote"
	"github.com/solforge/fairmint/internal/settlement"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/store/pgtest"
	"github.com/solforge/fairmint/internal/store/schema"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sig returns a valid base58 transaction signature filled with b
func sig(b byte) string {
	var s solanago.Signature
	for i := range s {
		s[i] = b
	}
	return s.String()
}

type fixture struct {
	db        *gorm.DB
	store     store.Store
	clock     *adapter.FixedClock
	ledgers   ledger.Factory
	issuer    quote.Issuer
	verifier  *mocks.MockChainVerifier
	publisher *mocks.MockPublisher
	event     *schema.Event
}

func newFixture(t *testing.T, dailyCap string, cfg settlement.Config) (*fixture, settlement.Service) {
	return seedFixture(t, testDB.Tx(t), dailyCap, cfg)
}

func seedFixture(t *testing.T, db *gorm.DB, dailyCap string, cfg settlement.Config) (*fixture, settlement.Service) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	event := pgtest.NewEvent(now)
	pgtest.Seed(t, db, event, pgtest.NewAcceptedToken(0, pgtest.BonkMint, dec(dailyCap), now))

	ctrl := gomock.NewController(t)
	oracle := mocks.NewMockOracle(ctrl)
	oracle.EXPECT().QuotePrice(gomock.Any(), pgtest.BonkMint).Return(&domain.PriceQuote{
		Mint:       pgtest.BonkMint,
		USDPerUnit: decimal.NewFromInt(1),
		Route:      domain.ROUTE_TOKEN_USDC,
		Confidence: domain.CONFIDENCE_SINGLE_HOP,
		ObservedAt: now,
	}, nil).AnyTimes()

	clock := adapter.NewFixedClock(now)
	st := store.NewPGStore(db)
	ledgers := ledger.NewFactory(clock)
	f := &fixture{
		db:        db,
		store:     st,
		clock:     clock,
		ledgers:   ledgers,
		issuer:    quote.NewIssuer(st, oracle, ledgers, clock),
		verifier:  mocks.NewMockChainVerifier(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		event:     event,
	}
	return f, settlement.NewService(st, ledgers, f.verifier, f.publisher, clock, cfg)
}

// quote issues a quote for amount BONK priced at $1
func (f *fixture) quote(t *testing.T, wallet, amount string) *schema.Quote {
	q, err := f.issuer.IssueQuote(context.Background(), quote.IssueQuoteRequest{
		EventID:     f.event.ID,
		Wallet:      wallet,
		Mint:        pgtest.BonkMint,
		TokenAmount: dec(amount),
	})
	require.NoError(t, err)
	return q
}

func (f *fixture) expectPublish(times int) {
	f.publisher.EXPECT().
		Publish(gomock.Any(), gomock.AssignableToTypeOf(&domain.Notification{})).
		Return(nil).
		Times(times)
}

func (f *fixture) accepted(t *testing.T) *schema.AcceptedToken {
	got, err := f.store.GetAcceptedToken(context.Background(), f.event.ID, pgtest.BonkMint)
	require.NoError(t, err)
	return got
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	t.Run("records the burn at the quoted price", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{})
		q := f.quote(t, pgtest.WalletA, "25")
		f.expectPublish(1)

		f.clock.Advance(30 * time.Second)
		burn, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(1)})
		require.NoError(t, err)
		require.NotNil(t, burn)

		assert.Equal(t, q.QuoteID, burn.QuoteID)
		assert.Equal(t, pgtest.WalletA, burn.Wallet)
		assert.True(t, dec("25").Equal(burn.USDValueAtBurn))
		assert.True(t, q.PriceAtQuote.Equal(burn.PriceAtBurn))
		assert.Nil(t, burn.Evidence)

		stored, err := f.store.GetQuote(ctx, q.QuoteID)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStateConsumed, stored.State)
		require.NotNil(t, stored.TransactionSignature)
		assert.Equal(t, sig(1), *stored.TransactionSignature)

		reservation, err := f.store.GetReservation(ctx, q.ReservationToken)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusCommitted, reservation.Status)

		token := f.accepted(t)
		assert.True(t, dec("25").Equal(token.CurrentDailyBurnedUSD))
		assert.True(t, token.ReservedDailyUSD.IsZero())
		assert.True(t, dec("25").Equal(token.TotalBurnedUSD))

		allocation, err := f.store.GetAllocation(ctx, f.event.ID, pgtest.WalletA)
		require.NoError(t, err)
		assert.True(t, dec("25").Equal(allocation.TotalUSDBurned))
		assert.True(t, allocation.ReservedUSD.IsZero())

		event, err := f.store.GetEvent(ctx, f.event.ID)
		require.NoError(t, err)
		assert.True(t, dec("25").Equal(event.TotalUSDBurned))
	})

	t.Run("replay with the same signature returns the recorded burn", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{})
		q := f.quote(t, pgtest.WalletA, "25")
		f.expectPublish(1)

		req := settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(2)}
		first, err := svc.Settle(ctx, req)
		require.NoError(t, err)

		second, err := svc.Settle(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		// no double counting
		assert.True(t, dec("25").Equal(f.accepted(t).CurrentDailyBurnedUSD))
	})

	t.Run("consumed quote with another signature", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{})
		q := f.quote(t, pgtest.WalletA, "25")
		f.expectPublish(1)

		_, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(3)})
		require.NoError(t, err)

		_, err = svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(4)})
		assert.ErrorIs(t, err, domain.ErrQuoteAlreadyConsumed)
	})

	t.Run("signature reused for another quote returns the existing burn", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{})
		first := f.quote(t, pgtest.WalletA, "25")
		second := f.quote(t, pgtest.WalletB, "10")
		f.expectPublish(1)

		burn, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: first.QuoteID, TransactionSignature: sig(5)})
		require.NoError(t, err)

		got, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: second.QuoteID, TransactionSignature: sig(5)})
		require.NoError(t, err)
		assert.Equal(t, burn.ID, got.ID)
		assert.Equal(t, first.QuoteID, got.QuoteID)

		stored, err := f.store.GetQuote(ctx, second.QuoteID)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStateOpen, stored.State)
	})

	t.Run("expired quote releases its reservation", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{})
		q := f.quote(t, pgtest.WalletA, "25")

		f.clock.Advance(61 * time.Second)
		_, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(6)})
		assert.ErrorIs(t, err, domain.ErrQuoteExpired)

		stored, err := f.store.GetQuote(ctx, q.QuoteID)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStateExpired, stored.State)
		assert.True(t, f.accepted(t).ReservedDailyUSD.IsZero())

		_, err = svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(6)})
		assert.ErrorIs(t, err, domain.ErrQuoteExpired)
	})

	t.Run("settling at the expiry instant is allowed", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{})
		q := f.quote(t, pgtest.WalletA, "25")
		f.expectPublish(1)

		f.clock.Set(q.ExpiresAt)
		_, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(7)})
		require.NoError(t, err)
	})

	t.Run("unknown quote", func(t *testing.T) {
		_, svc := newFixture(t, "100", settlement.Config{})
		_, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: "missing", TransactionSignature: sig(8)})
		assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
	})

	t.Run("invalid signature", func(t *testing.T) {
		_, svc := newFixture(t, "100", settlement.Config{})
		_, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: "q", TransactionSignature: "not-base58-0OIl"})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("finalized event rejects settlement", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{})
		q := f.quote(t, pgtest.WalletA, "25")
		require.NoError(t, f.db.Model(&schema.Event{}).Where("id = ?", f.event.ID).
			Updates(map[string]interface{}{"is_finalized": true, "is_active": false}).Error)

		_, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(9)})
		assert.ErrorIs(t, err, domain.ErrEventNotLive)

		stored, err := f.store.GetQuote(ctx, q.QuoteID)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStateOpen, stored.State)
	})

	t.Run("open quote over a released reservation is reconciled", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{})
		q := f.quote(t, pgtest.WalletA, "25")
		_, err := f.ledgers(f.store).Release(ctx, ledger.ReservationToken(q.ReservationToken))
		require.NoError(t, err)

		_, err = svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(10)})
		assert.ErrorIs(t, err, domain.ErrInternalInconsistency)

		stored, err := f.store.GetQuote(ctx, q.QuoteID)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStateReleased, stored.State)
		burn, err := f.store.GetBurnBySignature(ctx, sig(10))
		require.NoError(t, err)
		assert.Nil(t, burn)
	})

	t.Run("publish failure does not fail settlement", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{})
		q := f.quote(t, pgtest.WalletA, "25")
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(assert.AnError)

		burn, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(11)})
		require.NoError(t, err)
		assert.NotNil(t, burn)
	})
}

func TestSettleVerifyOnchain(t *testing.T) {
	ctx := context.Background()

	t.Run("stores evidence", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{VerifyOnchain: true})
		q := f.quote(t, pgtest.WalletA, "25")
		f.expectPublish(1)

		f.verifier.EXPECT().VerifyBurn(gomock.Any(), solana.BurnClaim{
			Signature:   sig(12),
			Wallet:      pgtest.WalletA,
			Mint:        pgtest.BonkMint,
			TokenAmount: q.TokenAmount,
		}).Return(&schema.BurnEvidence{
			Signature:   sig(12),
			Slot:        42,
			Wallet:      pgtest.WalletA,
			Mint:        pgtest.BonkMint,
			RawAmount:   25000000,
			BurnedDelta: 25000000,
		}, nil)

		burn, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(12)})
		require.NoError(t, err)
		assert.Contains(t, string(burn.Evidence), `"slot":42`)
	})

	t.Run("unverified burn leaves the quote open", func(t *testing.T) {
		f, svc := newFixture(t, "100", settlement.Config{VerifyOnchain: true})
		q := f.quote(t, pgtest.WalletA, "25")
		f.verifier.EXPECT().VerifyBurn(gomock.Any(), gomock.Any()).Return(nil, domain.ErrBurnNotVerified)

		_, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(13)})
		assert.ErrorIs(t, err, domain.ErrBurnNotVerified)

		stored, err := f.store.GetQuote(ctx, q.QuoteID)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStateOpen, stored.State)
	})
}

func TestScenarioDailyCapFilledBySettlement(t *testing.T) {
	ctx := context.Background()
	f, svc := newFixture(t, "100", settlement.Config{})
	require.NoError(t, f.db.Model(&schema.AcceptedToken{}).
		Where("event_id = ? AND mint = ?", f.event.ID, pgtest.BonkMint).
		Update("current_daily_burned_usd", dec("90")).Error)

	_, err := f.issuer.IssueQuote(ctx, quote.IssueQuoteRequest{
		EventID: f.event.ID, Wallet: pgtest.WalletA, Mint: pgtest.BonkMint, TokenAmount: dec("20"),
	})
	assert.ErrorIs(t, err, domain.ErrCapExceeded)

	q := f.quote(t, pgtest.WalletA, "10")
	f.expectPublish(1)
	_, err = svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(14)})
	require.NoError(t, err)

	assert.True(t, dec("100").Equal(f.accepted(t).CurrentDailyBurnedUSD))
}

func TestConcurrentSettleCountsOnce(t *testing.T) {
	ctx := context.Background()
	testDB.Truncate(t)
	t.Cleanup(func() { testDB.Truncate(t) })

	f, svc := seedFixture(t, testDB.Gorm, "100", settlement.Config{})
	q := f.quote(t, pgtest.WalletA, "25")
	f.expectPublish(1)

	const workers = 10
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[uint64]int{}
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			burn, err := svc.Settle(ctx, settlement.SettleRequest{QuoteID: q.QuoteID, TransactionSignature: sig(20)})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			ids[burn.ID]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 1)

	var burns int64
	require.NoError(t, testDB.Gorm.Model(&schema.Burn{}).Where("quote_id = ?", q.QuoteID).Count(&burns).Error)
	assert.Equal(t, int64(1), burns)

	event, err := f.store.GetEvent(ctx, f.event.ID)
	require.NoError(t, err)
	assert.True(t, dec("25").Equal(event.TotalUSDBurned), event.TotalUSDBurned.String())

	token := f.accepted(t)
	assert.True(t, dec("25").Equal(token.CurrentDailyBurnedUSD))
	assert.True(t, token.ReservedDailyUSD.IsZero())
}
