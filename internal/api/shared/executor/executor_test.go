package executor

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/api/shared/dto"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/mocks"
	"github.com/solforge/fairmint/internal/quote"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/store/schema"
	"github.com/solforge/fairmint/internal/vesting"
)

const (
	testWallet = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	testMint   = "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	exec    Executor
	store   *mocks.MockStore
	oracle  *mocks.MockOracle
	issuer  *mocks.MockIssuer
	settle  *mocks.MockSettlementService
	vesting *mocks.MockVestingEngine
	trigger *mocks.MockFinalizeTrigger
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		store:   mocks.NewMockStore(ctrl),
		oracle:  mocks.NewMockOracle(ctrl),
		issuer:  mocks.NewMockIssuer(ctrl),
		settle:  mocks.NewMockSettlementService(ctrl),
		vesting: mocks.NewMockVestingEngine(ctrl),
		trigger: mocks.NewMockFinalizeTrigger(ctrl),
	}
	f.exec = NewExecutor(f.store, f.oracle, f.issuer, f.settle, f.vesting, f.trigger, adapter.NewFixedClock(now))
	return f
}

func TestGetPrice_InvalidMint(t *testing.T) {
	f := setup(t)

	_, err := f.exec.GetPrice(context.Background(), "not-a-mint")

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestIssueQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the active event", func(t *testing.T) {
		f := setup(t)
		f.store.EXPECT().GetActiveEvent(ctx).Return(&schema.Event{ID: 5}, nil)
		f.issuer.EXPECT().IssueQuote(ctx, quote.IssueQuoteRequest{
			EventID:     5,
			Wallet:      testWallet,
			Mint:        testMint,
			TokenAmount: decimal.NewFromInt(2),
		}).Return(&schema.Quote{QuoteID: "q1", EventID: 5, State: domain.QuoteStateOpen}, nil)

		resp, err := f.exec.IssueQuote(ctx, dto.IssueQuoteRequest{Wallet: testWallet, Mint: testMint, TokenAmount: decimal.NewFromInt(2)})

		require.NoError(t, err)
		assert.Equal(t, "q1", resp.QuoteID)
		assert.Equal(t, uint64(5), resp.EventID)
	})

	t.Run("no active event", func(t *testing.T) {
		f := setup(t)
		f.store.EXPECT().GetActiveEvent(ctx).Return(nil, nil)

		_, err := f.exec.IssueQuote(ctx, dto.IssueQuoteRequest{Wallet: testWallet, Mint: testMint, TokenAmount: decimal.NewFromInt(2)})

		assert.ErrorIs(t, err, domain.ErrEventNotLive)
	})

	t.Run("explicit event", func(t *testing.T) {
		f := setup(t)
		eventID := uint64(7)
		f.issuer.EXPECT().IssueQuote(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req quote.IssueQuoteRequest) (*schema.Quote, error) {
				assert.Equal(t, eventID, req.EventID)
				return nil, domain.ErrCapExceeded
			})

		_, err := f.exec.IssueQuote(ctx, dto.IssueQuoteRequest{EventID: &eventID, Wallet: testWallet, Mint: testMint, TokenAmount: decimal.NewFromInt(2)})

		assert.ErrorIs(t, err, domain.ErrCapExceeded)
	})
}

func TestGetEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("live event with stats", func(t *testing.T) {
		f := setup(t)
		f.store.EXPECT().GetEvent(ctx, uint64(1)).Return(&schema.Event{
			ID:        1,
			IsActive:  true,
			StartTime: now.Add(-time.Hour),
			EndTime:   now.Add(time.Hour),
		}, nil)
		f.store.EXPECT().GetEventStats(ctx, uint64(1)).Return(&store.EventStats{EventID: 1, Participants: 3, BurnCount: 4}, nil)

		resp, err := f.exec.GetEvent(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, dto.EventStatusLive, resp.Status)
		assert.Equal(t, int64(3), resp.Participants)
		assert.Equal(t, int64(4), resp.BurnCount)
		assert.Nil(t, resp.SolfPerUSDRate)
	})

	t.Run("finalized event", func(t *testing.T) {
		f := setup(t)
		f.store.EXPECT().GetEvent(ctx, uint64(1)).Return(&schema.Event{
			ID:             1,
			IsFinalized:    true,
			SolfPerUSDRate: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
		}, nil)
		f.store.EXPECT().GetEventStats(ctx, uint64(1)).Return(&store.EventStats{}, nil)

		resp, err := f.exec.GetEvent(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, dto.EventStatusFinalized, resp.Status)
		require.NotNil(t, resp.SolfPerUSDRate)
		assert.True(t, resp.SolfPerUSDRate.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("unknown event", func(t *testing.T) {
		f := setup(t)
		f.store.EXPECT().GetEvent(ctx, uint64(2)).Return(nil, nil)

		resp, err := f.exec.GetEvent(ctx, 2)

		require.NoError(t, err)
		assert.Nil(t, resp)
	})
}

func TestListEventTokens(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.store.EXPECT().GetEvent(ctx, uint64(1)).Return(&schema.Event{ID: 1}, nil)
	f.store.EXPECT().ListTokenStats(ctx, uint64(1)).Return([]store.TokenStats{
		{
			Mint:                  testMint,
			DailyCapUSD:           decimal.NewFromInt(100),
			CurrentDailyBurnedUSD: decimal.NewFromInt(90),
			ReservedDailyUSD:      decimal.NewFromInt(5),
			LastDailyReset:        domain.UTCDay(now),
		},
		{
			Mint:                  domain.USDC_MINT,
			DailyCapUSD:           decimal.NewFromInt(100),
			CurrentDailyBurnedUSD: decimal.NewFromInt(100),
			LastDailyReset:        domain.UTCDay(now).AddDate(0, 0, -1),
		},
	}, nil)

	resp, err := f.exec.ListEventTokens(ctx, 1)

	require.NoError(t, err)
	require.Len(t, resp.Tokens, 2)
	assert.True(t, resp.Tokens[0].DailyHeadroomUSD.Equal(decimal.NewFromInt(5)))
	// yesterday's usage does not count against today
	assert.True(t, resp.Tokens[1].DailyHeadroomUSD.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Tokens[1].CurrentDailyBurnedUSD.IsZero())
}

func TestListEventTokens_UnknownEvent(t *testing.T) {
	f := setup(t)
	f.store.EXPECT().GetEvent(gomock.Any(), uint64(3)).Return(nil, nil)

	_, err := f.exec.ListEventTokens(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestListAllocations_Defaults(t *testing.T) {
	f := setup(t)
	f.store.EXPECT().ListAllocations(gomock.Any(), uint64(1), 20, uint64(0)).Return([]schema.Allocation{
		{Wallet: testWallet, TotalUSDBurned: decimal.NewFromInt(600)},
	}, uint64(1), nil)

	resp, err := f.exec.ListAllocations(context.Background(), 1, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.Total)
	require.Len(t, resp.Allocations, 1)
	assert.Equal(t, testWallet, resp.Allocations[0].Wallet)
}

func TestGetAllocation(t *testing.T) {
	f := setup(t)
	f.store.EXPECT().GetAllocation(gomock.Any(), uint64(1), testWallet).Return(nil, nil)

	resp, err := f.exec.GetAllocation(context.Background(), 1, testWallet)
	require.NoError(t, err)
	assert.Nil(t, resp)

	_, err = f.exec.GetAllocation(context.Background(), 1, "bad")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestClaim(t *testing.T) {
	f := setup(t)
	f.vesting.EXPECT().Claim(gomock.Any(), vesting.ClaimRequest{EventID: 1, Wallet: testWallet, Type: domain.ClaimTypeTGE}).
		Return(&schema.Claim{ID: 1, EventID: 1, Wallet: testWallet, ClaimType: domain.ClaimTypeTGE, Amount: decimal.NewFromInt(120000)}, nil)

	resp, err := f.exec.Claim(context.Background(), 1, dto.ClaimRequest{Wallet: testWallet, ClaimType: domain.ClaimTypeTGE})

	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(120000)))
}

func TestFinalizeEvent(t *testing.T) {
	f := setup(t)
	f.trigger.EXPECT().Finalize(gomock.Any(), uint64(1)).Return(&domain.FinalizeResult{EventID: 1, Allocations: 2}, nil)

	result, err := f.exec.FinalizeEvent(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Allocations)
}
