package executor

import (
	"context"
	"fmt"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/api/shared/constants"
	"github.com/solforge/fairmint/internal/api/shared/dto"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/price"
	"github.com/solforge/fairmint/internal/providers/solana"
	"github.com/solforge/fairmint/internal/quote"
	"github.com/solforge/fairmint/internal/settlement"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/vesting"
	"github.com/solforge/fairmint/internal/workflows"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetPrice returns the current USD price of a mint
	GetPrice(ctx context.Context, mint string) (*domain.PriceQuote, error)

	// IssueQuote issues a burn quote, against the active event when no event is given
	IssueQuote(ctx context.Context, req dto.IssueQuoteRequest) (*dto.QuoteResponse, error)

	// CancelQuote releases an open quote of the wallet
	CancelQuote(ctx context.Context, quoteID, wallet string) (*dto.QuoteResponse, error)

	// SettleBurn records the burn of a quote
	SettleBurn(ctx context.Context, req dto.SettleBurnRequest) (*dto.BurnResponse, error)

	// GetActiveEvent retrieves the active event, nil when there is none
	GetActiveEvent(ctx context.Context) (*dto.EventResponse, error)

	// GetEvent retrieves an event with its totals, nil when it does not exist
	GetEvent(ctx context.Context, eventID uint64) (*dto.EventResponse, error)

	// ListEventTokens retrieves the burn stats of every accepted token of an event
	ListEventTokens(ctx context.Context, eventID uint64) (*dto.TokenStatsListResponse, error)

	// ListAllocations retrieves a page of the leaderboard
	ListAllocations(ctx context.Context, eventID uint64, limit *int, offset *uint64) (*dto.AllocationListResponse, error)

	// GetAllocation retrieves the allocation of a wallet, nil when it has none
	GetAllocation(ctx context.Context, eventID uint64, wallet string) (*dto.AllocationResponse, error)

	// GetClaimable computes what the wallet can claim now
	GetClaimable(ctx context.Context, eventID uint64, wallet string) (*dto.ClaimableResponse, error)

	// Claim records a claim of a tranche
	Claim(ctx context.Context, eventID uint64, req dto.ClaimRequest) (*dto.ClaimResponse, error)

	// FinalizeEvent runs the finalization workflow of an event and waits for its result
	FinalizeEvent(ctx context.Context, eventID uint64) (*domain.FinalizeResult, error)
}

type executor struct {
	store      store.Store
	oracle     price.Oracle
	issuer     quote.Issuer
	settlement settlement.Service
	vesting    vesting.Engine
	trigger    workflows.FinalizeTrigger
	clock      adapter.Clock
}

func NewExecutor(
	store store.Store,
	oracle price.Oracle,
	issuer quote.Issuer,
	settlement settlement.Service,
	vesting vesting.Engine,
	trigger workflows.FinalizeTrigger,
	clock adapter.Clock,
) Executor {
	return &executor{
		store:      store,
		oracle:     oracle,
		issuer:     issuer,
		settlement: settlement,
		vesting:    vesting,
		trigger:    trigger,
		clock:      clock,
	}
}

func (e *executor) GetPrice(ctx context.Context, mint string) (*domain.PriceQuote, error) {
	if err := solana.ValidateAddress(mint); err != nil {
		return nil, err
	}
	return e.oracle.QuotePrice(ctx, mint)
}

func (e *executor) IssueQuote(ctx context.Context, req dto.IssueQuoteRequest) (*dto.QuoteResponse, error) {
	var eventID uint64
	if req.EventID != nil {
		eventID = *req.EventID
	} else {
		event, err := e.store.GetActiveEvent(ctx)
		if err != nil {
			return nil, err
		}
		if event == nil {
			return nil, fmt.Errorf("%w: no active event", domain.ErrEventNotLive)
		}
		eventID = event.ID
	}

	q, err := e.issuer.IssueQuote(ctx, quote.IssueQuoteRequest{
		EventID:     eventID,
		Wallet:      req.Wallet,
		Mint:        req.Mint,
		TokenAmount: req.TokenAmount,
	})
	if err != nil {
		return nil, err
	}

	return dto.MapQuoteToDTO(q), nil
}

func (e *executor) CancelQuote(ctx context.Context, quoteID, wallet string) (*dto.QuoteResponse, error) {
	q, err := e.issuer.CancelQuote(ctx, quoteID, wallet)
	if err != nil {
		return nil, err
	}
	return dto.MapQuoteToDTO(q), nil
}

func (e *executor) SettleBurn(ctx context.Context, req dto.SettleBurnRequest) (*dto.BurnResponse, error) {
	burn, err := e.settlement.Settle(ctx, settlement.SettleRequest{
		QuoteID:              req.QuoteID,
		TransactionSignature: req.TransactionSignature,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapBurnToDTO(burn), nil
}

func (e *executor) GetActiveEvent(ctx context.Context) (*dto.EventResponse, error) {
	event, err := e.store.GetActiveEvent(ctx)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	return e.GetEvent(ctx, event.ID)
}

func (e *executor) GetEvent(ctx context.Context, eventID uint64) (*dto.EventResponse, error) {
	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	stats, err := e.store.GetEventStats(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return dto.MapEventToDTO(event, stats, e.clock.Now()), nil
}

func (e *executor) ListEventTokens(ctx context.Context, eventID uint64) (*dto.TokenStatsListResponse, error) {
	event, err := e.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	stats, err := e.store.ListTokenStats(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	tokens := make([]dto.TokenStatsResponse, len(stats))
	for i, s := range stats {
		tokens[i] = dto.MapTokenStatsToDTO(s, now)
	}

	return &dto.TokenStatsListResponse{Tokens: tokens}, nil
}

func (e *executor) ListAllocations(ctx context.Context, eventID uint64, limit *int, offset *uint64) (*dto.AllocationListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_ALLOCATIONS_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	allocations, total, err := e.store.ListAllocations(ctx, eventID, *limit, *offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AllocationResponse, len(allocations))
	for i := range allocations {
		items[i] = *dto.MapAllocationToDTO(&allocations[i])
	}

	return &dto.AllocationListResponse{
		Allocations: items,
		Offset:      *offset,
		Total:       total,
	}, nil
}

func (e *executor) GetAllocation(ctx context.Context, eventID uint64, wallet string) (*dto.AllocationResponse, error) {
	if err := solana.ValidateAddress(wallet); err != nil {
		return nil, err
	}

	allocation, err := e.store.GetAllocation(ctx, eventID, wallet)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, nil
	}

	return dto.MapAllocationToDTO(allocation), nil
}

func (e *executor) GetClaimable(ctx context.Context, eventID uint64, wallet string) (*dto.ClaimableResponse, error) {
	amounts, err := e.vesting.Claimable(ctx, eventID, wallet)
	if err != nil {
		return nil, err
	}
	return &dto.ClaimableResponse{
		EventID:          eventID,
		Wallet:           wallet,
		ClaimableAmounts: *amounts,
	}, nil
}

func (e *executor) Claim(ctx context.Context, eventID uint64, req dto.ClaimRequest) (*dto.ClaimResponse, error) {
	claim, err := e.vesting.Claim(ctx, vesting.ClaimRequest{
		EventID:     eventID,
		Wallet:      req.Wallet,
		Type:        req.ClaimType,
		TxSignature: req.TxSignature,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapClaimToDTO(claim), nil
}

func (e *executor) FinalizeEvent(ctx context.Context, eventID uint64) (*domain.FinalizeResult, error) {
	return e.trigger.Finalize(ctx, eventID)
}
