package vesting

import (
	"context"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/messaging"
	"github.com/solforge/fairmint/internal/providers/solana"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/store/schema"
)

const maxReferenceLength = 128

var errReferenceTaken = errors.New("claim reference already recorded")

// ClaimRequest asks to claim the whole unlocked amount of a tranche
type ClaimRequest struct {
	EventID uint64
	Wallet  string
	Type    domain.ClaimType
	// TxSignature is the payout signature; a claim reference is generated when empty
	TxSignature string
}

// Engine computes unlocked amounts and records claims against finalized allocations
//
//go:generate mockgen -source=engine.go -destination=../mocks/vesting.go -package=mocks -mock_names=Engine=MockVestingEngine
type Engine interface {
	// Claimable returns what the wallet can claim now from each tranche
	Claimable(ctx context.Context, eventID uint64, wallet string) (*domain.ClaimableAmounts, error)
	// Claim records a claim of the whole claimable amount of the tranche.
	// A repeated TxSignature returns the recorded claim of the same event, wallet and tranche.
	Claim(ctx context.Context, req ClaimRequest) (*schema.Claim, error)
}

type engine struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewEngine creates a vesting engine
func NewEngine(st store.Store, publisher messaging.Publisher, clock adapter.Clock) Engine {
	return &engine{
		store:     st,
		publisher: publisher,
		clock:     clock,
	}
}

func (e *engine) Claimable(ctx context.Context, eventID uint64, wallet string) (*domain.ClaimableAmounts, error) {
	if err := solana.ValidateAddress(wallet); err != nil {
		return nil, err
	}

	event, err := e.finalizedEvent(ctx, e.store, eventID)
	if err != nil {
		return nil, err
	}
	allocation, err := e.store.GetAllocation(ctx, eventID, wallet)
	if err != nil {
		return nil, err
	}

	amounts := e.claimable(event, allocation)
	return &amounts, nil
}

func (e *engine) Claim(ctx context.Context, req ClaimRequest) (*schema.Claim, error) {
	if err := solana.ValidateAddress(req.Wallet); err != nil {
		return nil, err
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown claim type %q", domain.ErrInvalidRequest, req.Type)
	}
	if len(req.TxSignature) > maxReferenceLength {
		return nil, fmt.Errorf("%w: claim reference too long", domain.ErrInvalidRequest)
	}

	reference := req.TxSignature
	if reference == "" {
		reference = ulid.Make().String()
	} else {
		existing, err := e.store.GetClaimBySignature(ctx, reference)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return replayed(existing, req)
		}
	}

	var claim *schema.Claim
	err := e.store.WithTransaction(ctx, func(tx store.Store) error {
		event, err := e.finalizedEvent(ctx, tx, req.EventID)
		if err != nil {
			return err
		}
		allocation, err := tx.GetAllocationForUpdate(ctx, req.EventID, req.Wallet)
		if err != nil {
			return err
		}
		// a concurrent claim with the same reference may have committed while we waited on the row lock
		if req.TxSignature != "" {
			existing, err := tx.GetClaimBySignature(ctx, reference)
			if err != nil {
				return err
			}
			if existing != nil {
				return errReferenceTaken
			}
		}

		amount := e.claimable(event, allocation).For(req.Type)
		if !amount.IsPositive() {
			return fmt.Errorf("%w: %s tranche of %s", domain.ErrNothingToClaim, req.Type, req.Wallet)
		}

		candidate := &schema.Claim{
			EventID:     req.EventID,
			Wallet:      req.Wallet,
			ClaimType:   req.Type,
			Amount:      amount,
			TxSignature: reference,
			ClaimTime:   e.clock.Now(),
		}
		inserted, err := tx.CreateClaim(ctx, candidate)
		if err != nil {
			return err
		}
		if !inserted {
			return errReferenceTaken
		}
		if err := tx.IncrementClaimed(ctx, req.EventID, req.Wallet, req.Type, amount); err != nil {
			return err
		}

		claim = candidate
		return nil
	})
	if errors.Is(err, errReferenceTaken) {
		existing, gerr := e.store.GetClaimBySignature(ctx, reference)
		if gerr != nil {
			return nil, gerr
		}
		if existing == nil {
			return nil, fmt.Errorf("%w: claim reference conflict without a recorded claim", domain.ErrInternalInconsistency)
		}
		return replayed(existing, req)
	}
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Claim recorded",
		zap.Uint64("eventID", claim.EventID),
		zap.String("wallet", claim.Wallet),
		zap.String("type", string(claim.ClaimType)),
		zap.String("amount", claim.Amount.String()))

	if err := e.publisher.Publish(ctx, &domain.Notification{
		Type:      domain.NotificationTypeClaimRecorded,
		EventID:   claim.EventID,
		Wallet:    claim.Wallet,
		Amount:    claim.Amount,
		Reference: claim.TxSignature,
		Timestamp: claim.ClaimTime,
	}); err != nil {
		logger.WarnCtx(ctx, "failed to publish claim notification",
			zap.String("reference", claim.TxSignature),
			zap.Error(err))
	}

	return claim, nil
}

// replayed returns the recorded claim only when it was made for the same event, wallet and tranche
func replayed(existing *schema.Claim, req ClaimRequest) (*schema.Claim, error) {
	if existing.EventID != req.EventID || existing.Wallet != req.Wallet || existing.ClaimType != req.Type {
		return nil, fmt.Errorf("%w: claim reference already used", domain.ErrInvalidRequest)
	}
	return existing, nil
}

func (e *engine) finalizedEvent(ctx context.Context, st store.Store, eventID uint64) (*schema.Event, error) {
	event, err := st.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrEventNotFound, eventID)
	}
	if !event.IsFinalized || event.FinalizedAt == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrEventNotFinalized, eventID)
	}
	return event, nil
}

// claimable returns zero amounts for a wallet without an allocation
func (e *engine) claimable(event *schema.Event, allocation *schema.Allocation) domain.ClaimableAmounts {
	fraction := domain.VestedFraction(*event.FinalizedAt, event.VestingDays, e.clock.Now())
	if allocation == nil {
		return domain.ComputeClaimable(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, fraction)
	}
	return domain.ComputeClaimable(
		allocation.TGEAmount,
		allocation.VestingAmount,
		allocation.ClaimedTGE,
		allocation.ClaimedVesting,
		fraction,
	)
}
