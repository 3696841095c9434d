package finalizer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/messaging"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/store/schema"
)

// Finalizer converts the burn totals of an ended event into SOLF allocations
//
//go:generate mockgen -source=finalizer.go -destination=../mocks/finalizer.go -package=mocks -mock_names=Finalizer=MockFinalizer
type Finalizer interface {
	// Finalize computes the pro-rata allocations of the event and closes it.
	// Finalizing an already finalized event returns the stored result.
	Finalize(ctx context.Context, eventID uint64) (*domain.FinalizeResult, error)
}

type finalizer struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// New creates a finalizer
func New(st store.Store, publisher messaging.Publisher, clock adapter.Clock) Finalizer {
	return &finalizer{
		store:     st,
		publisher: publisher,
		clock:     clock,
	}
}

func (f *finalizer) Finalize(ctx context.Context, eventID uint64) (*domain.FinalizeResult, error) {
	var result *domain.FinalizeResult
	err := f.store.WithTransaction(ctx, func(tx store.Store) error {
		// settlement takes the same lock, so no burn lands between the read of the totals and the write of the rate
		event, err := tx.GetEventForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if event == nil {
			return fmt.Errorf("%w: %d", domain.ErrEventNotFound, eventID)
		}

		contributions, err := tx.ListContributions(ctx, eventID)
		if err != nil {
			return err
		}

		if event.IsFinalized {
			result = storedResult(event, len(contributions))
			return nil
		}

		pool := domain.DistributablePool(event.SolfPool, event.PlatformFeeBps, event.ReferralPoolBps)
		rate := domain.SolfPerUSDRate(pool, event.TotalUSDBurned)
		shares := domain.ComputeAllocations(contributions, pool, event.TGEPercentage)

		if err := tx.SetAllocationTranches(ctx, eventID, shares); err != nil {
			return err
		}

		now := f.clock.Now()
		if err := tx.MarkEventFinalized(ctx, store.FinalizeEventInput{
			EventID:           eventID,
			DistributablePool: pool,
			SolfPerUSDRate:    rate,
			FinalizedAt:       now,
		}); err != nil {
			return err
		}

		result = &domain.FinalizeResult{
			EventID:           eventID,
			TotalUSDBurned:    event.TotalUSDBurned,
			DistributablePool: pool,
			SolfPerUSDRate:    rate,
			Allocations:       len(shares),
			FinalizedAt:       now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.AlreadyFinalized {
		logger.DebugCtx(ctx, "Event already finalized", zap.Uint64("eventID", eventID))
		return result, nil
	}

	logger.InfoCtx(ctx, "Event finalized",
		zap.Uint64("eventID", eventID),
		zap.String("totalUSDBurned", result.TotalUSDBurned.String()),
		zap.String("distributablePool", result.DistributablePool.String()),
		zap.String("solfPerUSDRate", result.SolfPerUSDRate.String()),
		zap.Int("allocations", result.Allocations))

	if err := f.publisher.Publish(ctx, &domain.Notification{
		Type:      domain.NotificationTypeEventFinalized,
		EventID:   eventID,
		Amount:    result.DistributablePool,
		USDValue:  result.TotalUSDBurned,
		Reference: fmt.Sprintf("event-%d", eventID),
		Timestamp: result.FinalizedAt,
	}); err != nil {
		logger.WarnCtx(ctx, "failed to publish finalization notification",
			zap.Uint64("eventID", eventID),
			zap.Error(err))
	}

	return result, nil
}

func storedResult(event *schema.Event, allocations int) *domain.FinalizeResult {
	result := &domain.FinalizeResult{
		EventID:           event.ID,
		TotalUSDBurned:    event.TotalUSDBurned,
		DistributablePool: event.DistributablePool.Decimal,
		SolfPerUSDRate:    event.SolfPerUSDRate.Decimal,
		Allocations:       allocations,
		AlreadyFinalized:  true,
	}
	if event.FinalizedAt != nil {
		result.FinalizedAt = *event.FinalizedAt
	}
	return result
}
