package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/ledger"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/store"
)

// ReservationSweeperConfig holds configuration for the reservation sweeper
type ReservationSweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Reservations reconciled per cycle
	Grace          time.Duration // Extra time past expiry before a held reservation is swept
	WorkerPoolSize int           // Concurrent reconciliations
	QueueSize      int
}

// reservationSweeper reconciles held reservations whose quote expired without a settlement
// or whose event was finalized
type reservationSweeper struct {
	config    *ReservationSweeperConfig
	store     store.Store
	ledger    ledger.CapLedger
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewReservationSweeper creates a new reservation sweeper
func NewReservationSweeper(
	config *ReservationSweeperConfig,
	st store.Store,
	capLedger ledger.CapLedger,
	clock adapter.Clock,
) Sweeper {
	return &reservationSweeper{
		config:    config,
		store:     st,
		ledger:    capLedger,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *reservationSweeper) Name() string {
	return "reservation-sweeper"
}

// Start runs sweep cycles until the context is canceled or Stop is called
func (s *reservationSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting reservation sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Duration("grace", s.config.Grace),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Reservation sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Reservation sweeper stop requested")
			return nil
		default:
		}

		swept, err := s.runSweepCycle(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		// a full batch means more work is waiting
		if err == nil && swept == s.config.BatchSize {
			continue
		}
		if !s.sleep(ctx, s.config.Interval) {
			return nil
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *reservationSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping reservation sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Reservation sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Reservation sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle reconciles one batch of stale held reservations and returns how many were reconciled
func (s *reservationSweeper) runSweepCycle(ctx context.Context) (int, error) {
	startTime := s.clock.Now()
	cutoff := startTime.Add(-s.config.Grace)

	reservations, err := s.store.ListStaleReservations(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale reservations: %w", err)
	}
	if len(reservations) == 0 {
		logger.DebugCtx(ctx, "No stale reservations")
		return 0, nil
	}

	var committed, released, noop, failed atomic.Int32

	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.QueueSize),
		pond.WithContext(ctx),
	)
	for _, reservation := range reservations {
		token := ledger.ReservationToken(reservation.Token)
		pool.Submit(func() {
			outcome, err := s.ledger.Reconcile(ctx, token)
			if err != nil {
				failed.Add(1)
				logger.ErrorCtx(ctx, fmt.Errorf("failed to reconcile reservation: %w", err), zap.String("token", string(token)))
				return
			}
			switch outcome {
			case domain.ReconcileOutcomeCommitted:
				committed.Add(1)
			case domain.ReconcileOutcomeReleased:
				released.Add(1)
			default:
				noop.Add(1)
			}
		})
	}
	pool.StopAndWait()

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("total", len(reservations)),
		zap.Int32("committed", committed.Load()),
		zap.Int32("released", released.Load()),
		zap.Int32("noop", noop.Load()),
		zap.Int32("failed", failed.Load()),
	)

	return len(reservations) - int(failed.Load()), nil
}

// sleep returns false when interrupted by context cancellation or a stop request
func (s *reservationSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
