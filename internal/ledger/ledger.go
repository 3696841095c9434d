package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/store/schema"
)

// TokenBudgetKey identifies the daily budget of an accepted token
type TokenBudgetKey struct {
	EventID uint64
	Mint    string
}

// WalletBudgetKey identifies the lifetime budget of a wallet in an event
type WalletBudgetKey struct {
	EventID uint64
	Wallet  string
}

// ReservationToken is the opaque handle of a cap reservation
type ReservationToken string

// ReserveRequest asks for Amount USD of headroom on both budgets until ExpiresAt
type ReserveRequest struct {
	Token     TokenBudgetKey
	Wallet    WalletBudgetKey
	Amount    decimal.Decimal
	ExpiresAt time.Time
}

// CapLedger tracks committed and in-flight usage of the token and wallet budgets
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=CapLedger=MockCapLedger
type CapLedger interface {
	// Reserve atomically holds amount on both budgets, or fails with ErrCapExceeded without holding anything
	Reserve(ctx context.Context, req ReserveRequest) (ReservationToken, error)
	// Commit turns a held reservation into committed usage.
	// It returns the status the reservation had before the call; anything but held means nothing changed.
	Commit(ctx context.Context, token ReservationToken) (domain.ReservationStatus, error)
	// Release returns a held reservation to both budgets.
	// It returns the status the reservation had before the call; anything but held means nothing changed.
	Release(ctx context.Context, token ReservationToken) (domain.ReservationStatus, error)
	// Reconcile settles a reservation against the state of its quote: a held reservation is
	// committed when the quote was consumed by a recorded burn and released otherwise, and
	// committed usage with no recorded burn is returned to both budgets
	Reconcile(ctx context.Context, token ReservationToken) (domain.ReconcileOutcome, error)
}

// Factory binds a ledger to a store, typically one scoped to a caller's transaction
type Factory func(st store.Store) CapLedger

// NewFactory returns a Factory producing ledgers that read time from clock
func NewFactory(clock adapter.Clock) Factory {
	return func(st store.Store) CapLedger {
		return New(st, clock)
	}
}

type capLedger struct {
	store store.Store
	clock adapter.Clock
}

// New creates a ledger over st
func New(st store.Store, clock adapter.Clock) CapLedger {
	return &capLedger{store: st, clock: clock}
}

func (l *capLedger) Reserve(ctx context.Context, req ReserveRequest) (ReservationToken, error) {
	if !req.Amount.IsPositive() {
		return "", fmt.Errorf("%w: reservation amount must be positive", domain.ErrInvalidRequest)
	}
	if req.Token.EventID != req.Wallet.EventID {
		return "", fmt.Errorf("%w: budgets belong to different events", domain.ErrInvalidRequest)
	}

	var token ReservationToken
	err := l.store.WithTransaction(ctx, func(tx store.Store) error {
		event, err := tx.GetEvent(ctx, req.Token.EventID)
		if err != nil {
			return err
		}
		if event == nil {
			return domain.ErrEventNotFound
		}

		// lock order: accepted token, then allocation
		accepted, err := tx.GetAcceptedTokenForUpdate(ctx, req.Token.EventID, req.Token.Mint)
		if err != nil {
			return err
		}
		if accepted == nil || !accepted.IsActive {
			return domain.ErrTokenNotAccepted
		}

		now := l.clock.Now()
		today := domain.UTCDay(now)
		tokenBudget := domain.Budget{
			Cap:       accepted.DailyCapUSD,
			Committed: accepted.CurrentDailyBurnedUSD,
			Reserved:  accepted.ReservedDailyUSD,
		}
		if !domain.SameUTCDay(accepted.LastDailyReset, now) {
			tokenBudget.Committed = decimal.Zero
			tokenBudget.Reserved = decimal.Zero
		}

		allocation, err := tx.GetOrCreateAllocationForUpdate(ctx, req.Wallet.EventID, req.Wallet.Wallet)
		if err != nil {
			return err
		}
		walletBudget := domain.Budget{
			Cap:       event.MaxPerWalletUSD,
			Committed: allocation.TotalUSDBurned,
			Reserved:  allocation.ReservedUSD,
		}

		if !tokenBudget.CanReserve(req.Amount) {
			return fmt.Errorf("%w: token daily cap has %s USD left", domain.ErrCapExceeded, tokenBudget.Available())
		}
		if !walletBudget.CanReserve(req.Amount) {
			return fmt.Errorf("%w: wallet cap has %s USD left", domain.ErrCapExceeded, walletBudget.Available())
		}

		if err := tx.UpdateTokenBudget(ctx, store.UpdateTokenBudgetInput{
			EventID:               req.Token.EventID,
			Mint:                  req.Token.Mint,
			CurrentDailyBurnedUSD: tokenBudget.Committed,
			ReservedDailyUSD:      tokenBudget.Reserved.Add(req.Amount),
			LastDailyReset:        today,
		}); err != nil {
			return err
		}
		if err := tx.UpdateWalletBudget(ctx, store.UpdateWalletBudgetInput{
			EventID:        req.Wallet.EventID,
			Wallet:         req.Wallet.Wallet,
			TotalUSDBurned: walletBudget.Committed,
			ReservedUSD:    walletBudget.Reserved.Add(req.Amount),
		}); err != nil {
			return err
		}

		token = ReservationToken(ulid.Make().String())
		return tx.CreateReservation(ctx, &schema.CapReservation{
			Token:     string(token),
			EventID:   req.Token.EventID,
			Mint:      req.Token.Mint,
			Wallet:    req.Wallet.Wallet,
			AmountUSD: req.Amount,
			BudgetDay: today,
			Status:    domain.ReservationStatusHeld,
			ExpiresAt: req.ExpiresAt,
		})
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

func (l *capLedger) Commit(ctx context.Context, token ReservationToken) (domain.ReservationStatus, error) {
	return l.resolve(ctx, token, domain.ReservationStatusCommitted)
}

func (l *capLedger) Release(ctx context.Context, token ReservationToken) (domain.ReservationStatus, error) {
	return l.resolve(ctx, token, domain.ReservationStatusReleased)
}

func (l *capLedger) resolve(ctx context.Context, token ReservationToken, to domain.ReservationStatus) (domain.ReservationStatus, error) {
	var prior domain.ReservationStatus
	err := l.store.WithTransaction(ctx, func(tx store.Store) error {
		reservation, err := tx.GetReservationForUpdate(ctx, string(token))
		if err != nil {
			return err
		}
		if reservation == nil {
			return fmt.Errorf("%w: %s", domain.ErrReservationNotFound, token)
		}

		prior = reservation.Status
		if prior != domain.ReservationStatusHeld {
			return nil
		}
		return l.apply(ctx, tx, reservation, to)
	})
	if err != nil {
		return "", err
	}

	return prior, nil
}

func (l *capLedger) Reconcile(ctx context.Context, token ReservationToken) (domain.ReconcileOutcome, error) {
	var outcome domain.ReconcileOutcome
	err := l.store.WithTransaction(ctx, func(tx store.Store) error {
		// lock order: quote, then reservation
		quote, err := tx.GetQuoteByReservationTokenForUpdate(ctx, string(token))
		if err != nil {
			return err
		}
		reservation, err := tx.GetReservationForUpdate(ctx, string(token))
		if err != nil {
			return err
		}
		if reservation == nil {
			return fmt.Errorf("%w: %s", domain.ErrReservationNotFound, token)
		}

		var burn *schema.Burn
		if quote != nil && quote.State == domain.QuoteStateConsumed {
			burn, err = tx.GetBurnByQuoteID(ctx, quote.QuoteID)
			if err != nil {
				return err
			}
		}

		switch reservation.Status {
		case domain.ReservationStatusHeld:
			if burn != nil {
				outcome = domain.ReconcileOutcomeCommitted
				return l.apply(ctx, tx, reservation, domain.ReservationStatusCommitted)
			}
			if err := l.apply(ctx, tx, reservation, domain.ReservationStatusReleased); err != nil {
				return err
			}
			outcome = domain.ReconcileOutcomeReleased

		case domain.ReservationStatusCommitted:
			if burn != nil {
				outcome = domain.ReconcileOutcomeNoop
				return nil
			}
			// committed usage with no burn behind it is orphaned
			if err := l.revert(ctx, tx, reservation); err != nil {
				return err
			}
			outcome = domain.ReconcileOutcomeReleased

		default:
			outcome = domain.ReconcileOutcomeNoop
		}

		return l.closeQuote(ctx, tx, quote)
	})
	if err != nil {
		return "", err
	}

	logger.DebugCtx(ctx, "reservation reconciled",
		zap.String("token", string(token)),
		zap.String("outcome", string(outcome)))

	return outcome, nil
}

// closeQuote moves an open quote whose reservation is gone to expired or released
func (l *capLedger) closeQuote(ctx context.Context, tx store.Store, quote *schema.Quote) error {
	if quote == nil || quote.State != domain.QuoteStateOpen {
		return nil
	}
	state := domain.QuoteStateReleased
	if l.clock.Now().After(quote.ExpiresAt) {
		state = domain.QuoteStateExpired
	}
	return tx.UpdateQuoteState(ctx, quote.QuoteID, state, nil)
}

// revert undoes the usage of a locked committed reservation and marks it released
func (l *capLedger) revert(ctx context.Context, tx store.Store, reservation *schema.CapReservation) error {
	amount := reservation.AmountUSD

	accepted, err := tx.GetAcceptedTokenForUpdate(ctx, reservation.EventID, reservation.Mint)
	if err != nil {
		return err
	}
	if accepted != nil && domain.SameUTCDay(accepted.LastDailyReset, reservation.BudgetDay) {
		if err := tx.UpdateTokenBudget(ctx, store.UpdateTokenBudgetInput{
			EventID:               reservation.EventID,
			Mint:                  reservation.Mint,
			CurrentDailyBurnedUSD: domain.SubClamped(accepted.CurrentDailyBurnedUSD, amount),
			ReservedDailyUSD:      accepted.ReservedDailyUSD,
			LastDailyReset:        accepted.LastDailyReset,
		}); err != nil {
			return err
		}
	}

	allocation, err := tx.GetAllocationForUpdate(ctx, reservation.EventID, reservation.Wallet)
	if err != nil {
		return err
	}
	if allocation != nil {
		if err := tx.UpdateWalletBudget(ctx, store.UpdateWalletBudgetInput{
			EventID:        reservation.EventID,
			Wallet:         reservation.Wallet,
			TotalUSDBurned: domain.SubClamped(allocation.TotalUSDBurned, amount),
			ReservedUSD:    allocation.ReservedUSD,
		}); err != nil {
			return err
		}
	}

	logger.WarnCtx(ctx, "reverted committed reservation without a burn",
		zap.String("token", reservation.Token),
		zap.String("wallet", reservation.Wallet),
		zap.String("amount_usd", amount.String()))

	return tx.ResolveReservation(ctx, reservation.Token,
		domain.ReservationStatusCommitted, domain.ReservationStatusReleased, l.clock.Now())
}

// apply moves a locked held reservation to committed or released, adjusting both budgets
func (l *capLedger) apply(ctx context.Context, tx store.Store, reservation *schema.CapReservation, to domain.ReservationStatus) error {
	amount := reservation.AmountUSD

	accepted, err := tx.GetAcceptedTokenForUpdate(ctx, reservation.EventID, reservation.Mint)
	if err != nil {
		return err
	}
	// a reservation charged to an earlier budget day no longer touches the daily counters
	if accepted != nil && domain.SameUTCDay(accepted.LastDailyReset, reservation.BudgetDay) {
		committed := accepted.CurrentDailyBurnedUSD
		if to == domain.ReservationStatusCommitted {
			committed = committed.Add(amount)
		}
		if err := tx.UpdateTokenBudget(ctx, store.UpdateTokenBudgetInput{
			EventID:               reservation.EventID,
			Mint:                  reservation.Mint,
			CurrentDailyBurnedUSD: committed,
			ReservedDailyUSD:      domain.SubClamped(accepted.ReservedDailyUSD, amount),
			LastDailyReset:        accepted.LastDailyReset,
		}); err != nil {
			return err
		}
	}

	allocation, err := tx.GetAllocationForUpdate(ctx, reservation.EventID, reservation.Wallet)
	if err != nil {
		return err
	}
	if allocation == nil {
		return fmt.Errorf("%w: no allocation for reserved wallet %s", domain.ErrInternalInconsistency, reservation.Wallet)
	}
	totalBurned := allocation.TotalUSDBurned
	if to == domain.ReservationStatusCommitted {
		totalBurned = totalBurned.Add(amount)
	}
	if err := tx.UpdateWalletBudget(ctx, store.UpdateWalletBudgetInput{
		EventID:        reservation.EventID,
		Wallet:         reservation.Wallet,
		TotalUSDBurned: totalBurned,
		ReservedUSD:    domain.SubClamped(allocation.ReservedUSD, amount),
	}); err != nil {
		return err
	}

	return tx.ResolveReservation(ctx, reservation.Token, domain.ReservationStatusHeld, to, l.clock.Now())
}
