package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/ledger"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/messaging"
	"github.com/solforge/fairmint/internal/providers/solana"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/store/schema"
)

// errSignatureTaken rolls back a settlement that lost the race for its signature
var errSignatureTaken = errors.New("transaction signature already settled")

// SettleRequest binds an on-chain burn transaction to a quote
type SettleRequest struct {
	QuoteID              string
	TransactionSignature string
}

// Config holds settlement options
type Config struct {
	// VerifyOnchain corroborates the burn transaction before committing the quote
	VerifyOnchain bool
}

// Service settles quotes into burns
//
//go:generate mockgen -source=service.go -destination=../mocks/settlement.go -package=mocks -mock_names=Service=MockSettlementService
type Service interface {
	// Settle records the burn of a quote at the quoted price and commits its reservation.
	// Settling with an already recorded signature returns the recorded burn.
	Settle(ctx context.Context, req SettleRequest) (*schema.Burn, error)
}

type service struct {
	store     store.Store
	ledgers   ledger.Factory
	verifier  solana.ChainVerifier
	publisher messaging.Publisher
	clock     adapter.Clock
	cfg       Config
}

// NewService creates a settlement service
func NewService(
	st store.Store,
	ledgers ledger.Factory,
	verifier solana.ChainVerifier,
	publisher messaging.Publisher,
	clock adapter.Clock,
	cfg Config,
) Service {
	return &service{
		store:     st,
		ledgers:   ledgers,
		verifier:  verifier,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
	}
}

func (s *service) Settle(ctx context.Context, req SettleRequest) (*schema.Burn, error) {
	if req.QuoteID == "" {
		return nil, fmt.Errorf("%w: quote id is required", domain.ErrInvalidRequest)
	}
	if err := solana.ValidateSignature(req.TransactionSignature); err != nil {
		return nil, err
	}

	quote, err := s.store.GetQuote(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuoteNotFound, req.QuoteID)
	}

	switch quote.State {
	case domain.QuoteStateConsumed, domain.QuoteStateReleased:
		return s.replay(ctx, quote, req.TransactionSignature)
	case domain.QuoteStateExpired:
		return nil, fmt.Errorf("%w: %s", domain.ErrQuoteExpired, req.QuoteID)
	}

	if s.clock.Now().After(quote.ExpiresAt) {
		if err := s.expire(ctx, quote.QuoteID); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrQuoteExpired, req.QuoteID)
	}

	existing, err := s.store.GetBurnBySignature(ctx, req.TransactionSignature)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.InfoCtx(ctx, "Signature already settled, returning recorded burn",
			zap.String("signature", req.TransactionSignature),
			zap.String("quoteID", existing.QuoteID))
		return existing, nil
	}

	var evidence datatypes.JSON
	if s.cfg.VerifyOnchain {
		proof, err := s.verifier.VerifyBurn(ctx, solana.BurnClaim{
			Signature:   req.TransactionSignature,
			Wallet:      quote.Wallet,
			Mint:        quote.Mint,
			TokenAmount: quote.TokenAmount,
		})
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(proof)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal burn evidence: %w", err)
		}
		evidence = datatypes.JSON(raw)
	}

	burn, err := s.commit(ctx, req, evidence)
	switch {
	case errors.Is(err, errSignatureTaken):
		existing, err := s.store.GetBurnBySignature(ctx, req.TransactionSignature)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("%w: signature conflict without a recorded burn", domain.ErrInternalInconsistency)
		}
		return existing, nil
	case errors.Is(err, domain.ErrInternalInconsistency):
		logger.ErrorCtx(ctx, err, zap.String("quoteID", quote.QuoteID), zap.String("reservation", quote.ReservationToken))
		outcome, rerr := s.ledgers(s.store).Reconcile(ctx, ledger.ReservationToken(quote.ReservationToken))
		if rerr != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to reconcile reservation: %w", rerr), zap.String("reservation", quote.ReservationToken))
		} else {
			logger.WarnCtx(ctx, "Reservation reconciled after inconsistency",
				zap.String("reservation", quote.ReservationToken),
				zap.String("outcome", string(outcome)))
		}
		return nil, err
	case err != nil:
		return nil, err
	}

	if burn == nil {
		// the quote was settled or expired by a concurrent call while we waited for its lock
		return s.Settle(ctx, req)
	}

	s.notify(ctx, burn)
	return burn, nil
}

// commit settles an open quote. It returns a nil burn when the quote left the open state before its lock was acquired.
func (s *service) commit(ctx context.Context, req SettleRequest, evidence datatypes.JSON) (*schema.Burn, error) {
	var burn *schema.Burn
	err := s.store.WithTransaction(ctx, func(tx store.Store) error {
		// lock order: quote, event, reservation, accepted token, allocation
		quote, err := tx.GetQuoteForUpdate(ctx, req.QuoteID)
		if err != nil {
			return err
		}
		if quote == nil {
			return fmt.Errorf("%w: %s", domain.ErrQuoteNotFound, req.QuoteID)
		}
		now := s.clock.Now()
		if quote.State != domain.QuoteStateOpen || now.After(quote.ExpiresAt) {
			return nil
		}

		event, err := tx.GetEventForUpdate(ctx, quote.EventID)
		if err != nil {
			return err
		}
		if event == nil || !event.IsActive || event.IsFinalized {
			return fmt.Errorf("%w: event %d", domain.ErrEventNotLive, quote.EventID)
		}

		prior, err := s.ledgers(tx).Commit(ctx, ledger.ReservationToken(quote.ReservationToken))
		if err != nil {
			return err
		}
		if prior != domain.ReservationStatusHeld {
			return fmt.Errorf("%w: reservation %s of open quote %s was %s",
				domain.ErrInternalInconsistency, quote.ReservationToken, quote.QuoteID, prior)
		}

		candidate := &schema.Burn{
			EventID:              quote.EventID,
			QuoteID:              quote.QuoteID,
			Mint:                 quote.Mint,
			Wallet:               quote.Wallet,
			TokenAmount:          quote.TokenAmount,
			USDValueAtBurn:       quote.USDValue,
			PriceAtBurn:          quote.PriceAtQuote,
			PriceSource:          quote.PriceSource,
			TransactionSignature: req.TransactionSignature,
			BurnTimestamp:        now,
			Evidence:             evidence,
		}
		inserted, err := tx.CreateBurn(ctx, candidate)
		if err != nil {
			return err
		}
		if !inserted {
			return errSignatureTaken
		}

		if err := tx.AddEventBurnTotal(ctx, quote.EventID, quote.USDValue); err != nil {
			return err
		}
		if err := tx.RecordWalletBurn(ctx, quote.EventID, quote.Wallet, now); err != nil {
			return err
		}
		if err := tx.RecordTokenBurn(ctx, quote.EventID, quote.Mint, quote.USDValue); err != nil {
			return err
		}
		if err := tx.UpdateQuoteState(ctx, quote.QuoteID, domain.QuoteStateConsumed, &req.TransactionSignature); err != nil {
			return err
		}

		burn = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	if burn != nil {
		logger.InfoCtx(ctx, "Burn settled",
			zap.String("quoteID", burn.QuoteID),
			zap.String("signature", burn.TransactionSignature),
			zap.String("wallet", burn.Wallet),
			zap.String("usdValue", burn.USDValueAtBurn.String()))
	}

	return burn, nil
}

// replay answers a settle call for a quote that is no longer open
func (s *service) replay(ctx context.Context, quote *schema.Quote, signature string) (*schema.Burn, error) {
	burn, err := s.store.GetBurnBySignature(ctx, signature)
	if err != nil {
		return nil, err
	}
	if burn != nil && burn.QuoteID == quote.QuoteID {
		return burn, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrQuoteAlreadyConsumed, quote.QuoteID)
}

// expire releases the reservation of an open quote past its expiry and marks it expired
func (s *service) expire(ctx context.Context, quoteID string) error {
	return s.store.WithTransaction(ctx, func(tx store.Store) error {
		quote, err := tx.GetQuoteForUpdate(ctx, quoteID)
		if err != nil {
			return err
		}
		if quote == nil || quote.State != domain.QuoteStateOpen {
			return nil
		}
		if _, err := s.ledgers(tx).Release(ctx, ledger.ReservationToken(quote.ReservationToken)); err != nil {
			return err
		}
		return tx.UpdateQuoteState(ctx, quoteID, domain.QuoteStateExpired, nil)
	})
}

func (s *service) notify(ctx context.Context, burn *schema.Burn) {
	err := s.publisher.Publish(ctx, &domain.Notification{
		Type:      domain.NotificationTypeBurnSettled,
		EventID:   burn.EventID,
		Wallet:    burn.Wallet,
		Mint:      burn.Mint,
		Amount:    burn.TokenAmount,
		USDValue:  burn.USDValueAtBurn,
		Reference: burn.TransactionSignature,
		Timestamp: burn.BurnTimestamp,
	})
	if err != nil {
		logger.WarnCtx(ctx, "failed to publish burn notification",
			zap.String("signature", burn.TransactionSignature),
			zap.Error(err))
	}
}
