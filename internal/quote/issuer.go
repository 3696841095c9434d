package quote

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/ledger"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/price"
	"github.com/solforge/fairmint/internal/providers/solana"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/store/schema"
)

// IssueQuoteRequest asks for a priced burn intent
type IssueQuoteRequest struct {
	EventID     uint64
	Wallet      string
	Mint        string
	TokenAmount decimal.Decimal
}

// Issuer prices burn intents and reserves cap headroom for them
//
//go:generate mockgen -source=issuer.go -destination=../mocks/quote_issuer.go -package=mocks -mock_names=Issuer=MockIssuer
type Issuer interface {
	// IssueQuote locks a USD price for the burn and holds it against the token and wallet caps until the quote expires
	IssueQuote(ctx context.Context, req IssueQuoteRequest) (*schema.Quote, error)
	// CancelQuote releases an open quote of the wallet. Cancelling a released quote is a no-op.
	CancelQuote(ctx context.Context, quoteID, wallet string) (*schema.Quote, error)
}

type issuer struct {
	store   store.Store
	oracle  price.Oracle
	ledgers ledger.Factory
	clock   adapter.Clock
}

// NewIssuer creates a quote issuer
func NewIssuer(st store.Store, oracle price.Oracle, ledgers ledger.Factory, clock adapter.Clock) Issuer {
	return &issuer{
		store:   st,
		oracle:  oracle,
		ledgers: ledgers,
		clock:   clock,
	}
}

func (i *issuer) IssueQuote(ctx context.Context, req IssueQuoteRequest) (*schema.Quote, error) {
	if err := solana.ValidateAddress(req.Wallet); err != nil {
		return nil, err
	}
	if err := solana.ValidateAddress(req.Mint); err != nil {
		return nil, err
	}
	if !req.TokenAmount.IsPositive() {
		return nil, fmt.Errorf("%w: token amount must be positive", domain.ErrInvalidRequest)
	}

	event, err := i.store.GetEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %d does not exist", domain.ErrEventNotLive, req.EventID)
	}
	if !event.IsLive(i.clock.Now()) {
		return nil, fmt.Errorf("%w: event %d", domain.ErrEventNotLive, req.EventID)
	}

	accepted, err := i.store.GetAcceptedToken(ctx, req.EventID, req.Mint)
	if err != nil {
		return nil, err
	}
	if accepted == nil || !accepted.IsActive {
		return nil, fmt.Errorf("%w: %s", domain.ErrTokenNotAccepted, req.Mint)
	}
	if _, err := domain.RawAmount(req.TokenAmount, int32(accepted.Decimals)); err != nil {
		return nil, err
	}

	unitPrice, err := i.oracle.QuotePrice(ctx, req.Mint)
	if err != nil {
		return nil, err
	}

	usdValue := domain.RoundUSD(req.TokenAmount.Mul(unitPrice.USDPerUnit))
	if !usdValue.IsPositive() || usdValue.LessThan(event.MinTxUSD) {
		return nil, fmt.Errorf("%w: %s USD < %s USD", domain.ErrBelowMinimum, usdValue, event.MinTxUSD)
	}
	if usdValue.GreaterThan(event.MaxPerTxUSD) {
		return nil, fmt.Errorf("%w: %s USD > %s USD", domain.ErrAboveMaxPerTx, usdValue, event.MaxPerTxUSD)
	}

	ttl := event.QuoteTTL()
	if ttl <= 0 {
		ttl = domain.DEFAULT_QUOTE_TTL
	}
	issuedAt := i.clock.Now()
	pool := domain.DistributablePool(event.SolfPool, event.PlatformFeeBps, event.ReferralPoolBps)

	quote := &schema.Quote{
		QuoteID:         ulid.Make().String(),
		EventID:         event.ID,
		Wallet:          req.Wallet,
		Mint:            req.Mint,
		TokenAmount:     req.TokenAmount,
		USDValue:        usdValue,
		PriceAtQuote:    unitPrice.USDPerUnit,
		PriceSource:     unitPrice.Route,
		PriceConfidence: unitPrice.Confidence,
		EstimatedSolf:   domain.EstimateSolf(usdValue, pool, event.TotalUSDBurned),
		State:           domain.QuoteStateOpen,
		IssuedAt:        issuedAt,
		ExpiresAt:       issuedAt.Add(ttl),
	}

	err = i.store.WithTransaction(ctx, func(tx store.Store) error {
		token, err := i.ledgers(tx).Reserve(ctx, ledger.ReserveRequest{
			Token:     ledger.TokenBudgetKey{EventID: event.ID, Mint: req.Mint},
			Wallet:    ledger.WalletBudgetKey{EventID: event.ID, Wallet: req.Wallet},
			Amount:    usdValue,
			ExpiresAt: quote.ExpiresAt,
		})
		if err != nil {
			return err
		}
		quote.ReservationToken = string(token)
		return tx.CreateQuote(ctx, quote)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Quote issued",
		zap.String("quoteID", quote.QuoteID),
		zap.Uint64("eventID", event.ID),
		zap.String("wallet", req.Wallet),
		zap.String("mint", req.Mint),
		zap.String("usdValue", usdValue.String()),
		zap.String("route", unitPrice.Route))

	return quote, nil
}

func (i *issuer) CancelQuote(ctx context.Context, quoteID, wallet string) (*schema.Quote, error) {
	var quote *schema.Quote
	err := i.store.WithTransaction(ctx, func(tx store.Store) error {
		var err error
		quote, err = tx.GetQuoteForUpdate(ctx, quoteID)
		if err != nil {
			return err
		}
		// another wallet's quote is reported as missing
		if quote == nil || quote.Wallet != wallet {
			return fmt.Errorf("%w: %s", domain.ErrQuoteNotFound, quoteID)
		}

		switch quote.State {
		case domain.QuoteStateReleased:
			return nil
		case domain.QuoteStateConsumed:
			return fmt.Errorf("%w: %s", domain.ErrQuoteAlreadyConsumed, quoteID)
		case domain.QuoteStateExpired:
			return fmt.Errorf("%w: %s", domain.ErrQuoteExpired, quoteID)
		}

		if _, err := i.ledgers(tx).Release(ctx, ledger.ReservationToken(quote.ReservationToken)); err != nil {
			return err
		}
		if err := tx.UpdateQuoteState(ctx, quoteID, domain.QuoteStateReleased, nil); err != nil {
			return err
		}
		quote.State = domain.QuoteStateReleased
		return nil
	})
	if err != nil {
		return nil, err
	}

	return quote, nil
}
