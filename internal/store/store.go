package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/store/schema"
)

// FinalizeEventInput represents the values written when an event is finalized
type FinalizeEventInput struct {
	EventID           uint64
	DistributablePool decimal.Decimal
	SolfPerUSDRate    decimal.Decimal
	FinalizedAt       time.Time
}

// UpdateTokenBudgetInput represents the daily budget columns of an accepted token
type UpdateTokenBudgetInput struct {
	EventID               uint64
	Mint                  string
	CurrentDailyBurnedUSD decimal.Decimal
	ReservedDailyUSD      decimal.Decimal
	LastDailyReset        time.Time
}

// UpdateWalletBudgetInput represents the budget columns of an allocation
type UpdateWalletBudgetInput struct {
	EventID        uint64
	Wallet         string
	TotalUSDBurned decimal.Decimal
	ReservedUSD    decimal.Decimal
}

// EventStats represents aggregated participation of an event
type EventStats struct {
	EventID        uint64          `json:"event_id"`
	TotalUSDBurned decimal.Decimal `json:"total_usd_burned"`
	Participants   int64           `json:"participants"`
	BurnCount      int64           `json:"burn_count"`
}

// TokenStats represents aggregated burns of an accepted token
type TokenStats struct {
	Mint                  string          `json:"mint"`
	Symbol                string          `json:"symbol"`
	IsActive              bool            `json:"is_active"`
	DailyCapUSD           decimal.Decimal `json:"daily_cap_usd"`
	CurrentDailyBurnedUSD decimal.Decimal `json:"current_daily_burned_usd"`
	ReservedDailyUSD      decimal.Decimal `json:"reserved_daily_usd"`
	LastDailyReset        time.Time       `json:"last_daily_reset"`
	TotalBurnedUSD        decimal.Decimal `json:"total_burned_usd"`
	BurnCount             int64           `json:"burn_count"`
	Participants          int64           `json:"participants"`
}

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// WithTransaction runs fn in a database transaction. The store passed to fn is bound to the transaction;
	// nested calls use savepoints.
	WithTransaction(ctx context.Context, fn func(tx Store) error) error

	// =============================================================================
	// Events
	// =============================================================================

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, eventID uint64) (*schema.Event, error)
	// GetEventForUpdate retrieves an event by ID and locks the row until the transaction ends
	GetEventForUpdate(ctx context.Context, eventID uint64) (*schema.Event, error)
	// GetActiveEvent retrieves the single active event
	GetActiveEvent(ctx context.Context) (*schema.Event, error)
	// ListEventsPendingFinalization retrieves events whose window ended before now and are not finalized
	ListEventsPendingFinalization(ctx context.Context, now time.Time) ([]schema.Event, error)
	// AddEventBurnTotal adds usd to the event running total
	AddEventBurnTotal(ctx context.Context, eventID uint64, usd decimal.Decimal) error
	// MarkEventFinalized deactivates the event and stores the final rate
	MarkEventFinalized(ctx context.Context, input FinalizeEventInput) error

	// =============================================================================
	// Accepted tokens
	// =============================================================================

	// GetAcceptedToken retrieves an accepted token of an event
	GetAcceptedToken(ctx context.Context, eventID uint64, mint string) (*schema.AcceptedToken, error)
	// GetAcceptedTokenForUpdate retrieves an accepted token and locks the row
	GetAcceptedTokenForUpdate(ctx context.Context, eventID uint64, mint string) (*schema.AcceptedToken, error)
	// UpdateTokenBudget writes the daily budget columns of an accepted token
	UpdateTokenBudget(ctx context.Context, input UpdateTokenBudgetInput) error
	// RecordTokenBurn increments the lifetime burn stats of an accepted token
	RecordTokenBurn(ctx context.Context, eventID uint64, mint string, usd decimal.Decimal) error

	// =============================================================================
	// Allocations
	// =============================================================================

	// GetAllocation retrieves the allocation of a wallet
	GetAllocation(ctx context.Context, eventID uint64, wallet string) (*schema.Allocation, error)
	// GetAllocationForUpdate retrieves the allocation of a wallet and locks the row
	GetAllocationForUpdate(ctx context.Context, eventID uint64, wallet string) (*schema.Allocation, error)
	// GetOrCreateAllocationForUpdate creates an empty allocation if needed, then locks it
	GetOrCreateAllocationForUpdate(ctx context.Context, eventID uint64, wallet string) (*schema.Allocation, error)
	// UpdateWalletBudget writes the budget columns of an allocation
	UpdateWalletBudget(ctx context.Context, input UpdateWalletBudgetInput) error
	// RecordWalletBurn increments the burn count of an allocation
	RecordWalletBurn(ctx context.Context, eventID uint64, wallet string, burnAt time.Time) error
	// ListContributions retrieves every wallet with a positive committed burn total
	ListContributions(ctx context.Context, eventID uint64) ([]domain.Contribution, error)
	// SetAllocationTranches writes the finalized SOLF amounts of the given shares
	SetAllocationTranches(ctx context.Context, eventID uint64, shares []domain.AllocationShare) error
	// IncrementClaimed adds amount to the claimed column of the tranche
	IncrementClaimed(ctx context.Context, eventID uint64, wallet string, claimType domain.ClaimType, amount decimal.Decimal) error
	// ListAllocations retrieves allocations ordered by committed burn total, and the total count
	ListAllocations(ctx context.Context, eventID uint64, limit int, offset uint64) ([]schema.Allocation, uint64, error)

	// =============================================================================
	// Cap reservations
	// =============================================================================

	// CreateReservation inserts a new reservation
	CreateReservation(ctx context.Context, reservation *schema.CapReservation) error
	// GetReservation retrieves a reservation by token
	GetReservation(ctx context.Context, token string) (*schema.CapReservation, error)
	// GetReservationForUpdate retrieves a reservation by token and locks the row
	GetReservationForUpdate(ctx context.Context, token string) (*schema.CapReservation, error)
	// ResolveReservation moves a reservation from one status to another, failing when it is not in the from status
	ResolveReservation(ctx context.Context, token string, from, to domain.ReservationStatus, resolvedAt time.Time) error
	// ListStaleReservations retrieves held reservations that expired before the cutoff
	// or belong to a finalized event
	ListStaleReservations(ctx context.Context, cutoff time.Time, limit int) ([]schema.CapReservation, error)

	// =============================================================================
	// Quotes
	// =============================================================================

	// CreateQuote inserts a new quote
	CreateQuote(ctx context.Context, quote *schema.Quote) error
	// GetQuote retrieves a quote by its public ID
	GetQuote(ctx context.Context, quoteID string) (*schema.Quote, error)
	// GetQuoteForUpdate retrieves a quote by its public ID and locks the row
	GetQuoteForUpdate(ctx context.Context, quoteID string) (*schema.Quote, error)
	// GetQuoteByReservationTokenForUpdate retrieves the quote backed by a reservation and locks the row
	GetQuoteByReservationTokenForUpdate(ctx context.Context, token string) (*schema.Quote, error)
	// UpdateQuoteState sets the state and, when given, the transaction signature of a quote
	UpdateQuoteState(ctx context.Context, quoteID string, state domain.QuoteState, signature *string) error

	// =============================================================================
	// Burns
	// =============================================================================

	// CreateBurn inserts a burn, returning false when the quote or the signature is already recorded
	CreateBurn(ctx context.Context, burn *schema.Burn) (bool, error)
	// GetBurnBySignature retrieves a burn by transaction signature
	GetBurnBySignature(ctx context.Context, signature string) (*schema.Burn, error)
	// GetBurnByQuoteID retrieves the burn of a quote
	GetBurnByQuoteID(ctx context.Context, quoteID string) (*schema.Burn, error)

	// =============================================================================
	// Claims
	// =============================================================================

	// CreateClaim inserts a claim, returning false when the signature is already recorded
	CreateClaim(ctx context.Context, claim *schema.Claim) (bool, error)
	// GetClaimBySignature retrieves a claim by signature
	GetClaimBySignature(ctx context.Context, signature string) (*schema.Claim, error)
	// ListClaims retrieves the claims of a wallet, oldest first
	ListClaims(ctx context.Context, eventID uint64, wallet string) ([]schema.Claim, error)

	// =============================================================================
	// Views
	// =============================================================================

	// GetEventStats retrieves aggregated participation of an event
	GetEventStats(ctx context.Context, eventID uint64) (*EventStats, error)
	// ListTokenStats retrieves aggregated burns per accepted token of an event
	ListTokenStats(ctx context.Context, eventID uint64) ([]TokenStats, error)
}
