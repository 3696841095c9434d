package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteState represents the lifecycle state of a quote
type QuoteState string

const (
	QuoteStateOpen     QuoteState = "open"
	QuoteStateConsumed QuoteState = "consumed"
	QuoteStateExpired  QuoteState = "expired"
	QuoteStateReleased QuoteState = "released"
)

// ReservationStatus represents the lifecycle state of a cap reservation
type ReservationStatus string

const (
	ReservationStatusHeld      ReservationStatus = "held"
	ReservationStatusCommitted ReservationStatus = "committed"
	ReservationStatusReleased  ReservationStatus = "released"
)

// ClaimType identifies the allocation tranche a claim draws from
type ClaimType string

const (
	ClaimTypeTGE     ClaimType = "tge"
	ClaimTypeVesting ClaimType = "vesting"
)

// Valid checks if the claim type is supported
func (c ClaimType) Valid() bool {
	return c == ClaimTypeTGE || c == ClaimTypeVesting
}

// ReconcileOutcome describes what a reconciliation did with a reservation
type ReconcileOutcome string

const (
	// ReconcileOutcomeCommitted means the reservation had a matching burn and was committed
	ReconcileOutcomeCommitted ReconcileOutcome = "committed"
	// ReconcileOutcomeReleased means the reservation was returned to the budgets
	ReconcileOutcomeReleased ReconcileOutcome = "released"
	// ReconcileOutcomeNoop means the reservation was already resolved
	ReconcileOutcomeNoop ReconcileOutcome = "noop"
)

// PriceQuote is a resolved USD unit price for a mint
type PriceQuote struct {
	Mint       string          `json:"mint"`
	USDPerUnit decimal.Decimal `json:"usd_per_unit"`
	Route      string          `json:"route"`
	Confidence int             `json:"confidence"`
	ObservedAt time.Time       `json:"observed_at"`
}

// ClaimableAmounts holds the currently claimable amount of each tranche
type ClaimableAmounts struct {
	TGE            decimal.Decimal `json:"tge"`
	Vesting        decimal.Decimal `json:"vesting"`
	VestedFraction decimal.Decimal `json:"vested_fraction"`
}

// For returns the claimable amount of the given tranche
func (c ClaimableAmounts) For(claimType ClaimType) decimal.Decimal {
	if claimType == ClaimTypeTGE {
		return c.TGE
	}
	return c.Vesting
}

// FinalizeResult summarizes a finalized event
type FinalizeResult struct {
	EventID           uint64          `json:"event_id"`
	TotalUSDBurned    decimal.Decimal `json:"total_usd_burned"`
	DistributablePool decimal.Decimal `json:"distributable_pool"`
	SolfPerUSDRate    decimal.Decimal `json:"solf_per_usd_rate"`
	Allocations       int             `json:"allocations"`
	FinalizedAt       time.Time       `json:"finalized_at"`
	AlreadyFinalized  bool            `json:"already_finalized"`
}

// NotificationType is the kind of settlement fact published to the message broker
type NotificationType string

const (
	NotificationTypeBurnSettled    NotificationType = "burn_settled"
	NotificationTypeEventFinalized NotificationType = "event_finalized"
	NotificationTypeClaimRecorded  NotificationType = "claim_recorded"
)

// Notification is the normalized settlement fact published for leaderboards and dashboards
type Notification struct {
	Type      NotificationType `json:"type"`
	EventID   uint64           `json:"event_id"`
	Wallet    string           `json:"wallet,omitempty"`
	Mint      string           `json:"mint,omitempty"`
	Amount    decimal.Decimal  `json:"amount"`              // token amount, SOLF amount or pool depending on type
	USDValue  decimal.Decimal  `json:"usd_value"`           // usd value of the burn or event total
	Reference string           `json:"reference,omitempty"` // transaction signature or claim reference
	Timestamp time.Time        `json:"timestamp"`
}
