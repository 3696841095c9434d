package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/store/schema"
)

// EventStatus is the window status of an event as seen by clients
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusLive      EventStatus = "live"
	EventStatusEnded     EventStatus = "ended"
	EventStatusFinalized EventStatus = "finalized"
)

// QuoteResponse represents an issued quote
type QuoteResponse struct {
	QuoteID              string            `json:"quote_id"`
	EventID              uint64            `json:"event_id"`
	Wallet               string            `json:"wallet"`
	Mint                 string            `json:"mint"`
	TokenAmount          decimal.Decimal   `json:"token_amount"`
	USDValue             decimal.Decimal   `json:"usd_value"`
	PriceAtQuote         decimal.Decimal   `json:"price_at_quote"`
	PriceSource          string            `json:"price_source"`
	PriceConfidence      int               `json:"price_confidence"`
	EstimatedSolf        decimal.Decimal   `json:"estimated_solf"`
	State                domain.QuoteState `json:"state"`
	IssuedAt             time.Time         `json:"issued_at"`
	ExpiresAt            time.Time         `json:"expires_at"`
	TransactionSignature *string           `json:"transaction_signature,omitempty"`
}

// BurnResponse represents a settled burn
type BurnResponse struct {
	ID                   uint64          `json:"id"`
	EventID              uint64          `json:"event_id"`
	QuoteID              string          `json:"quote_id"`
	Wallet               string          `json:"wallet"`
	Mint                 string          `json:"mint"`
	TokenAmount          decimal.Decimal `json:"token_amount"`
	USDValue             decimal.Decimal `json:"usd_value"`
	Price                decimal.Decimal `json:"price"`
	PriceSource          string          `json:"price_source"`
	TransactionSignature string          `json:"transaction_signature"`
	BurnTimestamp        time.Time       `json:"burn_timestamp"`
}

// EventResponse represents an event with its participation totals
type EventResponse struct {
	ID                uint64           `json:"id"`
	Name              string           `json:"name"`
	Status            EventStatus      `json:"status"`
	StartTime         time.Time        `json:"start_time"`
	EndTime           time.Time        `json:"end_time"`
	TGEPercentage     int              `json:"tge_percentage"`
	VestingDays       int              `json:"vesting_days"`
	PlatformFeeBps    int              `json:"platform_fee_bps"`
	ReferralPoolBps   int              `json:"referral_pool_bps"`
	MaxPerWalletUSD   decimal.Decimal  `json:"max_per_wallet_usd"`
	MaxPerTxUSD       decimal.Decimal  `json:"max_per_tx_usd"`
	MinTxUSD          decimal.Decimal  `json:"min_tx_usd"`
	QuoteTTLSeconds   int              `json:"quote_ttl_seconds"`
	SolfPool          decimal.Decimal  `json:"solf_pool"`
	TotalUSDBurned    decimal.Decimal  `json:"total_usd_burned"`
	Participants      int64            `json:"participants"`
	BurnCount         int64            `json:"burn_count"`
	DistributablePool *decimal.Decimal `json:"distributable_pool,omitempty"`
	SolfPerUSDRate    *decimal.Decimal `json:"solf_per_usd_rate,omitempty"`
	FinalizedAt       *time.Time       `json:"finalized_at,omitempty"`
}

// TokenStatsResponse represents the burn stats of an accepted token
type TokenStatsResponse struct {
	store.TokenStats
	DailyHeadroomUSD decimal.Decimal `json:"daily_headroom_usd"`
}

// TokenStatsListResponse represents the accepted tokens of an event
type TokenStatsListResponse struct {
	Tokens []TokenStatsResponse `json:"tokens"`
}

// AllocationResponse represents the allocation of a wallet
type AllocationResponse struct {
	EventID            uint64          `json:"event_id"`
	Wallet             string          `json:"wallet"`
	TotalUSDBurned     decimal.Decimal `json:"total_usd_burned"`
	BurnCount          int64           `json:"burn_count"`
	LastBurnAt         *time.Time      `json:"last_burn_at,omitempty"`
	TotalSolfAllocated decimal.Decimal `json:"total_solf_allocated"`
	TGEAmount          decimal.Decimal `json:"tge_amount"`
	VestingAmount      decimal.Decimal `json:"vesting_amount"`
	ClaimedTGE         decimal.Decimal `json:"claimed_tge"`
	ClaimedVesting     decimal.Decimal `json:"claimed_vesting"`
}

// AllocationListResponse represents a page of the leaderboard
type AllocationListResponse struct {
	Allocations []AllocationResponse `json:"allocations"`
	Offset      uint64               `json:"offset"`
	Total       uint64               `json:"total"`
}

// ClaimableResponse represents what a wallet can claim now
type ClaimableResponse struct {
	EventID uint64 `json:"event_id"`
	Wallet  string `json:"wallet"`
	domain.ClaimableAmounts
}

// ClaimResponse represents a recorded claim
type ClaimResponse struct {
	ID          uint64           `json:"id"`
	EventID     uint64           `json:"event_id"`
	Wallet      string           `json:"wallet"`
	ClaimType   domain.ClaimType `json:"claim_type"`
	Amount      decimal.Decimal  `json:"amount"`
	TxSignature string           `json:"tx_signature"`
	ClaimTime   time.Time        `json:"claim_time"`
}

// MapQuoteToDTO maps a quote row to its response
func MapQuoteToDTO(q *schema.Quote) *QuoteResponse {
	return &QuoteResponse{
		QuoteID:              q.QuoteID,
		EventID:              q.EventID,
		Wallet:               q.Wallet,
		Mint:                 q.Mint,
		TokenAmount:          q.TokenAmount,
		USDValue:             q.USDValue,
		PriceAtQuote:         q.PriceAtQuote,
		PriceSource:          q.PriceSource,
		PriceConfidence:      q.PriceConfidence,
		EstimatedSolf:        q.EstimatedSolf,
		State:                q.State,
		IssuedAt:             q.IssuedAt,
		ExpiresAt:            q.ExpiresAt,
		TransactionSignature: q.TransactionSignature,
	}
}

// MapBurnToDTO maps a burn row to its response
func MapBurnToDTO(b *schema.Burn) *BurnResponse {
	return &BurnResponse{
		ID:                   b.ID,
		EventID:              b.EventID,
		QuoteID:              b.QuoteID,
		Wallet:               b.Wallet,
		Mint:                 b.Mint,
		TokenAmount:          b.TokenAmount,
		USDValue:             b.USDValueAtBurn,
		Price:                b.PriceAtBurn,
		PriceSource:          b.PriceSource,
		TransactionSignature: b.TransactionSignature,
		BurnTimestamp:        b.BurnTimestamp,
	}
}

// MapEventToDTO maps an event row and its stats to its response
func MapEventToDTO(e *schema.Event, stats *store.EventStats, now time.Time) *EventResponse {
	resp := &EventResponse{
		ID:              e.ID,
		Name:            e.Name,
		Status:          eventStatus(e, now),
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		TGEPercentage:   e.TGEPercentage,
		VestingDays:     e.VestingDays,
		PlatformFeeBps:  e.PlatformFeeBps,
		ReferralPoolBps: e.ReferralPoolBps,
		MaxPerWalletUSD: e.MaxPerWalletUSD,
		MaxPerTxUSD:     e.MaxPerTxUSD,
		MinTxUSD:        e.MinTxUSD,
		QuoteTTLSeconds: e.QuoteTTLSeconds,
		SolfPool:        e.SolfPool,
		TotalUSDBurned:  e.TotalUSDBurned,
		FinalizedAt:     e.FinalizedAt,
	}
	if stats != nil {
		resp.Participants = stats.Participants
		resp.BurnCount = stats.BurnCount
	}
	if e.DistributablePool.Valid {
		resp.DistributablePool = &e.DistributablePool.Decimal
	}
	if e.SolfPerUSDRate.Valid {
		resp.SolfPerUSDRate = &e.SolfPerUSDRate.Decimal
	}
	return resp
}

func eventStatus(e *schema.Event, now time.Time) EventStatus {
	switch {
	case e.IsFinalized:
		return EventStatusFinalized
	case now.Before(e.StartTime):
		return EventStatusUpcoming
	case e.IsLive(now):
		return EventStatusLive
	default:
		return EventStatusEnded
	}
}

// MapTokenStatsToDTO maps token stats to a response with today's headroom
func MapTokenStatsToDTO(s store.TokenStats, now time.Time) TokenStatsResponse {
	budget := domain.Budget{
		Cap:       s.DailyCapUSD,
		Committed: s.CurrentDailyBurnedUSD,
		Reserved:  s.ReservedDailyUSD,
	}
	// columns are reset lazily by the next reservation of the day
	if !domain.SameUTCDay(s.LastDailyReset, now) {
		s.CurrentDailyBurnedUSD = decimal.Zero
		s.ReservedDailyUSD = decimal.Zero
		budget.Committed = decimal.Zero
		budget.Reserved = decimal.Zero
	}
	return TokenStatsResponse{
		TokenStats:       s,
		DailyHeadroomUSD: budget.Available(),
	}
}

// MapAllocationToDTO maps an allocation row to its response
func MapAllocationToDTO(a *schema.Allocation) *AllocationResponse {
	return &AllocationResponse{
		EventID:            a.EventID,
		Wallet:             a.Wallet,
		TotalUSDBurned:     a.TotalUSDBurned,
		BurnCount:          a.BurnCount,
		LastBurnAt:         a.LastBurnAt,
		TotalSolfAllocated: a.TotalSolfAllocated,
		TGEAmount:          a.TGEAmount,
		VestingAmount:      a.VestingAmount,
		ClaimedTGE:         a.ClaimedTGE,
		ClaimedVesting:     a.ClaimedVesting,
	}
}

// MapClaimToDTO maps a claim row to its response
func MapClaimToDTO(c *schema.Claim) *ClaimResponse {
	return &ClaimResponse{
		ID:          c.ID,
		EventID:     c.EventID,
		Wallet:      c.Wallet,
		ClaimType:   c.ClaimType,
		Amount:      c.Amount,
		TxSignature: c.TxSignature,
		ClaimTime:   c.ClaimTime,
	}
}
