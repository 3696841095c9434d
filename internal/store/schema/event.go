package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event represents the events table - a fair mint event with a fixed SOLF pool
type Event struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display name of the event
	Name string `gorm:"column:name;not null;type:text"`
	// StartTime is the inclusive start of the burn window
	StartTime time.Time `gorm:"column:start_time;not null;type:timestamptz"`
	// EndTime is the exclusive end of the burn window
	EndTime time.Time `gorm:"column:end_time;not null;type:timestamptz"`
	// IsActive indicates whether the event accepts burns (at most one active event)
	IsActive bool `gorm:"column:is_active;not null;default:false"`
	// IsFinalized indicates whether allocations have been computed
	IsFinalized bool `gorm:"column:is_finalized;not null;default:false"`
	// TGEPercentage is the share of each allocation unlocked at finalization (0-100)
	TGEPercentage int `gorm:"column:tge_percentage;not null"`
	// VestingDays is the linear vesting period of the remaining share (1-365)
	VestingDays int `gorm:"column:vesting_days;not null"`
	// PlatformFeeBps is the platform fee deducted from the pool in basis points
	PlatformFeeBps int `gorm:"column:platform_fee_bps;not null;default:0"`
	// ReferralPoolBps is the referral pool carved out of the pool in basis points
	ReferralPoolBps int `gorm:"column:referral_pool_bps;not null;default:0"`
	// MaxPerWalletUSD is the lifetime cap per wallet
	MaxPerWalletUSD decimal.Decimal `gorm:"column:max_per_wallet_usd;not null;type:numeric(38,18)"`
	// MaxPerTxUSD is the per transaction upper bound
	MaxPerTxUSD decimal.Decimal `gorm:"column:max_per_tx_usd;not null;type:numeric(38,18)"`
	// MinTxUSD is the per transaction lower bound
	MinTxUSD decimal.Decimal `gorm:"column:min_tx_usd;not null;type:numeric(38,18)"`
	// QuoteTTLSeconds is how long an issued quote stays settleable
	QuoteTTLSeconds int `gorm:"column:quote_ttl_seconds;not null;default:60"`
	// TotalUSDBurned is the running total of settled burns
	TotalUSDBurned decimal.Decimal `gorm:"column:total_usd_burned;not null;default:0;type:numeric(38,18)"`
	// SolfPool is the fixed SOLF amount distributed by the event
	SolfPool decimal.Decimal `gorm:"column:solf_pool;not null;type:numeric(38,18)"`
	// DistributablePool is the pool left after fee and referral deductions, set at finalization
	DistributablePool decimal.NullDecimal `gorm:"column:distributable_pool;type:numeric(38,18)"`
	// SolfPerUSDRate is the final conversion rate, set at finalization
	SolfPerUSDRate decimal.NullDecimal `gorm:"column:solf_per_usd_rate;type:numeric(38,18)"`
	// FinalizedAt is the vesting epoch, immutable once set
	FinalizedAt *time.Time `gorm:"column:finalized_at;type:timestamptz"`
	// CreatedAt is the timestamp when this event was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this event was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}

// IsLive reports whether the event accepts quotes and burns at now
func (e *Event) IsLive(now time.Time) bool {
	return e.IsActive && !e.IsFinalized && !now.Before(e.StartTime) && now.Before(e.EndTime)
}

// QuoteTTL returns the configured quote lifetime
func (e *Event) QuoteTTL() time.Duration {
	if e.QuoteTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(e.QuoteTTLSeconds) * time.Second
}
