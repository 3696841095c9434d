package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation represents the allocations table - per wallet burn totals during the event
// and the SOLF allocation with its claim progress after finalization
type Allocation struct {
	// EventID references the event
	EventID uint64 `gorm:"column:event_id;primaryKey"`
	// Wallet is the participant wallet
	Wallet string `gorm:"column:wallet;primaryKey;type:text"`
	// TotalUSDBurned is the committed wallet budget usage
	TotalUSDBurned decimal.Decimal `gorm:"column:total_usd_burned;not null;default:0;type:numeric(38,18)"`
	// ReservedUSD is the in-flight wallet budget usage
	ReservedUSD decimal.Decimal `gorm:"column:reserved_usd;not null;default:0;type:numeric(38,18)"`
	// BurnCount is the number of settled burns
	BurnCount int64 `gorm:"column:burn_count;not null;default:0"`
	// LastBurnAt is the time of the latest settled burn
	LastBurnAt *time.Time `gorm:"column:last_burn_at;type:timestamptz"`
	// TotalSolfAllocated is the finalized SOLF allocation
	TotalSolfAllocated decimal.Decimal `gorm:"column:total_solf_allocated;not null;default:0;type:numeric(38,18)"`
	// TGEAmount is the tranche unlocked at finalization
	TGEAmount decimal.Decimal `gorm:"column:tge_amount;not null;default:0;type:numeric(38,18)"`
	// VestingAmount is the linearly vesting tranche
	VestingAmount decimal.Decimal `gorm:"column:vesting_amount;not null;default:0;type:numeric(38,18)"`
	// ClaimedTGE is the claimed part of the TGE tranche
	ClaimedTGE decimal.Decimal `gorm:"column:claimed_tge;not null;default:0;type:numeric(38,18)"`
	// ClaimedVesting is the claimed part of the vesting tranche
	ClaimedVesting decimal.Decimal `gorm:"column:claimed_vesting;not null;default:0;type:numeric(38,18)"`
	// CreatedAt is the timestamp when this allocation was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this allocation was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Allocation model
func (Allocation) TableName() string {
	return "allocations"
}
