package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// AcceptedToken represents the accepted_tokens table - a mint that can be burned in an event,
// together with its daily USD budget
type AcceptedToken struct {
	// EventID references the event
	EventID uint64 `gorm:"column:event_id;primaryKey"`
	// Mint is the SPL token mint address
	Mint string `gorm:"column:mint;primaryKey;type:text"`
	// Symbol is the display ticker
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// Decimals is the mint decimals
	Decimals int `gorm:"column:decimals;not null"`
	// DailyCapUSD is the USD cap of burns per UTC day
	DailyCapUSD decimal.Decimal `gorm:"column:daily_cap_usd;not null;type:numeric(38,18)"`
	// CurrentDailyBurnedUSD is the committed usage of the current day
	CurrentDailyBurnedUSD decimal.Decimal `gorm:"column:current_daily_burned_usd;not null;default:0;type:numeric(38,18)"`
	// ReservedDailyUSD is the in-flight usage of the current day
	ReservedDailyUSD decimal.Decimal `gorm:"column:reserved_daily_usd;not null;default:0;type:numeric(38,18)"`
	// LastDailyReset is the UTC day the daily counters belong to
	LastDailyReset time.Time `gorm:"column:last_daily_reset;not null;type:date"`
	// IsActive indicates whether the mint is currently accepted
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// TotalBurnedUSD is the lifetime USD value burned
	TotalBurnedUSD decimal.Decimal `gorm:"column:total_burned_usd;not null;default:0;type:numeric(38,18)"`
	// BurnCount is the lifetime number of burns
	BurnCount int64 `gorm:"column:burn_count;not null;default:0"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AcceptedToken model
func (AcceptedToken) TableName() string {
	return "accepted_tokens"
}
