package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solforge/fairmint/internal/domain"
)

// CapReservation represents the cap_reservations table - USD held against a token daily
// budget and a wallet lifetime budget until the burn settles or the hold is released
type CapReservation struct {
	// Token is the opaque reservation token (ULID)
	Token string `gorm:"column:token;primaryKey;type:text"`
	// EventID references the event
	EventID uint64 `gorm:"column:event_id;not null"`
	// Mint is the token budget key
	Mint string `gorm:"column:mint;not null;type:text"`
	// Wallet is the wallet budget key
	Wallet string `gorm:"column:wallet;not null;type:text"`
	// AmountUSD is the reserved amount
	AmountUSD decimal.Decimal `gorm:"column:amount_usd;not null;type:numeric(38,18)"`
	// BudgetDay is the UTC day whose token budget was charged
	BudgetDay time.Time `gorm:"column:budget_day;not null;type:date"`
	// Status is held, committed or released
	Status domain.ReservationStatus `gorm:"column:status;not null;type:text"`
	// ExpiresAt is when the sweeper may reconcile a held reservation
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz"`
	// ResolvedAt is set when the reservation leaves the held state
	ResolvedAt *time.Time `gorm:"column:resolved_at;type:timestamptz"`
	// CreatedAt is the timestamp when this reservation was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this reservation was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CapReservation model
func (CapReservation) TableName() string {
	return "cap_reservations"
}
