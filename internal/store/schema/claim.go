package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solforge/fairmint/internal/domain"
)

// Claim represents the claims table - an append-only record of a tranche payout
type Claim struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID references the event
	EventID uint64 `gorm:"column:event_id;not null;index:idx_claims_event_wallet,priority:1"`
	// Wallet is the claiming wallet
	Wallet string `gorm:"column:wallet;not null;type:text;index:idx_claims_event_wallet,priority:2"`
	// ClaimType is tge or vesting
	ClaimType domain.ClaimType `gorm:"column:claim_type;not null;type:text"`
	// Amount is the claimed SOLF amount
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(38,18)"`
	// TxSignature is the payout signature or generated claim reference, unique
	TxSignature string `gorm:"column:tx_signature;not null;uniqueIndex;type:text"`
	// ClaimTime is when the claim was recorded
	ClaimTime time.Time `gorm:"column:claim_time;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this claim was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Claim model
func (Claim) TableName() string {
	return "claims"
}
