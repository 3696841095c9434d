package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Burn represents the burns table - an append-only record of a settled burn
type Burn struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID references the event
	EventID uint64 `gorm:"column:event_id;not null"`
	// QuoteID references the consumed quote (one burn per quote)
	QuoteID string `gorm:"column:quote_id;not null;uniqueIndex;type:text"`
	// Mint is the burned mint
	Mint string `gorm:"column:mint;not null;type:text"`
	// Wallet is the burning wallet
	Wallet string `gorm:"column:wallet;not null;type:text"`
	// TokenAmount is the UI amount burned
	TokenAmount decimal.Decimal `gorm:"column:token_amount;not null;type:numeric(38,18)"`
	// USDValueAtBurn is the USD value locked by the quote
	USDValueAtBurn decimal.Decimal `gorm:"column:usd_value_at_burn;not null;type:numeric(38,18)"`
	// PriceAtBurn is the unit price locked by the quote
	PriceAtBurn decimal.Decimal `gorm:"column:price_at_burn;not null;type:numeric(38,18)"`
	// PriceSource is the route of the locked price
	PriceSource string `gorm:"column:price_source;not null;type:text"`
	// TransactionSignature is the on-chain burn signature, globally unique
	TransactionSignature string `gorm:"column:transaction_signature;not null;uniqueIndex;type:text"`
	// BurnTimestamp is when the burn was settled
	BurnTimestamp time.Time `gorm:"column:burn_timestamp;not null;type:timestamptz"`
	// Evidence is the on-chain corroboration snapshot, empty when verification is disabled
	Evidence datatypes.JSON `gorm:"column:evidence;type:jsonb"`
	// CreatedAt is the timestamp when this burn was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Burn model
func (Burn) TableName() string {
	return "burns"
}

// BurnEvidence is the on-chain corroboration stored in Burn.Evidence
type BurnEvidence struct {
	Signature   string    `json:"signature"`
	Slot        uint64    `json:"slot"`
	BlockTime   time.Time `json:"block_time"`
	Wallet      string    `json:"wallet"`
	Mint        string    `json:"mint"`
	RawAmount   uint64    `json:"raw_amount"`
	BurnedDelta uint64    `json:"burned_delta"`
}
