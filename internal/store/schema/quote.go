package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solforge/fairmint/internal/domain"
)

// Quote represents the quotes table - a priced, time-limited burn intent backed by a cap reservation
type Quote struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// QuoteID is the public quote identifier (ULID)
	QuoteID string `gorm:"column:quote_id;not null;uniqueIndex;type:text"`
	// EventID references the event
	EventID uint64 `gorm:"column:event_id;not null"`
	// Wallet is the burning wallet
	Wallet string `gorm:"column:wallet;not null;type:text"`
	// Mint is the mint being burned
	Mint string `gorm:"column:mint;not null;type:text"`
	// TokenAmount is the UI amount of tokens to burn
	TokenAmount decimal.Decimal `gorm:"column:token_amount;not null;type:numeric(38,18)"`
	// USDValue is the locked USD value of the burn
	USDValue decimal.Decimal `gorm:"column:usd_value;not null;type:numeric(38,18)"`
	// PriceAtQuote is the locked unit price
	PriceAtQuote decimal.Decimal `gorm:"column:price_at_quote;not null;type:numeric(38,18)"`
	// PriceSource is the route the price came from
	PriceSource string `gorm:"column:price_source;not null;type:text"`
	// PriceConfidence is the confidence of the route (0-100)
	PriceConfidence int `gorm:"column:price_confidence;not null"`
	// EstimatedSolf is the advisory SOLF estimate at quote time
	EstimatedSolf decimal.Decimal `gorm:"column:estimated_solf;not null;default:0;type:numeric(38,18)"`
	// ReservationToken references the cap reservation backing the quote
	ReservationToken string `gorm:"column:reservation_token;not null;type:text"`
	// State is open, consumed, expired or released
	State domain.QuoteState `gorm:"column:state;not null;type:text"`
	// IssuedAt is when the quote was issued
	IssuedAt time.Time `gorm:"column:issued_at;not null;type:timestamptz"`
	// ExpiresAt is IssuedAt plus the event quote TTL
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz"`
	// TransactionSignature is set when the quote is consumed
	TransactionSignature *string `gorm:"column:transaction_signature;type:text"`
	// CreatedAt is the timestamp when this quote was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this quote was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}
