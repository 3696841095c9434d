package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/solforge/fairmint/internal/api/shared/constants"
	apierrors "github.com/solforge/fairmint/internal/api/shared/errors"
	"github.com/solforge/fairmint/internal/domain"
)

// IssueQuoteRequest represents the request body for issuing a burn quote.
// EventID defaults to the active event when omitted.
type IssueQuoteRequest struct {
	EventID     *uint64         `json:"event_id,omitempty"`
	Wallet      string          `json:"wallet"`
	Mint        string          `json:"mint"`
	TokenAmount decimal.Decimal `json:"token_amount"`
}

// Validate validates the request body
func (r *IssueQuoteRequest) Validate() error {
	if r.Wallet == "" {
		return apierrors.NewValidationError("wallet is required")
	}
	if r.Mint == "" {
		return apierrors.NewValidationError("mint is required")
	}
	if !r.TokenAmount.IsPositive() {
		return apierrors.NewValidationError("token_amount must be positive")
	}
	return nil
}

// SettleBurnRequest represents the request body for settling a burn against a quote
type SettleBurnRequest struct {
	QuoteID              string `json:"quote_id"`
	TransactionSignature string `json:"transaction_signature"`
}

// Validate validates the request body
func (r *SettleBurnRequest) Validate() error {
	if r.QuoteID == "" {
		return apierrors.NewValidationError("quote_id is required")
	}
	if r.TransactionSignature == "" {
		return apierrors.NewValidationError("transaction_signature is required")
	}
	return nil
}

// ClaimRequest represents the request body for claiming a tranche
type ClaimRequest struct {
	Wallet      string           `json:"wallet"`
	ClaimType   domain.ClaimType `json:"claim_type"`
	TxSignature string           `json:"tx_signature,omitempty"`
}

// Validate validates the request body
func (r *ClaimRequest) Validate() error {
	if r.Wallet == "" {
		return apierrors.NewValidationError("wallet is required")
	}
	if !r.ClaimType.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("claim_type must be %q or %q", domain.ClaimTypeTGE, domain.ClaimTypeVesting))
	}
	if len(r.TxSignature) > constants.MAX_CLAIM_REFERENCE_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("tx_signature must be at most %d characters", constants.MAX_CLAIM_REFERENCE_LENGTH))
	}
	return nil
}
