package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/solforge/fairmint/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest           ErrorCode = "bad_request"
	ErrCodeNotFound             ErrorCode = "not_found"
	ErrCodeValidationFailed     ErrorCode = "validation_failed"
	ErrCodeUnauthorized         ErrorCode = "unauthorized"
	ErrCodeEventNotFound        ErrorCode = "event_not_found"
	ErrCodeEventNotLive         ErrorCode = "event_not_live"
	ErrCodeEventNotFinalized    ErrorCode = "event_not_finalized"
	ErrCodeTokenNotAccepted     ErrorCode = "token_not_accepted"
	ErrCodeBelowMinimum         ErrorCode = "below_minimum"
	ErrCodeAboveMaxPerTx        ErrorCode = "above_max_per_tx"
	ErrCodeCapExceeded          ErrorCode = "cap_exceeded"
	ErrCodeQuoteNotFound        ErrorCode = "quote_not_found"
	ErrCodeQuoteExpired         ErrorCode = "quote_expired"
	ErrCodeQuoteAlreadyConsumed ErrorCode = "quote_already_consumed"
	ErrCodeNothingToClaim       ErrorCode = "nothing_to_claim"
	ErrCodeBurnNotVerified      ErrorCode = "burn_not_verified"

	// Server errors (5xx)
	ErrCodeInternalError         ErrorCode = "internal_error"
	ErrCodeInternalInconsistency ErrorCode = "internal_inconsistency"
	ErrCodePriceUnavailable      ErrorCode = "price_unavailable"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// ErrorResponse is the envelope of every error body
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

type domainMapping struct {
	target  error
	status  int
	code    ErrorCode
	message string
}

// the first sentinel matched by errors.Is wins
var domainMappings = []domainMapping{
	{domain.ErrInvalidRequest, http.StatusBadRequest, ErrCodeValidationFailed, "Validation failed"},
	{domain.ErrEventNotFound, http.StatusNotFound, ErrCodeEventNotFound, "Event not found"},
	{domain.ErrQuoteNotFound, http.StatusNotFound, ErrCodeQuoteNotFound, "Quote not found"},
	{domain.ErrEventNotLive, http.StatusConflict, ErrCodeEventNotLive, "Event is not live"},
	{domain.ErrEventNotFinalized, http.StatusConflict, ErrCodeEventNotFinalized, "Event is not finalized"},
	{domain.ErrTokenNotAccepted, http.StatusUnprocessableEntity, ErrCodeTokenNotAccepted, "Token is not accepted"},
	{domain.ErrBelowMinimum, http.StatusUnprocessableEntity, ErrCodeBelowMinimum, "Burn value is below the minimum"},
	{domain.ErrAboveMaxPerTx, http.StatusUnprocessableEntity, ErrCodeAboveMaxPerTx, "Burn value is above the maximum per transaction"},
	{domain.ErrCapExceeded, http.StatusConflict, ErrCodeCapExceeded, "Cap exceeded"},
	{domain.ErrQuoteExpired, http.StatusGone, ErrCodeQuoteExpired, "Quote expired"},
	{domain.ErrQuoteAlreadyConsumed, http.StatusConflict, ErrCodeQuoteAlreadyConsumed, "Quote already consumed"},
	{domain.ErrNothingToClaim, http.StatusConflict, ErrCodeNothingToClaim, "Nothing to claim"},
	{domain.ErrBurnNotVerified, http.StatusUnprocessableEntity, ErrCodeBurnNotVerified, "Burn could not be verified on-chain"},
	{domain.ErrPriceUnavailable, http.StatusServiceUnavailable, ErrCodePriceUnavailable, "Price unavailable"},
	{domain.ErrInternalInconsistency, http.StatusInternalServerError, ErrCodeInternalInconsistency, "Internal inconsistency"},
}

// FromError maps an error returned by the services to an HTTP status and API error.
// Unknown errors map to a 500 without details.
func FromError(err error) (int, *APIError) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return statusOf(apiErr.Code), apiErr
	}

	for _, m := range domainMappings {
		if errors.Is(err, m.target) {
			return m.status, &APIError{Code: m.code, Message: m.message, Details: err.Error()}
		}
	}

	return http.StatusInternalServerError, NewInternalError("Internal server error")
}

func statusOf(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	}
	for _, m := range domainMappings {
		if m.code == code {
			return m.status
		}
	}
	return http.StatusInternalServerError
}
