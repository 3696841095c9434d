package domain

import "errors"

var (
	// ErrInvalidRequest is returned when a request fails basic validation
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEventNotFound is returned when an event does not exist
	ErrEventNotFound = errors.New("event not found")

	// ErrEventNotLive is returned when an event is inactive, finalized or outside its window
	ErrEventNotLive = errors.New("event not live")

	// ErrTokenNotAccepted is returned when the mint is not an active accepted token of the event
	ErrTokenNotAccepted = errors.New("token not accepted")

	// ErrBelowMinimum is returned when the USD value is below the event minimum per transaction
	ErrBelowMinimum = errors.New("usd value below minimum")

	// ErrAboveMaxPerTx is returned when the USD value exceeds the event maximum per transaction
	ErrAboveMaxPerTx = errors.New("usd value above max per transaction")

	// ErrCapExceeded is returned when either the token daily cap or the wallet cap cannot absorb the amount
	ErrCapExceeded = errors.New("cap exceeded")

	// ErrPriceUnavailable is returned when no route yields a positive price
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrQuoteNotFound is returned when a quote does not exist
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrQuoteExpired is returned when a quote is settled after its expiry
	ErrQuoteExpired = errors.New("quote expired")

	// ErrQuoteAlreadyConsumed is returned when a quote is no longer open
	ErrQuoteAlreadyConsumed = errors.New("quote already consumed")

	// ErrEventNotFinalized is returned when claims are attempted before finalization
	ErrEventNotFinalized = errors.New("event not finalized")

	// ErrNothingToClaim is returned when the requested tranche has nothing unlocked
	ErrNothingToClaim = errors.New("nothing to claim")

	// ErrInternalInconsistency is returned when the ledger and the burn records disagree
	ErrInternalInconsistency = errors.New("internal inconsistency")

	// ErrReservationNotFound is returned when a reservation token is unknown
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrBurnNotVerified is returned when on-chain corroboration of a burn fails
	ErrBurnNotVerified = errors.New("burn not verified on-chain")
)
