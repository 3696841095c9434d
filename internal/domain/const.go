package domain

import "time"

const (
	// Well-known Solana mints
	USDC_MINT = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	SOL_MINT  = "So11111111111111111111111111111111111111112"

	// USD_DECIMALS is the precision kept for USD values (micro-USD)
	USD_DECIMALS int32 = 6
	// SOLF_DECIMALS matches the SOLF mint decimals
	SOLF_DECIMALS int32 = 9

	// BPS_DENOMINATOR is the basis point scale
	BPS_DENOMINATOR = 10000

	// SECONDS_PER_DAY is the vesting day length
	SECONDS_PER_DAY = 86400

	// Price routes
	ROUTE_DIRECT          = "DIRECT"
	ROUTE_TOKEN_USDC      = "TOKEN/USDC"
	ROUTE_TOKEN_SOL_USDC  = "TOKEN/SOL/USDC"
	CONFIDENCE_DIRECT     = 100
	CONFIDENCE_SINGLE_HOP = 95
	CONFIDENCE_TWO_HOP    = 85

	// DEFAULT_QUOTE_TTL is used when an event has no quote TTL configured
	DEFAULT_QUOTE_TTL = 60 * time.Second
)
