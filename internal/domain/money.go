package domain

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred        = decimal.NewFromInt(100)
	bpsDenominator = decimal.NewFromInt(BPS_DENOMINATOR)

	// MaxRawAmount is the largest SPL token amount in base units
	MaxRawAmount = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)
)

// RawAmount converts a UI token amount to mint base units.
// Amounts finer than the mint precision or outside the u64 range are invalid.
func RawAmount(amount decimal.Decimal, decimals int32) (uint64, error) {
	raw := amount.Shift(decimals)
	if !raw.IsInteger() {
		return 0, fmt.Errorf("%w: %s has more than %d decimals", ErrInvalidRequest, amount, decimals)
	}
	if raw.Sign() < 0 || raw.GreaterThan(MaxRawAmount) {
		return 0, fmt.Errorf("%w: %s is out of the token amount range", ErrInvalidRequest, amount)
	}
	return raw.BigInt().Uint64(), nil
}

// RoundUSD rounds a USD value to micro-USD precision
func RoundUSD(d decimal.Decimal) decimal.Decimal {
	return d.Round(USD_DECIMALS)
}

// TruncateSolf truncates a SOLF amount to the mint precision
func TruncateSolf(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(SOLF_DECIMALS)
}

// UTCDay returns the start of the UTC day containing t
func UTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameUTCDay reports whether a and b fall on the same UTC day
func SameUTCDay(a, b time.Time) bool {
	return UTCDay(a).Equal(UTCDay(b))
}

// Budget is a capped amount with committed and in-flight reserved usage
type Budget struct {
	Cap       decimal.Decimal
	Committed decimal.Decimal
	Reserved  decimal.Decimal
}

// Available returns the remaining headroom, never negative
func (b Budget) Available() decimal.Decimal {
	available := b.Cap.Sub(b.Committed).Sub(b.Reserved)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// CanReserve reports whether amount fits in the remaining headroom
func (b Budget) CanReserve(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(b.Available())
}

// SubClamped subtracts b from a without going below zero
func SubClamped(a, b decimal.Decimal) decimal.Decimal {
	r := a.Sub(b)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// DistributablePool returns the SOLF pool left after platform fee and referral deductions
func DistributablePool(solfPool decimal.Decimal, platformFeeBps, referralPoolBps int) decimal.Decimal {
	keepBps := BPS_DENOMINATOR - platformFeeBps - referralPoolBps
	if keepBps <= 0 {
		return decimal.Zero
	}
	q, _ := solfPool.Mul(decimal.NewFromInt(int64(keepBps))).QuoRem(bpsDenominator, SOLF_DECIMALS)
	return q
}

// EstimateSolf returns the advisory SOLF estimate for a new burn of usdValue
// using pool / max(totalBurned, usdValue) as the provisional rate
func EstimateSolf(usdValue, pool, totalBurned decimal.Decimal) decimal.Decimal {
	denominator := decimal.Max(totalBurned, usdValue)
	if !denominator.IsPositive() || !usdValue.IsPositive() {
		return decimal.Zero
	}
	q, _ := usdValue.Mul(pool).QuoRem(denominator, SOLF_DECIMALS)
	return q
}

// Contribution is a wallet's committed USD burn total
type Contribution struct {
	Wallet string
	USD    decimal.Decimal
}

// AllocationShare is a wallet's finalized allocation split into tranches
type AllocationShare struct {
	Wallet  string
	USD     decimal.Decimal
	Total   decimal.Decimal
	TGE     decimal.Decimal
	Vesting decimal.Decimal
}

// SolfPerUSDRate returns pool / totalUSD, or zero when nothing was burned
func SolfPerUSDRate(pool, totalUSD decimal.Decimal) decimal.Decimal {
	if !totalUSD.IsPositive() {
		return decimal.Zero
	}
	return pool.DivRound(totalUSD, 18)
}

// ComputeAllocations splits pool pro-rata over the contributions.
// Truncation dust is assigned to the largest contributor so the shares sum to pool exactly.
func ComputeAllocations(contributions []Contribution, pool decimal.Decimal, tgePercentage int) []AllocationShare {
	totalUSD := decimal.Zero
	eligible := make([]Contribution, 0, len(contributions))
	for _, c := range contributions {
		if c.USD.IsPositive() {
			eligible = append(eligible, c)
			totalUSD = totalUSD.Add(c.USD)
		}
	}
	if len(eligible) == 0 || !pool.IsPositive() {
		return nil
	}

	sort.Slice(eligible, func(i, j int) bool {
		if !eligible[i].USD.Equal(eligible[j].USD) {
			return eligible[i].USD.GreaterThan(eligible[j].USD)
		}
		return eligible[i].Wallet < eligible[j].Wallet
	})

	shares := make([]AllocationShare, len(eligible))
	distributed := decimal.Zero
	for i, c := range eligible {
		amount, _ := c.USD.Mul(pool).QuoRem(totalUSD, SOLF_DECIMALS)
		shares[i] = AllocationShare{Wallet: c.Wallet, USD: c.USD, Total: amount}
		distributed = distributed.Add(amount)
	}

	// eligible is sorted, index 0 is the largest contributor
	if dust := pool.Sub(distributed); dust.IsPositive() {
		shares[0].Total = shares[0].Total.Add(dust)
	}

	pct := decimal.NewFromInt(int64(tgePercentage))
	for i := range shares {
		tge, _ := shares[i].Total.Mul(pct).QuoRem(hundred, SOLF_DECIMALS)
		shares[i].TGE = tge
		shares[i].Vesting = shares[i].Total.Sub(tge)
	}

	return shares
}

// VestedFraction returns min(1, elapsed / vestingDays) since finalizedAt
func VestedFraction(finalizedAt time.Time, vestingDays int, now time.Time) decimal.Decimal {
	elapsed := now.Sub(finalizedAt)
	if elapsed <= 0 {
		return decimal.Zero
	}
	if vestingDays <= 0 {
		return decimal.NewFromInt(1)
	}
	period := time.Duration(vestingDays) * SECONDS_PER_DAY * time.Second
	if elapsed >= period {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(int64(elapsed)).DivRound(decimal.NewFromInt(int64(period)), 18)
}

// ComputeClaimable returns the claimable amounts for the given tranches and claimed totals
func ComputeClaimable(tgeAmount, vestingAmount, claimedTGE, claimedVesting, vestedFraction decimal.Decimal) ClaimableAmounts {
	vested := TruncateSolf(vestingAmount.Mul(vestedFraction))
	return ClaimableAmounts{
		TGE:            SubClamped(tgeAmount, claimedTGE),
		Vesting:        SubClamped(vested, claimedVesting),
		VestedFraction: vestedFraction,
	}
}
