package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool of the underlying *sql.DB.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// WithTransaction runs fn in a transaction bound store
func (s *pgStore) WithTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// forUpdate returns a query that locks the selected rows
func (s *pgStore) forUpdate(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

// first runs the query and maps gorm.ErrRecordNotFound to a nil result
func first[T any](query *gorm.DB, what string) (*T, error) {
	var row T
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	return &row, nil
}

// =============================================================================
// Events
// =============================================================================

// GetEvent retrieves an event by ID
func (s *pgStore) GetEvent(ctx context.Context, eventID uint64) (*schema.Event, error) {
	return first[schema.Event](s.db.WithContext(ctx).Where("id = ?", eventID), "event")
}

// GetEventForUpdate retrieves an event by ID and locks the row
func (s *pgStore) GetEventForUpdate(ctx context.Context, eventID uint64) (*schema.Event, error) {
	return first[schema.Event](s.forUpdate(ctx).Where("id = ?", eventID), "event")
}

// GetActiveEvent retrieves the single active event
func (s *pgStore) GetActiveEvent(ctx context.Context) (*schema.Event, error) {
	return first[schema.Event](s.db.WithContext(ctx).Where("is_active").Order("id DESC"), "active event")
}

// ListEventsPendingFinalization retrieves events whose window ended and are not finalized yet
func (s *pgStore) ListEventsPendingFinalization(ctx context.Context, now time.Time) ([]schema.Event, error) {
	var events []schema.Event
	err := s.db.WithContext(ctx).
		Where("NOT is_finalized AND end_time <= ?", now).
		Order("end_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events pending finalization: %w", err)
	}
	return events, nil
}

// AddEventBurnTotal adds usd to the event running total
func (s *pgStore) AddEventBurnTotal(ctx context.Context, eventID uint64, usd decimal.Decimal) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Event{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"total_usd_burned": gorm.Expr("total_usd_burned + ?", usd),
			"updated_at":       gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update event burn total: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// MarkEventFinalized deactivates the event and stores the final rate.
// finalized_at is only written once.
func (s *pgStore) MarkEventFinalized(ctx context.Context, input FinalizeEventInput) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Event{}).
		Where("id = ? AND NOT is_finalized", input.EventID).
		Updates(map[string]interface{}{
			"is_active":          false,
			"is_finalized":       true,
			"distributable_pool": input.DistributablePool,
			"solf_per_usd_rate":  input.SolfPerUSDRate,
			"finalized_at":       input.FinalizedAt,
			"updated_at":         gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finalize event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("event %d not found or already finalized", input.EventID)
	}
	return nil
}

// =============================================================================
// Accepted tokens
// =============================================================================

// GetAcceptedToken retrieves an accepted token of an event
func (s *pgStore) GetAcceptedToken(ctx context.Context, eventID uint64, mint string) (*schema.AcceptedToken, error) {
	return first[schema.AcceptedToken](s.db.WithContext(ctx).Where("event_id = ? AND mint = ?", eventID, mint), "accepted token")
}

// GetAcceptedTokenForUpdate retrieves an accepted token and locks the row
func (s *pgStore) GetAcceptedTokenForUpdate(ctx context.Context, eventID uint64, mint string) (*schema.AcceptedToken, error) {
	return first[schema.AcceptedToken](s.forUpdate(ctx).Where("event_id = ? AND mint = ?", eventID, mint), "accepted token")
}

// UpdateTokenBudget writes the daily budget columns of an accepted token
func (s *pgStore) UpdateTokenBudget(ctx context.Context, input UpdateTokenBudgetInput) error {
	err := s.db.WithContext(ctx).
		Model(&schema.AcceptedToken{}).
		Where("event_id = ? AND mint = ?", input.EventID, input.Mint).
		Updates(map[string]interface{}{
			"current_daily_burned_usd": input.CurrentDailyBurnedUSD,
			"reserved_daily_usd":       input.ReservedDailyUSD,
			"last_daily_reset":         input.LastDailyReset,
			"updated_at":               gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update token budget: %w", err)
	}
	return nil
}

// RecordTokenBurn increments the lifetime burn stats of an accepted token
func (s *pgStore) RecordTokenBurn(ctx context.Context, eventID uint64, mint string, usd decimal.Decimal) error {
	err := s.db.WithContext(ctx).
		Model(&schema.AcceptedToken{}).
		Where("event_id = ? AND mint = ?", eventID, mint).
		Updates(map[string]interface{}{
			"total_burned_usd": gorm.Expr("total_burned_usd + ?", usd),
			"burn_count":       gorm.Expr("burn_count + 1"),
			"updated_at":       gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to record token burn: %w", err)
	}
	return nil
}

// =============================================================================
// Allocations
// =============================================================================

// GetAllocation retrieves the allocation of a wallet
func (s *pgStore) GetAllocation(ctx context.Context, eventID uint64, wallet string) (*schema.Allocation, error) {
	return first[schema.Allocation](s.db.WithContext(ctx).Where("event_id = ? AND wallet = ?", eventID, wallet), "allocation")
}

// GetAllocationForUpdate retrieves the allocation of a wallet and locks the row
func (s *pgStore) GetAllocationForUpdate(ctx context.Context, eventID uint64, wallet string) (*schema.Allocation, error) {
	return first[schema.Allocation](s.forUpdate(ctx).Where("event_id = ? AND wallet = ?", eventID, wallet), "allocation")
}

// GetOrCreateAllocationForUpdate creates an empty allocation if needed, then locks it
func (s *pgStore) GetOrCreateAllocationForUpdate(ctx context.Context, eventID uint64, wallet string) (*schema.Allocation, error) {
	allocation := schema.Allocation{
		EventID:            eventID,
		Wallet:             wallet,
		TotalUSDBurned:     decimal.Zero,
		ReservedUSD:        decimal.Zero,
		TotalSolfAllocated: decimal.Zero,
		TGEAmount:          decimal.Zero,
		VestingAmount:      decimal.Zero,
		ClaimedTGE:         decimal.Zero,
		ClaimedVesting:     decimal.Zero,
	}

	// Concurrent first reservations of a wallet race here, the loser falls through to the locked read
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "wallet"}},
			DoNothing: true,
		}).
		Create(&allocation).Error; err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	return s.GetAllocationForUpdate(ctx, eventID, wallet)
}

// UpdateWalletBudget writes the budget columns of an allocation
func (s *pgStore) UpdateWalletBudget(ctx context.Context, input UpdateWalletBudgetInput) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Allocation{}).
		Where("event_id = ? AND wallet = ?", input.EventID, input.Wallet).
		Updates(map[string]interface{}{
			"total_usd_burned": input.TotalUSDBurned,
			"reserved_usd":     input.ReservedUSD,
			"updated_at":       gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update wallet budget: %w", err)
	}
	return nil
}

// RecordWalletBurn increments the burn count of an allocation
func (s *pgStore) RecordWalletBurn(ctx context.Context, eventID uint64, wallet string, burnAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Allocation{}).
		Where("event_id = ? AND wallet = ?", eventID, wallet).
		Updates(map[string]interface{}{
			"burn_count":   gorm.Expr("burn_count + 1"),
			"last_burn_at": burnAt,
			"updated_at":   gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to record wallet burn: %w", err)
	}
	return nil
}

// ListContributions retrieves every wallet with a positive committed burn total
func (s *pgStore) ListContributions(ctx context.Context, eventID uint64) ([]domain.Contribution, error) {
	var allocations []schema.Allocation
	err := s.db.WithContext(ctx).
		Select("wallet", "total_usd_burned").
		Where("event_id = ? AND total_usd_burned > 0", eventID).
		Order("wallet ASC").
		Find(&allocations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	contributions := make([]domain.Contribution, len(allocations))
	for i, a := range allocations {
		contributions[i] = domain.Contribution{Wallet: a.Wallet, USD: a.TotalUSDBurned}
	}
	return contributions, nil
}

// SetAllocationTranches writes the finalized SOLF amounts of the given shares
func (s *pgStore) SetAllocationTranches(ctx context.Context, eventID uint64, shares []domain.AllocationShare) error {
	for _, share := range shares {
		result := s.db.WithContext(ctx).
			Model(&schema.Allocation{}).
			Where("event_id = ? AND wallet = ?", eventID, share.Wallet).
			Updates(map[string]interface{}{
				"total_solf_allocated": share.Total,
				"tge_amount":           share.TGE,
				"vesting_amount":       share.Vesting,
				"updated_at":           gorm.Expr("NOW()"),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to set allocation of wallet %s: %w", share.Wallet, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("allocation of wallet %s not found", share.Wallet)
		}
	}
	return nil
}

// IncrementClaimed adds amount to the claimed column of the tranche
func (s *pgStore) IncrementClaimed(ctx context.Context, eventID uint64, wallet string, claimType domain.ClaimType, amount decimal.Decimal) error {
	var column string
	switch claimType {
	case domain.ClaimTypeTGE:
		column = "claimed_tge"
	case domain.ClaimTypeVesting:
		column = "claimed_vesting"
	default:
		return fmt.Errorf("%w: unknown claim type %s", domain.ErrInvalidRequest, claimType)
	}

	err := s.db.WithContext(ctx).
		Model(&schema.Allocation{}).
		Where("event_id = ? AND wallet = ?", eventID, wallet).
		Updates(map[string]interface{}{
			column:       gorm.Expr(column+" + ?", amount),
			"updated_at": gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to increment claimed amount: %w", err)
	}
	return nil
}

// ListAllocations retrieves allocations ordered by committed burn total, and the total count
func (s *pgStore) ListAllocations(ctx context.Context, eventID uint64, limit int, offset uint64) ([]schema.Allocation, uint64, error) {
	var total int64
	if err := s.db.WithContext(ctx).
		Model(&schema.Allocation{}).
		Where("event_id = ? AND total_usd_burned > 0", eventID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count allocations: %w", err)
	}

	var allocations []schema.Allocation
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND total_usd_burned > 0", eventID).
		Order("total_usd_burned DESC, wallet ASC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&allocations).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list allocations: %w", err)
	}

	return allocations, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Cap reservations
// =============================================================================

// CreateReservation inserts a new reservation
func (s *pgStore) CreateReservation(ctx context.Context, reservation *schema.CapReservation) error {
	if err := s.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// GetReservation retrieves a reservation by token
func (s *pgStore) GetReservation(ctx context.Context, token string) (*schema.CapReservation, error) {
	return first[schema.CapReservation](s.db.WithContext(ctx).Where("token = ?", token), "reservation")
}

// GetReservationForUpdate retrieves a reservation by token and locks the row
func (s *pgStore) GetReservationForUpdate(ctx context.Context, token string) (*schema.CapReservation, error) {
	return first[schema.CapReservation](s.forUpdate(ctx).Where("token = ?", token), "reservation")
}

// ResolveReservation moves a reservation between statuses
func (s *pgStore) ResolveReservation(ctx context.Context, token string, from, to domain.ReservationStatus, resolvedAt time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&schema.CapReservation{}).
		Where("token = ? AND status = ?", token, from).
		Updates(map[string]interface{}{
			"status":      to,
			"resolved_at": resolvedAt,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to resolve reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s is not %s", domain.ErrReservationNotFound, token, from)
	}
	return nil
}

// ListStaleReservations retrieves held reservations that expired before the cutoff
// or belong to a finalized event
func (s *pgStore) ListStaleReservations(ctx context.Context, cutoff time.Time, limit int) ([]schema.CapReservation, error) {
	var reservations []schema.CapReservation
	finalized := s.db.Model(&schema.Event{}).Select("id").Where("is_finalized = ?", true)
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.ReservationStatusHeld).
		Where(s.db.Where("expires_at < ?", cutoff).Or("event_id IN (?)", finalized)).
		Order("expires_at ASC").
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stale reservations: %w", err)
	}
	return reservations, nil
}

// =============================================================================
// Quotes
// =============================================================================

// CreateQuote inserts a new quote
func (s *pgStore) CreateQuote(ctx context.Context, quote *schema.Quote) error {
	if err := s.db.WithContext(ctx).Create(quote).Error; err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	return nil
}

// GetQuote retrieves a quote by its public ID
func (s *pgStore) GetQuote(ctx context.Context, quoteID string) (*schema.Quote, error) {
	return first[schema.Quote](s.db.WithContext(ctx).Where("quote_id = ?", quoteID), "quote")
}

// GetQuoteForUpdate retrieves a quote by its public ID and locks the row
func (s *pgStore) GetQuoteForUpdate(ctx context.Context, quoteID string) (*schema.Quote, error) {
	return first[schema.Quote](s.forUpdate(ctx).Where("quote_id = ?", quoteID), "quote")
}

// GetQuoteByReservationTokenForUpdate retrieves the quote backed by a reservation and locks the row
func (s *pgStore) GetQuoteByReservationTokenForUpdate(ctx context.Context, token string) (*schema.Quote, error) {
	return first[schema.Quote](s.forUpdate(ctx).Where("reservation_token = ?", token), "quote")
}

// UpdateQuoteState sets the state and, when given, the transaction signature of a quote
func (s *pgStore) UpdateQuoteState(ctx context.Context, quoteID string, state domain.QuoteState, signature *string) error {
	updates := map[string]interface{}{
		"state":      state,
		"updated_at": gorm.Expr("NOW()"),
	}
	if signature != nil {
		updates["transaction_signature"] = *signature
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Quote{}).
		Where("quote_id = ?", quoteID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update quote state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuoteNotFound
	}
	return nil
}

// =============================================================================
// Burns
// =============================================================================

// CreateBurn inserts a burn, returning false when the quote or the signature is already recorded
func (s *pgStore) CreateBurn(ctx context.Context, burn *schema.Burn) (bool, error) {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(burn).Error
	if err != nil {
		return false, fmt.Errorf("failed to create burn: %w", err)
	}

	// A conflicting insert returns no row, so the ID stays zero
	return burn.ID != 0, nil
}

// GetBurnBySignature retrieves a burn by transaction signature
func (s *pgStore) GetBurnBySignature(ctx context.Context, signature string) (*schema.Burn, error) {
	return first[schema.Burn](s.db.WithContext(ctx).Where("transaction_signature = ?", signature), "burn")
}

// GetBurnByQuoteID retrieves the burn of a quote
func (s *pgStore) GetBurnByQuoteID(ctx context.Context, quoteID string) (*schema.Burn, error) {
	return first[schema.Burn](s.db.WithContext(ctx).Where("quote_id = ?", quoteID), "burn")
}

// =============================================================================
// Claims
// =============================================================================

// CreateClaim inserts a claim, returning false when the signature is already recorded
func (s *pgStore) CreateClaim(ctx context.Context, claim *schema.Claim) (bool, error) {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_signature"}},
			DoNothing: true,
		}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(claim).Error
	if err != nil {
		return false, fmt.Errorf("failed to create claim: %w", err)
	}

	return claim.ID != 0, nil
}

// GetClaimBySignature retrieves a claim by signature
func (s *pgStore) GetClaimBySignature(ctx context.Context, signature string) (*schema.Claim, error) {
	return first[schema.Claim](s.db.WithContext(ctx).Where("tx_signature = ?", signature), "claim")
}

// ListClaims retrieves the claims of a wallet, oldest first
func (s *pgStore) ListClaims(ctx context.Context, eventID uint64, wallet string) ([]schema.Claim, error) {
	var claims []schema.Claim
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND wallet = ?", eventID, wallet).
		Order("claim_time ASC, id ASC").
		Find(&claims).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, nil
}

// =============================================================================
// Views
// =============================================================================

// GetEventStats retrieves aggregated participation of an event
func (s *pgStore) GetEventStats(ctx context.Context, eventID uint64) (*EventStats, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	stats := EventStats{
		EventID:        eventID,
		TotalUSDBurned: event.TotalUSDBurned,
	}

	if err := s.db.WithContext(ctx).
		Model(&schema.Allocation{}).
		Where("event_id = ? AND burn_count > 0", eventID).
		Count(&stats.Participants).Error; err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&schema.Burn{}).
		Where("event_id = ?", eventID).
		Count(&stats.BurnCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count burns: %w", err)
	}

	return &stats, nil
}

// ListTokenStats retrieves aggregated burns per accepted token of an event
func (s *pgStore) ListTokenStats(ctx context.Context, eventID uint64) ([]TokenStats, error) {
	var tokens []schema.AcceptedToken
	if err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("mint ASC").
		Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to list accepted tokens: %w", err)
	}

	var participants []struct {
		Mint  string
		Count int64
	}
	if err := s.db.WithContext(ctx).
		Model(&schema.Burn{}).
		Select("mint, COUNT(DISTINCT wallet) AS count").
		Where("event_id = ?", eventID).
		Group("mint").
		Scan(&participants).Error; err != nil {
		return nil, fmt.Errorf("failed to count token participants: %w", err)
	}

	participantsByMint := make(map[string]int64, len(participants))
	for _, p := range participants {
		participantsByMint[p.Mint] = p.Count
	}

	stats := make([]TokenStats, len(tokens))
	for i, t := range tokens {
		stats[i] = TokenStats{
			Mint:                  t.Mint,
			Symbol:                t.Symbol,
			IsActive:              t.IsActive,
			DailyCapUSD:           t.DailyCapUSD,
			CurrentDailyBurnedUSD: t.CurrentDailyBurnedUSD,
			ReservedDailyUSD:      t.ReservedDailyUSD,
			LastDailyReset:        t.LastDailyReset,
			TotalBurnedUSD:        t.TotalBurnedUSD,
			BurnCount:             t.BurnCount,
			Participants:          participantsByMint[t.Mint],
		}
	}
	return stats, nil
}
