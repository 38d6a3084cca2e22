package betting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oddsmith/punt/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new betting repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// CreateBet inserts a new open record.
func (r *repository) CreateBet(ctx context.Context, bet *models.Bet) error {
	return r.db.WithContext(ctx).Create(bet).Error
}

// GetBetByID returns a bet by ID
func (r *repository) GetBetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	var bet models.Bet
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bet).Error
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

// ListBets returns a paginated slice of the history with filters applied.
func (r *repository) ListBets(ctx context.Context, filters *ListBetsFilters) ([]models.Bet, int64, error) {
	var bets []models.Bet
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Bet{})
	query = r.applyBetFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.applyBetSorting(query, filters)
	query = r.applyBetPagination(query, filters)

	err := query.Find(&bets).Error
	return bets, total, err
}

// ListAllBets returns the full history in insertion order for rehydration.
func (r *repository) ListAllBets(ctx context.Context) ([]models.Bet, error) {
	var bets []models.Bet
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&bets).Error
	return bets, err
}

// SettleBet writes a settlement. The open-state guard makes the write
// idempotence-safe: a second settle matches zero rows and reports it, so a
// retry can never double-apply money.
func (r *repository) SettleBet(ctx context.Context, bet *models.Bet) error {
	res := r.db.WithContext(ctx).
		Model(&models.Bet{}).
		Where("id = ? AND result = ?", bet.ID, models.BetResultOpen).
		Updates(map[string]interface{}{
			"result":         bet.Result,
			"pnl":            bet.PNL,
			"bankroll_after": bet.BankrollAfter,
			"settled_at":     bet.SettledAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", models.ErrBetNotOpen, bet.ID)
	}
	return nil
}

// TruncateBets wipes the history on bankroll reset.
func (r *repository) TruncateBets(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM bets").Error
}

// GetBankroll returns the single bankroll row.
func (r *repository) GetBankroll(ctx context.Context) (*models.Bankroll, error) {
	var bankroll models.Bankroll
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&bankroll).Error
	if err != nil {
		return nil, err
	}
	return &bankroll, nil
}

// CreateBankroll inserts the initial bankroll row.
func (r *repository) CreateBankroll(ctx context.Context, bankroll *models.Bankroll) error {
	return r.db.WithContext(ctx).Create(bankroll).Error
}

// UpdateBankroll writes the current balance and baseline.
func (r *repository) UpdateBankroll(ctx context.Context, bankroll *models.Bankroll) error {
	return r.db.WithContext(ctx).Save(bankroll).Error
}

// Helper methods for filtering, sorting, and pagination

func (r *repository) applyBetFilters(query *gorm.DB, filters *ListBetsFilters) *gorm.DB {
	if filters.Market != "" {
		query = query.Where("market = ?", filters.Market)
	}

	if filters.Result != "" {
		query = query.Where("result = ?", filters.Result)
	}

	if filters.PlacedOnly {
		query = query.Where("stake > 0")
	}

	return query
}

func (r *repository) applyBetSorting(query *gorm.DB, filters *ListBetsFilters) *gorm.DB {
	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = "created_at" // Default sort
	}

	sortOrder := filters.SortOrder
	if sortOrder == "" {
		sortOrder = "desc" // Default order
	}

	// Validate sort fields to prevent SQL injection
	validSortFields := map[string]bool{
		"created_at":   true,
		"settled_at":   true,
		"ev":           true,
		"stake":        true,
		"decimal_odds": true,
	}

	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}

	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
	return query.Order(orderClause)
}

func (r *repository) applyBetPagination(query *gorm.DB, filters *ListBetsFilters) *gorm.DB {
	page := filters.Page
	if page < 1 {
		page = 1
	}

	perPage := filters.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return query.Offset(offset).Limit(perPage)
}
