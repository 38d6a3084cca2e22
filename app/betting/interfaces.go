package betting

import (
	"context"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/oddsmith/punt/models"
)

// Repository defines the interface for the durable ledger store
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateBet(ctx context.Context, bet *models.Bet) error
	GetBetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error)
	ListBets(ctx context.Context, filters *ListBetsFilters) ([]models.Bet, int64, error)
	ListAllBets(ctx context.Context) ([]models.Bet, error)
	SettleBet(ctx context.Context, bet *models.Bet) error
	TruncateBets(ctx context.Context) error

	GetBankroll(ctx context.Context) (*models.Bankroll, error)
	CreateBankroll(ctx context.Context, bankroll *models.Bankroll) error
	UpdateBankroll(ctx context.Context, bankroll *models.Bankroll) error
}

// Service defines the interface for the betting API surface
type Service interface {
	EvaluateOffer(ctx context.Context, req *EvaluateOfferRequest) (*EvaluationResponse, error)
	EvaluateBatch(ctx context.Context, req *EvaluateBatchRequest) (*BatchEvaluationResponse, error)
	SettleBet(ctx context.Context, id uuid.UUID, outcome models.BetResult) (*BetResponse, error)

	GetBet(ctx context.Context, id uuid.UUID) (*BetResponse, error)
	ListBets(ctx context.Context, filters *ListBetsFilters) (*BetListResponse, error)

	GetBankroll(ctx context.Context) (*BankrollResponse, error)
	ResetBankroll(ctx context.Context, amount *float64) (*BankrollResponse, error)

	GetPolicy(ctx context.Context) Policy
	UpdatePolicy(ctx context.Context, p Policy) (Policy, error)

	GetStats(ctx context.Context) (*PerformanceStats, error)
	Markets(ctx context.Context) []string

	// Restore rehydrates the in-memory ledger from the durable store at
	// boot. A no-op when persistence is off.
	Restore(ctx context.Context) error
}
