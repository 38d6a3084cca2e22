package betting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oddsmith/punt/models"
)

// service implements the Service interface. The in-memory ledger is the
// runtime source of truth; when a database is configured every mutation is
// written there first and applied to the ledger only after the transaction
// commits. The mutex serializes mutations so the two stores cannot drift.
type service struct {
	mu     sync.Mutex
	db     *gorm.DB // Main DB connection for starting transactions, nil in memory mode
	repo   Repository
	agent  *Agent
	ledger *Ledger
}

// NewService creates a new betting service. Pass a nil db and repo to run
// on the in-memory ledger alone.
func NewService(db *gorm.DB, repo Repository, agent *Agent, ledger *Ledger) Service {
	return &service{
		db:     db,
		repo:   repo,
		agent:  agent,
		ledger: ledger,
	}
}

func (s *service) persisted() bool {
	return s.db != nil && s.repo != nil
}

// EvaluateOffer runs one offer through the decision pipeline and records the
// resulting bet, whether or not the edge cleared the threshold. The bankroll
// is not touched; money only moves at settlement.
func (s *service) EvaluateOffer(ctx context.Context, req *EvaluateOfferRequest) (*EvaluationResponse, error) {
	if err := req.PriceError(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	eval, err := s.agent.Propose(ctx, req.Input())
	if err != nil {
		return nil, err
	}

	if s.persisted() {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.repo.WithTx(tx).CreateBet(ctx, &eval.Bet)
		})
		if err != nil {
			return nil, fmt.Errorf("persist bet record: %w", err)
		}
	}

	if err := s.ledger.Append(&eval.Bet); err != nil {
		return nil, err
	}

	return ToEvaluationResponse(eval), nil
}

// EvaluateBatch evaluates a slate of offers independently. A bad offer is
// reported in its slot and never aborts the rest of the slate.
func (s *service) EvaluateBatch(ctx context.Context, req *EvaluateBatchRequest) (*BatchEvaluationResponse, error) {
	out := &BatchEvaluationResponse{
		Results: make([]BatchOfferResult, 0, len(req.Offers)),
	}

	for i := range req.Offers {
		offer := req.Offers[i]
		result := BatchOfferResult{Index: i}

		eval, err := s.EvaluateOffer(ctx, &offer)
		if err != nil {
			result.Error = &BatchOfferError{Code: batchErrorCode(err), Message: err.Error()}
			out.Failed++
		} else {
			result.Evaluation = eval
			out.Evaluated++
		}
		out.Results = append(out.Results, result)
	}

	return out, nil
}

// batchErrorCode maps a pipeline error onto the stable per-offer error code
// batch callers branch on.
func batchErrorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidOddsFormat):
		return "INVALID_ODDS_FORMAT"
	case errors.Is(err, models.ErrUnknownMarket):
		return "UNKNOWN_MARKET"
	case errors.Is(err, models.ErrProbabilitySource):
		return "UPSTREAM_ERROR"
	case errors.Is(err, models.ErrDuplicateBet):
		return "DUPLICATE_BET"
	default:
		return "INTERNAL_ERROR"
	}
}

// SettleBet closes an open bet as a win or loss, applies the pnl to the
// bankroll exactly once, and returns the settled record. Settling an unknown
// or already-settled id fails loudly so a retry can never pay twice.
func (s *service) SettleBet(ctx context.Context, id uuid.UUID, outcome models.BetResult) (*BetResponse, error) {
	if !outcome.IsTerminal() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidOutcome, outcome)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	at := time.Now().UTC()

	if s.persisted() {
		// Settle a detached copy first so the exact pnl and bankroll
		// snapshot are known before anything is written.
		preview, err := s.ledger.Get(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", models.ErrBetNotOpen, id)
		}
		if err := preview.Settle(outcome, at); err != nil {
			return nil, err
		}
		balance := s.ledger.Balance() + preview.PNL
		preview.BankrollAfter = &balance

		bankroll := s.ledger.Bankroll()
		bankroll.Balance = balance

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			repoTx := s.repo.WithTx(tx)
			if err := repoTx.SettleBet(ctx, preview); err != nil {
				return err
			}
			return repoTx.UpdateBankroll(ctx, &bankroll)
		})
		if err != nil {
			return nil, err
		}
	}

	settled, err := s.ledger.Settle(id, outcome, at)
	if err != nil {
		return nil, err
	}

	return ToBetResponse(settled), nil
}

// GetBet returns a single record, open or settled.
func (s *service) GetBet(ctx context.Context, id uuid.UUID) (*BetResponse, error) {
	if s.persisted() {
		bet, err := s.repo.GetBetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: bet %s", models.ErrRecordNotFound, id)
			}
			return nil, fmt.Errorf("get bet %s: %w", id, err)
		}
		return ToBetResponse(bet), nil
	}

	bet, err := s.ledger.Get(id)
	if err != nil {
		return nil, err
	}
	return ToBetResponse(bet), nil
}

// ListBets returns a filtered, sorted page of the bet history.
func (s *service) ListBets(ctx context.Context, filters *ListBetsFilters) (*BetListResponse, error) {
	filters.Normalize()

	var (
		bets  []models.Bet
		total int64
	)
	if s.persisted() {
		var err error
		bets, total, err = s.repo.ListBets(ctx, filters)
		if err != nil {
			return nil, fmt.Errorf("list bets: %w", err)
		}
	} else {
		bets, total = filterLedgerBets(s.ledger.Bets(), filters)
	}

	return &BetListResponse{
		Bets:    ToBetResponseList(bets),
		Total:   total,
		Page:    filters.Page,
		PerPage: filters.PerPage,
	}, nil
}

// GetBankroll returns the current bankroll state.
func (s *service) GetBankroll(_ context.Context) (*BankrollResponse, error) {
	return ToBankrollResponse(s.ledger.Bankroll()), nil
}

// ResetBankroll clears the bet history and rebaselines the bankroll. With no
// amount the configured starting bankroll is restored.
func (s *service) ResetBankroll(ctx context.Context, amount *float64) (*BankrollResponse, error) {
	target := s.agent.StartingBankroll()
	if amount != nil {
		target = *amount
	}
	if target <= 0 {
		return nil, fmt.Errorf("%w: reset amount must be positive", models.ErrInvalidBankroll)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	at := time.Now().UTC()

	if s.persisted() {
		bankroll := s.ledger.Bankroll()
		bankroll.Reset(target, at)

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			repoTx := s.repo.WithTx(tx)
			if err := repoTx.TruncateBets(ctx); err != nil {
				return err
			}
			return repoTx.UpdateBankroll(ctx, &bankroll)
		})
		if err != nil {
			return nil, fmt.Errorf("persist bankroll reset: %w", err)
		}
	}

	fresh := s.ledger.Reset(target, at)
	return ToBankrollResponse(fresh), nil
}

// GetPolicy returns the staking policy in force.
func (s *service) GetPolicy(_ context.Context) Policy {
	return s.agent.Policy()
}

// UpdatePolicy swaps the staking policy. Open bets are untouched; the new
// policy applies from the next evaluation.
func (s *service) UpdatePolicy(_ context.Context, p Policy) (Policy, error) {
	if err := s.agent.SetPolicy(p); err != nil {
		return Policy{}, err
	}
	return s.agent.Policy(), nil
}

// GetStats aggregates lifetime performance from the current ledger snapshot.
func (s *service) GetStats(_ context.Context) (*PerformanceStats, error) {
	stats := s.agent.Stats()
	return &stats, nil
}

// Markets lists the market names with a registered probability source.
func (s *service) Markets(_ context.Context) []string {
	return s.agent.Markets()
}

// Restore rehydrates the in-memory ledger from the database at boot. The
// first boot against an empty database seeds the bankroll row.
func (s *service) Restore(ctx context.Context) error {
	if !s.persisted() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bankroll, err := s.repo.GetBankroll(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load bankroll: %w", err)
		}
		bankroll = models.NewBankroll(s.agent.StartingBankroll())
		if err := s.repo.CreateBankroll(ctx, bankroll); err != nil {
			return fmt.Errorf("seed bankroll: %w", err)
		}
	}

	bets, err := s.repo.ListAllBets(ctx)
	if err != nil {
		return fmt.Errorf("load bet history: %w", err)
	}

	return s.ledger.Restore(bets, bankroll)
}

// filterLedgerBets applies the list filters to an in-memory snapshot,
// mirroring what the repository pushes into SQL in persisted mode.
func filterLedgerBets(bets []models.Bet, filters *ListBetsFilters) ([]models.Bet, int64) {
	matched := make([]models.Bet, 0, len(bets))
	for _, bet := range bets {
		if filters.Market != "" && bet.Market != filters.Market {
			continue
		}
		if filters.Result != "" && string(bet.Result) != filters.Result {
			continue
		}
		if filters.PlacedOnly && !bet.Placed() {
			continue
		}
		matched = append(matched, bet)
	}

	sortLedgerBets(matched, filters.SortBy, filters.SortOrder)

	total := int64(len(matched))
	start := (filters.Page - 1) * filters.PerPage
	if start >= len(matched) {
		return []models.Bet{}, total
	}
	end := start + filters.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total
}

func sortLedgerBets(bets []models.Bet, sortBy, sortOrder string) {
	less := func(a, b *models.Bet) bool {
		switch sortBy {
		case "settled_at":
			return settledAtOf(a).Before(settledAtOf(b))
		case "ev":
			return a.EV < b.EV
		case "stake":
			return a.Stake < b.Stake
		case "decimal_odds":
			return a.DecimalOdds < b.DecimalOdds
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(bets, func(i, j int) bool {
		if sortOrder == "asc" {
			return less(&bets[i], &bets[j])
		}
		return less(&bets[j], &bets[i])
	})
}

func settledAtOf(b *models.Bet) time.Time {
	if b.SettledAt == nil {
		return time.Time{}
	}
	return *b.SettledAt
}
