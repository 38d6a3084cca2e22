package betting

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oddsmith/punt/internal/sanitizer"
	"github.com/oddsmith/punt/internal/validator"
	"github.com/oddsmith/punt/models"
)

// EvaluateOfferRequest is one market offer to evaluate
// @Description A quoted offer: the market lane, the side label, the price, and the model context
type EvaluateOfferRequest struct {
	Market     string            `json:"market" validate:"required,max=120" example:"moneyline"`
	Side       string            `json:"side" validate:"required,max=120" example:"DET ML"`
	Bookmaker  string            `json:"bookmaker,omitempty" validate:"omitempty,max=120" example:"pinnacle"`
	OddsValue  float64           `json:"odds_value" validate:"required" example:"2.5"`
	OddsFormat string            `json:"odds_format,omitempty" example:"decimal"`
	Context    models.BetContext `json:"context,omitempty" swaggertype:"object"`

	// EVThreshold overrides the policy default for this offer only.
	EVThreshold *float64 `json:"ev_threshold,omitempty" example:"0.02"`
}

// Sanitize strips HTML from the caller-supplied labels.
func (r *EvaluateOfferRequest) Sanitize(s sanitizer.HTMLStripperer) {
	r.Market = strings.TrimSpace(s.StripHTML(r.Market))
	r.Side = strings.TrimSpace(s.StripHTML(r.Side))
	r.Bookmaker = strings.TrimSpace(s.StripHTML(r.Bookmaker))
	r.OddsFormat = strings.TrimSpace(s.StripHTML(r.OddsFormat))
}

// PriceError applies the data-quality gate the engine itself does not:
// a decimal price on a live offer must be positive. The math would not
// crash on one, but a non-positive price is always upstream garbage.
func (r *EvaluateOfferRequest) PriceError() error {
	format := strings.ToLower(strings.TrimSpace(r.OddsFormat))
	if (format == "" || format == OddsFormatDecimal) && r.OddsValue <= 0 {
		return fmt.Errorf("%w: decimal odds must be positive", models.ErrInvalidOddsFormat)
	}
	return nil
}

// Input converts the request into the agent's input shape.
func (r *EvaluateOfferRequest) Input() EvaluateInput {
	betCtx := r.Context.Clone()
	if r.Bookmaker != "" {
		if betCtx == nil {
			betCtx = models.BetContext{}
		}
		betCtx["bookmaker"] = r.Bookmaker
	}

	return EvaluateInput{
		Market:      r.Market,
		Side:        r.Side,
		OddsValue:   r.OddsValue,
		OddsFormat:  r.OddsFormat,
		Context:     betCtx,
		EVThreshold: r.EVThreshold,
	}
}

// EvaluateBatchRequest carries a board of offers evaluated independently
// @Description Offers are evaluated one by one; a failing offer reports its error without aborting the rest
type EvaluateBatchRequest struct {
	Offers []EvaluateOfferRequest `json:"offers" validate:"required,min=1,max=100,dive"`
}

// Sanitize strips HTML from every offer in the batch.
func (r *EvaluateBatchRequest) Sanitize(s sanitizer.HTMLStripperer) {
	for i := range r.Offers {
		r.Offers[i].Sanitize(s)
	}
}

// SettleBetRequest closes an open bet
// @Description Settlement outcome for an open bet: win or loss
type SettleBetRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=win loss" example:"win"`
}

// BetResult returns the typed outcome.
func (r *SettleBetRequest) BetResult() models.BetResult {
	return models.BetResult(strings.ToLower(strings.TrimSpace(r.Outcome)))
}

// ResetBankrollRequest rebaselines the paper-trading bankroll
// @Description Optional amount; the configured starting bankroll is used when omitted
type ResetBankrollRequest struct {
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gt=0" example:"1000"`
}

// UpdatePolicyRequest replaces the staking policy
// @Description Full replacement of the runtime staking policy
type UpdatePolicyRequest struct {
	KellyFraction      float64 `json:"kelly_fraction" validate:"required,gt=0,lte=1" example:"0.25"`
	MaxStakePct        float64 `json:"max_stake_pct" validate:"required,gt=0,lte=1" example:"0.10"`
	DefaultEVThreshold float64 `json:"default_ev_threshold" example:"0.02"`
}

// Policy returns the typed policy carried by the request.
func (r *UpdatePolicyRequest) Policy() Policy {
	return Policy{
		KellyFraction:      r.KellyFraction,
		MaxStakePct:        r.MaxStakePct,
		DefaultEVThreshold: r.DefaultEVThreshold,
	}
}

// ListBetsFilters represents filters for ledger queries
// @Description Filters for searching and paging the bet history
type ListBetsFilters struct {
	Market     string `form:"market" example:"moneyline"`
	Result     string `form:"result" example:"open"`
	PlacedOnly bool   `form:"placed_only" example:"true"`
	SortBy     string `form:"sort_by" example:"created_at"`
	SortOrder  string `form:"sort_order" example:"desc"`
	Page       int    `form:"page" example:"1"`
	PerPage    int    `form:"per_page" example:"20"`
}

// SanitizeAndValidate cleans and validates the filter inputs.
func (f *ListBetsFilters) SanitizeAndValidate(v *validator.Validator, s sanitizer.HTMLStripperer) {
	f.Market = s.StripHTML(f.Market)
	f.Result = s.StripHTML(f.Result)
	f.SortBy = s.StripHTML(f.SortBy)
	f.SortOrder = s.StripHTML(f.SortOrder)

	v.Check(validator.MaxRunes(f.Market, 120), "market", "market must not exceed 120 characters")
	v.Check(validator.In(f.Result, "", "open", "win", "loss"), "result", "result must be open, win or loss")
	v.Check(validator.In(f.SortBy, "", "created_at", "settled_at", "ev", "stake", "decimal_odds"), "sort_by", "invalid sort field")
	v.Check(validator.In(f.SortOrder, "", "asc", "desc"), "sort_order", "sort order must be either asc or desc")
}

// Normalize applies paging and sorting defaults after validation.
func (f *ListBetsFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}
	if f.SortBy == "" {
		f.SortBy = "created_at"
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}
}

// BetResponse represents one ledger record in API responses
// @Description A considered or placed wager with its decision inputs and settlement state
type BetResponse struct {
	ID            uuid.UUID         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Ts            time.Time         `json:"ts" example:"2026-01-15T18:30:00Z"`
	Market        string            `json:"market" example:"moneyline"`
	Side          string            `json:"side" example:"DET ML"`
	ModelUsed     string            `json:"model_used" example:"power-ratings"`
	DecimalOdds   float64           `json:"decimal_odds" example:"2.5"`
	PModel        float64           `json:"p_model" example:"0.46"`
	PImplied      float64           `json:"p_implied" example:"0.4"`
	EV            float64           `json:"ev" example:"0.15"`
	Stake         float64           `json:"stake" example:"25"`
	Context       models.BetContext `json:"context" swaggertype:"object"`
	Result        string            `json:"result" example:"open"`
	PNL           float64           `json:"pnl" example:"0"`
	BankrollAfter *float64          `json:"bankroll_after" example:"1037.5"`
	SettledAt     *time.Time        `json:"settled_at,omitempty" example:"2026-01-16T04:10:00Z"`
}

// EvaluationResponse is the decision plus the full open record
// @Description The only thing evaluate exposes: the decision label, the record it appended, and the bankroll before this bet
type EvaluationResponse struct {
	BetResponse
	Decision    string  `json:"decision" example:"BET"`
	Confidence  float64 `json:"confidence" example:"1"`
	EVThreshold float64 `json:"ev_threshold" example:"0.02"`
	BankrollNow float64 `json:"bankroll_now" example:"1000"`
}

// BatchOfferError describes why one offer in a batch failed
// @Description Error detail for a single failed offer
type BatchOfferError struct {
	Code    string `json:"code" example:"UNKNOWN_MARKET"`
	Message string `json:"message" example:"no probability source registered for market: \"total\""`
}

// BatchOfferResult pairs an offer index with its evaluation or error
// @Description Per-offer outcome inside a batch evaluation
type BatchOfferResult struct {
	Index      int                 `json:"index" example:"0"`
	Evaluation *EvaluationResponse `json:"evaluation,omitempty"`
	Error      *BatchOfferError    `json:"error,omitempty"`
}

// BatchEvaluationResponse is the outcome of a batch evaluation
// @Description Per-offer results in input order plus evaluated/failed counts
type BatchEvaluationResponse struct {
	Results   []BatchOfferResult `json:"results"`
	Evaluated int                `json:"evaluated" example:"3"`
	Failed    int                `json:"failed" example:"1"`
}

// BetListResponse represents a paginated slice of the ledger
// @Description Paginated bet history
type BetListResponse struct {
	Bets    []BetResponse `json:"bets"`
	Total   int64         `json:"total" example:"42"`
	Page    int           `json:"page" example:"1"`
	PerPage int           `json:"per_page" example:"20"`
}

// BankrollResponse represents the running bankroll
// @Description Current paper-trading balance and its baseline
type BankrollResponse struct {
	Balance         float64    `json:"balance" example:"1037.5"`
	StartingBalance float64    `json:"starting_balance" example:"1000"`
	Profit          float64    `json:"profit" example:"37.5"`
	LastResetAt     *time.Time `json:"last_reset_at,omitempty" example:"2026-01-10T00:00:00Z"`
	UpdatedAt       time.Time  `json:"updated_at" example:"2026-01-16T04:10:00Z"`
}

// ToBetResponse converts a models.Bet to BetResponse
func ToBetResponse(bet *models.Bet) *BetResponse {
	return &BetResponse{
		ID:            bet.ID,
		Ts:            bet.CreatedAt,
		Market:        bet.Market,
		Side:          bet.Side,
		ModelUsed:     bet.ModelUsed,
		DecimalOdds:   bet.DecimalOdds,
		PModel:        bet.PModel,
		PImplied:      bet.PImplied,
		EV:            bet.EV,
		Stake:         bet.Stake,
		Context:       bet.Context,
		Result:        string(bet.Result),
		PNL:           bet.PNL,
		BankrollAfter: bet.BankrollAfter,
		SettledAt:     bet.SettledAt,
	}
}

// ToBetResponseList converts a slice of models.Bet to BetResponse
func ToBetResponseList(bets []models.Bet) []BetResponse {
	responses := make([]BetResponse, len(bets))
	for i := range bets {
		responses[i] = *ToBetResponse(&bets[i])
	}
	return responses
}

// ToEvaluationResponse converts an agent evaluation to the API shape.
func ToEvaluationResponse(eval *Evaluation) *EvaluationResponse {
	return &EvaluationResponse{
		BetResponse: *ToBetResponse(&eval.Bet),
		Decision:    eval.Decision,
		Confidence:  eval.Confidence,
		EVThreshold: eval.Threshold,
		BankrollNow: eval.BankrollNow,
	}
}

// ToBankrollResponse converts a models.Bankroll to BankrollResponse
func ToBankrollResponse(b models.Bankroll) *BankrollResponse {
	return &BankrollResponse{
		Balance:         b.Balance,
		StartingBalance: b.StartingBalance,
		Profit:          b.Profit(),
		LastResetAt:     b.LastResetAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
