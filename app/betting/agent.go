package betting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oddsmith/punt/app/probability"
	"github.com/oddsmith/punt/models"
)

// Decision labels returned by Evaluate.
const (
	DecisionBet   = "BET"
	DecisionNoBet = "NO BET"
)

// EvaluateInput is one market offer to run through the decision pipeline.
type EvaluateInput struct {
	Market     string
	Side       string
	OddsValue  float64
	OddsFormat string
	Context    models.BetContext

	// EVThreshold overrides the policy default for this call only.
	EVThreshold *float64
}

// Evaluation is the decision plus the full open record behind it. Bet is a
// detached copy; BankrollNow is the balance before this bet, which evaluate
// never moves.
type Evaluation struct {
	Bet         models.Bet
	Decision    string
	Confidence  float64
	Threshold   float64
	BankrollNow float64
}

// Placed reports whether the evaluation recommends real money.
func (e *Evaluation) Placed() bool {
	return e.Decision == DecisionBet && e.Bet.Stake > 0
}

// Agent composes the odds math, the probability sources, and the ledger into
// the evaluate/settle contract. It holds exactly the ledger, the policy, and
// the source registry; construct one per bankroll and inject it, there is no
// package-level instance.
type Agent struct {
	mu               sync.RWMutex
	policy           Policy
	startingBankroll float64

	ledger   *Ledger
	registry *probability.Registry
}

// NewAgent wires an agent over an existing ledger and source registry.
func NewAgent(cfg *Config, ledger *Ledger, registry *probability.Registry) *Agent {
	return &Agent{
		policy:           cfg.Policy(),
		startingBankroll: cfg.StartingBankroll,
		ledger:           ledger,
		registry:         registry,
	}
}

// Policy returns the current staking policy.
func (a *Agent) Policy() Policy {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.policy
}

// SetPolicy swaps the staking policy. The next evaluate reads the new
// values; in-flight records are untouched.
func (a *Agent) SetPolicy(p Policy) error {
	if err := p.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.policy = p
	return nil
}

// Propose runs an offer through pricing, prediction, and sizing without
// recording anything. Every failure path leaves the ledger untouched.
func (a *Agent) Propose(ctx context.Context, in EvaluateInput) (*Evaluation, error) {
	dec, err := ToDecimal(in.OddsValue, in.OddsFormat)
	if err != nil {
		return nil, err
	}
	pImplied := ImpliedProbability(dec)

	src, err := a.registry.Resolve(in.Market)
	if err != nil {
		return nil, err
	}

	pred, err := src.Predict(ctx, in.Market, in.Context)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrProbabilitySource, err)
	}
	if err := pred.Validate(); err != nil {
		return nil, fmt.Errorf("%w: source %q: %w", models.ErrProbabilitySource, src.Name(), err)
	}
	if pred.ModelName == "" {
		pred.ModelName = src.Name()
	}

	ev := ExpectedValue(pred.PModel, dec)

	policy := a.Policy()
	threshold := policy.DefaultEVThreshold
	if in.EVThreshold != nil {
		threshold = *in.EVThreshold
	}

	decision := DecisionNoBet
	stake := 0.0
	bankroll := a.ledger.Balance()
	if ev >= threshold {
		decision = DecisionBet
		stake = StakeSize(pred.PModel, dec, bankroll, policy.KellyFraction, policy.MaxStakePct)
	}

	bet := models.Bet{
		ID:          uuid.New(),
		Market:      in.Market,
		Side:        in.Side,
		ModelUsed:   pred.ModelName,
		DecimalOdds: dec,
		PModel:      pred.PModel,
		PImplied:    pImplied,
		EV:          ev,
		Stake:       stake,
		Context:     in.Context.Clone(),
		Result:      models.BetResultOpen,
		CreatedAt:   time.Now().UTC(),
	}

	return &Evaluation{
		Bet:         bet,
		Decision:    decision,
		Confidence:  Confidence(ev),
		Threshold:   threshold,
		BankrollNow: bankroll,
	}, nil
}

// Evaluate proposes a decision for the offer and appends the open record to
// the ledger. Both BET and NO BET decisions are recorded; a NO BET record
// carries zero stake and can never move the bankroll.
func (a *Agent) Evaluate(ctx context.Context, in EvaluateInput) (*Evaluation, error) {
	eval, err := a.Propose(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := a.ledger.Append(&eval.Bet); err != nil {
		return nil, err
	}
	return eval, nil
}

// Settle closes an open bet as a win or loss and returns the settled record
// with its pnl and post-settlement bankroll snapshot.
func (a *Agent) Settle(_ context.Context, id uuid.UUID, outcome models.BetResult) (*models.Bet, error) {
	return a.ledger.Settle(id, outcome, time.Now().UTC())
}

// Bankroll returns a copy of the current bankroll state.
func (a *Agent) Bankroll() models.Bankroll {
	return a.ledger.Bankroll()
}

// Stats aggregates the current ledger snapshot.
func (a *Agent) Stats() PerformanceStats {
	return ComputeStats(a.ledger.Bets(), a.ledger.Bankroll())
}

// Reset clears the ledger and rebaselines the bankroll. With no amount the
// configured starting bankroll is restored.
func (a *Agent) Reset(amount *float64) models.Bankroll {
	target := a.startingBankroll
	if amount != nil {
		target = *amount
	}
	return a.ledger.Reset(target, time.Now().UTC())
}

// StartingBankroll returns the boot-time bankroll the agent falls back to
// on reset.
func (a *Agent) StartingBankroll() float64 {
	return a.startingBankroll
}

// Markets lists the market names the agent can price, sorted.
func (a *Agent) Markets() []string {
	return a.registry.Markets()
}
