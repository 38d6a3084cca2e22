package betting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oddsmith/punt/app/probability"
	"github.com/oddsmith/punt/models"
)

func newTestAgent(t *testing.T, src probability.Source) (*Agent, *Ledger) {
	t.Helper()
	registry := probability.NewRegistry()
	registry.Register("moneyline", src)
	ledger := NewLedger(1000)
	return NewAgent(GetDefaultConfig(), ledger, registry), ledger
}

func staticSource(t *testing.T, name string, p float64) *probability.StaticSource {
	t.Helper()
	src, err := probability.NewStaticSource(name, p)
	require.NoError(t, err)
	return src
}

func TestAgent_Evaluate_BetPath(t *testing.T) {
	agent, ledger := newTestAgent(t, staticSource(t, "power-model", 0.46))

	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market:    "moneyline",
		Side:      "DET ML",
		OddsValue: 2.5,
		Context:   models.BetContext{"opp": "CHI"},
	})
	require.NoError(t, err)

	assert.Equal(t, DecisionBet, eval.Decision)
	assert.InDelta(t, 0.15, eval.Bet.EV, 1e-9)
	assert.InDelta(t, 25.0, eval.Bet.Stake, 1e-9)
	assert.InDelta(t, 0.4, eval.Bet.PImplied, 1e-9)
	assert.Equal(t, 0.46, eval.Bet.PModel)
	assert.Equal(t, "power-model", eval.Bet.ModelUsed)
	assert.Equal(t, 2.5, eval.Bet.DecimalOdds)
	assert.Equal(t, models.BetResultOpen, eval.Bet.Result)
	assert.Equal(t, 1.0, eval.Confidence)
	assert.Equal(t, 0.02, eval.Threshold)

	// Evaluate never moves money; the snapshot is the pre-bet balance.
	assert.Equal(t, 1000.0, eval.BankrollNow)
	assert.Equal(t, 1000.0, ledger.Balance())

	stored, err := ledger.Get(eval.Bet.ID)
	require.NoError(t, err)
	assert.Equal(t, eval.Bet.Stake, stored.Stake)
}

func TestAgent_Evaluate_NoBetIsRecorded(t *testing.T) {
	agent, ledger := newTestAgent(t, staticSource(t, "power-model", 0.35))

	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market:    "moneyline",
		Side:      "DET ML",
		OddsValue: 2.5,
	})
	require.NoError(t, err)

	assert.Equal(t, DecisionNoBet, eval.Decision)
	assert.InDelta(t, -0.125, eval.Bet.EV, 1e-9)
	assert.Equal(t, 0.0, eval.Bet.Stake)
	assert.Equal(t, 1, ledger.Len(), "a NO BET decision still leaves a record")

	// Settling the pass leaves the bankroll exactly where it was.
	settled, err := agent.Settle(context.Background(), eval.Bet.ID, models.BetResultWin)
	require.NoError(t, err)
	assert.Equal(t, 0.0, settled.PNL)
	assert.Equal(t, 1000.0, ledger.Balance())
}

func TestAgent_Evaluate_AmericanOdds(t *testing.T) {
	agent, _ := newTestAgent(t, staticSource(t, "power-model", 0.46))

	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market:     "moneyline",
		Side:       "DET ML",
		OddsValue:  150,
		OddsFormat: "american",
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, eval.Bet.DecimalOdds)
	assert.InDelta(t, 25.0, eval.Bet.Stake, 1e-9)
}

func TestAgent_Evaluate_ThresholdOverride(t *testing.T) {
	// p=0.42 at 2.5 gives ev = 0.05: above the 0.02 default, below 0.10.
	agent, _ := newTestAgent(t, staticSource(t, "power-model", 0.42))

	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market: "moneyline", Side: "DET ML", OddsValue: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, DecisionBet, eval.Decision)

	override := 0.10
	eval, err = agent.Evaluate(context.Background(), EvaluateInput{
		Market: "moneyline", Side: "DET ML", OddsValue: 2.5,
		EVThreshold: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, DecisionNoBet, eval.Decision)
	assert.Equal(t, 0.10, eval.Threshold)
	assert.Equal(t, 0.0, eval.Bet.Stake)
}

func TestAgent_Evaluate_BetLabelDoesNotRequireStake(t *testing.T) {
	// The decision label follows ev against the threshold alone. With a
	// permissive override a negative edge still reads BET, but Kelly
	// sizes it to zero.
	agent, _ := newTestAgent(t, staticSource(t, "power-model", 0.35))

	override := -0.20
	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market: "moneyline", Side: "DET ML", OddsValue: 2.5,
		EVThreshold: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, DecisionBet, eval.Decision)
	assert.Equal(t, 0.0, eval.Bet.Stake)
}

func TestAgent_PolicyHotSwap(t *testing.T) {
	agent, _ := newTestAgent(t, staticSource(t, "power-model", 0.46))

	require.NoError(t, agent.SetPolicy(Policy{
		KellyFraction:      0.5,
		MaxStakePct:        0.10,
		DefaultEVThreshold: 0.02,
	}))

	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market: "moneyline", Side: "DET ML", OddsValue: 2.5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 50.0, eval.Bet.Stake, 1e-9, "half Kelly doubles the quarter-Kelly stake")

	t.Run("invalid policy is rejected and keeps the old one", func(t *testing.T) {
		err := agent.SetPolicy(Policy{KellyFraction: 0, MaxStakePct: 0.10, DefaultEVThreshold: 0.02})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidKellyFraction)
		assert.Equal(t, 0.5, agent.Policy().KellyFraction)
	})
}

func TestAgent_Evaluate_FailuresLeaveNoRecord(t *testing.T) {
	t.Run("bad odds format", func(t *testing.T) {
		agent, ledger := newTestAgent(t, staticSource(t, "power-model", 0.46))
		_, err := agent.Evaluate(context.Background(), EvaluateInput{
			Market: "moneyline", Side: "DET ML", OddsValue: 2.5, OddsFormat: "fractional",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidOddsFormat)
		assert.Equal(t, 0, ledger.Len())
	})

	t.Run("unknown market", func(t *testing.T) {
		agent, ledger := newTestAgent(t, staticSource(t, "power-model", 0.46))
		_, err := agent.Evaluate(context.Background(), EvaluateInput{
			Market: "spread", Side: "DET -3.5", OddsValue: 1.91,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrUnknownMarket)
		assert.Equal(t, 0, ledger.Len())
	})

	t.Run("source failure", func(t *testing.T) {
		src := &probability.MockSource{}
		src.On("Name").Return("flaky")
		src.On("Predict", mock.Anything, mock.Anything, mock.Anything).
			Return(probability.Prediction{}, errors.New("model service down"))

		agent, ledger := newTestAgent(t, src)
		_, err := agent.Evaluate(context.Background(), EvaluateInput{
			Market: "moneyline", Side: "DET ML", OddsValue: 2.5,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrProbabilitySource)
		assert.Contains(t, err.Error(), "model service down")
		assert.Equal(t, 0, ledger.Len())
	})

	t.Run("out-of-range probability", func(t *testing.T) {
		src := &probability.MockSource{}
		src.On("Name").Return("broken")
		src.On("Predict", mock.Anything, mock.Anything, mock.Anything).
			Return(probability.Prediction{PModel: 1.5, ModelName: "broken-v2"}, nil)

		agent, ledger := newTestAgent(t, src)
		_, err := agent.Evaluate(context.Background(), EvaluateInput{
			Market: "moneyline", Side: "DET ML", OddsValue: 2.5,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrProbabilitySource)
		assert.Contains(t, err.Error(), "broken")
		assert.Equal(t, 0, ledger.Len())
	})
}

func TestAgent_Evaluate_ModelNameFallback(t *testing.T) {
	src := &probability.MockSource{}
	src.On("Name").Return("ensemble-a")
	src.On("Predict", mock.Anything, mock.Anything, mock.Anything).
		Return(probability.Prediction{PModel: 0.46}, nil)

	agent, _ := newTestAgent(t, src)
	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market: "moneyline", Side: "DET ML", OddsValue: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "ensemble-a", eval.Bet.ModelUsed)
}

func TestAgent_Evaluate_ContextIsDetached(t *testing.T) {
	agent, ledger := newTestAgent(t, staticSource(t, "power-model", 0.46))

	betCtx := models.BetContext{"opp": "CHI"}
	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market: "moneyline", Side: "DET ML", OddsValue: 2.5, Context: betCtx,
	})
	require.NoError(t, err)

	betCtx["opp"] = "mutated"
	stored, err := ledger.Get(eval.Bet.ID)
	require.NoError(t, err)
	assert.Equal(t, "CHI", stored.Context["opp"])
}

func TestAgent_SettleAndBankroll(t *testing.T) {
	agent, _ := newTestAgent(t, staticSource(t, "power-model", 0.46))

	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market: "moneyline", Side: "DET ML", OddsValue: 2.5,
	})
	require.NoError(t, err)

	settled, err := agent.Settle(context.Background(), eval.Bet.ID, models.BetResultWin)
	require.NoError(t, err)
	assert.InDelta(t, 37.5, settled.PNL, 1e-9)
	assert.Equal(t, 1037.5, agent.Bankroll().Balance)

	_, err = agent.Settle(context.Background(), eval.Bet.ID, models.BetResultWin)
	assert.ErrorIs(t, err, models.ErrBetNotOpen)
}

func TestAgent_Reset(t *testing.T) {
	agent, ledger := newTestAgent(t, staticSource(t, "power-model", 0.46))

	eval, err := agent.Evaluate(context.Background(), EvaluateInput{
		Market: "moneyline", Side: "DET ML", OddsValue: 2.5,
	})
	require.NoError(t, err)
	_, err = agent.Settle(context.Background(), eval.Bet.ID, models.BetResultLoss)
	require.NoError(t, err)

	t.Run("explicit amount", func(t *testing.T) {
		amount := 2500.0
		bankroll := agent.Reset(&amount)
		assert.Equal(t, 2500.0, bankroll.Balance)
		assert.Equal(t, 0, ledger.Len())
	})

	t.Run("default amount restores the starting bankroll", func(t *testing.T) {
		bankroll := agent.Reset(nil)
		assert.Equal(t, 1000.0, bankroll.Balance)
		assert.Equal(t, 1000.0, bankroll.StartingBalance)
	})
}

func TestAgent_Markets(t *testing.T) {
	registry := probability.NewRegistry()
	registry.Register("total", staticSource(t, "a", 0.5))
	registry.Register("moneyline", staticSource(t, "b", 0.5))

	agent := NewAgent(GetDefaultConfig(), NewLedger(1000), registry)
	assert.Equal(t, []string{"moneyline", "total"}, agent.Markets())
}
