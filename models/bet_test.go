package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBetResult(t *testing.T) {
	t.Run("IsTerminal", func(t *testing.T) {
		assert.False(t, BetResultOpen.IsTerminal())
		assert.True(t, BetResultWin.IsTerminal())
		assert.True(t, BetResultLoss.IsTerminal())
		assert.False(t, BetResult("push").IsTerminal())
	})

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, BetResultOpen.Valid())
		assert.True(t, BetResultWin.Valid())
		assert.True(t, BetResultLoss.Valid())
		assert.False(t, BetResult("void").Valid())
		assert.False(t, BetResult("").Valid())
	})
}

func TestBetContext(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		ctx := BetContext{
			"home_rating": 1520.0,
			"away_rating": 1480.0,
			"pick":        "home",
		}

		value, err := ctx.Value()
		assert.NoError(t, err)
		assert.NotNil(t, value)

		var result BetContext
		err = json.Unmarshal(value.([]byte), &result)
		assert.NoError(t, err)
		assert.Equal(t, "home", result["pick"])
		assert.Equal(t, 1520.0, result["home_rating"])
	})

	t.Run("Value nil", func(t *testing.T) {
		var ctx BetContext
		value, err := ctx.Value()
		assert.NoError(t, err)
		assert.Equal(t, []byte("{}"), value)
	})

	t.Run("Scan", func(t *testing.T) {
		jsonData := `{"bookmaker":"draftkings","line":-3.5}`

		var ctx BetContext
		err := ctx.Scan([]byte(jsonData))
		assert.NoError(t, err)
		assert.Equal(t, "draftkings", ctx["bookmaker"])
		assert.Equal(t, -3.5, ctx["line"])

		err = ctx.Scan(jsonData)
		assert.NoError(t, err)

		err = ctx.Scan(nil)
		assert.NoError(t, err)

		err = ctx.Scan(42)
		assert.Nil(t, err)
	})

	t.Run("Clone", func(t *testing.T) {
		ctx := BetContext{"pick": "home"}
		cp := ctx.Clone()
		cp["pick"] = "away"
		assert.Equal(t, "home", ctx["pick"])

		var empty BetContext
		assert.Nil(t, empty.Clone())
	})
}

func TestBet(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		b := Bet{}
		assert.Equal(t, "bets", b.TableName())
	})

	t.Run("BeforeCreate", func(t *testing.T) {
		b := Bet{}
		assert.Equal(t, uuid.Nil, b.ID)

		err := b.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, b.ID)

		existingID := uuid.New()
		b2 := Bet{ID: existingID}
		err = b2.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.Equal(t, existingID, b2.ID)
	})

	t.Run("State checks", func(t *testing.T) {
		b := Bet{Result: BetResultOpen}
		assert.True(t, b.IsOpen())
		assert.False(t, b.IsSettled())

		b.Result = BetResultWin
		assert.False(t, b.IsOpen())
		assert.True(t, b.IsSettled())
	})

	t.Run("Placed", func(t *testing.T) {
		assert.True(t, (&Bet{Stake: 25}).Placed())
		assert.False(t, (&Bet{Stake: 0}).Placed())
	})

	t.Run("ProfitIfWin", func(t *testing.T) {
		b := Bet{Stake: 25, DecimalOdds: 2.5}
		assert.InDelta(t, 37.5, b.ProfitIfWin(), 1e-9)
	})

	t.Run("Settle win", func(t *testing.T) {
		b := Bet{Result: BetResultOpen, Stake: 25, DecimalOdds: 2.5}
		now := time.Now()

		err := b.Settle(BetResultWin, now)
		assert.NoError(t, err)
		assert.Equal(t, BetResultWin, b.Result)
		assert.InDelta(t, 37.5, b.PNL, 1e-9)
		assert.NotNil(t, b.SettledAt)
		assert.Equal(t, now, *b.SettledAt)
	})

	t.Run("Settle loss", func(t *testing.T) {
		b := Bet{Result: BetResultOpen, Stake: 25, DecimalOdds: 2.5}

		err := b.Settle(BetResultLoss, time.Now())
		assert.NoError(t, err)
		assert.Equal(t, BetResultLoss, b.Result)
		assert.InDelta(t, -25.0, b.PNL, 1e-9)
	})

	t.Run("Settle twice", func(t *testing.T) {
		b := Bet{Result: BetResultOpen, Stake: 10, DecimalOdds: 2.0}

		err := b.Settle(BetResultWin, time.Now())
		assert.NoError(t, err)

		err = b.Settle(BetResultLoss, time.Now())
		assert.ErrorIs(t, err, ErrBetNotOpen)
		assert.Equal(t, BetResultWin, b.Result)
		assert.InDelta(t, 10.0, b.PNL, 1e-9)
	})

	t.Run("Settle invalid outcome", func(t *testing.T) {
		b := Bet{Result: BetResultOpen, Stake: 10, DecimalOdds: 2.0}

		err := b.Settle(BetResultOpen, time.Now())
		assert.ErrorIs(t, err, ErrInvalidOutcome)
		assert.True(t, b.IsOpen())

		err = b.Settle(BetResult("push"), time.Now())
		assert.ErrorIs(t, err, ErrInvalidOutcome)
		assert.True(t, b.IsOpen())
	})

	t.Run("Settle zero stake", func(t *testing.T) {
		b := Bet{Result: BetResultOpen, Stake: 0, DecimalOdds: 2.5}

		err := b.Settle(BetResultWin, time.Now())
		assert.NoError(t, err)
		assert.Zero(t, b.PNL)
	})

	t.Run("Clone", func(t *testing.T) {
		bankroll := 1037.5
		settledAt := time.Now()
		b := Bet{
			ID:            uuid.New(),
			Market:        MarketMoneyline,
			Side:          "DET ML",
			Stake:         25,
			DecimalOdds:   2.5,
			Context:       BetContext{"pick": "home"},
			Result:        BetResultWin,
			PNL:           37.5,
			BankrollAfter: &bankroll,
			SettledAt:     &settledAt,
		}

		cp := b.Clone()
		cp.Context["pick"] = "away"
		*cp.BankrollAfter = 0
		*cp.SettledAt = time.Time{}

		assert.Equal(t, "home", b.Context["pick"])
		assert.Equal(t, 1037.5, *b.BankrollAfter)
		assert.Equal(t, settledAt, *b.SettledAt)
		assert.Equal(t, b.ID, cp.ID)
	})

	t.Run("Validate", func(t *testing.T) {
		valid := Bet{
			Market: MarketMoneyline,
			Side:   "DET ML",
			PModel: 0.46,
			Stake:  25,
			Result: BetResultOpen,
		}
		assert.NoError(t, valid.Validate())

		b := valid
		b.Market = ""
		assert.ErrorIs(t, b.Validate(), ErrInvalidMarket)

		b = valid
		b.Side = ""
		assert.ErrorIs(t, b.Validate(), ErrInvalidSide)

		b = valid
		b.PModel = 1.2
		assert.ErrorIs(t, b.Validate(), ErrInvalidProbability)

		b = valid
		b.PModel = -0.1
		assert.ErrorIs(t, b.Validate(), ErrInvalidProbability)

		b = valid
		b.Stake = -5
		assert.ErrorIs(t, b.Validate(), ErrInvalidStake)

		b = valid
		b.Result = BetResult("void")
		assert.ErrorIs(t, b.Validate(), ErrInvalidOutcome)
	})
}
