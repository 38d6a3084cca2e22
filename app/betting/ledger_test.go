package betting

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddsmith/punt/models"
)

func newOpenBet(stake, decimalOdds float64) *models.Bet {
	return &models.Bet{
		ID:          uuid.New(),
		Market:      "moneyline",
		Side:        "DET ML",
		ModelUsed:   "static",
		DecimalOdds: decimalOdds,
		PModel:      0.46,
		PImplied:    1 / decimalOdds,
		EV:          ExpectedValue(0.46, decimalOdds),
		Stake:       stake,
		Context:     models.BetContext{"opp": "CHI"},
		Result:      models.BetResultOpen,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestLedger_Append(t *testing.T) {
	t.Run("assigns an id when missing", func(t *testing.T) {
		ledger := NewLedger(1000)
		bet := newOpenBet(25, 2.5)
		bet.ID = uuid.Nil

		require.NoError(t, ledger.Append(bet))
		assert.NotEqual(t, uuid.Nil, bet.ID)
		assert.Equal(t, 1, ledger.Len())
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		ledger := NewLedger(1000)
		bet := newOpenBet(25, 2.5)

		require.NoError(t, ledger.Append(bet))
		err := ledger.Append(bet)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrDuplicateBet)
		assert.Equal(t, 1, ledger.Len())
	})

	t.Run("stores a detached copy", func(t *testing.T) {
		ledger := NewLedger(1000)
		bet := newOpenBet(25, 2.5)
		require.NoError(t, ledger.Append(bet))

		bet.Stake = 9999
		bet.Context["opp"] = "mutated"

		stored, err := ledger.Get(bet.ID)
		require.NoError(t, err)
		assert.Equal(t, 25.0, stored.Stake)
		assert.Equal(t, "CHI", stored.Context["opp"])
	})

	t.Run("append never moves the bankroll", func(t *testing.T) {
		ledger := NewLedger(1000)
		require.NoError(t, ledger.Append(newOpenBet(25, 2.5)))
		assert.Equal(t, 1000.0, ledger.Balance())
	})
}

func TestLedger_Settle(t *testing.T) {
	t.Run("win pays stake times odds minus one", func(t *testing.T) {
		ledger := NewLedger(1000)
		bet := newOpenBet(25, 2.5)
		require.NoError(t, ledger.Append(bet))

		at := time.Now().UTC()
		settled, err := ledger.Settle(bet.ID, models.BetResultWin, at)
		require.NoError(t, err)

		assert.Equal(t, models.BetResultWin, settled.Result)
		assert.InDelta(t, 37.5, settled.PNL, 1e-9)
		assert.Equal(t, 1037.5, ledger.Balance())
		require.NotNil(t, settled.BankrollAfter)
		assert.InDelta(t, 1037.5, *settled.BankrollAfter, 1e-9)
		require.NotNil(t, settled.SettledAt)
		assert.Equal(t, at, *settled.SettledAt)
	})

	t.Run("loss costs the stake", func(t *testing.T) {
		ledger := NewLedger(1000)
		bet := newOpenBet(25, 2.5)
		require.NoError(t, ledger.Append(bet))

		settled, err := ledger.Settle(bet.ID, models.BetResultLoss, time.Now().UTC())
		require.NoError(t, err)

		assert.InDelta(t, -25.0, settled.PNL, 1e-9)
		assert.Equal(t, 975.0, ledger.Balance())
		require.NotNil(t, settled.BankrollAfter)
		assert.InDelta(t, 975.0, *settled.BankrollAfter, 1e-9)
	})

	t.Run("double settle is rejected and pays once", func(t *testing.T) {
		ledger := NewLedger(1000)
		bet := newOpenBet(25, 2.5)
		require.NoError(t, ledger.Append(bet))

		_, err := ledger.Settle(bet.ID, models.BetResultWin, time.Now().UTC())
		require.NoError(t, err)

		_, err = ledger.Settle(bet.ID, models.BetResultWin, time.Now().UTC())
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrBetNotOpen)
		assert.Equal(t, 1037.5, ledger.Balance())
	})

	t.Run("unknown id is rejected", func(t *testing.T) {
		ledger := NewLedger(1000)
		_, err := ledger.Settle(uuid.New(), models.BetResultWin, time.Now().UTC())
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrBetNotOpen)
	})

	t.Run("non-terminal outcome is rejected", func(t *testing.T) {
		ledger := NewLedger(1000)
		bet := newOpenBet(25, 2.5)
		require.NoError(t, ledger.Append(bet))

		_, err := ledger.Settle(bet.ID, models.BetResultOpen, time.Now().UTC())
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidOutcome)

		_, err = ledger.Settle(bet.ID, models.BetResult("push"), time.Now().UTC())
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidOutcome)
	})

	t.Run("zero-stake record settles with zero pnl", func(t *testing.T) {
		// A NO BET record is still settleable; the bankroll must not move.
		ledger := NewLedger(1000)
		bet := newOpenBet(0, 2.5)
		require.NoError(t, ledger.Append(bet))

		settled, err := ledger.Settle(bet.ID, models.BetResultWin, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, 0.0, settled.PNL)
		assert.Equal(t, 1000.0, ledger.Balance())
	})

	t.Run("bankroll may go negative", func(t *testing.T) {
		ledger := NewLedger(10)
		bet := newOpenBet(25, 2.5)
		require.NoError(t, ledger.Append(bet))

		_, err := ledger.Settle(bet.ID, models.BetResultLoss, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, -15.0, ledger.Balance())
	})
}

func TestLedger_CloneIsolation(t *testing.T) {
	ledger := NewLedger(1000)
	bet := newOpenBet(25, 2.5)
	require.NoError(t, ledger.Append(bet))

	got, err := ledger.Get(bet.ID)
	require.NoError(t, err)
	got.Stake = -1
	got.Context["opp"] = "mutated"

	all := ledger.Bets()
	require.Len(t, all, 1)
	all[0].Market = "mutated"

	fresh, err := ledger.Get(bet.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, fresh.Stake)
	assert.Equal(t, "CHI", fresh.Context["opp"])
	assert.Equal(t, "moneyline", fresh.Market)
}

func TestLedger_Get(t *testing.T) {
	ledger := NewLedger(1000)
	_, err := ledger.Get(uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestLedger_BetsKeepInsertionOrder(t *testing.T) {
	ledger := NewLedger(1000)
	first := newOpenBet(10, 2.0)
	second := newOpenBet(20, 3.0)
	third := newOpenBet(0, 1.5)

	require.NoError(t, ledger.Append(first))
	require.NoError(t, ledger.Append(second))
	require.NoError(t, ledger.Append(third))

	all := ledger.Bets()
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, third.ID, all[2].ID)
}

func TestLedger_Conservation(t *testing.T) {
	// Whatever the settlement order, the balance is the starting bankroll
	// plus the sum of settled pnl.
	ledger := NewLedger(1000)

	wins := []*models.Bet{newOpenBet(25, 2.5), newOpenBet(10, 3.0)}
	losses := []*models.Bet{newOpenBet(40, 1.8), newOpenBet(5, 2.2)}
	for _, b := range append(append([]*models.Bet{}, wins...), losses...) {
		require.NoError(t, ledger.Append(b))
	}

	expected := 1000.0
	for _, b := range wins {
		settled, err := ledger.Settle(b.ID, models.BetResultWin, time.Now().UTC())
		require.NoError(t, err)
		expected += settled.PNL
	}
	for _, b := range losses {
		settled, err := ledger.Settle(b.ID, models.BetResultLoss, time.Now().UTC())
		require.NoError(t, err)
		expected += settled.PNL
	}

	assert.InDelta(t, expected, ledger.Balance(), 1e-9)
	assert.InDelta(t, 1000.0+37.5+20.0-40.0-5.0, ledger.Balance(), 1e-9)
}

func TestLedger_ConcurrentSettles(t *testing.T) {
	ledger := NewLedger(1000)

	const n = 50
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		bet := newOpenBet(10, 2.0)
		require.NoError(t, ledger.Append(bet))
		ids = append(ids, bet.ID)
	}

	// Two goroutines race to settle each bet; exactly one may win.
	var wg sync.WaitGroup
	var mu sync.Mutex
	settledCount := 0
	for _, id := range ids {
		for g := 0; g < 2; g++ {
			wg.Add(1)
			go func(id uuid.UUID) {
				defer wg.Done()
				if _, err := ledger.Settle(id, models.BetResultWin, time.Now().UTC()); err == nil {
					mu.Lock()
					settledCount++
					mu.Unlock()
				}
			}(id)
		}
	}
	wg.Wait()

	assert.Equal(t, n, settledCount)
	assert.InDelta(t, 1000.0+n*10.0, ledger.Balance(), 1e-9)
}

func TestLedger_Reset(t *testing.T) {
	ledger := NewLedger(1000)
	bet := newOpenBet(25, 2.5)
	require.NoError(t, ledger.Append(bet))
	_, err := ledger.Settle(bet.ID, models.BetResultWin, time.Now().UTC())
	require.NoError(t, err)

	at := time.Now().UTC()
	bankroll := ledger.Reset(500, at)

	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, 500.0, ledger.Balance())
	assert.Equal(t, 500.0, bankroll.Balance)
	assert.Equal(t, 500.0, bankroll.StartingBalance)
	require.NotNil(t, bankroll.LastResetAt)
	assert.Equal(t, at, *bankroll.LastResetAt)

	// The settled history is gone entirely.
	_, err = ledger.Get(bet.ID)
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestLedger_Restore(t *testing.T) {
	t.Run("replaces state and keeps order", func(t *testing.T) {
		ledger := NewLedger(1000)
		require.NoError(t, ledger.Append(newOpenBet(1, 2.0)))

		first := *newOpenBet(10, 2.0)
		second := *newOpenBet(20, 3.0)
		bankroll := models.NewBankroll(750)
		bankroll.Balance = 800

		require.NoError(t, ledger.Restore([]models.Bet{first, second}, bankroll))

		assert.Equal(t, 2, ledger.Len())
		assert.Equal(t, 800.0, ledger.Balance())
		all := ledger.Bets()
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
	})

	t.Run("rejects an empty id", func(t *testing.T) {
		ledger := NewLedger(1000)
		bad := *newOpenBet(10, 2.0)
		bad.ID = uuid.Nil
		err := ledger.Restore([]models.Bet{bad}, models.NewBankroll(1000))
		require.Error(t, err)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		ledger := NewLedger(1000)
		bet := *newOpenBet(10, 2.0)
		err := ledger.Restore([]models.Bet{bet, bet}, models.NewBankroll(1000))
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrDuplicateBet)
	})
}
