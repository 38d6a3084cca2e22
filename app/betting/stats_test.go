package betting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddsmith/punt/models"
)

func TestComputeStats(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		ledger := NewLedger(1000)
		stats := ComputeStats(ledger.Bets(), ledger.Bankroll())

		assert.Equal(t, 0, stats.TotalBets)
		assert.Equal(t, 0.0, stats.WinRate)
		assert.Equal(t, 0.0, stats.ROI)
		assert.Equal(t, 1000.0, stats.CurrentBankroll)
		assert.Equal(t, 1000.0, stats.StartingBankroll)
	})

	t.Run("mixed history", func(t *testing.T) {
		ledger := NewLedger(1000)

		noBet := newOpenBet(0, 2.5)
		open := newOpenBet(75, 2.0)
		winA := newOpenBet(25, 2.5)
		winB := newOpenBet(10, 3.0)
		loss := newOpenBet(40, 1.8)
		for _, b := range []*models.Bet{noBet, open, winA, winB, loss} {
			require.NoError(t, ledger.Append(b))
		}

		now := time.Now().UTC()
		_, err := ledger.Settle(winA.ID, models.BetResultWin, now)
		require.NoError(t, err)
		_, err = ledger.Settle(winB.ID, models.BetResultWin, now)
		require.NoError(t, err)
		_, err = ledger.Settle(loss.ID, models.BetResultLoss, now)
		require.NoError(t, err)

		stats := ComputeStats(ledger.Bets(), ledger.Bankroll())

		// The zero-stake record is not a bet for reporting purposes.
		assert.Equal(t, 4, stats.TotalBets)
		assert.Equal(t, 1, stats.OpenBets)
		assert.Equal(t, 3, stats.SettledBets)
		assert.Equal(t, 2, stats.Wins)
		assert.Equal(t, 1, stats.Losses)

		assert.Equal(t, 66.67, stats.WinRate)
		assert.Equal(t, 150.0, stats.TotalStaked)
		assert.Equal(t, 75.0, stats.OpenStake)
		assert.Equal(t, 17.5, stats.TotalProfit)
		assert.Equal(t, 1.75, stats.ROI)
		assert.Equal(t, 1017.5, stats.CurrentBankroll)
		assert.Equal(t, 1000.0, stats.StartingBankroll)
	})

	t.Run("no-bet-only history reports nothing", func(t *testing.T) {
		ledger := NewLedger(1000)
		require.NoError(t, ledger.Append(newOpenBet(0, 2.5)))
		require.NoError(t, ledger.Append(newOpenBet(0, 1.9)))

		stats := ComputeStats(ledger.Bets(), ledger.Bankroll())
		assert.Equal(t, 0, stats.TotalBets)
		assert.Equal(t, 0.0, stats.TotalStaked)
		assert.Equal(t, 0.0, stats.WinRate)
	})

	t.Run("money fields round to two places", func(t *testing.T) {
		ledger := NewLedger(1000)
		bet := newOpenBet(10, 1.8333333333)
		require.NoError(t, ledger.Append(bet))
		_, err := ledger.Settle(bet.ID, models.BetResultWin, time.Now().UTC())
		require.NoError(t, err)

		stats := ComputeStats(ledger.Bets(), ledger.Bankroll())
		assert.Equal(t, 8.33, stats.TotalProfit)
		assert.Equal(t, 0.83, stats.ROI)
		assert.Equal(t, 100.0, stats.WinRate)
	})

	t.Run("roi follows the reset baseline", func(t *testing.T) {
		ledger := NewLedger(1000)
		ledger.Reset(500, time.Now().UTC())

		bet := newOpenBet(50, 2.0)
		require.NoError(t, ledger.Append(bet))
		_, err := ledger.Settle(bet.ID, models.BetResultWin, time.Now().UTC())
		require.NoError(t, err)

		stats := ComputeStats(ledger.Bets(), ledger.Bankroll())
		assert.Equal(t, 10.0, stats.ROI)
		assert.Equal(t, 550.0, stats.CurrentBankroll)
		assert.Equal(t, 500.0, stats.StartingBankroll)
	})
}
