package betting

import (
	"github.com/shopspring/decimal"

	"github.com/oddsmith/punt/models"
)

// PerformanceStats summarizes the paper-trading record. Records that carry
// no stake document NO BET decisions and are excluded from every count;
// win rate is measured over settled bets only. Money fields are rounded to
// two places here because stats are presentation, unlike the engine math.
type PerformanceStats struct {
	TotalBets        int     `json:"total_bets" example:"42"`
	OpenBets         int     `json:"open_bets" example:"3"`
	SettledBets      int     `json:"settled_bets" example:"39"`
	Wins             int     `json:"wins" example:"22"`
	Losses           int     `json:"losses" example:"17"`
	WinRate          float64 `json:"win_rate" example:"56.41"`
	TotalStaked      float64 `json:"total_staked" example:"1260.50"`
	OpenStake        float64 `json:"open_stake" example:"75.00"`
	TotalProfit      float64 `json:"total_profit" example:"189.25"`
	ROI              float64 `json:"roi" example:"18.93"`
	CurrentBankroll  float64 `json:"current_bankroll" example:"1189.25"`
	StartingBankroll float64 `json:"starting_bankroll" example:"1000.00"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeStats aggregates a ledger snapshot. Sums run through
// decimal.Decimal so long histories do not accumulate float drift.
func ComputeStats(bets []models.Bet, bankroll models.Bankroll) PerformanceStats {
	stats := PerformanceStats{}

	totalStaked := decimal.Zero
	openStake := decimal.Zero
	totalProfit := decimal.Zero

	for i := range bets {
		bet := &bets[i]
		if !bet.Placed() {
			continue
		}

		stats.TotalBets++
		stake := decimal.NewFromFloat(bet.Stake)
		totalStaked = totalStaked.Add(stake)

		if bet.IsOpen() {
			stats.OpenBets++
			openStake = openStake.Add(stake)
			continue
		}

		stats.SettledBets++
		if bet.Result == models.BetResultWin {
			stats.Wins++
		} else {
			stats.Losses++
		}
		totalProfit = totalProfit.Add(decimal.NewFromFloat(bet.PNL))
	}

	if stats.SettledBets > 0 {
		winRate := decimal.NewFromInt(int64(stats.Wins)).
			Div(decimal.NewFromInt(int64(stats.SettledBets))).
			Mul(oneHundred)
		stats.WinRate = winRate.Round(2).InexactFloat64()
	}

	starting := decimal.NewFromFloat(bankroll.StartingBalance)
	if starting.IsPositive() {
		stats.ROI = totalProfit.Div(starting).Mul(oneHundred).Round(2).InexactFloat64()
	}

	stats.TotalStaked = totalStaked.Round(2).InexactFloat64()
	stats.OpenStake = openStake.Round(2).InexactFloat64()
	stats.TotalProfit = totalProfit.Round(2).InexactFloat64()
	stats.CurrentBankroll = decimal.NewFromFloat(bankroll.Balance).Round(2).InexactFloat64()
	stats.StartingBankroll = decimal.NewFromFloat(bankroll.StartingBalance).Round(2).InexactFloat64()

	return stats
}
