package betting

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oddsmith/punt/models"
)

// Ledger is the in-memory bet state machine and the runtime owner of the
// bankroll. Records enter open, settle exactly once to win or loss, and are
// never deleted. Every mutation holds the write lock; every read hands out
// detached copies, so callers can never reach into live state.
type Ledger struct {
	mu       sync.RWMutex
	bets     map[uuid.UUID]*models.Bet
	order    []uuid.UUID
	bankroll models.Bankroll
}

// NewLedger opens an empty ledger at the given starting bankroll.
func NewLedger(startingBankroll float64) *Ledger {
	return &Ledger{
		bets:     make(map[uuid.UUID]*models.Bet),
		bankroll: *models.NewBankroll(startingBankroll),
	}
}

// Append records a new open bet. The bankroll is untouched; only settlement
// moves money.
func (l *Ledger) Append(bet *models.Bet) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if bet.ID == uuid.Nil {
		bet.ID = uuid.New()
	}
	if _, exists := l.bets[bet.ID]; exists {
		return fmt.Errorf("%w: %s", models.ErrDuplicateBet, bet.ID)
	}

	l.bets[bet.ID] = bet.Clone()
	l.order = append(l.order, bet.ID)
	return nil
}

// Settle moves an open bet to a terminal result, applies its pnl to the
// bankroll exactly once, and stamps the post-settlement snapshot. A win pays
// stake*(dec-1); a loss costs the stake. Settling an id that is unknown or
// no longer open is a hard failure so a retry can never double-apply money.
func (l *Ledger) Settle(id uuid.UUID, outcome models.BetResult, at time.Time) (*models.Bet, error) {
	if !outcome.IsTerminal() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidOutcome, outcome)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bet, ok := l.bets[id]
	if !ok || !bet.IsOpen() {
		return nil, fmt.Errorf("%w: %s", models.ErrBetNotOpen, id)
	}
	if err := bet.Settle(outcome, at); err != nil {
		return nil, err
	}

	balance := l.bankroll.Apply(bet.PNL)
	bet.BankrollAfter = &balance

	return bet.Clone(), nil
}

// Get returns a copy of a single record, open or settled.
func (l *Ledger) Get(id uuid.UUID) (*models.Bet, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bet, ok := l.bets[id]
	if !ok {
		return nil, fmt.Errorf("%w: bet %s", models.ErrRecordNotFound, id)
	}
	return bet.Clone(), nil
}

// Bets returns copies of every record in insertion order, oldest first.
func (l *Ledger) Bets() []models.Bet {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Bet, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.bets[id].Clone())
	}
	return out
}

// Len returns the number of records, settled ones included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bets)
}

// Balance returns the current bankroll balance.
func (l *Ledger) Balance() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bankroll.Balance
}

// Bankroll returns a copy of the bankroll state.
func (l *Ledger) Bankroll() models.Bankroll {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return *l.bankroll.Clone()
}

// Reset clears the history and rebaselines the bankroll at the given amount.
func (l *Ledger) Reset(amount float64, at time.Time) models.Bankroll {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bets = make(map[uuid.UUID]*models.Bet)
	l.order = nil
	l.bankroll.Reset(amount, at)

	return *l.bankroll.Clone()
}

// Restore rehydrates the ledger from the durable store, replacing whatever
// it currently holds. Bets must arrive in their original insertion order.
func (l *Ledger) Restore(bets []models.Bet, bankroll *models.Bankroll) error {
	rebuilt := make(map[uuid.UUID]*models.Bet, len(bets))
	order := make([]uuid.UUID, 0, len(bets))
	for i := range bets {
		bet := &bets[i]
		if bet.ID == uuid.Nil {
			return fmt.Errorf("%w: restore with empty id", models.ErrRecordNotFound)
		}
		if _, exists := rebuilt[bet.ID]; exists {
			return fmt.Errorf("%w: %s", models.ErrDuplicateBet, bet.ID)
		}
		rebuilt[bet.ID] = bet.Clone()
		order = append(order, bet.ID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.bets = rebuilt
	l.order = order
	if bankroll != nil {
		l.bankroll = *bankroll.Clone()
	}
	return nil
}
