package models

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BetResult represents the lifecycle state of a bet record.
type BetResult string

const (
	BetResultOpen BetResult = "open"
	BetResultWin  BetResult = "win"
	BetResultLoss BetResult = "loss"
)

// IsTerminal reports whether the result is a settled state.
func (r BetResult) IsTerminal() bool {
	return r == BetResultWin || r == BetResultLoss
}

// Valid reports whether the result is one of the known states.
func (r BetResult) Valid() bool {
	return r == BetResultOpen || r.IsTerminal()
}

// Market lanes understood by the documented offer shape. The source registry
// itself is open to additional lanes.
const (
	MarketMoneyline = "moneyline"
	MarketSpread    = "spread"
	MarketTotal     = "total"
)

// BetContext is the opaque context bundle attached to a bet for traceability.
// The engine stores and returns it but never interprets its keys.
type BetContext map[string]interface{}

// Value implements driver.Valuer interface
func (c BetContext) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner interface
func (c *BetContext) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return nil
}

// Clone returns a copy of the context map. Callers holding a snapshot cannot
// add or remove keys on the ledger's copy.
func (c BetContext) Clone() BetContext {
	if c == nil {
		return nil
	}
	out := make(BetContext, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Bet is one considered or placed wager. Records are created open by the
// agent's evaluate step and settled exactly once; they are never deleted.
type Bet struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Market        string     `gorm:"type:varchar(120);not null;index:idx_bets_market" json:"market"`
	Side          string     `gorm:"type:varchar(120);not null" json:"side"`
	ModelUsed     string     `gorm:"type:varchar(120);not null" json:"model_used"`
	DecimalOdds   float64    `gorm:"type:double precision;not null" json:"decimal_odds"`
	PModel        float64    `gorm:"type:double precision;not null" json:"p_model"`
	PImplied      float64    `gorm:"type:double precision;not null" json:"p_implied"`
	EV            float64    `gorm:"column:ev;type:double precision;not null" json:"ev"`
	Stake         float64    `gorm:"type:double precision;not null" json:"stake"`
	Context       BetContext `gorm:"type:jsonb;default:'{}'" json:"context"`
	Result        BetResult  `gorm:"type:varchar(10);not null;default:'open';index:idx_bets_result" json:"result"`
	PNL           float64    `gorm:"column:pnl;type:double precision;not null;default:0" json:"pnl"`
	BankrollAfter *float64   `gorm:"type:double precision" json:"bankroll_after"`
	SettledAt     *time.Time `gorm:"type:timestamptz" json:"settled_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Bet model
func (*Bet) TableName() string {
	return "bets"
}

// BeforeCreate sets up the model before creation
func (b *Bet) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// IsOpen checks if the bet is still open
func (b *Bet) IsOpen() bool {
	return b.Result == BetResultOpen
}

// IsSettled checks if the bet has been settled
func (b *Bet) IsSettled() bool {
	return b.Result.IsTerminal()
}

// ProfitIfWin returns the profit a win would realize at the recorded price.
func (b *Bet) ProfitIfWin() float64 {
	return b.Stake * (b.DecimalOdds - 1)
}

// Placed reports whether the record carries real stake. Zero-stake records
// document NO BET decisions and never move the bankroll.
func (b *Bet) Placed() bool {
	return b.Stake > 0
}

// Settle moves the record to a terminal state and stamps its realized pnl.
// The bankroll snapshot is stamped by the ledger after it applies the pnl.
func (b *Bet) Settle(outcome BetResult, at time.Time) error {
	if !outcome.IsTerminal() {
		return ErrInvalidOutcome
	}
	if !b.IsOpen() {
		return ErrBetNotOpen
	}

	b.Result = outcome
	if outcome == BetResultWin {
		b.PNL = b.ProfitIfWin()
	} else {
		b.PNL = -b.Stake
	}
	b.SettledAt = &at

	return nil
}

// Clone returns a detached copy of the record, including its context map.
func (b *Bet) Clone() *Bet {
	out := *b
	out.Context = b.Context.Clone()
	if b.BankrollAfter != nil {
		v := *b.BankrollAfter
		out.BankrollAfter = &v
	}
	if b.SettledAt != nil {
		t := *b.SettledAt
		out.SettledAt = &t
	}
	return &out
}

// Validate performs validation on the bet model
func (b *Bet) Validate() error {
	if b.Market == "" {
		return ErrInvalidMarket
	}
	if b.Side == "" {
		return ErrInvalidSide
	}
	if b.PModel < 0 || b.PModel > 1 || math.IsNaN(b.PModel) {
		return ErrInvalidProbability
	}
	if b.Stake < 0 {
		return ErrInvalidStake
	}
	if !b.Result.Valid() {
		return ErrInvalidOutcome
	}
	return nil
}
