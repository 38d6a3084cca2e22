package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bankroll is the single running paper-trading balance. It is only ever
// moved by bet settlement and may legitimately go negative; nothing in the
// model clamps it.
type Bankroll struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Balance         float64    `gorm:"type:double precision;not null" json:"balance"`
	StartingBalance float64    `gorm:"type:double precision;not null" json:"starting_balance"`
	LastResetAt     *time.Time `gorm:"type:timestamptz" json:"last_reset_at,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Bankroll model
func (*Bankroll) TableName() string {
	return "bankrolls"
}

// BeforeCreate sets up the model before creation
func (b *Bankroll) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// NewBankroll returns a bankroll opened at the given starting balance.
func NewBankroll(starting float64) *Bankroll {
	return &Bankroll{
		ID:              uuid.New(),
		Balance:         starting,
		StartingBalance: starting,
	}
}

// Apply adds a settlement pnl to the balance and returns the new balance.
func (b *Bankroll) Apply(pnl float64) float64 {
	b.Balance += pnl
	return b.Balance
}

// Reset rebaselines the bankroll at the given amount. ROI reporting is
// measured against the new baseline from here on.
func (b *Bankroll) Reset(amount float64, at time.Time) {
	b.Balance = amount
	b.StartingBalance = amount
	b.LastResetAt = &at
}

// Profit returns the running profit against the current baseline.
func (b *Bankroll) Profit() float64 {
	return b.Balance - b.StartingBalance
}

// Clone returns a detached copy of the bankroll.
func (b *Bankroll) Clone() *Bankroll {
	out := *b
	if b.LastResetAt != nil {
		t := *b.LastResetAt
		out.LastResetAt = &t
	}
	return &out
}

// Validate performs validation on the bankroll model
func (b *Bankroll) Validate() error {
	if b.StartingBalance <= 0 {
		return ErrInvalidBankroll
	}
	return nil
}
