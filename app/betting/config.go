package betting

import (
	"math"

	"github.com/oddsmith/punt/models"
)

// Config represents the configuration for the betting module
type Config struct {
	KellyFraction      float64 `env:"KELLY_FRACTION"`
	MaxStakePct        float64 `env:"MAX_STAKE_PCT"`
	DefaultEVThreshold float64 `env:"EV_THRESHOLD"`
	StartingBankroll   float64 `env:"STARTING_BANKROLL"`
}

// Policy is the runtime-tunable slice of the config. Callers may retune it
// between evaluations; the agent reads the current values at decision time.
type Policy struct {
	KellyFraction      float64 `json:"kelly_fraction"`
	MaxStakePct        float64 `json:"max_stake_pct"`
	DefaultEVThreshold float64 `json:"default_ev_threshold"`
}

// Validate checks the policy bounds.
func (p Policy) Validate() error {
	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{p.KellyFraction > 0 && p.KellyFraction <= 1, models.ErrInvalidKellyFraction},
		{p.MaxStakePct > 0 && p.MaxStakePct <= 1, models.ErrInvalidMaxStakePct},
		{!math.IsNaN(p.DefaultEVThreshold) && !math.IsInf(p.DefaultEVThreshold, 0), models.ErrInvalidEVThreshold},
	}

	for _, v := range checks {
		if !v.ok {
			return v.err
		}
	}
	return nil
}

// Policy returns the tunable slice of the config.
func (c *Config) Policy() Policy {
	return Policy{
		KellyFraction:      c.KellyFraction,
		MaxStakePct:        c.MaxStakePct,
		DefaultEVThreshold: c.DefaultEVThreshold,
	}
}

func (c *Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return err
	}
	if c.StartingBankroll <= 0 || math.IsNaN(c.StartingBankroll) || math.IsInf(c.StartingBankroll, 0) {
		return models.ErrInvalidBankroll
	}
	return nil
}

// GetDefaultConfig returns the default betting configuration
func GetDefaultConfig() *Config {
	return &Config{
		KellyFraction:      0.25,   // quarter Kelly
		MaxStakePct:        0.10,   // hard per-bet cap at 10% of bankroll
		DefaultEVThreshold: 0.02,   // need +2% EV to fire
		StartingBankroll:   1000.0, // paper-trading balance
	}
}
