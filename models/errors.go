package models

import "errors"

var (
	ErrInvalidOddsFormat = errors.New("invalid or unsupported odds format")
	ErrUnknownMarket     = errors.New("no probability source registered for market")
	ErrProbabilitySource = errors.New("probability source failure")
	ErrBetNotOpen        = errors.New("bet not found or already settled")
	ErrInvalidOutcome    = errors.New("settlement outcome must be win or loss")
	ErrDuplicateBet      = errors.New("bet id already recorded")

	ErrInvalidMarket      = errors.New("invalid market lane")
	ErrInvalidSide        = errors.New("invalid side label")
	ErrInvalidProbability = errors.New("probability must be between 0 and 1")
	ErrInvalidStake       = errors.New("stake cannot be negative")
	ErrInvalidBankroll    = errors.New("starting bankroll must be positive")

	ErrInvalidKellyFraction = errors.New("kelly fraction must be in (0, 1]")
	ErrInvalidMaxStakePct   = errors.New("max stake percentage must be in (0, 1]")
	ErrInvalidEVThreshold   = errors.New("ev threshold must be a finite number")

	ErrRecordNotFound                  = errors.New("record not found")
	ErrUnauthorized                    = errors.New("unauthorized")
	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
)
