package security

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Different types of error that returned from the VerifyToken
var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Payload contains the payload data of the token
type Payload struct {
	ID        uuid.UUID
	Subject   string
	IssuedAt  time.Time
	ExpiredAt time.Time
	Scope     string
}

// NewPayload creates a new payload for a named caller and duration
func NewPayload(subject string, duration time.Duration, scope string) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	payload := &Payload{
		ID:        tokenID,
		Subject:   subject,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
		Scope:     scope,
	}

	return payload, nil
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}
