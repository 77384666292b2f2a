package domain

import (
	"errors"
	"time"
)

// Participation is one user's enrollment record in a challenge.
type Participation struct {
	ID                string
	UserID            string
	ChallengeID       string
	AcceptationStatus AcceptationStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AcceptationStatus is the enumerated state of a participation.
type AcceptationStatus string

const (
	StatusPending  AcceptationStatus = "pending"
	StatusAccepted AcceptationStatus = "accepted"
	StatusRejected AcceptationStatus = "rejected"
)

// Valid reports whether s is a known acceptation status.
func (s AcceptationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Validate validates the participation for persistence.
func (p *Participation) Validate() error {
	if p.UserID == "" {
		return errors.New("user id is required")
	}
	if p.ChallengeID == "" {
		return errors.New("challenge id is required")
	}
	if p.AcceptationStatus == "" {
		p.AcceptationStatus = StatusPending
	}
	if !p.AcceptationStatus.Valid() {
		return errors.New("invalid acceptation status")
	}
	return nil
}
