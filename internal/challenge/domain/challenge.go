package domain

import (
	"errors"
	"time"
)

// MaxParticipants is the participant cap for non-sponsored challenges.
const MaxParticipants = 2

// Challenge is the entity users can join. Joining is gated by the open and
// sponsored flags, the participant cap, and an optional submission deadline.
type Challenge struct {
	ID                  string
	CreatorID           string
	Title               string
	Description         string
	InvitationToken     string
	Open                bool
	Sponsored           bool
	ParticipationsCount int
	SubmissionEndsAt    *time.Time
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Status string

const (
	StatusDraft  Status = "draft"
	StatusOpen   Status = "open"
	StatusFull   Status = "full"
	StatusClosed Status = "closed"
)

// Validate validates the challenge for persistence.
func (c *Challenge) Validate() error {
	if c.CreatorID == "" {
		return errors.New("creator id is required")
	}
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Status == "" {
		c.Status = StatusDraft
	}
	return nil
}

// CanJoin reports whether a new participant may join at the given time.
// Sponsored challenges are exempt from the participant cap. A nil
// SubmissionEndsAt means the challenge never closes on that axis.
func (c *Challenge) CanJoin(now time.Time) bool {
	if c.ParticipationsCount >= MaxParticipants && !c.Sponsored {
		return false
	}
	if c.SubmissionEndsAt != nil && c.SubmissionEndsAt.Before(now) {
		return false
	}
	return true
}

// DeriveStatus returns the status implied by the challenge's gates and the
// given participant count: closed past the deadline, full at the cap for
// non-sponsored challenges, open when accepting, draft otherwise.
func (c *Challenge) DeriveStatus(count int, now time.Time) Status {
	if c.SubmissionEndsAt != nil && c.SubmissionEndsAt.Before(now) {
		return StatusClosed
	}
	if count >= MaxParticipants && !c.Sponsored {
		return StatusFull
	}
	if c.Open || c.Sponsored {
		return StatusOpen
	}
	return StatusDraft
}
