package domain

import "time"

// EventTypeParticipationPending marks a new pending participation the
// challenge creator should review.
const EventTypeParticipationPending = "participation_pending"

// Event is one notification to be delivered to a user.
type Event struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	RecipientID     string    `json:"recipientId"`
	UserID          string    `json:"userId"`
	ChallengeID     string    `json:"challengeId"`
	ParticipationID string    `json:"participationId"`
	CreatedAt       time.Time `json:"createdAt"`
}
