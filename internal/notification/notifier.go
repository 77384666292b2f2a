// Package notification turns enrollment outcomes into events for delivery.
package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"challenge-hub/backend/internal/notification/domain"
	"challenge-hub/backend/internal/notification/producer"
	participationdomain "challenge-hub/backend/internal/participation/domain"
)

// Notifier publishes pending-participation events for the challenge creator.
type Notifier struct {
	producer producer.Producer
}

// NewNotifier returns a Notifier that emits through the given producer.
func NewNotifier(p producer.Producer) *Notifier {
	return &Notifier{producer: p}
}

// NotifyPending emits a participation_pending event addressed to the
// challenge creator. Delivery is at-least-once; the consumer deduplicates by
// event id if it must.
func (n *Notifier) NotifyPending(ctx context.Context, p *participationdomain.Participation, creatorID string) error {
	if n == nil || n.producer == nil {
		return nil
	}
	event := &domain.Event{
		ID:              uuid.NewString(),
		Type:            domain.EventTypeParticipationPending,
		RecipientID:     creatorID,
		UserID:          p.UserID,
		ChallengeID:     p.ChallengeID,
		ParticipationID: p.ID,
		CreatedAt:       time.Now().UTC(),
	}
	return n.producer.Emit(ctx, event)
}
