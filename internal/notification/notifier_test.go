package notification

import (
	"context"
	"testing"

	notifdomain "challenge-hub/backend/internal/notification/domain"
	participationdomain "challenge-hub/backend/internal/participation/domain"
)

type captureProducer struct {
	events []*notifdomain.Event
}

func (p *captureProducer) Emit(_ context.Context, event *notifdomain.Event) error {
	p.events = append(p.events, event)
	return nil
}

func (p *captureProducer) Close() error { return nil }

func TestNotifier_NotifyPending(t *testing.T) {
	cp := &captureProducer{}
	n := NewNotifier(cp)

	p := &participationdomain.Participation{
		ID:          "p-1",
		UserID:      "user-5",
		ChallengeID: "ch-1",
	}
	if err := n.NotifyPending(context.Background(), p, "user-9"); err != nil {
		t.Fatalf("NotifyPending: %v", err)
	}

	if len(cp.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(cp.events))
	}
	event := cp.events[0]
	if event.Type != notifdomain.EventTypeParticipationPending {
		t.Errorf("type = %s", event.Type)
	}
	if event.RecipientID != "user-9" || event.UserID != "user-5" || event.ChallengeID != "ch-1" || event.ParticipationID != "p-1" {
		t.Errorf("event = %+v", event)
	}
	if event.ID == "" || event.CreatedAt.IsZero() {
		t.Error("id and created_at must be set")
	}
}

func TestNotifier_NilProducer(t *testing.T) {
	n := NewNotifier(nil)
	p := &participationdomain.Participation{ID: "p-1", UserID: "user-5", ChallengeID: "ch-1"}
	if err := n.NotifyPending(context.Background(), p, "user-9"); err != nil {
		t.Fatalf("NotifyPending with nil producer: %v", err)
	}
}
