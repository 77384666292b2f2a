package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"challenge-hub/backend/internal/challenge/domain"
)

type memCrudRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Challenge
}

func newMemCrudRepo() *memCrudRepo {
	return &memCrudRepo{byID: make(map[string]*domain.Challenge)}
}

func (r *memCrudRepo) GetByID(_ context.Context, id string) (*domain.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *memCrudRepo) Create(_ context.Context, c *domain.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID] = c
	return nil
}

func (r *memCrudRepo) ListByCreator(_ context.Context, creatorID string) ([]*domain.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Challenge
	for _, c := range r.byID {
		if c.CreatorID == creatorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCrudRepo) ListOpen(_ context.Context) ([]*domain.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Challenge
	for _, c := range r.byID {
		if c.Status == domain.StatusOpen {
			out = append(out, c)
		}
	}
	return out, nil
}

func newTestChallengeService(t *testing.T) (*ChallengeService, *memCrudRepo) {
	t.Helper()
	repo := newMemCrudRepo()
	svc := NewChallengeService(repo)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestChallengeService_Create(t *testing.T) {
	svc, repo := newTestChallengeService(t)

	c, err := svc.Create(context.Background(), CreateRequest{
		CreatorID: "user-1",
		Title:     "Weekend build",
		Open:      true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == "" || c.InvitationToken == "" {
		t.Fatal("id and invitation token must be generated")
	}
	if c.Status != domain.StatusOpen {
		t.Fatalf("status = %s, want open", c.Status)
	}
	if stored, _ := repo.GetByID(context.Background(), c.ID); stored == nil {
		t.Fatal("challenge not persisted")
	}
}

func TestChallengeService_CreateDraftWhenClosed(t *testing.T) {
	svc, _ := newTestChallengeService(t)

	c, err := svc.Create(context.Background(), CreateRequest{CreatorID: "user-1", Title: "Invite only"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Status != domain.StatusDraft {
		t.Fatalf("status = %s, want draft", c.Status)
	}
}

func TestChallengeService_CreateInvalid(t *testing.T) {
	svc, _ := newTestChallengeService(t)

	if _, err := svc.Create(context.Background(), CreateRequest{CreatorID: "user-1"}); !errors.Is(err, ErrInvalidChallenge) {
		t.Fatalf("err = %v, want ErrInvalidChallenge", err)
	}
}

func TestChallengeService_GetNotFound(t *testing.T) {
	svc, _ := newTestChallengeService(t)

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrChallengeNotFound) {
		t.Fatalf("err = %v, want ErrChallengeNotFound", err)
	}
}
