// Package service recomputes challenge aggregate state from participation rows.
package service

import (
	"context"
	"errors"
	"time"

	"challenge-hub/backend/internal/challenge/domain"
)

// ErrChallengeNotFound is returned when the challenge to recompute does not exist.
var ErrChallengeNotFound = errors.New("challenge not found")

// ChallengeRepo is the minimal challenge repository needed by the status service.
type ChallengeRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Challenge, error)
	CountParticipations(ctx context.Context, id string) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, participationsCount int) error
}

// StatusService recomputes a challenge's participant count and derived status.
// Invoked after each enrollment commit; callers treat failures as best-effort.
type StatusService struct {
	repo ChallengeRepo
	now  func() time.Time
}

// NewStatusService returns a StatusService backed by the given repository.
func NewStatusService(repo ChallengeRepo) *StatusService {
	return &StatusService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Recompute recounts the challenge's participations and persists the count
// together with the status derived from it.
func (s *StatusService) Recompute(ctx context.Context, challengeID string) error {
	c, err := s.repo.GetByID(ctx, challengeID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrChallengeNotFound
	}
	count, err := s.repo.CountParticipations(ctx, challengeID)
	if err != nil {
		return err
	}
	status := c.DeriveStatus(count, s.now())
	return s.repo.UpdateStatus(ctx, challengeID, status, count)
}
