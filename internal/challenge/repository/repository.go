package repository

import (
	"context"

	"challenge-hub/backend/internal/challenge/domain"
)

// Repository defines persistence for challenges.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Challenge, error)
	GetByInvitationToken(ctx context.Context, token string) (*domain.Challenge, error)
	Create(ctx context.Context, c *domain.Challenge) error
	ListByCreator(ctx context.Context, creatorID string) ([]*domain.Challenge, error)
	ListOpen(ctx context.Context) ([]*domain.Challenge, error)
	// CountParticipations returns the number of participation rows for the challenge.
	CountParticipations(ctx context.Context, id string) (int, error)
	// UpdateStatus writes the derived status and participant count back to the row.
	UpdateStatus(ctx context.Context, id string, status domain.Status, participationsCount int) error
}
