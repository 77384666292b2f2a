package repository

import (
	"context"
	"time"

	"challenge-hub/backend/internal/session/domain"
)

// Repository defines persistence for refresh sessions.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Create(ctx context.Context, s *domain.Session) error
	Revoke(ctx context.Context, id string) error
	RevokeAllByUser(ctx context.Context, userID string) error
	// UpdateRefreshToken rotates the stored refresh token binding (jti + hash) for the session.
	UpdateRefreshToken(ctx context.Context, sessionID, jti, refreshTokenHash string) error
	UpdateLastSeen(ctx context.Context, id string, at time.Time) error
}
