package repository

import (
	"context"
	"database/sql"
	"errors"

	"challenge-hub/backend/internal/participation/domain"
)

// ErrDuplicate is returned by InsertTx when a participation already exists for
// the (user, challenge) pair. Raised by the unique constraint so concurrent
// enrollments cannot both insert.
var ErrDuplicate = errors.New("participation already exists")

// Repository defines persistence for participations. InsertTx and AcceptTx run
// on the caller's transaction so a failed accept rolls the insert back.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Participation, error)
	GetByUserAndChallenge(ctx context.Context, userID, challengeID string) (*domain.Participation, error)
	Exists(ctx context.Context, userID, challengeID string) (bool, error)
	ListByChallenge(ctx context.Context, challengeID string) ([]*domain.Participation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Participation, error)
	InsertTx(ctx context.Context, tx *sql.Tx, p *domain.Participation) error
	// AcceptTx upgrades the participation for (user, challenge) to accepted and
	// returns the updated row.
	AcceptTx(ctx context.Context, tx *sql.Tx, challengeID, userID string) (*domain.Participation, error)
}
