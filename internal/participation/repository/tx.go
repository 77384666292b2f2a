package repository

import (
	"context"
	"database/sql"

	"challenge-hub/backend/internal/participation/domain"
)

// Tx is one enrollment unit of work. Insert and Accept run on the same
// database transaction; nothing is visible until Commit.
type Tx struct {
	tx   *sql.Tx
	repo *PostgresRepository
}

// Begin opens a transaction for a single enrollment.
func (r *PostgresRepository) Begin(ctx context.Context) (*Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, repo: r}, nil
}

// Insert persists the participation. Returns ErrDuplicate when the
// (user, challenge) unique constraint fires.
func (t *Tx) Insert(ctx context.Context, p *domain.Participation) error {
	return t.repo.InsertTx(ctx, t.tx, p)
}

// Accept upgrades the participation for (user, challenge) to accepted and
// returns the updated row.
func (t *Tx) Accept(ctx context.Context, challengeID, userID string) (*domain.Participation, error) {
	return t.repo.AcceptTx(ctx, t.tx, challengeID, userID)
}

// Commit commits the unit of work.
func (t *Tx) Commit() error { return t.tx.Commit() }

// Rollback aborts the unit of work. Safe to call after Commit; the error is discarded there.
func (t *Tx) Rollback() error { return t.tx.Rollback() }
