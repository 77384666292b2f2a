package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"challenge-hub/backend/internal/participation/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a participation repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const participationColumns = `id, user_id, challenge_id, acceptation_status, created_at, updated_at`

// GetByID returns the participation for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Participation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+participationColumns+` FROM participations WHERE id = $1`, id)
	return scanParticipation(row)
}

// GetByUserAndChallenge returns the participation for the pair, or nil if not found.
func (r *PostgresRepository) GetByUserAndChallenge(ctx context.Context, userID, challengeID string) (*domain.Participation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+participationColumns+` FROM participations WHERE user_id = $1 AND challenge_id = $2`,
		userID, challengeID)
	return scanParticipation(row)
}

// Exists reports whether a participation exists for the (user, challenge) pair.
func (r *PostgresRepository) Exists(ctx context.Context, userID, challengeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM participations WHERE user_id = $1 AND challenge_id = $2)`,
		userID, challengeID).Scan(&exists)
	return exists, err
}

// ListByChallenge returns all participations for the challenge, oldest first.
func (r *PostgresRepository) ListByChallenge(ctx context.Context, challengeID string) ([]*domain.Participation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+participationColumns+` FROM participations WHERE challenge_id = $1 ORDER BY created_at`,
		challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectParticipations(rows)
}

// ListByUser returns all of the user's participations, oldest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Participation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+participationColumns+` FROM participations WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectParticipations(rows)
}

// InsertTx persists the participation inside the given transaction.
// Returns ErrDuplicate when the (user, challenge) unique constraint fires.
func (r *PostgresRepository) InsertTx(ctx context.Context, tx *sql.Tx, p *domain.Participation) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO participations (id, user_id, challenge_id, acceptation_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.UserID, p.ChallengeID, string(p.AcceptationStatus), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// AcceptTx upgrades the participation for (user, challenge) to accepted inside
// the given transaction and returns the updated row.
func (r *PostgresRepository) AcceptTx(ctx context.Context, tx *sql.Tx, challengeID, userID string) (*domain.Participation, error) {
	row := tx.QueryRowContext(ctx, `
		UPDATE participations SET acceptation_status = $3, updated_at = $4
		WHERE challenge_id = $1 AND user_id = $2
		RETURNING `+participationColumns,
		challengeID, userID, string(domain.StatusAccepted), time.Now().UTC(),
	)
	return scanParticipation(row)
}

func collectParticipations(rows *sql.Rows) ([]*domain.Participation, error) {
	var out []*domain.Participation
	for rows.Next() {
		var p domain.Participation
		var status string
		if err := rows.Scan(&p.ID, &p.UserID, &p.ChallengeID, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.AcceptationStatus = domain.AcceptationStatus(status)
		out = append(out, &p)
	}
	return out, rows.Err()
}

func scanParticipation(row *sql.Row) (*domain.Participation, error) {
	var p domain.Participation
	var status string
	err := row.Scan(&p.ID, &p.UserID, &p.ChallengeID, &status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.AcceptationStatus = domain.AcceptationStatus(status)
	return &p, nil
}
