package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"challenge-hub/backend/internal/challenge/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a challenge repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const challengeColumns = `id, creator_id, title, description, invitation_token, open, sponsored,
	participations_count, submission_ends_at, status, created_at, updated_at`

// GetByID returns the challenge for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Challenge, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1`, id)
	return scanChallenge(row)
}

// GetByInvitationToken returns the challenge with the given invitation token, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByInvitationToken(ctx context.Context, token string) (*domain.Challenge, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE invitation_token = $1`, token)
	return scanChallenge(row)
}

// Create persists the challenge to the database. The challenge must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, c *domain.Challenge) error {
	desc := sql.NullString{String: c.Description, Valid: c.Description != ""}
	token := sql.NullString{String: c.InvitationToken, Valid: c.InvitationToken != ""}
	endsAt := sql.NullTime{}
	if c.SubmissionEndsAt != nil {
		endsAt = sql.NullTime{Time: *c.SubmissionEndsAt, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO challenges (id, creator_id, title, description, invitation_token, open, sponsored,
			participations_count, submission_ends_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.CreatorID, c.Title, desc, token, c.Open, c.Sponsored,
		c.ParticipationsCount, endsAt, string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// ListByCreator returns all challenges created by the given user, newest first.
func (r *PostgresRepository) ListByCreator(ctx context.Context, creatorID string) ([]*domain.Challenge, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+challengeColumns+` FROM challenges WHERE creator_id = $1 ORDER BY created_at DESC`, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectChallenges(rows)
}

// ListOpen returns challenges currently accepting participants, newest first.
func (r *PostgresRepository) ListOpen(ctx context.Context) ([]*domain.Challenge, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+challengeColumns+` FROM challenges WHERE status = $1 ORDER BY created_at DESC`,
		string(domain.StatusOpen))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectChallenges(rows)
}

// CountParticipations returns the number of participation rows for the challenge.
func (r *PostgresRepository) CountParticipations(ctx context.Context, id string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM participations WHERE challenge_id = $1`, id).Scan(&n)
	return n, err
}

// UpdateStatus writes the derived status and participant count back to the row.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, participationsCount int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE challenges SET status = $2, participations_count = $3, updated_at = $4 WHERE id = $1`,
		id, string(status), participationsCount, time.Now().UTC(),
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChallengeRow(s rowScanner) (*domain.Challenge, error) {
	var c domain.Challenge
	var desc, token sql.NullString
	var endsAt sql.NullTime
	var status string
	err := s.Scan(&c.ID, &c.CreatorID, &c.Title, &desc, &token, &c.Open, &c.Sponsored,
		&c.ParticipationsCount, &endsAt, &status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = desc.String
	c.InvitationToken = token.String
	if endsAt.Valid {
		c.SubmissionEndsAt = &endsAt.Time
	}
	c.Status = domain.Status(status)
	return &c, nil
}

func scanChallenge(row *sql.Row) (*domain.Challenge, error) {
	c, err := scanChallengeRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func collectChallenges(rows *sql.Rows) ([]*domain.Challenge, error) {
	var out []*domain.Challenge
	for rows.Next() {
		c, err := scanChallengeRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
