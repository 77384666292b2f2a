// Package service implements the enrollment workflow: resolve the target
// challenge, gate the join, persist the participation transactionally and run
// the post-commit side effects.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	challengedomain "challenge-hub/backend/internal/challenge/domain"
	"challenge-hub/backend/internal/participation/domain"
	"challenge-hub/backend/internal/participation/repository"
)

var (
	// ErrChallengeNotFound is returned when neither the challenge id nor the
	// invitation token resolves to an existing challenge.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrJoiningBlocked is returned when the challenge is full or past its
	// submission deadline.
	ErrJoiningBlocked = errors.New("joining blocked")
	// ErrDuplicateParticipation is returned when the user already has a
	// participation in the challenge.
	ErrDuplicateParticipation = errors.New("participation already exists")
	// ErrInvalidRequest is returned when the enrollment request is malformed.
	ErrInvalidRequest = errors.New("invalid enrollment request")
)

// asyncTimeout bounds the post-commit side effects, which run detached from
// the request context.
const asyncTimeout = 5 * time.Second

// ChallengeStore resolves the challenge a user wants to join.
type ChallengeStore interface {
	GetByID(ctx context.Context, id string) (*challengedomain.Challenge, error)
	GetByInvitationToken(ctx context.Context, token string) (*challengedomain.Challenge, error)
}

// EnrollmentTx is one atomic enrollment: insert, optional accept, commit.
type EnrollmentTx interface {
	Insert(ctx context.Context, p *domain.Participation) error
	Accept(ctx context.Context, challengeID, userID string) (*domain.Participation, error)
	Commit() error
	Rollback() error
}

// ParticipationStore persists participations.
type ParticipationStore interface {
	Exists(ctx context.Context, userID, challengeID string) (bool, error)
	Begin(ctx context.Context) (EnrollmentTx, error)
}

// Recomputer refreshes a challenge's participant count and derived status
// after an enrollment commits.
type Recomputer interface {
	Recompute(ctx context.Context, challengeID string) error
}

// Notifier tells a challenge's creator about a new pending participation.
type Notifier interface {
	NotifyPending(ctx context.Context, p *domain.Participation, creatorID string) error
}

// PostgresStore adapts the concrete repository to ParticipationStore.
type PostgresStore struct {
	*repository.PostgresRepository
}

// Begin opens an enrollment transaction on the underlying repository.
func (s PostgresStore) Begin(ctx context.Context) (EnrollmentTx, error) {
	tx, err := s.PostgresRepository.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// EnrollRequest is the transient input to Enroll. Exactly one of ChallengeID
// and InvitationToken selects the challenge. AcceptationStatus may only be
// empty or pending; accepted and rejected are never accepted from callers.
type EnrollRequest struct {
	UserID            string
	ChallengeID       string
	InvitationToken   string
	AcceptationStatus domain.AcceptationStatus
}

// EnrollmentService validates and commits a user's request to join a
// challenge.
type EnrollmentService struct {
	challenges ChallengeStore
	store      ParticipationStore
	recomputer Recomputer
	notifier   Notifier
	now        func() time.Time
}

// NewEnrollmentService returns an EnrollmentService wired to the given
// collaborators. notifier may be nil; pending enrollments then go unnotified.
func NewEnrollmentService(challenges ChallengeStore, store ParticipationStore, recomputer Recomputer, notifier Notifier) *EnrollmentService {
	return &EnrollmentService{
		challenges: challenges,
		store:      store,
		recomputer: recomputer,
		notifier:   notifier,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Enroll runs the full enrollment workflow. It resolves the challenge,
// checks that joining is allowed and not a duplicate, inserts the
// participation (auto-accepting it when the challenge is open or sponsored)
// in a single transaction, then kicks off the post-commit status recompute
// and, for pending participations by someone other than the creator, the
// creator notification. Post-commit side effects are best-effort: failures
// are logged and never surface to the caller.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest) (*domain.Participation, error) {
	if req.UserID == "" {
		return nil, ErrInvalidRequest
	}
	// Acceptance is decided by the workflow, not the caller: a request may
	// ask for pending or leave the status empty, nothing else.
	if req.AcceptationStatus != "" && req.AcceptationStatus != domain.StatusPending {
		return nil, ErrInvalidRequest
	}

	challenge, err := s.resolveChallenge(ctx, req)
	if err != nil {
		return nil, err
	}

	if !challenge.CanJoin(s.now()) {
		return nil, ErrJoiningBlocked
	}

	exists, err := s.store.Exists(ctx, req.UserID, challenge.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateParticipation
	}

	p := &domain.Participation{
		ID:                uuid.NewString(),
		UserID:            req.UserID,
		ChallengeID:       challenge.ID,
		AcceptationStatus: req.AcceptationStatus,
		CreatedAt:         s.now(),
		UpdatedAt:         s.now(),
	}
	if err := p.Validate(); err != nil {
		return nil, ErrInvalidRequest
	}

	p, err = s.persist(ctx, challenge, p)
	if err != nil {
		return nil, err
	}

	s.runPostCommit(challenge, p)

	return p, nil
}

// resolveChallenge looks the challenge up by invitation token when one is
// given, by id otherwise.
func (s *EnrollmentService) resolveChallenge(ctx context.Context, req EnrollRequest) (*challengedomain.Challenge, error) {
	var (
		challenge *challengedomain.Challenge
		err       error
	)
	switch {
	case req.InvitationToken != "":
		challenge, err = s.challenges.GetByInvitationToken(ctx, req.InvitationToken)
	case req.ChallengeID != "":
		challenge, err = s.challenges.GetByID(ctx, req.ChallengeID)
	default:
		return nil, ErrInvalidRequest
	}
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}
	return challenge, nil
}

// persist inserts the participation and, for open or sponsored challenges,
// accepts it within the same transaction. Nothing survives a failure of
// either step.
func (s *EnrollmentService) persist(ctx context.Context, challenge *challengedomain.Challenge, p *domain.Participation) (*domain.Participation, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := tx.Insert(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateParticipation
		}
		return nil, err
	}

	if challenge.Open || challenge.Sponsored {
		accepted, err := tx.Accept(ctx, challenge.ID, p.UserID)
		if err != nil {
			return nil, err
		}
		p = accepted
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

// runPostCommit fires the recompute and notification side effects on a
// detached context so they outlive the request.
func (s *EnrollmentService) runPostCommit(challenge *challengedomain.Challenge, p *domain.Participation) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := s.recomputer.Recompute(ctx, challenge.ID); err != nil {
			log.Printf("enrollment: status recompute failed for challenge %s: %v", challenge.ID, err)
		}

		if s.notifier == nil {
			return
		}
		if p.AcceptationStatus != domain.StatusPending || p.UserID == challenge.CreatorID {
			return
		}
		if err := s.notifier.NotifyPending(ctx, p, challenge.CreatorID); err != nil {
			log.Printf("enrollment: pending notification failed for participation %s: %v", p.ID, err)
		}
	}()
}
