package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"challenge-hub/backend/internal/challenge/domain"
)

// ErrInvalidChallenge is returned when a create request fails validation.
var ErrInvalidChallenge = errors.New("invalid challenge")

// Repo is the full challenge repository used by the CRUD service.
type Repo interface {
	GetByID(ctx context.Context, id string) (*domain.Challenge, error)
	Create(ctx context.Context, c *domain.Challenge) error
	ListByCreator(ctx context.Context, creatorID string) ([]*domain.Challenge, error)
	ListOpen(ctx context.Context) ([]*domain.Challenge, error)
}

// CreateRequest is the input to ChallengeService.Create.
type CreateRequest struct {
	CreatorID        string
	Title            string
	Description      string
	Open             bool
	Sponsored        bool
	SubmissionEndsAt *time.Time
}

// ChallengeService creates and reads challenges.
type ChallengeService struct {
	repo Repo
	now  func() time.Time
}

func NewChallengeService(repo Repo) *ChallengeService {
	return &ChallengeService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Create persists a new challenge. Every challenge gets a fresh invitation
// token so the creator can share a join link without exposing the id.
func (s *ChallengeService) Create(ctx context.Context, req CreateRequest) (*domain.Challenge, error) {
	now := s.now()
	c := &domain.Challenge{
		ID:               uuid.NewString(),
		CreatorID:        req.CreatorID,
		Title:            req.Title,
		Description:      req.Description,
		InvitationToken:  uuid.NewString(),
		Open:             req.Open,
		Sponsored:        req.Sponsored,
		SubmissionEndsAt: req.SubmissionEndsAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	c.Status = c.DeriveStatus(0, now)
	if err := c.Validate(); err != nil {
		return nil, ErrInvalidChallenge
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the challenge by id.
func (s *ChallengeService) Get(ctx context.Context, id string) (*domain.Challenge, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrChallengeNotFound
	}
	return c, nil
}

// ListOpen returns all challenges currently accepting participants.
func (s *ChallengeService) ListOpen(ctx context.Context) ([]*domain.Challenge, error) {
	return s.repo.ListOpen(ctx)
}

// ListByCreator returns the challenges created by the given user.
func (s *ChallengeService) ListByCreator(ctx context.Context, creatorID string) ([]*domain.Challenge, error) {
	return s.repo.ListByCreator(ctx, creatorID)
}
