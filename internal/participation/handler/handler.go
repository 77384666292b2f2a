// Package handler exposes participation endpoints over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/participation/domain"
	"challenge-hub/backend/internal/participation/service"
	"challenge-hub/backend/internal/server/httpctx"
	"challenge-hub/backend/internal/server/httperr"
)

// Reader is the read-side store the handler lists participations from.
type Reader interface {
	GetByID(ctx context.Context, id string) (*domain.Participation, error)
	ListByChallenge(ctx context.Context, challengeID string) ([]*domain.Participation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Participation, error)
}

type Handler struct {
	enrollment *service.EnrollmentService
	reader     Reader
}

func NewHandler(enrollment *service.EnrollmentService, reader Reader) *Handler {
	return &Handler{enrollment: enrollment, reader: reader}
}

type enrollRequest struct {
	ChallengeID       string `json:"challenge_id"`
	InvitationToken   string `json:"invitation_token"`
	AcceptationStatus string `json:"acceptation_status"`
}

type participationResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	ChallengeID       string    `json:"challenge_id"`
	AcceptationStatus string    `json:"acceptation_status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toResponse(p *domain.Participation) participationResponse {
	return participationResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		ChallengeID:       p.ChallengeID,
		AcceptationStatus: string(p.AcceptationStatus),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// Create enrolls the authenticated user into a challenge.
func (h *Handler) Create(c *gin.Context) {
	userID, ok := httpctx.GetUserID(c.Request.Context())
	if !ok {
		httperr.JSON(c, http.StatusUnauthorized, "unauthenticated", "authentication required")
		return
	}

	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	p, err := h.enrollment.Enroll(c.Request.Context(), service.EnrollRequest{
		UserID:            userID,
		ChallengeID:       req.ChallengeID,
		InvitationToken:   req.InvitationToken,
		AcceptationStatus: domain.AcceptationStatus(req.AcceptationStatus),
	})
	if err != nil {
		writeEnrollError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(p))
}

func writeEnrollError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrChallengeNotFound):
		httperr.JSON(c, http.StatusNotFound, "challenge_not_found", "challenge not found")
	case errors.Is(err, service.ErrJoiningBlocked):
		httperr.JSON(c, http.StatusBadRequest, "joining_blocked", "challenge is not accepting participants")
	case errors.Is(err, service.ErrDuplicateParticipation):
		httperr.JSON(c, http.StatusBadRequest, "duplicate_participation", "user already participates in this challenge")
	case errors.Is(err, service.ErrInvalidRequest):
		httperr.JSON(c, http.StatusBadRequest, "invalid_request", "invalid enrollment request")
	default:
		httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
	}
}

// List returns participations for a challenge when challenge_id is given,
// otherwise the authenticated user's own participations.
func (h *Handler) List(c *gin.Context) {
	userID, ok := httpctx.GetUserID(c.Request.Context())
	if !ok {
		httperr.JSON(c, http.StatusUnauthorized, "unauthenticated", "authentication required")
		return
	}

	var (
		items []*domain.Participation
		err   error
	)
	if challengeID := c.Query("challenge_id"); challengeID != "" {
		items, err = h.reader.ListByChallenge(c.Request.Context(), challengeID)
	} else {
		items, err = h.reader.ListByUser(c.Request.Context(), userID)
	}
	if err != nil {
		httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	out := make([]participationResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"participations": out})
}

// Get returns a single participation by id.
func (h *Handler) Get(c *gin.Context) {
	p, err := h.reader.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	if p == nil {
		httperr.JSON(c, http.StatusNotFound, "participation_not_found", "participation not found")
		return
	}
	c.JSON(http.StatusOK, toResponse(p))
}
