// Package handler exposes challenge endpoints over HTTP.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/challenge/domain"
	"challenge-hub/backend/internal/challenge/service"
	"challenge-hub/backend/internal/server/httpctx"
	"challenge-hub/backend/internal/server/httperr"
)

type Handler struct {
	challenges *service.ChallengeService
}

func NewHandler(challenges *service.ChallengeService) *Handler {
	return &Handler{challenges: challenges}
}

type createRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	Open             bool       `json:"open"`
	Sponsored        bool       `json:"sponsored"`
	SubmissionEndsAt *time.Time `json:"submission_ends_at"`
}

type challengeResponse struct {
	ID                  string     `json:"id"`
	CreatorID           string     `json:"creator_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	InvitationToken     string     `json:"invitation_token,omitempty"`
	Open                bool       `json:"open"`
	Sponsored           bool       `json:"sponsored"`
	ParticipationsCount int        `json:"participations_count"`
	SubmissionEndsAt    *time.Time `json:"submission_ends_at,omitempty"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
}

// toResponse serializes a challenge. The invitation token is only included
// for the creator.
func toResponse(c *domain.Challenge, viewerID string) challengeResponse {
	resp := challengeResponse{
		ID:                  c.ID,
		CreatorID:           c.CreatorID,
		Title:               c.Title,
		Description:         c.Description,
		Open:                c.Open,
		Sponsored:           c.Sponsored,
		ParticipationsCount: c.ParticipationsCount,
		SubmissionEndsAt:    c.SubmissionEndsAt,
		Status:              string(c.Status),
		CreatedAt:           c.CreatedAt,
	}
	if viewerID == c.CreatorID {
		resp.InvitationToken = c.InvitationToken
	}
	return resp
}

// Create creates a challenge owned by the authenticated user.
func (h *Handler) Create(c *gin.Context) {
	userID, ok := httpctx.GetUserID(c.Request.Context())
	if !ok {
		httperr.JSON(c, http.StatusUnauthorized, "unauthenticated", "authentication required")
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	created, err := h.challenges.Create(c.Request.Context(), service.CreateRequest{
		CreatorID:        userID,
		Title:            req.Title,
		Description:      req.Description,
		Open:             req.Open,
		Sponsored:        req.Sponsored,
		SubmissionEndsAt: req.SubmissionEndsAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidChallenge) {
			httperr.JSON(c, http.StatusBadRequest, "invalid_request", "invalid challenge")
			return
		}
		httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	c.JSON(http.StatusCreated, toResponse(created, userID))
}

// Get returns one challenge by id.
func (h *Handler) Get(c *gin.Context) {
	viewerID, _ := httpctx.GetUserID(c.Request.Context())

	challenge, err := h.challenges.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrChallengeNotFound) {
			httperr.JSON(c, http.StatusNotFound, "challenge_not_found", "challenge not found")
			return
		}
		httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	c.JSON(http.StatusOK, toResponse(challenge, viewerID))
}

// List returns the authenticated user's challenges when mine=true, otherwise
// all open challenges.
func (h *Handler) List(c *gin.Context) {
	viewerID, ok := httpctx.GetUserID(c.Request.Context())
	if !ok {
		httperr.JSON(c, http.StatusUnauthorized, "unauthenticated", "authentication required")
		return
	}

	var (
		items []*domain.Challenge
		err   error
	)
	if c.Query("mine") == "true" {
		items, err = h.challenges.ListByCreator(c.Request.Context(), viewerID)
	} else {
		items, err = h.challenges.ListOpen(c.Request.Context())
	}
	if err != nil {
		httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	out := make([]challengeResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toResponse(item, viewerID))
	}
	c.JSON(http.StatusOK, gin.H{"challenges": out})
}
