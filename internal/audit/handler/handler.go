// Package handler exposes audit log endpoints over HTTP.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/audit/domain"
	auditrepo "challenge-hub/backend/internal/audit/repository"
	"challenge-hub/backend/internal/server/httperr"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type Handler struct {
	repo auditrepo.Repository
}

func NewHandler(repo auditrepo.Repository) *Handler {
	return &Handler{repo: repo}
}

type auditLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	IP        string    `json:"ip"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(a *domain.AuditLog) auditLogResponse {
	return auditLogResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Action:    a.Action,
		Resource:  a.Resource,
		IP:        a.IP,
		Metadata:  a.Metadata,
		CreatedAt: a.CreatedAt,
	}
}

// List returns audit logs newest first, optionally filtered by user_id.
func (h *Handler) List(c *gin.Context) {
	limit := parseInt32(c.Query("limit"), defaultLimit)
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	offset := parseInt32(c.Query("offset"), 0)
	if offset < 0 {
		offset = 0
	}

	var (
		items []*domain.AuditLog
		err   error
	)
	if userID := c.Query("user_id"); userID != "" {
		items, err = h.repo.ListByUser(c.Request.Context(), userID, limit, offset)
	} else {
		items, err = h.repo.List(c.Request.Context(), limit, offset)
	}
	if err != nil {
		httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	out := make([]auditLogResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"audit_logs": out})
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
