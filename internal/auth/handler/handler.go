// Package handler exposes authentication endpoints over HTTP.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/auth/service"
	"challenge-hub/backend/internal/server/httperr"
)

type Handler struct {
	auth *service.AuthService
}

func NewHandler(auth *service.AuthService) *Handler {
	return &Handler{auth: auth}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type tokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
}

// Register creates a new account.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			httperr.JSON(c, http.StatusConflict, "email_taken", "email already registered")
			return
		}
		httperr.JSON(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": res.UserID})
}

// Login verifies credentials and opens a session.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httperr.JSON(c, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    res.ExpiresAt,
		UserID:       res.UserID,
	})
}

// Refresh rotates the refresh token and issues a new access token.
func (h *Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRefreshTokenReuse):
			httperr.JSON(c, http.StatusUnauthorized, "refresh_token_reuse", "refresh token reuse detected; all sessions revoked")
		case errors.Is(err, service.ErrInvalidRefreshToken):
			httperr.JSON(c, http.StatusUnauthorized, "invalid_refresh_token", "invalid or expired refresh token")
		default:
			httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
		}
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    res.ExpiresAt,
		UserID:       res.UserID,
	})
}

// Logout revokes the session named by the refresh token, or the current
// session when no token is supplied.
func (h *Handler) Logout(c *gin.Context) {
	var req refreshRequest
	// Body is optional for logout.
	_ = c.ShouldBindJSON(&req)

	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		httperr.JSON(c, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
