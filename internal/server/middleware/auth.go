// Package middleware holds the gin middleware chain: auth, audit, request
// events, and tracing.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/security"
	"challenge-hub/backend/internal/server/httpctx"
	"challenge-hub/backend/internal/server/httperr"
)

const bearerPrefix = "bearer "

// Auth returns middleware that validates the Bearer (access) token from the
// Authorization header and sets user_id and session_id on the request context.
// Requests without a valid token are rejected with 401.
func Auth(tokens *security.TokenProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "unauthenticated", "missing or invalid authorization")
			return
		}

		sessionID, userID, err := tokens.ValidateAccess(token)
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "unauthenticated", "missing or invalid authorization")
			return
		}

		ctx := httpctx.WithIdentity(c.Request.Context(), userID, sessionID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractBearer returns the Bearer token from the header value, or "" if missing or malformed.
func extractBearer(header string) string {
	v := strings.TrimSpace(header)
	if len(v) < len(bearerPrefix) {
		return ""
	}
	if !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
