package middleware

import (
	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/audit"
	"challenge-hub/backend/internal/server/httpctx"
)

// Audit returns middleware that records an audit log entry after each request
// via the given logger. LogEvent is best-effort, so a failed write never fails
// the request. Only writes for authenticated requests (user_id set in context).
func Audit(logger audit.AuditLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := httpctx.WithClientIP(c.Request.Context(), c.ClientIP())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		userID, ok := httpctx.GetUserID(c.Request.Context())
		if !ok || userID == "" {
			return
		}
		ar := audit.ParseRoute(c.Request.Method, c.FullPath())
		logger.LogEvent(c.Request.Context(), userID, ar.Action, ar.Resource, "")
	}
}
