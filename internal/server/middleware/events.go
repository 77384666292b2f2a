package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/server/httpctx"
	"challenge-hub/backend/internal/telemetry"
)

// Events returns middleware that emits a request event after each request.
// Best-effort and asynchronous; a nil emitter no-ops.
func Events(emitter telemetry.EventEmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if emitter == nil {
			return
		}

		userID, _ := httpctx.GetUserID(c.Request.Context())
		event := &telemetry.RequestEvent{
			Method:     c.Request.Method,
			Route:      c.FullPath(),
			Status:     c.Writer.Status(),
			UserID:     userID,
			Duration:   time.Since(start),
			OccurredAt: start.UTC(),
		}
		telemetry.EmitAsync(emitter, c.Request.Context(), event)
	}
}
