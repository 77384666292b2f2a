// Package server wires the gin engine: middleware chain and route registration.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/audit"
	audithandler "challenge-hub/backend/internal/audit/handler"
	authhandler "challenge-hub/backend/internal/auth/handler"
	challengehandler "challenge-hub/backend/internal/challenge/handler"
	healthhandler "challenge-hub/backend/internal/health/handler"
	participationhandler "challenge-hub/backend/internal/participation/handler"
	"challenge-hub/backend/internal/security"
	"challenge-hub/backend/internal/server/middleware"
	"challenge-hub/backend/internal/telemetry"
)

// Deps holds everything the router needs.
type Deps struct {
	Tokens         *security.TokenProvider
	Auditor        audit.AuditLogger
	Emitter        telemetry.EventEmitter
	CORSOrigins    []string
	Auth           *authhandler.Handler
	Challenges     *challengehandler.Handler
	Participations *participationhandler.Handler
	AuditLogs      *audithandler.Handler
	Health         *healthhandler.Handler
}

// NewRouter builds the gin engine with the full middleware chain and all routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.Tracing())
	r.Use(middleware.Events(deps.Emitter))

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", deps.Health.Check)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.Auth.Register)
		auth.POST("/login", deps.Auth.Login)
		auth.POST("/refresh", deps.Auth.Refresh)
		auth.POST("/logout", deps.Auth.Logout)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Tokens))
	protected.Use(middleware.Audit(deps.Auditor))
	{
		protected.POST("/challenges", deps.Challenges.Create)
		protected.GET("/challenges", deps.Challenges.List)
		protected.GET("/challenges/:id", deps.Challenges.Get)

		protected.POST("/participations", deps.Participations.Create)
		protected.GET("/participations", deps.Participations.List)
		protected.GET("/participations/:id", deps.Participations.Get)

		protected.GET("/audit-logs", deps.AuditLogs.List)
	}

	return r
}
