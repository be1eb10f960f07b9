package main

import (
	"github.com/gin-gonic/gin"

	"github.com/planhive/gateway/internal/config"
	"github.com/planhive/gateway/internal/handlers"
	"github.com/planhive/gateway/internal/middleware"
	"github.com/planhive/gateway/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))

	// Join requests are the only user-initiated write that fans out per
	// click, keep them from being hammered.
	joinLimiter := middleware.NewRateLimiter(5, 10)

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	api.Use(middleware.AuthRequired(cfg.Auth.CookieName))
	{
		// Overview
		api.GET("/overview/projects", svc.overviewHandler.Projects)
		api.GET("/overview/schedule", svc.overviewHandler.Schedule)

		// Project status and membership
		api.GET("/projects/:id/status", svc.projectHandler.Status)
		api.POST("/projects/:id/join", joinLimiter.Middleware(), svc.projectHandler.Join)
		api.GET("/projects/:id/participants", svc.memberHandler.Participants)
		api.GET("/projects/:id/requests", svc.memberHandler.Requests)
		api.POST("/projects/:id/requests/:requestId/accept", svc.memberHandler.AcceptRequest)
		api.POST("/projects/:id/requests/:requestId/reject", svc.memberHandler.RejectRequest)
		api.DELETE("/projects/:id/participants/:participantId", svc.memberHandler.RemoveParticipant)

		// Community discovery
		api.GET("/community/browse", svc.communityHandler.Browse)
		api.GET("/community/search", svc.communityHandler.Search)

		// Invitations
		api.GET("/invitations", svc.invitationHandler.List)
		api.POST("/projects/:id/invitations", svc.invitationHandler.Create)
		api.POST("/invitations/:id/accept", svc.invitationHandler.Accept)
		api.POST("/invitations/:id/reject", svc.invitationHandler.Reject)
		api.DELETE("/invitations/:id", svc.invitationHandler.Delete)
	}
}
