package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ItsCoreyE/creatorsite/internal/auth"
	"github.com/ItsCoreyE/creatorsite/internal/handlers"
	"github.com/ItsCoreyE/creatorsite/internal/middleware"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(
	router chi.Router,
	adminHandler *handlers.AdminHandler,
	statsHandler *handlers.StatsHandler,
	milestoneHandler *handlers.MilestoneHandler,
	notificationHandler *handlers.NotificationHandler,
	robloxHandler *handlers.RobloxHandler,
	sessions *auth.SessionManager,
) {
	// Burst limit on the password check, in front of the lockout limiter
	verifyRateLimit := middleware.DefaultVerifyRateLimit()

	// Public routes - no authentication required
	router.Get("/api/data", statsHandler.Get)
	router.Get("/api/milestones", milestoneHandler.Get)
	router.Get("/api/roblox", robloxHandler.Lookup)

	router.With(middleware.RateLimitByIP(verifyRateLimit)).Post("/api/admin/verify", adminHandler.Verify)

	// Protected routes - session cookie required
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin(sessions))

		r.Post("/api/admin/logout", adminHandler.Logout)
		r.Post("/api/data", statsHandler.Save)
		r.Post("/api/milestones", milestoneHandler.Replace)
		r.Post("/api/discord/milestone-webhook", notificationHandler.MilestoneWebhook)
		r.Post("/api/discord/csv-stats-webhook", notificationHandler.StatsWebhook)
	})
}
