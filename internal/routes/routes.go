package routes

import (
	"time"

	"github.com/codehubhq/codehub-backend/internal/config"
	"github.com/codehubhq/codehub-backend/internal/handlers"
	"github.com/codehubhq/codehub-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	snippetHandler *handlers.SnippetHandler,
	documentHandler *handlers.DocumentHandler,
	bugHandler *handlers.BugHandler,
	componentHandler *handlers.ComponentHandler,
	userHandler *handlers.UserHandler,
	notificationHandler *handlers.NotificationHandler,
	aiHandler *handlers.AIHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	optional := middleware.JWTOptional(cfg)
	protected := middleware.JWTProtected(cfg)

	// Snippets — feed and detail are public, the viewer token only adds
	// per-viewer flags when present
	api.Get("/snippets", optional, snippetHandler.GetFeed)
	api.Get("/snippets/saved", protected, snippetHandler.GetSaved)
	api.Get("/snippets/:id", optional, snippetHandler.GetByID)
	api.Get("/snippets/:id/comments", snippetHandler.GetComments)
	api.Post("/snippets", protected, snippetHandler.Create)
	api.Put("/snippets/:id", protected, snippetHandler.Update)
	api.Delete("/snippets/:id", protected, snippetHandler.Delete)
	api.Post("/snippets/:id/like", protected, snippetHandler.ToggleLike)
	api.Post("/snippets/:id/save", protected, snippetHandler.ToggleSave)
	api.Post("/snippets/:id/comments", protected, snippetHandler.AddComment)

	// Documents
	api.Get("/docs", optional, documentHandler.List)
	api.Get("/docs/saved", protected, documentHandler.GetSaved)
	api.Get("/docs/:slug", optional, documentHandler.GetBySlug)
	api.Get("/docs/:id/comments", documentHandler.GetComments)
	api.Post("/docs", protected, documentHandler.Create)
	api.Put("/docs/:id", protected, documentHandler.Update)
	api.Delete("/docs/:id", protected, documentHandler.Delete)
	api.Post("/docs/:id/like", protected, documentHandler.ToggleLike)
	api.Post("/docs/:id/save", protected, documentHandler.ToggleSave)
	api.Post("/docs/:id/comments", protected, documentHandler.AddComment)

	// Bug reports
	api.Get("/bugs", optional, bugHandler.List)
	api.Post("/bugs", protected, bugHandler.Create)
	api.Post("/bugs/:id/upvote", protected, bugHandler.ToggleUpvote)
	api.Put("/bugs/:id/status", protected, bugHandler.UpdateStatus)

	// UI components
	api.Get("/components", componentHandler.List)
	api.Get("/components/:slug", componentHandler.GetBySlug)
	api.Post("/components", protected, componentHandler.Create)

	// Users and community
	api.Get("/users", optional, userHandler.List)
	api.Get("/users/:id", optional, userHandler.GetProfile)
	api.Put("/users/me", protected, userHandler.UpdateProfile)
	api.Post("/users/:id/follow", protected, userHandler.ToggleFollow)

	// Notifications
	api.Get("/notifications", protected, notificationHandler.List)
	api.Put("/notifications/read", protected, notificationHandler.MarkAllRead)

	// AI assistance (authenticated)
	ai := api.Group("/ai", protected)
	ai.Post("/generate", aiHandler.GenerateSnippet)
	ai.Post("/convert", aiHandler.ConvertCode)
	ai.Post("/explain", aiHandler.ExplainCode)
}
