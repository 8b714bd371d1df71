package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/volunteerhub/volunteerhub-backend/internal/config"
	"github.com/volunteerhub/volunteerhub-backend/internal/handlers"
	"github.com/volunteerhub/volunteerhub-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	eventHandler *handlers.EventHandler,
	helpRequestHandler *handlers.HelpRequestHandler,
	teamHandler *handlers.TeamHandler,
	impactHandler *handlers.ImpactHandler,
) {
	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh-token", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	// Events
	events := api.Group("/events")
	events.Get("/", eventHandler.ListEvents)
	events.Get("/:id", eventHandler.GetEvent)
	events.Post("/", middleware.JWTProtected(cfg, db), eventHandler.CreateEvent)
	events.Put("/:id", middleware.JWTProtected(cfg, db), eventHandler.UpdateEvent)
	events.Delete("/:id", middleware.JWTProtected(cfg, db), eventHandler.DeleteEvent)
	events.Post("/:id/join", middleware.JWTProtected(cfg, db), eventHandler.JoinEvent)

	// Help requests
	helpRequests := api.Group("/help-requests")
	helpRequests.Get("/", helpRequestHandler.ListHelpRequests)
	helpRequests.Get("/:id", helpRequestHandler.GetHelpRequest)
	helpRequests.Post("/", middleware.JWTProtected(cfg, db), helpRequestHandler.CreateHelpRequest)
	helpRequests.Put("/:id", middleware.JWTProtected(cfg, db), helpRequestHandler.UpdateHelpRequest)
	helpRequests.Delete("/:id", middleware.JWTProtected(cfg, db), helpRequestHandler.DeleteHelpRequest)
	helpRequests.Post("/:id/offer-help", middleware.JWTProtected(cfg, db), helpRequestHandler.OfferHelp)

	// Team reads are public, but a bearer token is honored so private
	// teams stay visible to their members
	teams := api.Group("/teams")
	teams.Get("/", teamHandler.ListTeams)
	teams.Get("/:id", middleware.JWTOptional(cfg), teamHandler.GetTeam)
	teams.Post("/", middleware.JWTProtected(cfg, db), teamHandler.CreateTeam)
	teams.Put("/:id", middleware.JWTProtected(cfg, db), teamHandler.UpdateTeam)
	teams.Post("/:id/join", middleware.JWTProtected(cfg, db), teamHandler.JoinTeam)
	teams.Post("/:id/leave", middleware.JWTProtected(cfg, db), teamHandler.LeaveTeam)

	// Impact
	impact := api.Group("/impact")
	impact.Get("/leaderboard", impactHandler.GetLeaderboard)
	impact.Post("/hours", middleware.JWTProtected(cfg, db), impactHandler.LogHours)
	impact.Put("/hours/:id/verify", middleware.JWTProtected(cfg, db), impactHandler.VerifyHours)
	impact.Get("/profile", middleware.JWTProtected(cfg, db), impactHandler.GetUserImpact)
	impact.Get("/profile/:userId", middleware.JWTProtected(cfg, db), impactHandler.GetUserImpact)
}
