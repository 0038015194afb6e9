package http

import (
	"time"

	"github.com/creative-copilot/backend/internal/config"
	"github.com/creative-copilot/backend/internal/http/handlers"
	"github.com/creative-copilot/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Meta     *handlers.MetaHandler
	Generate *handlers.GenerateHandler
	Campaign *handlers.CampaignHandler
	Chat     *handlers.ChatHandler
	Brief    *handlers.BriefHandler
	WSHub    *handlers.WSHub
}

// SetupRouter mounts every route. A nil rdb disables rate limiting.
func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	h Handlers,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Meta (public, no auth required)
	api.Get("/meta/goals", h.Meta.GetGoals)
	api.Get("/meta/tones", h.Meta.GetTones)
	api.Get("/meta/platforms", h.Meta.GetPlatforms)
	api.Get("/meta/templates", h.Meta.GetTemplates)
	api.Get("/meta/categories", h.Meta.GetCategories)

	// Rate-limited public endpoints
	if rdb != nil {
		api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute, log))
	}

	api.Post("/auth/guest", h.Auth.Guest)
	api.Post("/generate", h.Generate.Generate)
	api.Post("/chat", h.Chat.PostMessage)
	api.Get("/chat/:session", h.Chat.GetTranscript)
	api.Post("/briefs/extract", h.Brief.Extract)

	// Protected endpoints
	protected := api.Group("/campaigns", middleware.AuthMiddleware(cfg.JWTSecret, log))
	protected.Post("/", h.Campaign.CreateCampaign)
	protected.Get("/", h.Campaign.ListCampaigns)
	protected.Get("/:id", h.Campaign.GetCampaign)
	protected.Delete("/:id", h.Campaign.DeleteCampaign)
	protected.Post("/:id/regenerate", h.Campaign.RegenerateCampaign)
	protected.Get("/:id/audit", h.Campaign.GetCampaignAudit)

	// WebSocket
	if h.WSHub != nil {
		app.Use("/ws", handlers.WSUpgradeMiddleware())
		app.Get("/ws", websocket.New(h.WSHub.HandleWS))
	}
}
