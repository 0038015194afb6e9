package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/creative-copilot/backend/internal/briefparser"
	"github.com/creative-copilot/backend/internal/catalog"
	"github.com/creative-copilot/backend/internal/config"
	"github.com/creative-copilot/backend/internal/db"
	"github.com/creative-copilot/backend/internal/engine"
	"github.com/creative-copilot/backend/internal/events"
	apphttp "github.com/creative-copilot/backend/internal/http"
	"github.com/creative-copilot/backend/internal/http/handlers"
	"github.com/creative-copilot/backend/internal/repositories"
	"github.com/creative-copilot/backend/internal/services"
	"github.com/creative-copilot/backend/migrations"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	var migrationsFS fs.FS = migrations.FS
	if cfg.MigrationsDir != "" {
		migrationsFS = os.DirFS(cfg.MigrationsDir)
	}
	if err := db.RunMigrations(ctx, pool, migrationsFS, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	campaignRepo := repositories.NewCampaignRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)
	chatRepo := repositories.NewChatRepo(rdb, cfg.ChatHistoryLimit, cfg.ChatHistoryTTL)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	templates := catalog.All()
	generator := engine.NewGenerator(templates, cfg.MaxTemplates, log)
	campaignService := services.NewCampaignService(generator, campaignRepo, auditRepo, publisher, log)
	chatService := services.NewChatService(chatRepo, publisher, log)
	briefParser := briefparser.NewParser(cfg.BriefFetchTimeoutMS, cfg.BriefFetchMaxRetries, log)

	// Handlers
	wsHub := handlers.NewWSHub(cfg.JWTSecret, subscriber, chatService, log)
	h := apphttp.Handlers{
		Auth:     handlers.NewAuthHandler(cfg.JWTSecret, cfg.JWTExpiration, log),
		Meta:     handlers.NewMetaHandler(templates),
		Generate: handlers.NewGenerateHandler(campaignService, log),
		Campaign: handlers.NewCampaignHandler(campaignService, log),
		Chat:     handlers.NewChatHandler(chatService, log),
		Brief:    handlers.NewBriefHandler(briefParser, log),
		WSHub:    wsHub,
	}

	// Start WS hub
	if err := wsHub.Start(ctx); err != nil {
		log.Fatal("failed to subscribe to campaign events", zap.Error(err))
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, h)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server",
		zap.String("addr", addr),
		zap.Int("templates", len(templates)),
		zap.Int("max_templates", cfg.MaxTemplates),
	)
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
