package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/creative-copilot/backend/internal/catalog"
	"github.com/creative-copilot/backend/internal/cli"
	"github.com/creative-copilot/backend/internal/config"
	"github.com/creative-copilot/backend/internal/db"
	"github.com/creative-copilot/backend/internal/engine"
	"github.com/creative-copilot/backend/internal/repositories"
	"github.com/creative-copilot/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log := zap.NewNop()
	if os.Getenv("COPILOT_VERBOSE") != "" {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		log = dev
	}
	defer log.Sync()
	cfg.Validate(log)

	// COPILOT_DB or ~/.copilot/copilot.db
	dbPath := cfg.SQLitePath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".copilot", "copilot.db")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	templates := catalog.All()
	generator := engine.NewGenerator(templates, cfg.MaxTemplates, log)

	app := &cli.App{
		Campaigns:     services.NewCampaignService(generator, repositories.NewSQLiteCampaignRepo(database), nil, nil, log),
		Templates:     templates,
		JWTSecret:     cfg.JWTSecret,
		JWTExpiration: cfg.JWTExpiration,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
