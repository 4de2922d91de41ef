package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"atomic-scheduler/config"
	_ "atomic-scheduler/docs" // Swagger docs
	"atomic-scheduler/internal/httpserver"
	"atomic-scheduler/pkg/gcalendar"
	"atomic-scheduler/pkg/log"
	"atomic-scheduler/pkg/perplexity"
)

// @title       Atomic Scheduler API
// @description Personal daily scheduling: tasks, categories, conflict detection, slot suggestion, and AI-assisted planning with deterministic fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Atomic Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres connection: %v", err)
		return
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping postgres: %v", err)
		return
	}
	logger.Info(ctx, "Postgres connected")

	// 4. Perplexity client (optional; fallback generation without it)
	var llm perplexity.IPerplexity
	if cfg.Perplexity.APIKey != "" {
		client, llmErr := perplexity.New(perplexity.Config{
			APIKey:  cfg.Perplexity.APIKey,
			Model:   cfg.Perplexity.Model,
			BaseURL: cfg.Perplexity.BaseURL,
		})
		if llmErr != nil {
			logger.Warnf(ctx, "Perplexity not available (optional): %v", llmErr)
		} else {
			llm = client
			logger.Infof(ctx, "Perplexity initialized (model=%s)", client.Model())
		}
	} else {
		logger.Warn(ctx, "PERPLEXITY_API_KEY missing, AI routes serve fallback content")
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		LLM:         llm,
		Calendar:    calendarClient,
		AppConfig:   cfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
