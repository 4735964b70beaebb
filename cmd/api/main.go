package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/internal/queryparser"
	gcalRepo "calendar-assistant/internal/schedule/repository/gcalendar"
	"calendar-assistant/internal/schedule/usecase"
	"calendar-assistant/pkg/llmprovider"
	"calendar-assistant/pkg/log"
)

// @title       Calendar Assistant API
// @description Turns natural-language scheduling requests into Google Calendar events.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid scheduler timezone %q: %v", cfg.Scheduler.Timezone, err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 3. Completion provider
	provider, err := llmprovider.InitializeProvider(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM provider: %v", err)
		os.Exit(1)
	}
	llm := llmprovider.NewManager(provider, &llmprovider.Config{Timeout: cfg.LLM.Timeout}, logger)
	logger.Infof(ctx, "LLM provider: %s (%s)", llm.Name(), llm.Model())

	parser, err := queryparser.New(logger, llm, queryparser.Options{
		Timezone:  cfg.Scheduler.Timezone,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize query parser: %v", err)
		os.Exit(1)
	}

	// 4. Calendar gateway (client is built on first use)
	calendarRepo := gcalRepo.New(logger, gcalRepo.Config{
		CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
		TokenPath:       cfg.GoogleCalendar.TokenPath,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		Timeout:         cfg.GoogleCalendar.Timeout,
	})
	if _, statErr := os.Stat(cfg.GoogleCalendar.CredentialsPath); statErr != nil {
		logger.Warnf(ctx, "Google Calendar credentials not found at %s: %v", cfg.GoogleCalendar.CredentialsPath, statErr)
		logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
	}

	// 5. Use case
	scheduleUC, err := usecase.New(logger, parser, calendarRepo, usecase.Options{
		Location:      loc,
		UpcomingLimit: cfg.Scheduler.UpcomingLimit,
		Registerer:    registry,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize schedule use case: %v", err)
		os.Exit(1)
	}

	// 6. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		ShutdownTimeout:  cfg.HTTPServer.ShutdownTimeout,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		Registry:         registry,
		ScheduleUseCase:  scheduleUC,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
