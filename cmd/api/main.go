package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"remodel-checklist/config"
	_ "remodel-checklist/docs" // Swagger docs
	"remodel-checklist/internal/httpserver"
	"remodel-checklist/pkg/gcalendar"
	"remodel-checklist/pkg/log"
)

// @title       Remodel Checklist API
// @description Meeting checklist engine for remodeling contractors: templated checklists, cascading toggles, progress tracking and Google Calendar linkage.
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

	logger.Info(ctx, "Starting Remodel Checklist API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Info(ctx, "Google Calendar credentials not configured, meeting linkage disabled")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TemplatesPath:   cfg.Checklists.TemplatesPath,
		SessionTTL:      cfg.Checklists.SessionTTL,
		SessionCapacity: cfg.Checklists.SessionCapacity,
		RateLimitPerMin: cfg.Checklists.RateLimitPerMin,
		Calendar:        calendarClient,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
