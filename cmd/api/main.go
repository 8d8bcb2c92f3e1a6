package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jarvis-assistant/config"
	_ "jarvis-assistant/docs" // Swagger docs
	assistantHTTP "jarvis-assistant/internal/assistant/delivery/http"
	tgDelivery "jarvis-assistant/internal/assistant/delivery/telegram"
	"jarvis-assistant/internal/assistant/usecase"
	"jarvis-assistant/internal/httpserver"
	"jarvis-assistant/internal/middleware"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/router"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/telegram"
	"jarvis-assistant/pkg/telemetry"
)

// @title       JARVIS Assistant API
// @description Keyword-driven conversational command dispatcher.
// @version     1
// @host        localhost:5000
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

	logger.Infof(ctx, "%s AI BOT - Version %s", cfg.Assistant.Name, cfg.Assistant.Version)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Assistant domain
	identity := model.Identity{
		Name:     cfg.Assistant.Name,
		FullName: cfg.Assistant.FullName,
		Version:  cfg.Assistant.Version,
		Active:   true,
	}

	intentRouter := router.New(logger)
	hostTelemetry := telemetry.New(telemetry.Config{CPUSampleInterval: cfg.Telemetry.CPUSampleInterval})
	assistantUC := usecase.New(logger, intentRouter, hostTelemetry, identity)

	// Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram delivery skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Version:         cfg.Assistant.Version,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.New(logger, middleware.Config{
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
			RateLimitPerMin: cfg.RateLimit.PerMin,
		}),
		AssistantHandler: assistantHTTP.New(logger, assistantUC),
		TelegramHandler:  telegramHandler,
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
