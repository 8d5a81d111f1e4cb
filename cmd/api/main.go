package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-task-extractor/config"
	_ "voice-task-extractor/docs" // Swagger docs
	extractionHTTP "voice-task-extractor/internal/extraction/delivery/http"
	tgDelivery "voice-task-extractor/internal/extraction/delivery/telegram"
	"voice-task-extractor/internal/extraction/usecase"
	"voice-task-extractor/internal/httpserver"
	"voice-task-extractor/internal/metrics"
	"voice-task-extractor/internal/middleware"
	"voice-task-extractor/internal/usage"
	"voice-task-extractor/pkg/datemath"
	"voice-task-extractor/pkg/log"
	"voice-task-extractor/pkg/taskextract"
	"voice-task-extractor/pkg/telegram"
)

// @title       Voice Task Extractor API
// @description Turns speech-to-text transcriptions into dated, prioritized to-do items.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
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

	logger.Info(ctx, "Starting Voice Task Extractor...")
	logger.Infof(ctx, "Environment: %s, timezone: %s, weekday resolution: %s",
		cfg.Environment.Name, cfg.Extractor.Timezone, cfg.Extractor.WeekdayResolution)

	// 3. Extraction domain
	dates, err := datemath.NewParser(cfg.Extractor.Timezone)
	if err != nil {
		return fmt.Errorf("extractor timezone: %w", err)
	}
	extractor := taskextract.New(
		taskextract.WithLocation(dates.Location()),
		taskextract.WithWeekdayResolution(taskextract.WeekdayResolution(cfg.Extractor.WeekdayResolution)),
	)

	tracker := usage.NewMemoryTracker(usage.Config{
		TasksPerDay:          cfg.Usage.TasksPerDay,
		TranscriptionsPerDay: cfg.Usage.TranscriptionsPerDay,
		RetentionDays:        cfg.Usage.RetentionDays,
		PremiumUsers:         cfg.Usage.PremiumUsers,
		MaxUsers:             cfg.Usage.MaxUsers,
	}, dates)

	m := metrics.New()
	extractionUC := usecase.New(logger, extractor, tracker, m)

	// 4. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, extractionUC, bot, cfg.Telegram.SecretToken)
		go registerTelegramWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ShutdownTimeout:   cfg.HTTPServer.ShutdownTimeout,
		Metrics:           m,
		Middleware:        middleware.New(logger, middleware.Config{RequestsPerMin: cfg.RateLimit.RequestsPerMin}, m),
		ExtractionHandler: extractionHTTP.New(logger, extractionUC),
		TelegramHandler:   telegramHandler,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
	return nil
}

// registerTelegramWebhook points Telegram at this service. Without a
// configured URL it looks for an ngrok tunnel.
func registerTelegramWebhook(ctx context.Context, l log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.TunnelAPIURL != "" {
		publicURL, err := detectTunnelURL(ctx, cfg.TunnelAPIURL, 10, 3*time.Second)
		if err != nil {
			l.Warnf(ctx, "Could not detect tunnel URL: %v", err)
			return
		}
		webhookURL = publicURL + "/webhook/telegram"
		l.Infof(ctx, "Auto-detected tunnel URL: %s", webhookURL)
	}
	if webhookURL == "" {
		l.Info(ctx, "Telegram webhook URL not configured, assuming it is registered already")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	l.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
