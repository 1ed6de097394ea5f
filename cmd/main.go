package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"news-detector/config"
	telegram "news-detector/internal/api"
	"news-detector/internal/container"
	"news-detector/internal/infrastructure/storage"
	"news-detector/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel(), os.Stderr)
	if err != nil {
		logg.WithError(err).Warn("Unknown LOG_LEVEL, using info")
	}
	logg.WithField("config", cfg).Info("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Подключаемся к базе подписчиков
	pool, err := storage.NewPostgresPool(ctx, cfg.DatabaseURL())
	if err != nil {
		logg.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	subscriberRepo := storage.NewPostgresSubscriberRepository(pool)
	if err := subscriberRepo.EnsureSchema(ctx); err != nil {
		logg.Fatalf("Failed to prepare database: %v", err)
	}

	// Собираем сервисы приложения
	appContainer := container.New(subscriberRepo)

	bot, err := telegram.NewBot(cfg, appContainer, logg)
	if err != nil {
		logg.Fatalf("Failed to create bot: %v", err)
	}

	logg.Info("Bot is running...")
	if err := bot.Run(ctx); err != nil {
		logg.Fatalf("Bot error: %v", err)
	}
	logg.Info("Bot stopped")
}
