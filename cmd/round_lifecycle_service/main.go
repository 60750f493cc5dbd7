package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"song_rounds_system/configs"
	"song_rounds_system/internal/db"
	"song_rounds_system/internal/db/repositories"
	"song_rounds_system/internal/di"
	"song_rounds_system/internal/lifecycle"
	"song_rounds_system/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	config, err := configs.LoadRoundLifecycleServiceConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	accountRepository := repositories.NewAccountRepository(database)

	engine := lifecycle.NewEngine(
		repositories.NewLifecycleRepository(database),
		repositories.NewRoundRepository(database),
		repositories.NewUserRepository(database),
		repositories.NewPlaylistRepository(database),
		repositories.NewNotificationEventRepository(database),
		services.NewAuthService(accountRepository, config.Spotify),
		services.NewSpotifyService(config.Spotify),
		services.NewPushService(config.Push),
		lifecycle.NewSystemClock(),
		logger,
	)

	scheduler := lifecycle.NewScheduler(engine, config.Scheduler, logger)

	ctx := context.Background()
	if _, err := scheduler.Start(ctx); err != nil {
		logger.Fatalw("failed to start scheduler", "error", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()
}
