package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/kiroku/internal/app"
	"github.com/KirkDiggler/kiroku/internal/config"
	"github.com/KirkDiggler/kiroku/internal/handlers/api"
	"github.com/KirkDiggler/kiroku/internal/handlers/discord"
	"github.com/KirkDiggler/kiroku/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	// Test Redis connection while building the services
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	kiroku, err := app.New(ctx, cfg, zl)
	cancel()
	if err != nil {
		zl.Fatal("Failed to initialize", zap.Error(err))
	}
	defer func() {
		if err := kiroku.Close(); err != nil {
			zl.Warn("Error closing redis", zap.Error(err))
		}
	}()

	server, err := api.NewServer(&api.Config{
		Addr:             cfg.HTTPAddr,
		APIKey:           cfg.APIKey,
		SessionService:   kiroku.Sessions,
		CalendarService:  kiroku.Calendar,
		UserService:      kiroku.Users,
		MessagingService: kiroku.Messaging,
		Redis:            kiroku.Redis,
		Clock:            kiroku.Clock,
		Logger:           zl,
	})
	if err != nil {
		zl.Fatal("Failed to create HTTP server", zap.Error(err))
	}

	go func() {
		if err := server.Start(); err != nil {
			zl.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	var bot *discord.Bot
	if cfg.DiscordToken == "" {
		zl.Warn("DISCORD_TOKEN is not set, running the HTTP API only")
	} else {
		kirokuCmd, err := discord.NewKirokuCommand(&discord.KirokuCommandConfig{
			SessionService:   kiroku.Sessions,
			CalendarService:  kiroku.Calendar,
			UserService:      kiroku.Users,
			FriendService:    kiroku.Friends,
			MessagingService: kiroku.Messaging,
			Logger:           zl,
		})
		if err != nil {
			zl.Fatal("Failed to create kiroku command", zap.Error(err))
		}

		bot, err = discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.ApplicationID,
			GuildID:       cfg.GuildID,
			Commands:      []discord.CommandHandler{kirokuCmd},
			Logger:        zl,
		})
		if err != nil {
			zl.Fatal("Failed to create Discord bot", zap.Error(err))
		}

		if err := bot.Start(); err != nil {
			zl.Fatal("Failed to start Discord bot", zap.Error(err))
		}
	}

	zl.Info("Kiroku is running", zap.String("http_addr", cfg.HTTPAddr))

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if bot != nil {
		if err := bot.Stop(); err != nil {
			zl.Error("Error stopping bot", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Error("Error stopping HTTP server", zap.Error(err))
	}

	zl.Info("Kiroku has been shut down")
}
