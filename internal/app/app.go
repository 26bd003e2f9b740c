// Package app wires repositories and services on top of a Redis client. It is
// shared by the bot binary and the admin CLI.
package app

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/kiroku/internal/common/uuid"
	"github.com/KirkDiggler/kiroku/internal/config"
	"github.com/KirkDiggler/kiroku/internal/redisclient"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	friendRepo "github.com/KirkDiggler/kiroku/internal/repositories/friend"
	userRepo "github.com/KirkDiggler/kiroku/internal/repositories/user"
	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/KirkDiggler/kiroku/internal/services/friend"
	"github.com/KirkDiggler/kiroku/internal/services/messaging"
	"github.com/KirkDiggler/kiroku/internal/services/session"
	"github.com/KirkDiggler/kiroku/internal/services/user"
)

// App holds every long-lived dependency of a Kiroku process.
type App struct {
	Redis *redis.Client
	Clock clockwork.Clock

	SessionRepo sessionRepo.Repository

	Sessions  session.Service
	Calendar  calendar.Service
	Users     user.Service
	Friends   friend.Service
	Messaging messaging.Service

	logger *zap.Logger
}

// New connects to Redis and builds the services. The returned App must be
// closed by the caller.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := redisclient.New(ctx, &redisclient.Config{
		URL:      cfg.RedisURL,
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}

	a, err := Build(client, clockwork.NewRealClock(), cfg, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	return a, nil
}

// Build wires the repositories and services around an existing client.
func Build(client *redis.Client, clock clockwork.Clock, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}
	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	friends, err := friendRepo.NewRedis(&friendRepo.Config{RedisClient: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create friend repository: %w", err)
	}

	sessionSvc, err := session.New(&session.Config{
		SessionRepo:     sessions,
		UserRepo:        users,
		Clock:           clock,
		UUIDGenerator:   uuid.New(),
		Logger:          logger,
		DefaultTimezone: cfg.DefaultTimezone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	calendarSvc, err := calendar.New(&calendar.Config{
		SessionRepo: sessions,
		UserRepo:    users,
		Clock:       clock,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	userSvc, err := user.New(&user.Config{
		UserRepo:        users,
		Clock:           clock,
		Logger:          logger,
		DefaultTimezone: cfg.DefaultTimezone,
		NoticeCooldown:  cfg.NoticeCooldown,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	friendSvc, err := friend.New(&friend.Config{
		FriendRepo:  friends,
		UserRepo:    users,
		SessionRepo: sessions,
		Clock:       clock,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create friend service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &App{
		Redis:       client,
		Clock:       clock,
		SessionRepo: sessions,
		Sessions:    sessionSvc,
		Calendar:    calendarSvc,
		Users:       userSvc,
		Friends:     friendSvc,
		Messaging:   messagingSvc,
		logger:      logger,
	}, nil
}

// Close stops the calendar watchers and releases the Redis connection.
func (a *App) Close() error {
	if err := a.Calendar.Close(); err != nil {
		a.logger.Warn("failed to close calendar service", zap.Error(err))
	}
	return a.Redis.Close()
}
