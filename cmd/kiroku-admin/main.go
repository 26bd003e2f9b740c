package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/kiroku/internal/app"
	"github.com/KirkDiggler/kiroku/internal/config"
	"github.com/KirkDiggler/kiroku/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connect := func(ctx context.Context) (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		zl, err := logger.New(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		return app.New(ctx, cfg, zl)
	}

	if err := newRootCmd(connect).ExecuteContext(ctx); err != nil {
		stop()
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
