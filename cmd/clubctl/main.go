package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/cricket-team/internal/app"
	"github.com/riskibarqy/cricket-team/internal/config"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	build := func(ctx context.Context, useMemory bool) (*app.Container, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		logger := logging.New(cfg.AppEnv, cfg.LogLevel)
		logging.SetDefault(logger)
		if useMemory {
			return app.NewContainer(cfg, logger, app.MemoryRepositories()), nil
		}
		return app.Build(ctx, cfg, logger)
	}

	if err := newRootCmd(build, os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
