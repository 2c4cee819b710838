package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/The404Studios/outcasted/internal/config"
	"github.com/The404Studios/outcasted/internal/engine"
	"github.com/The404Studios/outcasted/internal/server"
	"github.com/The404Studios/outcasted/internal/version"
	"github.com/The404Studios/outcasted/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var configPath string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	flag.StringVar(&configPath, "config", "config.yaml", "Path to config file")
	flag.Parse()

	logger.Log.Info("Starting Outcasted...")
	logger.Log.Info(version.String())

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}
	if seed == 0 {
		seed = cfg.Simulation.Seed
	}
	if seed != 0 {
		logger.Log.Infof("🎲 Using explicit master seed: %d", seed)
	}

	// 2. Инициализация ядра
	gameService := engine.NewService(cfg, seed)
	srv := server.New(gameService, cfg.Server.BindAddress, cfg.Server.Port)

	// Graceful Shutdown по сигналу
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return gameService.Run(ctx)
	})
	g.Go(func() error {
		return srv.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Fatal("Server error: ", err)
	}
	logger.Log.Info("Done.")
}
