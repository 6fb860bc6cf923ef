package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodgram/cmd/config"
	migration "foodgram/cmd/database/migrate"
	"foodgram/internal/utils"
	"foodgram/pkg/logger"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := utils.LoadConfig("config.yaml")
	if err != nil {
		panic(err)
	}

	if err := logger.InitGlobalLogger(logger.Environment(cfg.LogMode), cfg.LogLevel); err != nil {
		panic(err)
	}
	log := logger.Log(ctx)
	defer func() { _ = log.Sync() }()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal(ctx, "failed to connect database", zap.Error(err))
	}
	if err := migration.Migrate(ctx, db); err != nil {
		log.Fatal(ctx, "failed to migrate database", zap.Error(err))
	}

	redisClient, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Fatal(ctx, "failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	app, err := config.NewApp(ctx, cfg, db, redisClient)
	if err != nil {
		log.Fatal(ctx, "failed to build app", zap.Error(err))
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error(shutdownCtx, "graceful shutdown failed", zap.Error(err))
		}
	}()

	log.Info(ctx, "starting server", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal(ctx, "server stopped", zap.Error(err))
	}
}
