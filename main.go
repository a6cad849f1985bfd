package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopconsole.io/app"
	"shopconsole.io/configs"
	"shopconsole.io/configs/configsdatabase"
	"shopconsole.io/configs/configslog"
	"shopconsole.io/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Configuration could not be loaded", zap.Error(err))
	}

	db, err := configsdatabase.InitDB(cfg.Database, cfg.IsDevelopment())
	if err != nil {
		configslog.Log.Fatal("Database connection failed", zap.Error(err))
	}
	defer configsdatabase.CloseDB()

	if cfg.AutoMigrate {
		if err := database.Initialize(db, true, false); err != nil {
			configslog.Log.Fatal("Automatic migration failed", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := app.New(ctx, cfg, db, nil)
	if err != nil {
		configslog.Log.Fatal("Application could not be built", zap.Error(err))
	}
	go server.RunSweeper(ctx)

	listenErr := make(chan error, 1)
	go func() {
		configslog.SLog.Infof("Listening on :%s", cfg.Port)
		listenErr <- server.Fiber.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-listenErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			configslog.Log.Error("Server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		configslog.SLog.Info("Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		configslog.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
