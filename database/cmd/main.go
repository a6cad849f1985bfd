package main

import (
	"flag"
	"os"

	"shopconsole.io/configs"
	"shopconsole.io/configs/configsdatabase"
	"shopconsole.io/configs/configslog"
	"shopconsole.io/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Run database migrations")
	seedFlag := flag.Bool("seed", false, "Run database seeders")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Configuration could not be loaded", zap.Error(err))
	}

	db, err := configsdatabase.InitDB(cfg.Database, cfg.IsDevelopment())
	if err != nil {
		configslog.Log.Fatal("Database connection failed", zap.Error(err))
	}
	defer configsdatabase.CloseDB()

	configslog.SLog.Info("Running database initialization...")
	if err := database.Initialize(db, *migrateFlag, *seedFlag); err != nil {
		configsdatabase.CloseDB()
		configslog.SyncLogger()
		os.Exit(1)
	}
	configslog.SLog.Info("Database initialization finished.")
}
