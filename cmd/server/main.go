package main

import (
	"os"

	"github.com/avdeyev/ranobe-hub/internal/server"
	"github.com/avdeyev/ranobe-hub/pkg/config"
	"github.com/avdeyev/ranobe-hub/pkg/database"
	"github.com/avdeyev/ranobe-hub/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (optional)
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Init(logger.INFO, false, os.Stdout)
		logger.GetLogger().Error("failed_to_load_config", "error", err.Error())
		os.Exit(1)
	}

	logger.Init(logger.LogLevel(cfg.Logging.Level), cfg.Logging.Format == "json", os.Stdout)
	log := logger.GetLogger().WithContext("component", "server")
	log.Info("starting_server", "version", "1.0.0")

	if err := database.InitDatabase(cfg.Database.Path); err != nil {
		log.Error("failed_to_initialize_database", "error", err.Error(), "path", cfg.Database.Path)
		os.Exit(1)
	}
	defer database.Close()

	router := server.NewRouter(cfg, "web/templates/*.html", "web/static")

	log.Info("listening", "addr", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Error("failed_to_start_server", "error", err.Error())
		os.Exit(1)
	}
}
