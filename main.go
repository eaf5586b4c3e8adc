// main.go
package main

import (
	"context"
	"log"

	"filmorate/cmd"
	"filmorate/internal/data/repository"
	"filmorate/internal/data/repository/memory"
	"filmorate/internal/data/repository/postgres"
	"filmorate/internal/wire"
	"filmorate/pkg/database"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Pick the storage backend
	repos, cleanup, err := buildRepository(config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer cleanup()

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func buildRepository(config *utils.Config, logger *zap.Logger) (*repository.Repository, func(), error) {
	switch config.Storage.Driver {
	case utils.StorageDriverPostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, nil, err
		}

		repos, err := postgres.NewRepository(context.Background(), db, logger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}

		logger.Info("Database connected successfully")
		return repos, db.Close, nil

	default:
		return memory.NewRepository(logger), func() {}, nil
	}
}
