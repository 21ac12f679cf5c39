package app

import (
	"context"

	"go.uber.org/zap"

	"rivvo/internal/config"
	"rivvo/internal/database"
	"rivvo/internal/repository"
	"rivvo/internal/service"
	"rivvo/internal/storage"
)

// App connects the database and object storage and wires the service layer.
// Avatar storage is optional, the API runs without it.
func App(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*database.DB, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	// connection MinIO
	var store storage.Storage
	if cfg.MinIO.Enabled() {
		client, err := storage.NewMinIOClient(ctx, cfg, logger)
		if err != nil {
			logger.Warn("MinIO unavailable, avatar uploads disabled", zap.Error(err))
		} else {
			store = client
		}
	} else {
		logger.Info("MINIO_ENDPOINT not set, avatar uploads disabled")
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, store, logger)

	return db, services, nil
}
