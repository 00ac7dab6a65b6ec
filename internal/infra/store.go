package infra

import (
	"fmt"

	"go.uber.org/zap"
	"travelhelper/internal/config"
	"travelhelper/pkg/kvstore"
	"travelhelper/pkg/utils"
)

// OpenStore opens the key/value backend selected by configuration.
func OpenStore(cfg config.StoreConfig, logger *zap.Logger) (kvstore.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Warn("Using in-memory store; itineraries are lost on restart")
		return kvstore.NewMemoryStore(), nil
	case config.BackendSQLite:
		store, err := kvstore.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("Opened SQLite store", zap.String("path", cfg.SQLitePath))
		return store, nil
	case config.BackendPostgres:
		db, err := InitPostgresql(cfg.PostgresURL, logger)
		if err != nil {
			return nil, err
		}
		return kvstore.NewGormStore(db)
	default:
		return nil, fmt.Errorf("%w: %s", utils.ErrUnsupportedBackend, cfg.Backend)
	}
}
