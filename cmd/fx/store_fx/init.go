package store_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelhelper/internal/config"
	"travelhelper/internal/infra"
	"travelhelper/pkg/kvstore"
)

var Module = fx.Provide(provideStore)

func provideStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (kvstore.Store, error) {
	store, err := infra.OpenStore(cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() error {
		logger.Info("Closing store", zap.String("backend", cfg.Store.Backend))
		return store.Close()
	}))
	return store, nil
}
