package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelhelper/cmd/fx/config_fx"
	"travelhelper/cmd/fx/inference_fx"
	"travelhelper/cmd/fx/itinerary_fx"
	"travelhelper/cmd/fx/logger_fx"
	"travelhelper/cmd/fx/store_fx"
	"travelhelper/internal/api"
	"travelhelper/internal/api/controllers"
	"travelhelper/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		store_fx.Module,
		inference_fx.Module,
		itinerary_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(cfg *config.Config, itineraryController *controllers.ItineraryController, logger *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	return api.NewRouter(itineraryController, logger.Named("http"))
}
