package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelhelper/internal/api/controllers"
	"travelhelper/internal/config"
	"travelhelper/internal/repositories"
	"travelhelper/internal/services"
	"travelhelper/pkg/kvstore"
	"travelhelper/pkg/llm"
	"travelhelper/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideTagSource,
	provideInferenceService,
	provideItineraryService,
	controllers.NewItineraryController,
)

func provideItineraryRepo(store kvstore.Store) repositories.ItineraryRepositoryInterface {
	return repositories.NewItineraryRepository(store)
}

func provideTagSource() services.TagSource {
	return utils.NewTagGenerator(nil)
}

func provideInferenceService(client llm.Client, cfg *config.Config, logger *zap.Logger) services.InferenceServiceInterface {
	return services.NewInferenceService(client, cfg.Inference.Model, cfg.Inference.Timeout, logger.Named("inference"))
}

func provideItineraryService(
	repo repositories.ItineraryRepositoryInterface,
	inference services.InferenceServiceInterface,
	tags services.TagSource,
	cfg *config.Config,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(repo, inference, tags, cfg.TagMaxAttempts, logger.Named("itinerary"))
}
