package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelhelper/internal/api/controllers"
	"travelhelper/pkg/middleware"
)

// NewRouter builds the engine. The travel helper is installed as the NoRoute
// handler so that it receives every method and path.
func NewRouter(itineraryController *controllers.ItineraryController, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.AccessLogMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine, itineraryController *controllers.ItineraryController) {
	r.NoRoute(itineraryController.HandleTravelHelper)
}
