package routes

import (
	coreport "github.com/amirhossein-jamali/point-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, pointHandler *handler.PointHandler) {
	pointRoutes := router.Group("/point")
	{
		// GET /point/:id
		pointRoutes.GET("/:id", pointHandler.GetPoint)

		// GET /point/:id/histories
		pointRoutes.GET("/:id/histories", pointHandler.GetHistories)

		// PATCH /point/:id/charge
		pointRoutes.PATCH("/:id/charge", pointHandler.Charge)

		// PATCH /point/:id/use
		pointRoutes.PATCH("/:id/use", pointHandler.Use)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Order matters: request id first so recovery and logging can reference it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
