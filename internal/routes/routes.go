package routes

import (
	"dastawez_backend/internal/handlers"
	"dastawez_backend/internal/logger"
	"dastawez_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP and WebSocket route.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.Handler,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ServiceHandler.RegisterRoutes(api)
		appHandlers.OrderHandler.RegisterRoutes(api)
		appHandlers.DocumentHandler.RegisterRoutes(api)
		appHandlers.PaymentHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
	}

	// File downloads resolve stored file_url values, so they sit at
	// the engine root rather than under /api/v1.
	appHandlers.FileHandler.RegisterRoutes(ginRouter)

	wsHandler.RegisterRoutes(ginRouter)
	logger.Info("WebSocket route /ws registered")
}
