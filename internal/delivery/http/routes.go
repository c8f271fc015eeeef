package http

import (
	"github.com/gin-gonic/gin"

	"github.com/NiviGiridharan/smart-pantry-assistant/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		extract := v1.Group("/extract")
		{
			extract.POST("/receipt", handler.ParseReceipt)
			extract.POST("/screenshots", handler.ParseScreenshots)
		}

		v1.POST("/items/rematch", handler.Rematch)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", handler.CreateSession)
			sessions.GET("/:id", handler.GetSession)
			sessions.POST("/:id/advance", handler.AdvanceSession)
			sessions.PUT("/:id/items/:itemId", handler.UpdateSessionItem)
		}
	}

	return router
}
