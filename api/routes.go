package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/strollcast/episode-api/api/assemble"
	"github.com/strollcast/episode-api/api/episodes"
	"github.com/strollcast/episode-api/api/health"
	"github.com/strollcast/episode-api/api/status"
	"github.com/strollcast/episode-api/api/types"
	"github.com/strollcast/episode-api/api/version"
	_ "github.com/strollcast/episode-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("handler dependencies are required")
	}
	if deps.AssemblyService == nil || deps.StatusTracker == nil {
		return fmt.Errorf("assembly service and status tracker are required")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Assembly jobs are heavy; one at a time per client (1 req/s, burst of 2)
	assembleGroup := v1.Group("/assemble")
	assembleGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2))
	assemble.RegisterRoutes(assembleGroup, deps)

	// Status polling is cheap (10 req/s, burst of 20)
	statusGroup := v1.Group("/status")
	statusGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	status.RegisterRoutes(statusGroup, deps)

	// Identifier derivation is pure computation (10 req/s, burst of 20)
	episodeGroup := v1.Group("/episodes")
	episodeGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	episodes.RegisterRoutes(episodeGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
