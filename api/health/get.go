package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strollcast/episode-api/api/types"
)

// @Summary Health check
// @Description Reports service liveness and cache index connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.DB != nil {
			response["cache_index"] = getCacheIndexStatus(deps)
		} else {
			response["cache_index"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getCacheIndexStatus returns the cache index database status
func getCacheIndexStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
