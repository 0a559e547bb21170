package status

import (
	"github.com/gin-gonic/gin"

	"github.com/strollcast/episode-api/api/types"
)

// RegisterRoutes registers assembly status routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/status - Current assembly job status
	router.GET("", Get(deps))

	router.POST("", types.MethodNotAllowed())
}
