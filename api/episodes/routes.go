package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/strollcast/episode-api/api/types"
)

// RegisterRoutes registers episode identifier routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/episodes/derive-id - Derive a stable episode identifier
	router.POST("/derive-id", PostDeriveID(deps))
}
