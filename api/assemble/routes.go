package assemble

import (
	"github.com/gin-gonic/gin"

	"github.com/strollcast/episode-api/api/types"
)

// RegisterRoutes registers assembly routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/assemble - Assemble an episode from segment URLs
	router.POST("", Post(deps))

	router.GET("", types.MethodNotAllowed())
	router.PUT("", types.MethodNotAllowed())
	router.DELETE("", types.MethodNotAllowed())
}
