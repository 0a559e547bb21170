package status

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strollcast/episode-api/api/types"
)

// @Summary Assembly status
// @Description Returns the state of the current (or last failed) assembly job, including download progress.
// @Tags status
// @Produce json
// @Success 200 {object} assembly.JobStatus
// @Router /api/v1/status [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.StatusTracker.Snapshot())
	}
}
