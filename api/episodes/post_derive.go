package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strollcast/episode-api/api/types"
	episodesService "github.com/strollcast/episode-api/internal/services/episodes"
)

// @Summary Derive an episode identifier
// @Description Derives the stable "{author}-{year}-{titleslug}" identifier used for cache keys and output filenames from paper metadata.
// @Tags episodes
// @Accept json
// @Produce json
// @Param request body types.DeriveIDRequest true "Paper metadata"
// @Success 200 {object} types.DeriveIDResponse
// @Failure 400 {object} types.ErrorResponse "Invalid metadata"
// @Router /api/v1/episodes/derive-id [post]
func PostDeriveID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.DeriveIDRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		id, err := episodesService.DeriveID(req.Title, req.Year, req.Authors)
		if err != nil {
			types.SendBadRequest(c, err.Error())
			return
		}

		c.JSON(http.StatusOK, types.DeriveIDResponse{EpisodeID: id})
	}
}
