package assemble

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strollcast/episode-api/api/types"
	"github.com/strollcast/episode-api/internal/services/assembly"
	"github.com/strollcast/episode-api/pkg/ffmpeg"
)

// @Summary Assemble an episode
// @Description Downloads the given segment files in order, concatenates them with loudness normalization, tags the result, and uploads the finished MP3 to the output URL. Runs synchronously; poll /api/v1/status from another client for progress.
// @Tags assemble
// @Accept json
// @Produce json
// @Param request body types.AssembleRequest true "Assembly job"
// @Success 200 {object} types.AssembleResponse "Episode assembled and uploaded"
// @Failure 400 {object} types.AssembleResponse "Invalid request"
// @Failure 500 {object} types.AssembleResponse "Processing failed"
// @Failure 502 {object} types.AssembleResponse "Upload rejected by storage"
// @Failure 503 {object} types.AssembleResponse "Job cancelled by shutdown or timeout"
// @Router /api/v1/assemble [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AssembleRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		job := assembly.JobRequest{
			EpisodeID:   req.EpisodeID,
			SegmentURLs: req.Segments,
			OutputURL:   req.OutputURL,
		}
		if req.Metadata != nil {
			job.Tags = ffmpeg.Tags{
				Title:  req.Metadata.Title,
				Artist: req.Metadata.Artist,
				Album:  req.Metadata.Album,
				Genre:  req.Metadata.Genre,
			}
		}

		result, appErr := deps.AssemblyService.ProcessJob(c.Request.Context(), job)
		if appErr != nil {
			c.JSON(appErr.GetHTTPCode(), types.AssembleResponse{
				Success: false,
				Error:   appErr.Message,
			})
			return
		}

		c.JSON(http.StatusOK, types.AssembleResponse{
			Success:         true,
			DurationSeconds: result.DurationSeconds,
			FileSize:        result.FileSizeBytes,
		})
	}
}
