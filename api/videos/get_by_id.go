package videos

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
	videosService "github.com/warpedwall/ninja-index/internal/services/videos"
)

// GetByID returns a single video with all recorded appearances
// @Summary      Get video by ID
// @Description  Returns a video with every recorded appearance, ordered by timestamp
// @Tags         videos
// @Produce      json
// @Param        id path int true "Video ID"
// @Success      200 {object} types.SingleVideoResponse "Video with appearances"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid ID"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid video ID",
			})
			return
		}

		video, err := deps.VideoService.GetVideoByID(c.Request.Context(), uint(id))
		if err != nil {
			if videosService.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Video not found",
				})
			} else {
				log.Printf("[ERROR] Failed to fetch video %d: %v", id, err)
				c.JSON(http.StatusInternalServerError, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Failed to fetch video",
				})
			}
			return
		}

		c.JSON(http.StatusOK, types.SingleVideoResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Video:        types.VideoFromModel(video),
			Appearances:  types.AppearancesForVideo(video),
		})
	}
}
