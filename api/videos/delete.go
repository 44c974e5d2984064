package videos

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
	videosService "github.com/warpedwall/ninja-index/internal/services/videos"
)

// Delete removes a video and every appearance recorded for it
// @Summary      Delete a video
// @Description  Removes a video and all of its appearances from the index. Athletes are kept.
// @Tags         videos
// @Produce      json
// @Param        id path int true "Video ID"
// @Success      200 {object} types.BaseResponse "Video deleted"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid ID"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
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

		if err := deps.VideoService.DeleteVideo(c.Request.Context(), uint(id)); err != nil {
			if videosService.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Video not found",
				})
			} else {
				log.Printf("[ERROR] Failed to delete video %d: %v", id, err)
				c.JSON(http.StatusInternalServerError, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Failed to delete video",
				})
			}
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Video deleted",
		})
	}
}
