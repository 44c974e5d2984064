package videos

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
)

// GetAll returns all processed videos, newest first
// @Summary      List processed videos
// @Description  Returns every indexed video with its distinct athlete count, newest first
// @Tags         videos
// @Produce      json
// @Success      200 {object} types.VideosResponse "Processed videos"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/videos [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := deps.VideoService.ListVideosWithCounts(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list videos: %v", err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to fetch videos",
			})
			return
		}

		out := make([]types.Video, 0, len(rows))
		for _, row := range rows {
			out = append(out, types.VideoFromCount(row))
		}

		c.JSON(http.StatusOK, types.VideosResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Videos:       out,
			Count:        len(out),
		})
	}
}
