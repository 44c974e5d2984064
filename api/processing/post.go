package processing

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
	processingService "github.com/warpedwall/ninja-index/internal/services/processing"
	"github.com/warpedwall/ninja-index/pkg/youtube"
)

// Post submits a video to the processing pipeline
// @Summary      Process a video
// @Description  Fetches the video transcript, extracts athlete appearances and indexes them. Reprocessing an indexed video without force is a no-op.
// @Tags         processing
// @Accept       json
// @Produce      json
// @Param        request body types.ProcessVideoRequest true "Video to process"
// @Success      200 {object} types.ProcessVideoResponse "Processing outcome"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid URL or date"
// @Failure      422 {object} types.ProcessVideoResponse "Video could not be processed"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/processing/videos [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ProcessVideoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		var eventDate *time.Time
		if req.EventDate != "" {
			parsed, err := time.Parse("2006-01-02", req.EventDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Invalid event_date, expected YYYY-MM-DD",
				})
				return
			}
			eventDate = &parsed
		}

		result, err := deps.ProcessingService.Process(c.Request.Context(), processingService.Request{
			URLOrID:   req.URL,
			Title:     req.Title,
			EventName: req.EventName,
			EventDate: eventDate,
			Force:     req.Force,
		})
		if err != nil {
			if errors.Is(err, youtube.ErrInvalidVideoID) {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Could not extract a video ID from the given URL",
				})
				return
			}
			log.Printf("[ERROR] Processing %s failed: %v", req.URL, err)
			details := interface{}(nil)
			if result != nil && result.Reason != "" {
				details = string(result.Reason)
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Processing failed",
				Details: details,
			})
			return
		}

		status := http.StatusOK
		responseStatus := types.StatusOK
		if result.Failed() {
			status = http.StatusUnprocessableEntity
			responseStatus = types.StatusFailed
		}

		c.JSON(status, types.ProcessVideoResponse{
			BaseResponse:       types.BaseResponse{Status: responseStatus, Message: result.Message},
			VideoID:            result.VideoID,
			YouTubeID:          result.YouTubeID,
			Title:              result.Title,
			ProcessingStatus:   string(result.Status),
			Reason:             string(result.Reason),
			AthletesFound:      result.AthletesFound,
			AppearancesCreated: result.AppearancesCreated,
			AppearancesSkipped: result.AppearancesSkipped,
			CandidatesSkipped:  result.CandidatesSkipped,
		})
	}
}
