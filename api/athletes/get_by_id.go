package athletes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
	athletesService "github.com/warpedwall/ninja-index/internal/services/athletes"
)

// GetByID returns a single athlete with all recorded appearances
// @Summary      Get athlete by ID
// @Description  Returns an athlete with every recorded appearance, ordered by video and timestamp
// @Tags         athletes
// @Produce      json
// @Param        id path int true "Athlete ID"
// @Success      200 {object} types.SingleAthleteResponse "Athlete with appearances"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid ID"
// @Failure      404 {object} types.ErrorResponse "Athlete not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/athletes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid athlete ID",
			})
			return
		}

		athlete, err := deps.AthleteService.GetAthleteByID(c.Request.Context(), uint(id))
		if err != nil {
			if athletesService.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Athlete not found",
				})
			} else {
				log.Printf("[ERROR] Failed to fetch athlete %d: %v", id, err)
				c.JSON(http.StatusInternalServerError, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Failed to fetch athlete",
				})
			}
			return
		}

		c.JSON(http.StatusOK, types.SingleAthleteResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Athlete:      types.AthleteFromModel(athlete),
			Appearances:  types.AppearancesFromModels(athlete.Appearances),
		})
	}
}
