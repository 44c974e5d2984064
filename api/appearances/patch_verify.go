package appearances

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/warpedwall/ninja-index/api/types"
	appearancesService "github.com/warpedwall/ninja-index/internal/services/appearances"
)

// PatchVerify marks an appearance as human-reviewed
// @Summary      Verify an appearance
// @Description  Flags an appearance as manually reviewed. Send {"verified": false} to clear the flag.
// @Tags         appearances
// @Accept       json
// @Produce      json
// @Param        id path int true "Appearance ID"
// @Param        request body types.VerifyAppearanceRequest false "Verification state"
// @Success      200 {object} types.BaseResponse "Flag updated"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid ID"
// @Failure      404 {object} types.ErrorResponse "Appearance not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/appearances/{id}/verify [patch]
func PatchVerify(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid appearance ID",
			})
			return
		}

		// An empty body means "mark verified"
		req := types.VerifyAppearanceRequest{}
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Invalid request format",
					Details: err.Error(),
				})
				return
			}
		}
		verified := true
		if req.Verified != nil {
			verified = *req.Verified
		}

		if err := deps.AppearanceService.SetVerified(c.Request.Context(), uint(id), verified); err != nil {
			if appearancesService.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Appearance not found",
				})
			} else {
				log.Printf("[ERROR] Failed to update appearance %d: %v", id, err)
				c.JSON(http.StatusInternalServerError, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Failed to update appearance",
				})
			}
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Appearance updated",
		})
	}
}
